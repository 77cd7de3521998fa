// Copyright 2022 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"errors"
	"fmt"
	"strings"
)

// SelectorMarshaling is a struct that represents the JSON-serializable form of a method selector.
// It includes the method name, type, and input arguments.
// SelectorMarshaling 是一个结构体，表示方法选择器的可 JSON 序列化形式。
// 它包括方法名称、类型和输入参数。
type SelectorMarshaling struct {
	Name   string               `json:"name"`   // 方法名称
	Type   string               `json:"type"`   // 方法类型（如 "function"）
	Inputs []ArgumentMarshaling `json:"inputs"` // 输入参数列表
}

// isDigit checks if the given byte is a digit (0-9).
// isDigit 检查给定字节是否为数字字符（0-9）。
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha checks if the given byte is an alphabet character (a-z or A-Z).
// isAlpha 检查给定字节是否为字母字符（a-z 或 A-Z）。
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentifierSymbol checks if the given byte is a valid identifier symbol ($ or _).
// isIdentifierSymbol 检查给定字节是否为有效的标识符符号（$ 或 _）。
func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

// parseToken parses a token from the unescapedSelector string based on whether it's an identifier.
// parseToken 从 unescapedSelector 字符串中解析一个标记，基于它是否是标识符。
func parseToken(unescapedSelector string, isIdent bool) (string, string, error) {
	if len(unescapedSelector) == 0 {
		return "", "", errors.New("empty token")
	}
	firstChar := unescapedSelector[0]
	position := 1
	// 检查第一个字符是否有效
	if !(isAlpha(firstChar) || (isIdent && isIdentifierSymbol(firstChar))) {
		return "", "", fmt.Errorf("invalid token start: %c", firstChar)
	}
	// 继续解析有效字符
	for position < len(unescapedSelector) {
		char := unescapedSelector[position]
		if !(isAlpha(char) || isDigit(char) || (isIdent && isIdentifierSymbol(char))) {
			break
		}
		position++
	}
	return unescapedSelector[:position], unescapedSelector[position:], nil
}

// parseIdentifier parses an identifier from the unescapedSelector string.
// parseIdentifier 从 unescapedSelector 字符串中解析一个标识符。
func parseIdentifier(unescapedSelector string) (string, string, error) {
	return parseToken(unescapedSelector, true)
}

// parseArraySuffix consumes any number of [] or [k] suffixes.
// parseArraySuffix 解析任意数量的 [] 或 [k] 数组后缀。
func parseArraySuffix(rest string) (string, string, error) {
	var suffix strings.Builder
	for len(rest) > 0 && rest[0] == '[' {
		end := 1
		for end < len(rest) && isDigit(rest[end]) {
			end++
		}
		if end == len(rest) || rest[end] != ']' {
			return "", "", fmt.Errorf("failed to parse array: expected ']' in %q", rest)
		}
		suffix.WriteString(rest[:end+1])
		rest = rest[end+1:]
	}
	return suffix.String(), rest, nil
}

// parseElementaryType parses an elementary type (e.g., uint256, address) from the unescapedSelector string.
// parseElementaryType 从 unescapedSelector 字符串中解析一个基本类型（例如 uint256、address）。
func parseElementaryType(unescapedSelector string) (string, string, error) {
	parsedType, rest, err := parseToken(unescapedSelector, false)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse elementary type: %w", err)
	}
	// handle arrays 处理数组类型
	suffix, rest, err := parseArraySuffix(rest)
	if err != nil {
		return "", "", err
	}
	return parsedType + suffix, rest, nil
}

// compositeType is a parsed tuple: its members plus the array suffix that
// followed the closing parenthesis, if any.
type compositeType struct {
	members []interface{}
	suffix  string
}

// parseCompositeType parses a composite type (e.g., tuple, nested types) from the unescapedSelector string.
// parseCompositeType 从 unescapedSelector 字符串中解析一个复合类型（例如 tuple、嵌套类型）。
func parseCompositeType(unescapedSelector string) (compositeType, string, error) {
	if len(unescapedSelector) == 0 || unescapedSelector[0] != '(' {
		return compositeType{}, "", fmt.Errorf("expected '(', got %q", unescapedSelector)
	}
	var result []interface{}
	rest := unescapedSelector[1:]
	if len(rest) > 0 && rest[0] == ')' {
		return compositeType{}, "", errors.New("empty tuple")
	}
	// 解析多个类型
	for {
		parsedType, next, err := parseType(rest)
		if err != nil {
			return compositeType{}, "", fmt.Errorf("failed to parse type: %w", err)
		}
		result = append(result, parsedType)
		rest = next
		if len(rest) == 0 || rest[0] != ',' {
			break
		}
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != ')' {
		return compositeType{}, "", fmt.Errorf("expected ')', got '%s'", rest)
	}
	// 处理元组后的数组后缀，例如 (uint256,bool)[2][]
	suffix, rest, err := parseArraySuffix(rest[1:])
	if err != nil {
		return compositeType{}, "", err
	}
	return compositeType{members: result, suffix: suffix}, rest, nil
}

// parseType determines whether the type is elementary or composite and delegates parsing accordingly.
// parseType 判断类型是基本类型还是复合类型，并相应地委派解析。
func parseType(unescapedSelector string) (interface{}, string, error) {
	if len(unescapedSelector) == 0 {
		return nil, "", errors.New("empty type")
	}
	if unescapedSelector[0] == '(' {
		return parseCompositeType(unescapedSelector)
	}
	return parseElementaryType(unescapedSelector)
}

// assembleArgs assembles the parsed arguments into a structured format for JSON serialization.
// assembleArgs 将解析的参数组装成用于 JSON 序列化的结构化格式。
func assembleArgs(args []interface{}) ([]ArgumentMarshaling, error) {
	arguments := make([]ArgumentMarshaling, 0, len(args))
	for i, arg := range args {
		// generate dummy name to avoid unmarshal issues 生成虚拟名称以避免反序列化问题
		name := fmt.Sprintf("name%d", i)
		switch arg := arg.(type) {
		case string:
			arguments = append(arguments, ArgumentMarshaling{Name: name, Type: arg, InternalType: arg})
		case compositeType:
			subArgs, err := assembleArgs(arg.members)
			if err != nil {
				return nil, fmt.Errorf("failed to assemble components: %w", err)
			}
			tupleType := "tuple" + arg.suffix
			arguments = append(arguments, ArgumentMarshaling{Name: name, Type: tupleType, InternalType: tupleType, Components: subArgs})
		default:
			return nil, fmt.Errorf("failed to assemble args: unexpected type %T", arg)
		}
	}
	return arguments, nil
}

// ParseSelector converts a method selector into a struct that can be JSON encoded
// and consumed by other functions in this package. Human-readable signatures
// are normalized first, see NormalizeSignature.
// Note, although uppercase letters are not part of the ABI spec, this function
// still accepts it as the general format is valid.
// ParseSelector 将方法选择器转换为可以 JSON 编码的结构体，人类可读的签名会先被规范化。
// 注意：尽管大写字母不是 ABI 规范的一部分，但此函数仍然接受它们，因为通用格式是有效的。
func ParseSelector(unescapedSelector string) (SelectorMarshaling, error) {
	normalized, err := NormalizeSignature(unescapedSelector)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %w", unescapedSelector, err)
	}
	name, rest, err := parseIdentifier(normalized)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %w", unescapedSelector, err)
	}
	var args []interface{}
	// 检查是否有空参数列表
	if rest == "()" {
		rest = ""
	} else {
		var composite compositeType
		composite, rest, err = parseCompositeType(rest)
		if err != nil {
			return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %w", unescapedSelector, err)
		}
		if composite.suffix != "" {
			return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': unexpected string '%s'", unescapedSelector, composite.suffix)
		}
		args = composite.members
	}
	// 确保解析完毕后没有剩余字符串
	if len(rest) > 0 {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': unexpected string '%s'", unescapedSelector, rest)
	}

	// Reassemble the fake ABI and construct the JSON 重新组装假的 ABI 并构造 JSON
	fakeArgs, err := assembleArgs(args)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector: %w", err)
	}

	return SelectorMarshaling{name, "function", fakeArgs}, nil
}

// signatureModifiers are words that may follow a parameter type in a
// human-readable signature and are not part of the canonical form.
var signatureModifiers = map[string]bool{
	"indexed":  true,
	"memory":   true,
	"calldata": true,
	"storage":  true,
	"payable":  true,
}

// NormalizeSignature turns a human-readable signature such as
//
//	function transfer(address to, uint amount) external returns (bool)
//
// into its canonical form transfer(address,uint256). The leading function,
// event or error keyword, parameter names, indexed and data location words
// and anything after the parameter list are dropped.
// NormalizeSignature 将人类可读的签名转换为规范形式：去掉关键字、参数名、indexed、
// 数据位置修饰词以及参数列表之后的内容，并将 uint/int 规范化为 uint256/int256。
func NormalizeSignature(human string) (string, error) {
	sig := strings.TrimSpace(human)
	for _, keyword := range []string{"function", "event", "error"} {
		if strings.HasPrefix(sig, keyword+" ") {
			sig = strings.TrimSpace(sig[len(keyword):])
			break
		}
	}
	open := strings.IndexByte(sig, '(')
	if open < 0 {
		return "", fmt.Errorf("missing parameter list in %q", human)
	}
	name := strings.TrimSpace(sig[:open])
	if _, rest, err := parseIdentifier(name); err != nil || rest != "" {
		return "", fmt.Errorf("invalid name %q in %q", name, human)
	}
	end, err := matchParen(sig, open)
	if err != nil {
		return "", fmt.Errorf("%v in %q", err, human)
	}
	params, err := normalizeParams(sig[open+1 : end])
	if err != nil {
		return "", err
	}
	return name + "(" + strings.Join(params, ",") + ")", nil
}

// matchParen returns the index of the parenthesis closing the one at open.
func matchParen(s string, open int) (int, error) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, errors.New("unbalanced parentheses")
}

// splitTopLevel splits s at commas that are not nested in parentheses.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// normalizeParams normalizes a comma separated parameter list.
func normalizeParams(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := splitTopLevel(list)
	params := make([]string, len(parts))
	for i, part := range parts {
		param, err := normalizeParam(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		params[i] = param
	}
	return params, nil
}

// normalizeParam returns the canonical type of a single parameter
// declaration like "uint amount" or "(address,uint)[] indexed items".
func normalizeParam(param string) (string, error) {
	if param == "" {
		return "", errors.New("empty parameter")
	}
	if strings.HasPrefix(param, "tuple(") {
		param = param[len("tuple"):]
	}
	var typ, rest string
	if param[0] == '(' {
		end, err := matchParen(param, 0)
		if err != nil {
			return "", fmt.Errorf("%v in %q", err, param)
		}
		members, err := normalizeParams(param[1:end])
		if err != nil {
			return "", err
		}
		if len(members) == 0 {
			return "", fmt.Errorf("empty tuple in %q", param)
		}
		suffix, remainder, err := parseArraySuffix(param[end+1:])
		if err != nil {
			return "", err
		}
		typ, rest = "("+strings.Join(members, ",")+")"+suffix, remainder
	} else {
		fields := strings.Fields(param)
		parsed, err := NewType(fields[0], "", nil)
		if err != nil {
			return "", err
		}
		typ, rest = parsed.String(), strings.Join(fields[1:], " ")
	}
	// Whatever follows the type is modifiers and at most one name.
	// 类型之后只能是修饰词和至多一个参数名。
	names := 0
	for _, word := range strings.Fields(rest) {
		if signatureModifiers[word] {
			continue
		}
		if _, tail, err := parseIdentifier(word); err != nil || tail != "" || names > 0 {
			return "", fmt.Errorf("unexpected %q after type %s", word, typ)
		}
		names++
	}
	return typ, nil
}
