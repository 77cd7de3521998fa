// Copyright 2015 The go-ethereum Authors
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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ABI（Application Binary Interface） ：
// ABI 是以太坊智能合约的二进制接口规范，用于定义函数签名、参数编码和返回值解码规则。
// 参数编码遵循固定宽度（32 字节对齐）和动态偏移量规则。
// 静态类型与动态类型 ：
// 静态类型（如 uint256、bool）在编码时占用固定长度。
// 动态类型（如 string、bytes）在编码时包含偏移量和实际内容。
// 索引参数（Indexed Parameters） ：
// 索引参数仅适用于事件日志，不会出现在事件数据中，而是作为主题（topics）存储。

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
// Argument 结构体保存参数的名称和对应的类型。这些类型在打包和测试参数时使用。
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events (仅适用于事件)
}

type Arguments []Argument

// ArgumentMarshaling is the JSON form of a parameter in a contract ABI.
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 方法实现了 json.Unmarshaler 接口。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %w", err)
	}

	// 使用 NewType 方法解析参数类型。
	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// NewArguments builds a parameter list from its JSON form.
// NewArguments 根据参数的 JSON 形式构建参数列表。
func NewArguments(params []ArgumentMarshaling) (Arguments, error) {
	args := make(Arguments, len(params))
	for i, p := range params {
		typ, err := NewType(p.Type, p.InternalType, p.Components)
		if err != nil {
			return nil, err
		}
		args[i] = Argument{Name: p.Name, Type: typ, Indexed: p.Indexed}
	}
	return args, nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 方法返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Indexed returns the indexed arguments, keeping their order.
func (arguments Arguments) Indexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Names returns the argument names in order.
func (arguments Arguments) Names() []string {
	names := make([]string, len(arguments))
	for i, arg := range arguments {
		names[i] = arg.Name
	}
	return names
}

func (arguments Arguments) types() []*Type {
	types := make([]*Type, len(arguments))
	for i := range arguments {
		types[i] = &arguments[i].Type
	}
	return types
}

// Unpack performs the operation hexdata -> Go format. Only the non-indexed
// arguments are decoded.
// Unpack 方法将 ABI 编码的数据解包为 Go 格式，只解码非索引参数。
func (arguments Arguments) Unpack(data []byte) (*Values, error) {
	nonIndexed := arguments.NonIndexed()
	if len(data) == 0 {
		if len(nonIndexed) != 0 {
			return nil, ErrZeroData
		}
		return NewValues([]interface{}{}, nil), nil
	}
	values, err := unpackList(nonIndexed.types(), data)
	if err != nil {
		return nil, err
	}
	return NewValues(values, nonIndexed.Names()), nil
}

// UnpackValues can be used to unpack ABI-encoded hexdata according to the ABI-specification,
// without supplying a struct to unpack into. Instead, this method returns a list containing the
// values. An atomic argument will be a list with one element.
// UnpackValues 方法根据 ABI 规范解包 ABI 编码的数据，返回包含解包值的列表。
func (arguments Arguments) UnpackValues(data []byte) ([]interface{}, error) {
	values, err := arguments.Unpack(data)
	if err != nil {
		return nil, err
	}
	return values.Slice(), nil
}

// UnpackIntoMap performs the operation hexdata -> mapping of argument name to argument value.
// UnpackIntoMap 方法将 ABI 编码的数据解包为参数名到参数值的映射。
func (arguments Arguments) UnpackIntoMap(v map[string]interface{}, data []byte) error {
	// Make sure map is not nil 确保目标映射不为空。
	if v == nil {
		return errors.New("abi: cannot unpack into a nil map")
	}
	values, err := arguments.Unpack(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments.NonIndexed() {
		v[arg.Name] = values.At(i)
	}
	return nil
}

// PackValues performs the operation Go format -> Hexdata.
// It is the semantic opposite of UnpackValues.
// PackValues 方法将 Go 格式的参数打包为 ABI 编码的数据。它是 UnpackValues 的语义反向操作。
func (arguments Arguments) PackValues(args []interface{}) ([]byte, error) {
	return arguments.Pack(args...)
}

// Pack performs the operation Go format -> Hexdata.
// Pack 方法将 Go 格式的参数打包为 ABI 编码的数据。
func (arguments Arguments) Pack(args ...interface{}) ([]byte, error) {
	return packList(arguments.types(), args)
}

// String returns the canonical parameter list, e.g. (address,uint256).
func (arguments Arguments) String() string {
	return paramsString(arguments.types())
}

// ToCamelCase converts an under-score string to a camel-case string.
// ToCamelCase 方法将下划线分隔的字符串转换为驼峰命名法的字符串。
func ToCamelCase(input string) string {
	parts := strings.Split(input, "_")
	for i, s := range parts {
		if len(s) > 0 {
			parts[i] = strings.ToUpper(s[:1]) + s[1:]
		}
	}
	return strings.Join(parts, "")
}
