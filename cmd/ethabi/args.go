package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common/math"
)

// Command line values arrive as JSON fragments: 42, "0xabc", [1,2],
// {"to":"0x..","amount":"1000"}. A fragment that is not valid JSON is taken as
// a bare string so addresses and hex can be given without quotes.
// 命令行值以 JSON 片段给出，非法 JSON 按原始字符串处理。

// rawArg turns a command line word into a JSON fragment.
func rawArg(s string) json.RawMessage {
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	quoted, _ := json.Marshal(s)
	return quoted
}

// parseArgs converts command line words into encoder inputs for args.
// parseArgs 将命令行参数转换为编码器输入。
func parseArgs(args abi.Arguments, words []string) ([]interface{}, error) {
	if len(words) != len(args) {
		return nil, fmt.Errorf("expected %d arguments (%s), got %d", len(args), args, len(words))
	}
	values := make([]interface{}, len(words))
	for i, w := range words {
		v, err := convertArg(args[i].Type, rawArg(w))
		if err != nil {
			name := args[i].Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %s: %w", name, err)
		}
		values[i] = v
	}
	return values, nil
}

// convertArg decodes one JSON fragment according to t.
func convertArg(t abi.Type, raw json.RawMessage) (interface{}, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		var num json.Number
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case json.Number:
			num = v
		case string:
			num = json.Number(strings.TrimSpace(v))
		default:
			return nil, fmt.Errorf("expected number for %s, got %s", t, raw)
		}
		n, ok := math.ParseBig256(num.String())
		if !ok {
			return nil, fmt.Errorf("invalid integer %q for %s", num, t)
		}
		return n, nil

	case abi.BoolTy:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("expected boolean for %s, got %s", t, raw)
		}
		return b, nil

	case abi.StringTy, abi.AddressTy, abi.BytesTy, abi.FixedBytesTy:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("expected string for %s, got %s", t, raw)
		}
		return s, nil

	case abi.SliceTy, abi.ArrayTy:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("expected array for %s, got %s", t, raw)
		}
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			v, err := convertArg(*t.Elem, e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil

	case abi.TupleTy:
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '{' {
			var members map[string]json.RawMessage
			if err := json.Unmarshal(raw, &members); err != nil {
				return nil, err
			}
			out := make(map[string]interface{}, len(members))
			for i, name := range t.TupleRawNames {
				m, ok := members[name]
				if !ok {
					continue // reported by the encoder
				}
				v, err := convertArg(*t.TupleElems[i], m)
				if err != nil {
					return nil, fmt.Errorf("member %s: %w", name, err)
				}
				out[name] = v
			}
			return out, nil
		}
		var members []json.RawMessage
		if err := json.Unmarshal(raw, &members); err != nil {
			return nil, fmt.Errorf("expected object or array for %s, got %s", t, raw)
		}
		if len(members) != len(t.TupleElems) {
			return nil, fmt.Errorf("expected %d members for %s, got %d", len(t.TupleElems), t, len(members))
		}
		out := make([]interface{}, len(members))
		for i, m := range members {
			v, err := convertArg(*t.TupleElems[i], m)
			if err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported type %s", t)
}

// selectorArgs builds positional arguments from a signature such as
// "transfer(address,uint256)" or "function f((uint8 a, bytes b)[] xs)".
// selectorArgs 根据函数签名构建无名参数列表。
func selectorArgs(signature string) (string, abi.Arguments, error) {
	sel, err := abi.ParseSelector(signature)
	if err != nil {
		return "", nil, err
	}
	args, err := abi.NewArguments(unnamed(sel.Inputs))
	if err != nil {
		return "", nil, err
	}
	return sel.Name, args, nil
}

// unnamed drops the placeholder names the selector parser generates so
// decoded values come out positional.
func unnamed(params []abi.ArgumentMarshaling) []abi.ArgumentMarshaling {
	if params == nil {
		return nil
	}
	out := make([]abi.ArgumentMarshaling, len(params))
	for i, p := range params {
		p.Name = ""
		p.Components = unnamed(p.Components)
		out[i] = p
	}
	return out
}

// typeListArgs parses a comma separated type list like "uint256,(bool,string)[]".
func typeListArgs(types string) (abi.Arguments, error) {
	_, args, err := selectorArgs("f(" + types + ")")
	return args, err
}
