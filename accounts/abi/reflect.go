// Copyright 2016 The go-ethereum Authors
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
	"math/big"
	"reflect"
	"strings"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/hexutil"
)

// The encoder accepts loosely typed Go values. The helpers in this file turn
// them into the few shapes the encoder works on: *big.Int for integers, []byte
// for byte strings, []interface{} for arrays and tuples.
// 编码器接受宽松类型的 Go 值，本文件中的辅助函数将它们转换为编码器使用的几种形式。

var (
	bigT     = reflect.TypeOf(big.Int{})
	uint256T = reflect.TypeOf(uint256.Int{})
)

// indirect recursively dereferences the value until it either gets the value
// or finds a big.Int
// indirect 递归解引用值，直到获取到值或找到 big.Int
func indirect(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Type() != bigT && v.Elem().Type() != uint256T {
		return indirect(v.Elem())
	}
	return v
}

// toBigInt converts any supported integer representation into a fresh big.Int.
// toBigInt 将支持的整数表示转换为新的 big.Int。
func toBigInt(t Type, value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			break
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *uint256.Int:
		if v == nil {
			break
		}
		return v.ToBig(), nil
	case uint256.Int:
		return v.ToBig(), nil
	}
	rv := indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	}
	return nil, &TypeMismatchError{Type: t.String(), Value: value}
}

// toBytes converts a byte string value: byte slices, byte arrays of any
// length and 0x prefixed hex strings.
// toBytes 转换字节串值：字节切片、任意长度的字节数组以及带 0x 前缀的十六进制字符串。
func toBytes(t Type, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case hexutil.Bytes:
		return v, nil
	case common.Hash:
		return v[:], nil
	case string:
		if !hexutil.Has0xPrefix(v) {
			return nil, &TypeMismatchError{Type: t.String(), Value: value}
		}
		b, err := hexutil.Decode(v)
		if err != nil {
			return nil, fmt.Errorf("abi: invalid hex value for %s: %w", t, err)
		}
		return b, nil
	}
	rv := indirect(reflect.ValueOf(value))
	switch {
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return rv.Bytes(), nil
	case rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8:
		return mustArrayToByteSlice(rv).Bytes(), nil
	}
	return nil, &TypeMismatchError{Type: t.String(), Value: value}
}

// toAddress converts an address value. Strings must be 0x prefixed hex and,
// when they use mixed case, carry a valid EIP-55 checksum.
// toAddress 转换地址值。字符串必须是带 0x 前缀的十六进制，若大小写混合则必须通过 EIP-55 校验。
func toAddress(t Type, value interface{}) (common.Address, error) {
	switch v := value.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		if v != nil {
			return *v, nil
		}
	case [common.AddressLength]byte:
		return common.Address(v), nil
	case string:
		if !hexutil.Has0xPrefix(v) || !common.IsChecksumAddress(v) {
			return common.Address{}, &InvalidAddressError{Address: v}
		}
		return common.HexToAddress(v), nil
	}
	return common.Address{}, &TypeMismatchError{Type: t.String(), Value: value}
}

// toBool converts a boolean value.
func toBool(value interface{}) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	rv := indirect(reflect.ValueOf(value))
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), nil
	}
	return false, &InvalidBooleanError{Value: value}
}

// toString converts a string value.
func toString(t Type, value interface{}) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	rv := indirect(reflect.ValueOf(value))
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", &TypeMismatchError{Type: t.String(), Value: value}
}

// toElements returns the elements of any Go slice or array.
// toElements 返回任意 Go 切片或数组的元素。
func toElements(t Type, value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case *Values:
		if v != nil {
			return v.Slice(), nil
		}
	}
	rv := indirect(reflect.ValueOf(value))
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &InvalidArrayError{Type: t.String(), Value: value}
	}
	elems := make([]interface{}, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, nil
}

// toTupleValues returns the members of a tuple value in component order.
// Positional values, maps keyed by component name and Go structs are accepted.
// toTupleValues 按成员顺序返回元组值的成员，接受位置值、按成员名为键的 map 以及 Go 结构体。
func toTupleValues(t Type, value interface{}) ([]interface{}, error) {
	var values []interface{}
	switch v := value.(type) {
	case *Values:
		if v == nil {
			return nil, &TypeMismatchError{Type: t.String(), Value: value}
		}
		values = v.Slice()
	case Values:
		values = v.Slice()
	case []interface{}:
		values = v
	case map[string]interface{}:
		values = make([]interface{}, len(t.TupleRawNames))
		for i, name := range t.TupleRawNames {
			member, ok := v[name]
			if !ok || name == "" {
				return nil, fmt.Errorf("abi: tuple member %q of %s not found in map", name, t)
			}
			values[i] = member
		}
	default:
		rv := indirect(reflect.ValueOf(value))
		if rv.Kind() != reflect.Struct {
			return nil, &TypeMismatchError{Type: t.String(), Value: value}
		}
		fieldmap, err := mapArgNamesToStructFields(t.TupleRawNames, rv)
		if err != nil {
			return nil, err
		}
		values = make([]interface{}, len(t.TupleRawNames))
		for i, name := range t.TupleRawNames {
			field := rv.FieldByName(fieldmap[name])
			if !field.IsValid() || !field.CanInterface() {
				return nil, fmt.Errorf("abi: field %s for tuple not found in the given struct", name)
			}
			values[i] = field.Interface()
		}
	}
	if len(values) != len(t.TupleElems) {
		return nil, &LengthMismatchError{Expected: len(t.TupleElems), Given: len(values)}
	}
	return values, nil
}

// mustArrayToByteSlice creates a new byte slice with the exact same size as value
// and copies the bytes in value to the new slice.
// mustArrayToByteSlice 创建一个与 value 大小完全相同的新字节切片，并将 value 中的字节复制到新切片中。
func mustArrayToByteSlice(value reflect.Value) reflect.Value {
	slice := reflect.MakeSlice(reflect.TypeOf([]byte{}), value.Len(), value.Len())
	reflect.Copy(slice, value)
	return slice
}

// mapArgNamesToStructFields maps a slice of argument names to struct fields.
//
// first round: for each Exportable field that contains a `abi:""` tag and this field name
// exists in the given argument name list, pair them together.
//
// second round: for each argument name that has not been already linked, find what
// variable is expected to be mapped into, if it exists and has not been used, pair them.
//
// Note this function assumes the given value is a struct value.
// mapArgNamesToStructFields 将参数名称切片映射到结构体字段。
// 第一轮按 `abi:""` 标签配对，第二轮按驼峰命名配对。
func mapArgNamesToStructFields(argNames []string, value reflect.Value) (map[string]string, error) {
	typ := value.Type()

	abi2struct := make(map[string]string)
	struct2abi := make(map[string]string)

	// first round ~~~
	for i := 0; i < typ.NumField(); i++ {
		structFieldName := typ.Field(i).Name

		// skip private struct fields.
		if structFieldName[:1] != strings.ToUpper(structFieldName[:1]) {
			continue
		}
		// skip fields that have no abi:"" tag.
		tagName, ok := typ.Field(i).Tag.Lookup("abi")
		if !ok {
			continue
		}
		// check if tag is empty.
		if tagName == "" {
			return nil, fmt.Errorf("struct: abi tag in '%s' is empty", structFieldName)
		}
		// check which argument field matches with the abi tag.
		found := false
		for _, arg := range argNames {
			if arg == tagName {
				if abi2struct[arg] != "" {
					return nil, fmt.Errorf("struct: abi tag in '%s' already mapped", structFieldName)
				}
				// pair them
				abi2struct[arg] = structFieldName
				struct2abi[structFieldName] = arg
				found = true
			}
		}
		// check if this tag has been mapped.
		if !found {
			return nil, fmt.Errorf("struct: abi tag '%s' defined but not found in abi", tagName)
		}
	}

	// second round ~~~
	for _, argName := range argNames {
		structFieldName := ToCamelCase(argName)

		if structFieldName == "" {
			return nil, errors.New("abi: purely underscored output cannot unpack to struct")
		}

		// this abi has already been paired, skip it... unless there exists another, yet unassigned
		// struct field with the same field name. If so, raise an error:
		//    abi: [ { "name": "value" } ]
		//    struct { Value  *big.Int , Value1 *big.Int `abi:"value"`}
		if abi2struct[argName] != "" {
			if abi2struct[argName] != structFieldName &&
				struct2abi[structFieldName] == "" &&
				value.FieldByName(structFieldName).IsValid() {
				return nil, fmt.Errorf("abi: multiple variables maps to the same abi field '%s'", argName)
			}
			continue
		}

		// return an error if this struct field has already been paired.
		if struct2abi[structFieldName] != "" {
			return nil, fmt.Errorf("abi: multiple outputs mapping to the same struct field '%s'", structFieldName)
		}

		if value.FieldByName(structFieldName).IsValid() {
			// pair them
			abi2struct[argName] = structFieldName
			struct2abi[structFieldName] = argName
		} else {
			// not paired, but annotate as used, to detect cases like
			//   abi : [ { "name": "value" }, { "name": "_value" } ]
			//   struct { Value *big.Int }
			struct2abi[structFieldName] = argName
		}
	}
	return abi2struct, nil
}
