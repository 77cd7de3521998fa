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
	"bytes"
	"encoding/json"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Values is an ordered list of decoded ABI values. Every list can be read
// positionally. When all members carry distinct, non-empty names the list can
// also be read by name, and it marshals to a JSON object whose keys keep the
// declaration order. Otherwise it marshals to a JSON array.
//
// Decoded members use these Go types:
//
//	intN, uintN   *big.Int
//	bool          bool
//	address       common.Address
//	bytesN, bytes hexutil.Bytes
//	string        string
//	T[k], T[]     []interface{}
//	tuple         *Values
//
// Values 是解码后 ABI 值的有序列表。所有成员都可以按位置读取；
// 当所有成员都有互不相同的非空名称时，也可以按名称读取。
type Values struct {
	values []interface{}
	names  []string // nil unless every name is present and unique
}

// NewValues wraps decoded values. Names are kept only when every value has a
// distinct non-empty name.
func NewValues(values []interface{}, names []string) *Values {
	v := &Values{values: values}
	if len(values) > 0 && len(names) == len(values) && uniqueNames(names) {
		v.names = names
	}
	return v
}

// uniqueNames reports whether all names are non-empty and distinct.
func uniqueNames(names []string) bool {
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, name := range names {
		if name == "" || !seen.Add(name) {
			return false
		}
	}
	return true
}

// Len returns the number of values.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.values)
}

// At returns the i'th value in declaration order, or nil when there is no
// such value.
func (v *Values) At(i int) interface{} {
	if v == nil || i < 0 || i >= len(v.values) {
		return nil
	}
	return v.values[i]
}

// Slice returns a copy of the values in declaration order.
func (v *Values) Slice() []interface{} {
	if v == nil {
		return nil
	}
	return append([]interface{}{}, v.values...)
}

// Named reports whether the values can be accessed by name.
func (v *Values) Named() bool {
	return v != nil && v.names != nil
}

// Names returns the member names, or nil for positional values.
func (v *Values) Names() []string {
	if !v.Named() {
		return nil
	}
	return append([]string{}, v.names...)
}

// Get returns the value with the given name.
func (v *Values) Get(name string) (interface{}, bool) {
	if !v.Named() {
		return nil, false
	}
	for i, n := range v.names {
		if n == name {
			return v.values[i], true
		}
	}
	return nil, false
}

// Map returns the named values as a map, or nil for positional values.
func (v *Values) Map() map[string]interface{} {
	if !v.Named() {
		return nil
	}
	m := make(map[string]interface{}, len(v.names))
	for i, n := range v.names {
		m[n] = v.values[i]
	}
	return m
}

// String implements fmt.Stringer.
func (v *Values) String() string {
	if v == nil {
		return "<nil>"
	}
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, val := range v.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		if v.names != nil {
			buf.WriteString(v.names[i])
			buf.WriteString(": ")
		}
		fmt.Fprint(&buf, val)
	}
	buf.WriteByte(')')
	return buf.String()
}

// MarshalJSON implements json.Marshaler.
// 有名称时编码为保持声明顺序的 JSON 对象，否则编码为 JSON 数组。
func (v *Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	if v.names == nil {
		if v.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.values)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range v.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
