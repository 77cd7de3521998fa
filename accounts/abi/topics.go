// Copyright 2018 The go-ethereum Authors
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
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/crypto"
)

// EncodeEventTopics converts a filter query on the indexed arguments of an
// event into a filter topic set. Position 0 holds the event ID unless the event
// is anonymous. A nil argument is a wildcard and a []interface{} given for a
// non-array argument matches any of its members. String and bytes values are
// hashed with Keccak256, as the log stores them.
// EncodeEventTopics 将事件 indexed 参数的过滤条件转换为过滤主题集合。非匿名事件的第 0 位为事件 ID，
// nil 参数表示通配，非数组参数给出的 []interface{} 表示匹配其中任意一个值。
// string 和 bytes 值与日志中一样使用 Keccak256 哈希。
func (abi *ABI) EncodeEventTopics(eventName string, args ...interface{}) ([][]common.Hash, error) {
	event, err := abi.eventByName(eventName)
	if err != nil {
		return nil, err
	}
	indexed := event.Inputs.Indexed()
	if len(args) > len(indexed) {
		return nil, &LengthMismatchError{Expected: len(indexed), Given: len(args)}
	}
	var topics [][]common.Hash
	if !event.Anonymous {
		topics = append(topics, []common.Hash{event.ID})
	}
	for i, arg := range args {
		input := indexed[i]
		if arg == nil {
			topics = append(topics, nil)
			continue
		}
		rules := []interface{}{arg}
		if set, ok := arg.([]interface{}); ok && input.Type.T != SliceTy && input.Type.T != ArrayTy {
			rules = set
		}
		set := make([]common.Hash, 0, len(rules))
		for _, rule := range rules {
			topic, err := encodeTopic(input.Type, rule)
			if err != nil {
				return nil, err
			}
			set = append(set, topic)
		}
		topics = append(topics, set)
	}
	// Trailing wildcards carry no information.
	for len(topics) > 0 && topics[len(topics)-1] == nil {
		topics = topics[:len(topics)-1]
	}
	return topics, nil
}

// encodeTopic encodes a single indexed argument value the way it is stored in
// a log topic.
// encodeTopic 按日志主题中的存储方式编码单个 indexed 参数值。
func encodeTopic(t Type, value interface{}) (common.Hash, error) {
	switch t.T {
	case StringTy:
		s, err := toString(t, value)
		if err != nil {
			return common.Hash{}, err
		}
		return crypto.Keccak256Hash([]byte(s)), nil
	case BytesTy:
		b, err := toBytes(t, value)
		if err != nil {
			return common.Hash{}, err
		}
		return crypto.Keccak256Hash(b), nil
	case SliceTy, ArrayTy, TupleTy:
		// The topic is the hash of the in-place encoding, which is not
		// produced here.
		return common.Hash{}, &UnsupportedIndexedTypeError{Type: t.String()}
	default:
		word, err := t.pack(value)
		if err != nil {
			return common.Hash{}, err
		}
		return common.BytesToHash(word), nil
	}
}

// decodeTopic converts an indexed topic into the argument value. Dynamic types,
// arrays and tuples only have their Keccak256 hash in the topic and the hash is
// returned as is.
// decodeTopic 将 indexed 主题转换为参数值。动态类型、数组和元组在主题中只保存其 Keccak256 哈希，
// 直接返回该哈希。
func decodeTopic(t Type, topic common.Hash) (interface{}, error) {
	switch t.T {
	case StringTy, BytesTy, SliceTy, ArrayTy, TupleTy:
		return topic, nil
	default:
		return readWord(t, topic[:])
	}
}
