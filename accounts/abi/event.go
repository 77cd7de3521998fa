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
	"fmt"
	"strings"

	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/core/types"
)

// Event is an event potentially triggered by the EVM's LOG mechanism. The Event
// holds type information (inputs) about the yielded output. Anonymous events
// don't get the signature canonical representation as the first LOG topic.
// Event 是可能由 EVM 的 LOG 机制触发的事件。Event 包含关于输出的类型信息（输入）。
// 匿名事件不会将签名的规范表示作为第一个 LOG 主题。
type Event struct {
	// Name is the event name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of event overloading.
	//
	// e.g.
	// These are two events that have the same name:
	// * foo(int,int)
	// * foo(uint,uint)
	// The event name of the first one will be resolved as foo while the second one
	// will be resolved as foo0.
	// Name 是用于内部表示的事件名称，重载时第一个解析为 foo，第二个解析为 foo0。
	Name string

	// RawName is the raw event name parsed from ABI.
	// RawName 是从 ABI 解析出的原始事件名称。
	RawName   string
	Anonymous bool
	Inputs    Arguments
	str       string

	// Sig contains the string signature according to the ABI spec.
	// e.g.	 event foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID returns the canonical representation of the event's signature used by the
	// abi definition to identify event names and types.
	// ID 是事件签名的 Keccak256 哈希，即非匿名事件日志的 topic0。
	ID common.Hash
}

// NewEvent creates a new Event.
// It precomputes the id, signature and string representation of the event.
// Unnamed inputs keep their empty name, so the decoded arguments of such an
// event are positional.
// NewEvent 创建一个新的 Event，并预计算 ID、签名和字符串表示形式。
// 未命名的参数保持空名称，此类事件的解码结果按位置访问。
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	names := make([]string, len(inputs))
	for i, input := range inputs {
		// string representation 字符串表示形式
		names[i] = input.Type.String()
		if input.Indexed {
			names[i] += " indexed"
		}
		if input.Name != "" {
			names[i] += " " + input.Name
		}
	}
	sig := Signature(rawName, inputs)

	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		str:       fmt.Sprintf("event %v(%v)", rawName, strings.Join(names, ", ")),
		Sig:       sig,
		ID:        EventTopic(sig),
	}
}

// String returns the string representation of the event.
// String 返回事件的字符串表示形式。
func (e Event) String() string {
	return e.str
}

// DecodedEvent is a decoded event log. Args is nil when the event declares no
// inputs.
// DecodedEvent 是解码后的事件日志，事件没有输入参数时 Args 为 nil。
type DecodedEvent struct {
	EventName string  `json:"eventName"`
	Args      *Values `json:"args,omitempty"`
}

// DecodedLog pairs a log with its decoded event.
type DecodedLog struct {
	Log       *types.Log `json:"log"`
	EventName string     `json:"eventName"`
	Args      *Values    `json:"args,omitempty"`
}

// eventByName resolves an event by its resolved name first and its raw name
// second, in declaration order.
func (abi *ABI) eventByName(name string) (*Event, error) {
	if event, ok := abi.Events[name]; ok {
		return &event, nil
	}
	for _, event := range abi.events() {
		if event.RawName == name {
			return &event, nil
		}
	}
	return nil, &ItemNotFoundError{Kind: "event", Name: name}
}

// resolveEvent finds the event a log belongs to and returns it together with
// the topics holding its indexed arguments.
// resolveEvent 找到日志所属的事件，并返回保存 indexed 参数的主题。
func (abi *ABI) resolveEvent(eventName string, topics []common.Hash) (*Event, []common.Hash, error) {
	if eventName == "" {
		if len(topics) == 0 {
			return nil, nil, ErrEmptyTopics
		}
		event, err := abi.EventByID(topics[0])
		if err != nil {
			return nil, nil, err
		}
		return event, topics[1:], nil
	}
	event, err := abi.eventByName(eventName)
	if err != nil {
		return nil, nil, err
	}
	if event.Anonymous {
		return event, topics, nil
	}
	if len(topics) == 0 {
		return event, nil, nil
	}
	if topics[0] != event.ID {
		return nil, nil, &SignatureNotFoundError{Kind: "event", Signature: topics[0].Hex()}
	}
	return event, topics[1:], nil
}

// DecodeEventLog decodes the topics and data of a log. The event is resolved by
// eventName when it is not empty, otherwise by matching topics[0] against the
// ID of every non-anonymous event.
//
// Indexed arguments of type string, bytes, array or tuple are only stored as a
// hash in the log and are returned as that common.Hash.
// DecodeEventLog 解码日志的主题和数据。eventName 非空时按名称解析事件，否则用 topics[0]
// 匹配每个非匿名事件的 ID。类型为 string、bytes、数组或元组的 indexed 参数在日志中
// 只保存哈希，按 common.Hash 原样返回。
func (abi *ABI) DecodeEventLog(eventName string, topics []common.Hash, data []byte) (*DecodedEvent, error) {
	event, argTopics, err := abi.resolveEvent(eventName, topics)
	if err != nil {
		return nil, err
	}
	var sets []interface{}
	if len(argTopics) > 0 {
		indexed := event.Inputs.Indexed()
		if len(argTopics) < len(indexed) {
			return nil, &TopicsMismatchError{Event: event.Sig, Param: indexed[len(argTopics)].Name}
		}
		sets = make([]interface{}, len(argTopics))
		for i, topic := range argTopics {
			sets[i] = topic
		}
	}
	args, err := event.decode(sets, data, true)
	if err != nil {
		return nil, err
	}
	return &DecodedEvent{EventName: event.Name, Args: args}, nil
}

// DecodeEventTopics is the filter form of DecodeEventLog. Every topic position
// is a set: an empty set or a missing position decodes to nil, a set holding a
// single hash is decoded and a larger set is returned as []common.Hash. Missing
// data leaves the non-indexed arguments nil.
// DecodeEventTopics 是 DecodeEventLog 的过滤器形式。每个主题位置是一个集合：空集合或缺失的位置
// 解码为 nil，只含一个哈希的集合会被解码，更大的集合按 []common.Hash 原样返回。
func (abi *ABI) DecodeEventTopics(eventName string, topics [][]common.Hash, data []byte) (*DecodedEvent, error) {
	var (
		event *Event
		err   error
		rest  = topics
	)
	if eventName != "" {
		if event, err = abi.eventByName(eventName); err != nil {
			return nil, err
		}
		if !event.Anonymous && len(rest) > 0 {
			rest = rest[1:]
		}
	} else {
		if len(topics) == 0 || len(topics[0]) != 1 {
			return nil, ErrEmptyTopics
		}
		if event, err = abi.EventByID(topics[0][0]); err != nil {
			return nil, err
		}
		rest = rest[1:]
	}
	sets := make([]interface{}, len(rest))
	for i, set := range rest {
		switch len(set) {
		case 0:
			sets[i] = nil
		case 1:
			sets[i] = set[0]
		default:
			sets[i] = set
		}
	}
	args, err := event.decode(sets, data, false)
	if err != nil {
		return nil, err
	}
	return &DecodedEvent{EventName: event.Name, Args: args}, nil
}

// decode reassembles the arguments of the event in declaration order. Each
// entry of sets is nil, a common.Hash or a []common.Hash passed through as is.
// In strict mode missing data for non-indexed arguments is an error.
// decode 按声明顺序重组事件参数。sets 中的每一项为 nil、common.Hash 或原样透传的 []common.Hash。
func (e *Event) decode(sets []interface{}, data []byte, strict bool) (*Values, error) {
	if len(e.Inputs) == 0 {
		return nil, nil
	}
	values := make([]interface{}, len(e.Inputs))

	// Decode topics (indexed args). 解码主题（indexed 参数）
	topicIdx := 0
	for i, input := range e.Inputs {
		if !input.Indexed {
			continue
		}
		if topicIdx < len(sets) {
			switch set := sets[topicIdx].(type) {
			case common.Hash:
				value, err := decodeTopic(input.Type, set)
				if err != nil {
					return nil, fmt.Errorf("abi: event %s argument %q: %w", e.Sig, input.Name, err)
				}
				values[i] = value
			case nil:
			default:
				values[i] = set
			}
		}
		topicIdx++
	}

	// Decode data (non-indexed args). 解码数据（非 indexed 参数）
	nonIndexed := e.Inputs.NonIndexed()
	if len(nonIndexed) > 0 {
		if len(data) > 0 {
			decoded, err := nonIndexed.Unpack(data)
			if err != nil {
				return nil, fmt.Errorf("abi: event %s data: %w", e.Sig, err)
			}
			j := 0
			for i, input := range e.Inputs {
				if !input.Indexed {
					values[i] = decoded.At(j)
					j++
				}
			}
		} else if strict {
			return nil, fmt.Errorf("abi: event %s data: %w", e.Sig, ErrZeroData)
		}
	}
	return NewValues(values, e.Inputs.Names()), nil
}

// ParseEventLogs decodes a batch of logs. When eventName is not empty only logs
// of that event are returned. Logs whose topic0 is unknown to the ABI, or that
// fail to decode, are skipped.
// ParseEventLogs 批量解码日志。eventName 非空时只返回该事件的日志，
// topic0 未知或解码失败的日志会被跳过。
func (abi *ABI) ParseEventLogs(logs []*types.Log, eventName string) []DecodedLog {
	var decoded []DecodedLog
	for _, log := range logs {
		if log == nil {
			continue
		}
		event, err := abi.DecodeEventLog("", log.Topics, log.Data)
		if err != nil {
			continue
		}
		if eventName != "" && event.EventName != eventName && abi.Events[event.EventName].RawName != eventName {
			continue
		}
		decoded = append(decoded, DecodedLog{Log: log, EventName: event.EventName, Args: event.Args})
	}
	return decoded
}
