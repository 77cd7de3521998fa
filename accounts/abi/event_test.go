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
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/core/types"
	"github.com/sunyihoo/ethabi/crypto"
)

const eventJSON = `[
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
	{"type":"event","name":"Named","inputs":[{"name":"label","type":"string","indexed":true}]},
	{"type":"event","name":"Data","inputs":[{"name":"","type":"uint256[]","indexed":true},{"name":"","type":"int8"}]},
	{"type":"event","name":"Anon","anonymous":true,"inputs":[{"name":"who","type":"address","indexed":true},{"name":"value","type":"uint256"}]}
]`

const emptyEventJSON = `[{"type":"event","name":"Transfer","inputs":[]}]`

var transferTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

func TestEventId(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, eventJSON)
	tests := map[string]string{
		"Transfer": "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
		"Named":    "0x915ade3d24d40e9170d132c855ee9da5a381b8ccd7b63d9e6126ee298bf37b1d",
		"Data":     "0x501fcfd5950d63edb4d116808932b7d0393cb6cd70899d37c10df4b3c9019b37",
		"Anon":     "0x74f68ba01eb39ae3837a572eb3db757ada3de9c5b1be9770ee950df4d963bced",
	}
	for name, id := range tests {
		if have := parsed.Events[name].ID; have != common.HexToHash(id) {
			t.Errorf("event %s: id %x, want %s", name, have, id)
		}
	}
	if have := parsed.Events["Named"].String(); have != "event Named(string indexed label)" {
		t.Errorf("string form: %s", have)
	}
}

func TestDecodeTransferLog(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, eventJSON)
	topics := []common.Hash{transferTopic, alice.Hash(), bob.Hash()}
	data := hexWords(word("03e8"))

	for _, name := range []string{"", "Transfer"} {
		event, err := parsed.DecodeEventLog(name, topics, data)
		if err != nil {
			t.Fatalf("name %q: %v", name, err)
		}
		if event.EventName != "Transfer" {
			t.Fatalf("name %q: decoded %s", name, event.EventName)
		}
		if from, _ := event.Args.Get("from"); from != alice {
			t.Errorf("name %q: from %v", name, from)
		}
		if to, _ := event.Args.Get("to"); to != bob {
			t.Errorf("name %q: to %v", name, to)
		}
		if value, _ := event.Args.Get("value"); value.(*big.Int).Int64() != 1000 {
			t.Errorf("name %q: value %v", name, value)
		}
	}
	blob, err := json.Marshal(mustDecode(t, parsed, "", topics, data))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"eventName":"Transfer","args":{"from":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed","to":"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359","value":1000}}`
	if string(blob) != want {
		t.Errorf("json mismatch:\nhave %s\nwant %s", blob, want)
	}
}

func mustDecode(t *testing.T, parsed ABI, name string, topics []common.Hash, data []byte) *DecodedEvent {
	t.Helper()
	event, err := parsed.DecodeEventLog(name, topics, data)
	if err != nil {
		t.Fatal(err)
	}
	return event
}

func TestDecodeEventWithoutInputs(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, emptyEventJSON)
	topic := common.HexToHash("0x406dade31f7ae4b5dbc276258c28dde5ae6d5c2773c5745802c493a2360e55e0")
	if parsed.Events["Transfer"].ID != topic {
		t.Fatalf("Transfer() id %x", parsed.Events["Transfer"].ID)
	}
	event := mustDecode(t, parsed, "", []common.Hash{topic}, nil)
	if event.EventName != "Transfer" || event.Args != nil {
		t.Fatalf("decoded %+v", event)
	}
	if event.Args.Len() != 0 || event.Args.At(0) != nil {
		t.Fatalf("args of an event without inputs: %v", event.Args)
	}
	blob, _ := json.Marshal(event)
	if string(blob) != `{"eventName":"Transfer"}` {
		t.Fatalf("json: %s", blob)
	}
}

func TestDecodeIndexedHashes(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, eventJSON)

	// Dynamic indexed values only have their hash in the log.
	label := crypto.Keccak256Hash([]byte("hello"))
	event := mustDecode(t, parsed, "", []common.Hash{parsed.Events["Named"].ID, label}, nil)
	if have, _ := event.Args.Get("label"); have != label {
		t.Fatalf("label: have %v, want %v", have, label)
	}

	// Unnamed arguments are positional, int8 is sign extended.
	list := common.HexToHash("0x1234")
	event = mustDecode(t, parsed, "Data", []common.Hash{parsed.Events["Data"].ID, list}, hexWords(word("ff")))
	if event.Args.Named() {
		t.Fatalf("unnamed arguments decoded as named")
	}
	if event.Args.At(0) != list || event.Args.At(1).(*big.Int).Int64() != -1 {
		t.Fatalf("decoded %v", event.Args)
	}
}

func TestDecodeAnonymousEvent(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, eventJSON)
	event := mustDecode(t, parsed, "Anon", []common.Hash{alice.Hash()}, hexWords(word("05")))
	if who, _ := event.Args.Get("who"); who != alice {
		t.Fatalf("who: %v", who)
	}
	// Anonymous events cannot be found by topic.
	var notFound *SignatureNotFoundError
	if _, err := parsed.DecodeEventLog("", []common.Hash{parsed.Events["Anon"].ID}, nil); !errors.As(err, &notFound) {
		t.Fatalf("expected SignatureNotFoundError, got %v", err)
	}
}

func TestDecodeEventErrors(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, eventJSON)
	data := hexWords(word("01"))

	if _, err := parsed.DecodeEventLog("", nil, data); !errors.Is(err, ErrEmptyTopics) {
		t.Errorf("expected ErrEmptyTopics, got %v", err)
	}
	var mismatch *TopicsMismatchError
	if _, err := parsed.DecodeEventLog("", []common.Hash{transferTopic, alice.Hash()}, data); !errors.As(err, &mismatch) {
		t.Errorf("expected TopicsMismatchError, got %v", err)
	} else if mismatch.Param != "to" {
		t.Errorf("missing param %q, want to", mismatch.Param)
	}
	if _, err := parsed.DecodeEventLog("", []common.Hash{transferTopic, alice.Hash(), bob.Hash()}, nil); !errors.Is(err, ErrZeroData) {
		t.Errorf("expected ErrZeroData, got %v", err)
	}
	var notFound *SignatureNotFoundError
	if _, err := parsed.DecodeEventLog("Named", []common.Hash{transferTopic}, nil); !errors.As(err, &notFound) {
		t.Errorf("expected SignatureNotFoundError for foreign topic0, got %v", err)
	}
	var missing *ItemNotFoundError
	if _, err := parsed.DecodeEventLog("Approval", []common.Hash{transferTopic}, data); !errors.As(err, &missing) {
		t.Errorf("expected ItemNotFoundError, got %v", err)
	}
	var sizeErr *DataSizeTooSmallError
	if _, err := parsed.DecodeEventLog("", []common.Hash{transferTopic, alice.Hash(), bob.Hash()}, []byte{1}); !errors.As(err, &sizeErr) {
		t.Errorf("expected DataSizeTooSmallError, got %v", err)
	}
}

func TestDecodeEventTopics(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, eventJSON)
	topics := [][]common.Hash{
		{transferTopic},
		{},
		{alice.Hash(), bob.Hash()},
	}
	event, err := parsed.DecodeEventTopics("", topics, nil)
	if err != nil {
		t.Fatal(err)
	}
	if from, _ := event.Args.Get("from"); from != nil {
		t.Errorf("wildcard position decoded to %v", from)
	}
	to, _ := event.Args.Get("to")
	if set, ok := to.([]common.Hash); !ok || len(set) != 2 {
		t.Errorf("or-set not passed through: %v", to)
	}
	if value, _ := event.Args.Get("value"); value != nil {
		t.Errorf("missing data decoded to %v", value)
	}

	event, err = parsed.DecodeEventTopics("Transfer", [][]common.Hash{{transferTopic}, {alice.Hash()}}, hexWords(word("02")))
	if err != nil {
		t.Fatal(err)
	}
	if from, _ := event.Args.Get("from"); from != alice {
		t.Errorf("from: %v", from)
	}
	if value, _ := event.Args.Get("value"); value.(*big.Int).Int64() != 2 {
		t.Errorf("value: %v", value)
	}
	if _, err := parsed.DecodeEventTopics("", [][]common.Hash{{transferTopic, transferTopic}}, nil); !errors.Is(err, ErrEmptyTopics) {
		t.Errorf("expected ErrEmptyTopics, got %v", err)
	}
}

func TestEncodeEventTopics(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, eventJSON)

	topics, err := parsed.EncodeEventTopics("Transfer", alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) != 2 || topics[0][0] != transferTopic || topics[1][0] != alice.Hash() {
		t.Fatalf("topics: %v", topics)
	}
	// Trailing wildcards are trimmed, inner ones are kept.
	topics, err = parsed.EncodeEventTopics("Transfer", nil, []interface{}{alice, bob})
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) != 3 || topics[1] != nil || len(topics[2]) != 2 || topics[2][1] != bob.Hash() {
		t.Fatalf("topics: %v", topics)
	}
	topics, err = parsed.EncodeEventTopics("Transfer", alice, nil)
	if err != nil || len(topics) != 2 {
		t.Fatalf("trailing wildcard: %v, %v", topics, err)
	}

	topics, err = parsed.EncodeEventTopics("Named", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if topics[1][0] != common.HexToHash("0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8") {
		t.Fatalf("string topic: %x", topics[1][0])
	}
	topics, err = parsed.EncodeEventTopics("Anon", alice)
	if err != nil || len(topics) != 1 || topics[0][0] != alice.Hash() {
		t.Fatalf("anonymous topics: %v, %v", topics, err)
	}

	var mismatch *LengthMismatchError
	if _, err := parsed.EncodeEventTopics("Transfer", alice, bob, alice); !errors.As(err, &mismatch) {
		t.Errorf("expected LengthMismatchError, got %v", err)
	}
	var unsupported *UnsupportedIndexedTypeError
	if _, err := parsed.EncodeEventTopics("Data", []interface{}{big.NewInt(1)}); !errors.As(err, &unsupported) {
		t.Errorf("expected UnsupportedIndexedTypeError, got %v", err)
	}
}

func TestParseEventLogs(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, eventJSON)
	transfer := &types.Log{
		Address: alice,
		Topics:  []common.Hash{transferTopic, alice.Hash(), bob.Hash()},
		Data:    hexWords(word("01")),
	}
	named := &types.Log{
		Topics: []common.Hash{parsed.Events["Named"].ID, crypto.Keccak256Hash([]byte("x"))},
	}
	broken := &types.Log{
		Topics: []common.Hash{transferTopic, alice.Hash(), bob.Hash()},
		Data:   []byte{1, 2},
	}
	unknown := &types.Log{Topics: []common.Hash{common.HexToHash("0x01")}}
	logs := []*types.Log{transfer, nil, named, broken, unknown, {}}

	decoded := parsed.ParseEventLogs(logs, "")
	if len(decoded) != 2 {
		t.Fatalf("decoded %d logs, want 2", len(decoded))
	}
	if decoded[0].Log != transfer || decoded[1].EventName != "Named" {
		t.Fatalf("unexpected logs: %+v", decoded)
	}
	decoded = parsed.ParseEventLogs(logs, "Transfer")
	if len(decoded) != 1 || decoded[0].EventName != "Transfer" {
		t.Fatalf("filtered logs: %+v", decoded)
	}
	if decoded := parsed.ParseEventLogs(logs, "Approval"); len(decoded) != 0 {
		t.Fatalf("unknown event matched %d logs", len(decoded))
	}
}
