package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
)

type shortHash [4]byte

func (h shortHash) TerminalString() string { return "ab..cd" }
func (h shortHash) String() string         { return "0xab0000cd" }

func TestTerminalHandlerFormat(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false))
	l.Info("Decoded event log", "event", "Transfer", "count", 3)

	have := out.String()
	if !strings.HasPrefix(have, "INFO [") {
		t.Fatalf("missing level prefix: %q", have)
	}
	// message is padded to termMsgJust before the attributes
	want := "] Decoded event log" + strings.Repeat(" ", termMsgJust-len("Decoded event log")) + " event=Transfer count=3\n"
	if !strings.HasSuffix(have, want) {
		t.Errorf("wrong output\nhave %q\nwant suffix %q", have, want)
	}
}

func TestTerminalHandlerWithAttrs(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false)).New("contract", "token")
	l.Debug("call", "method", "balanceOf")

	if have := out.String(); !strings.HasSuffix(have, " contract=token method=balanceOf\n") {
		t.Errorf("context attributes missing: %q", have)
	}
}

func TestTerminalHandlerLevel(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandlerWithLevel(out, LevelWarn, false))
	l.Info("hidden")
	l.Debug("hidden")
	if out.Len() != 0 {
		t.Fatalf("records below the level were written: %q", out.String())
	}
	l.Error("shown")
	if !strings.HasPrefix(out.String(), "ERROR[") {
		t.Errorf("expected error record, have %q", out.String())
	}
}

func TestTerminalHandlerOddArgs(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false))
	l.Info("odd", "key")
	if have := out.String(); !strings.Contains(have, "key=<nil>") || !strings.Contains(have, errorKey) {
		t.Errorf("odd argument count not normalized: %q", have)
	}
}

func TestFormatSlogValue(t *testing.T) {
	t.Parallel()

	max256, _ := uint256.FromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	var nilBig *big.Int
	tests := []struct {
		v    any
		want string
	}{
		{12, "12"},
		{int64(-1234567), "-1,234,567"},
		{uint64(100000), "100,000"},
		{big.NewInt(-99999), "-99,999"},
		{new(big.Int).Lsh(big.NewInt(1), 64), "18,446,744,073,709,551,616"},
		{nilBig, "<nil>"},
		{uint256.NewInt(1000000), "1,000,000"},
		{max256, "115,792,089,237,316,195,423,570,985,008,687,907,853,269,984,665,640,564,039,457,584,007,913,129,639,935"},
		{true, "true"},
		{"plain", "plain"},
		{"with space", `"with space"`},
		{"quote\"d", `"quote\"d"`},
		{errors.New("boom"), "boom"},
		{[]byte{0xa9, 0x05, 0x9c, 0xbb}, "0xa9059cbb"},
		{shortHash{}, "ab..cd"},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		have := string(FormatSlogValue(slog.AnyValue(tt.v), nil))
		if have != tt.want {
			t.Errorf("FormatSlogValue(%v): have %q, want %q", tt.v, have, tt.want)
		}
	}
}

func TestFormatLongBytes(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0x11}, 68)
	have := string(FormatSlogValue(slog.AnyValue(data), nil))
	want := "0x" + strings.Repeat("11", termBytesMax) + "…(68 bytes)"
	if have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestJSONHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandlerWithLevel(out, LevelDebug))
	l.Trace("dropped")
	l.Debug("encoded", "selector", []byte{0x70, 0xa0, 0x82, 0x31}, "amount", big.NewInt(1000000), "hash", shortHash{})

	var rec map[string]any
	if err := json.Unmarshal(out.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	want := map[string]any{
		"lvl":      "debug",
		"msg":      "encoded",
		"selector": "0x70a08231",
		"amount":   "1000000",
		"hash":     "0xab0000cd",
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("field %q: have %v, want %v", k, rec[k], v)
		}
	}
	if _, ok := rec["t"]; !ok {
		t.Error("time field not renamed to t")
	}
}

func TestLogfmtHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(LogfmtHandler(out))
	l.Warn("reverted", "reason", "not enough")

	have := out.String()
	for _, want := range []string{"lvl=warn", "msg=reverted", `reason="not enough"`} {
		if !strings.Contains(have, want) {
			t.Errorf("missing %q in %q", want, have)
		}
	}
}

func TestFromLegacyLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want slog.Level
	}{
		{0, LevelCrit},
		{1, LevelError},
		{2, LevelWarn},
		{3, LevelInfo},
		{4, LevelDebug},
		{5, LevelTrace},
		{9, LevelTrace},
		{-1, LevelCrit},
	}
	for _, tt := range tests {
		if have := FromLegacyLevel(tt.in); have != tt.want {
			t.Errorf("FromLegacyLevel(%d) = %v, want %v", tt.in, have, tt.want)
		}
	}
}

func TestRootDefault(t *testing.T) {
	out := new(bytes.Buffer)
	prev := Root()
	defer SetDefault(prev)

	SetDefault(NewLogger(NewTerminalHandlerWithLevel(out, LevelInfo, false)))
	Info("from root", "k", 1)
	Debug("filtered")
	if have := out.String(); !strings.Contains(have, "from root") || strings.Contains(have, "filtered") {
		t.Errorf("unexpected root output: %q", have)
	}
}
