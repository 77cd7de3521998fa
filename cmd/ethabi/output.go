package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common/hexutil"
	"github.com/sunyihoo/ethabi/log"
	"github.com/urfave/cli/v2"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// printValue writes v in the configured output format.
// printValue 按配置的输出格式写出 v。
func printValue(ctx *cli.Context, cfg ethabiConfig, v interface{}) error {
	w := ctx.App.Writer
	if cfg.Output == "dump" {
		dumper.Fdump(w, v)
		return nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printHex writes raw bytes as a single 0x-prefixed line.
func printHex(ctx *cli.Context, b []byte) error {
	_, err := fmt.Fprintln(ctx.App.Writer, hexutil.Encode(b))
	return err
}

// loadABI reads the contract ABI named by --abi or the config file.
// loadABI 读取 --abi 或配置文件指定的合约 ABI。
func loadABI(cfg ethabiConfig) (*abi.ABI, error) {
	if cfg.ABI == "" {
		return nil, fmt.Errorf("no ABI given, use --%s or set ABI in the config file", abiFlag.Name)
	}
	f, err := os.Open(cfg.ABI)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := abi.JSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ABI, err)
	}
	log.Debug("Loaded contract ABI", "file", cfg.ABI, "methods", len(parsed.Methods), "events", len(parsed.Events), "errors", len(parsed.Errors))
	return &parsed, nil
}

// decodeHex parses a 0x-prefixed hex argument. An empty "0x" is valid.
func decodeHex(what, s string) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %v", what, s, err)
	}
	return b, nil
}
