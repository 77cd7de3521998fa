package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common/hexutil"
	"github.com/sunyihoo/ethabi/log"
	"github.com/urfave/cli/v2"
)

var (
	encodeCommand = &cli.Command{
		Name:      "encode",
		Usage:     "Encode function call data",
		ArgsUsage: "<method|signature> [<json value>...]",
		Flags:     []cli.Flag{abiFlag},
		Description: `
With --abi the method is looked up by name in the contract ABI. Overloads are
picked by argument count, or with --strict by trying every candidate and
rejecting ambiguous matches. Without an ABI the first argument is a signature:

    ethabi encode "transfer(address,uint256)" 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed 1000

Values are JSON: numbers or decimal/hex strings for integers, strings for
addresses, bytes and strings, arrays for arrays, arrays or objects for tuples.`,
		Action: encode,
	}
	decodeCommand = &cli.Command{
		Name:      "decode",
		Usage:     "Decode ABI encoded data against a list of types",
		ArgsUsage: "<types> <hex data>",
		Description: `
Types are comma separated canonical types, e.g. "uint256,(address,bytes)[]".`,
		Action: decode,
	}
	calldataCommand = &cli.Command{
		Name:      "calldata",
		Usage:     "Decode function call data using the contract ABI",
		ArgsUsage: "<hex calldata>",
		Flags:     []cli.Flag{abiFlag},
		Action:    calldata,
	}
	resultCommand = &cli.Command{
		Name:      "result",
		Usage:     "Decode the return data of a function call",
		ArgsUsage: "<method> <hex data>",
		Flags:     []cli.Flag{abiFlag},
		Action:    result,
	}
	revertCommand = &cli.Command{
		Name:      "revert",
		Usage:     "Decode revert data into a custom error, Error(string) or Panic(uint256)",
		ArgsUsage: "<hex data>",
		Flags:     []cli.Flag{abiFlag},
		Action:    revert,
	}
	packedCommand = &cli.Command{
		Name:      "packed",
		Usage:     "Encode values in the non-standard packed mode",
		ArgsUsage: "<types> [<json value>...]",
		Action:    packed,
	}
)

func encode(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errors.New("missing method name or signature")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	name, words := ctx.Args().First(), ctx.Args().Tail()

	if cfg.ABI == "" {
		fname, args, err := selectorArgs(name)
		if err != nil {
			return err
		}
		values, err := parseArgs(args, words)
		if err != nil {
			return err
		}
		encoded, err := args.Pack(values...)
		if err != nil {
			return err
		}
		sig := abi.Signature(fname, args)
		log.Debug("Encoded call", "signature", sig, "size", len(encoded)+4)
		return printHex(ctx, append(abi.FunctionSelector(sig), encoded...))
	}
	parsed, err := loadABI(cfg)
	if err != nil {
		return err
	}
	data, err := encodeOverload(parsed, name, words, cfg.Strict)
	if err != nil {
		return err
	}
	return printHex(ctx, data)
}

// encodeOverload converts the JSON words against the overloads of name and
// encodes the call. Permissive mode takes the first overload with a matching
// argument count. Strict mode tries them all and requires exactly one to
// accept the values.
// encodeOverload 按重载的参数类型转换 JSON 参数并编码调用数据。
func encodeOverload(parsed *abi.ABI, name string, words []string, strict bool) ([]byte, error) {
	candidates := parsed.Overloads(name)
	if len(candidates) == 0 {
		return nil, &abi.ItemNotFoundError{Kind: "function", Name: name}
	}
	var (
		matches  []string
		data     []byte
		firstErr error
	)
	for _, method := range candidates {
		if len(method.Inputs) != len(words) {
			continue
		}
		values, err := parseArgs(method.Inputs, words)
		if err == nil {
			var encoded []byte
			if encoded, err = method.Inputs.Pack(values...); err == nil {
				log.Trace("Overload accepted values", "signature", method.Sig)
				matches = append(matches, method.Sig)
				data = append(method.ID[:4:4], encoded...)
			}
		}
		if err != nil {
			log.Trace("Overload rejected values", "signature", method.Sig, "err", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", method.Sig, err)
			}
		}
		if !strict {
			break
		}
	}
	switch len(matches) {
	case 0:
		if firstErr == nil {
			firstErr = &abi.LengthMismatchError{Expected: len(candidates[0].Inputs), Given: len(words)}
		}
		return nil, firstErr
	case 1:
		return data, nil
	default:
		return nil, &abi.AmbiguousOverloadError{Name: name, Signatures: matches}
	}
}

func decode(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("expected <types> and <hex data>")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	args, err := typeListArgs(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	data, err := decodeHex("data", ctx.Args().Get(1))
	if err != nil {
		return err
	}
	values, err := args.Unpack(data)
	if err != nil {
		return err
	}
	return printValue(ctx, cfg, values)
}

type decodedCall struct {
	Function string        `json:"function"`
	Selector hexutil.Bytes `json:"selector"`
	Args     *abi.Values   `json:"args"`
}

func calldata(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected <hex calldata>")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	parsed, err := loadABI(cfg)
	if err != nil {
		return err
	}
	data, err := decodeHex("calldata", ctx.Args().First())
	if err != nil {
		return err
	}
	method, args, err := parsed.DecodeFunctionData(data)
	if err != nil {
		return err
	}
	return printValue(ctx, cfg, &decodedCall{Function: method.Sig, Selector: method.ID, Args: args})
}

func result(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("expected <method> and <hex data>")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	parsed, err := loadABI(cfg)
	if err != nil {
		return err
	}
	data, err := decodeHex("return data", ctx.Args().Get(1))
	if err != nil {
		return err
	}
	values, err := parsed.DecodeFunctionResult(ctx.Args().Get(0), data)
	if err != nil {
		return err
	}
	return printValue(ctx, cfg, values)
}

type decodedRevert struct {
	Error  string      `json:"error"`
	Args   *abi.Values `json:"args"`
	Reason string      `json:"reason,omitempty"`
}

func revert(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected <hex data>")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	// The builtin Error(string) and Panic(uint256) need no ABI.
	parsed := new(abi.ABI)
	if cfg.ABI != "" {
		if parsed, err = loadABI(cfg); err != nil {
			return err
		}
	}
	data, err := decodeHex("revert data", ctx.Args().First())
	if err != nil {
		return err
	}
	name, args, err := parsed.DecodeErrorResult(data)
	if err != nil {
		return err
	}
	out := &decodedRevert{Error: name, Args: args}
	if reason, err := abi.UnpackRevert(data); err == nil {
		out.Reason = reason
	}
	return printValue(ctx, cfg, out)
}

func packed(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errors.New("missing type list")
	}
	var (
		kinds = strings.Split(ctx.Args().First(), ",")
		words = ctx.Args().Tail()
	)
	if len(kinds) != len(words) {
		return &abi.LengthMismatchError{Expected: len(kinds), Given: len(words)}
	}
	values := make([]interface{}, len(words))
	for i, kind := range kinds {
		kinds[i] = strings.TrimSpace(kind)
		typ, err := abi.NewType(kinds[i], "", nil)
		if err != nil {
			return err
		}
		if values[i], err = convertArg(typ, rawArg(words[i])); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	data, err := abi.EncodePacked(kinds, values)
	if err != nil {
		return err
	}
	return printHex(ctx, data)
}
