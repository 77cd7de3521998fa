package main

import (
	"fmt"

	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common/hexutil"
	"github.com/sunyihoo/ethabi/log"
	"github.com/urfave/cli/v2"
)

var (
	selectorCommand = &cli.Command{
		Name:      "selector",
		Usage:     "Compute the 4-byte function selector of a signature",
		ArgsUsage: "<signature>",
		Description: `
The signature may be canonical, e.g. "transfer(address,uint256)", or
human-readable, e.g. "function transfer(address to, uint amount) returns (bool)".`,
		Action: selector,
	}
	topicCommand = &cli.Command{
		Name:      "topic",
		Usage:     "Compute the 32-byte event topic of a signature",
		ArgsUsage: "<signature>",
		Action:    topic,
	}
	signatureCommand = &cli.Command{
		Name:      "signature",
		Usage:     "Normalize a human-readable signature to its canonical form",
		ArgsUsage: "<signature>",
		Action:    signature,
	}
)

// canonicalArg normalizes the single signature argument of a command.
func canonicalArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one signature argument, got %d", ctx.NArg())
	}
	sig, err := abi.NormalizeSignature(ctx.Args().First())
	if err != nil {
		return "", err
	}
	log.Debug("Normalized signature", "input", ctx.Args().First(), "canonical", sig)
	return sig, nil
}

func selector(ctx *cli.Context) error {
	sig, err := canonicalArg(ctx)
	if err != nil {
		return err
	}
	return printHex(ctx, abi.FunctionSelector(sig))
}

func topic(ctx *cli.Context) error {
	sig, err := canonicalArg(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, abi.EventTopic(sig).Hex())
	return err
}

func signature(ctx *cli.Context) error {
	sig, err := canonicalArg(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "%s %s\n", sig, hexutil.Encode(abi.FunctionSelector(sig)))
	return err
}
