package main

import (
	"errors"

	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/hexutil"
	"github.com/sunyihoo/ethabi/log"
	"github.com/urfave/cli/v2"
)

var (
	eventNameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Event name, required for anonymous events (default: match topic0)",
	}
	topicFlag = &cli.StringSliceFlag{
		Name:  "topic",
		Usage: "Log topic as 32-byte hex, repeat in log order",
	}
	dataFlag = &cli.StringFlag{
		Name:  "data",
		Usage: "Log data as hex",
		Value: "0x",
	}
	eventCommand = &cli.Command{
		Name:      "event",
		Usage:     "Decode an event log using the contract ABI",
		ArgsUsage: " ",
		Flags:     []cli.Flag{abiFlag, eventNameFlag, topicFlag, dataFlag},
		Description: `
    ethabi event --abi token.json \
        --topic 0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef \
        --topic 0x0000000000000000000000005aaeb6053f3e94c9b9a09f33669435e7ef1beaed \
        --topic 0x000000000000000000000000fb6916095ca1df60bb79ce92ce3ea74c37c5d359 \
        --data 0x00000000000000000000000000000000000000000000000000000000000003e8

Indexed string, bytes, array and tuple parameters are only stored as their
hash, the raw topic is printed for those.`,
		Action: event,
	}
)

func event(ctx *cli.Context) error {
	if ctx.NArg() != 0 {
		return errors.New("event takes no positional arguments, use --topic and --data")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	parsed, err := loadABI(cfg)
	if err != nil {
		return err
	}
	var topics []common.Hash
	for _, t := range ctx.StringSlice(topicFlag.Name) {
		b, err := decodeHex("topic", t)
		if err != nil {
			return err
		}
		if len(b) != common.HashLength {
			return errors.New("topic " + t + " is not 32 bytes")
		}
		topics = append(topics, common.BytesToHash(b))
	}
	data, err := hexutil.Decode(ctx.String(dataFlag.Name))
	if err != nil {
		return err
	}
	decoded, err := parsed.DecodeEventLog(ctx.String(eventNameFlag.Name), topics, data)
	if err != nil {
		return err
	}
	if len(topics) > 0 {
		log.Debug("Decoded event log", "event", decoded.EventName, "topic0", topics[0])
	}
	return printValue(ctx, cfg, decoded)
}
