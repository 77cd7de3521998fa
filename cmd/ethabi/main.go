// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// ethabi is a command-line tool for the Ethereum contract ABI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sunyihoo/ethabi/internal/flags"
	"github.com/sunyihoo/ethabi/log"
	"github.com/urfave/cli/v2"
)

var (
	abiFlag = &flags.PathFlag{
		Name:     "abi",
		Usage:    "Contract ABI JSON file",
		EnvVars:  []string{"ETHABI_ABI"},
		Category: flags.ABICategory,
	}
	strictFlag = &cli.BoolFlag{
		Name:     "strict",
		Usage:    "Reject ambiguous overloads instead of picking the first declared match",
		Category: flags.CodecCategory,
	}
	outputFlag = &cli.StringFlag{
		Name:     "output",
		Usage:    "Output format for decoded values (json|dump)",
		Value:    "json",
		Category: flags.CodecCategory,
	}
	verbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value:    2,
		Category: flags.LoggingCategory,
	}
	logFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (terminal|json|logfmt)",
		Value:    "terminal",
		Category: flags.LoggingCategory,
	}
)

var app = newApp()

// newApp assembles the command line application. Tests build a fresh one per run.
// newApp 组装命令行应用，测试中每次运行都会新建一个。
func newApp() *cli.App {
	app := flags.NewApp("the Ethereum contract ABI codec")
	app.Flags = []cli.Flag{
		configFileFlag,
		strictFlag,
		outputFlag,
		verbosityFlag,
		logFormatFlag,
	}
	app.Commands = []*cli.Command{
		// See selector.go
		selectorCommand,
		topicCommand,
		signatureCommand,
		// See codec.go
		encodeCommand,
		decodeCommand,
		calldataCommand,
		resultCommand,
		revertCommand,
		packedCommand,
		// See event.go
		eventCommand,
		// See config.go
		dumpConfigCommand,
		// See misccmd.go
		versionCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := loadBaseConfig(ctx)
		if err != nil {
			return err
		}
		return setupLogging(ctx.App.ErrWriter, cfg)
	}
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging installs the root log handler. Logs always go to stderr (or the
// app's error writer) so stdout only carries command output.
// setupLogging 安装根日志处理器，日志只写入 stderr，stdout 只输出命令结果。
func setupLogging(output io.Writer, cfg ethabiConfig) error {
	var (
		handler  slog.Handler
		level    = log.FromLegacyLevel(cfg.Verbosity)
		useColor bool
	)
	if output == nil || output == os.Stderr {
		useColor = (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
		if useColor {
			output = colorable.NewColorableStderr()
		} else {
			output = os.Stderr
		}
	}
	switch cfg.LogFormat {
	case "json":
		handler = log.JSONHandlerWithLevel(output, level)
	case "logfmt":
		handler = log.LogfmtHandlerWithLevel(output, level)
	case "", "terminal":
		handler = log.NewTerminalHandlerWithLevel(output, level, useColor)
	default:
		// Unknown log format specified
		return fmt.Errorf("unknown log format: %v", cfg.LogFormat)
	}
	log.SetDefault(log.NewLogger(handler))
	return nil
}
