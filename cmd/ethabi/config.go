// Copyright 2017 The go-ethereum Authors
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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/sunyihoo/ethabi/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &flags.PathFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
	dumpConfigCommand = &cli.Command{
		Action:    dumpConfig,
		Name:      "dumpconfig",
		Usage:     "Export configuration values in a TOML format",
		ArgsUsage: "<dumpfile (optional)>",
		Description: `
Prints the effective configuration (defaults, config file and flags merged) as
TOML. When a file name is given the output is written there instead.`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// ethabiConfig holds the settings a config file may provide. Command line flags
// take precedence over file values.
// ethabiConfig 保存配置文件可提供的设置，命令行标志优先于文件中的值。
type ethabiConfig struct {
	ABI       string `toml:",omitempty"` // default ABI file for commands taking --abi
	Strict    bool   // strict overload resolution
	Output    string // json or dump
	Verbosity int    // 0=crit ... 5=trace
	LogFormat string // terminal, json or logfmt
}

var defaultConfig = ethabiConfig{
	Output:    "json",
	Verbosity: 2,
	LogFormat: "terminal",
}

func loadConfig(file string, cfg *ethabiConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the ethabiConfig based on the given command line
// parameters and config file.
func loadBaseConfig(ctx *cli.Context) (ethabiConfig, error) {
	// Load defaults
	cfg := defaultConfig

	// Load config file.
	if file := flags.Path(ctx, configFileFlag.Name); ctx.IsSet(configFileFlag.Name) && file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	// Apply flags.
	if ctx.IsSet(abiFlag.Name) {
		cfg.ABI = flags.Path(ctx, abiFlag.Name)
	}
	if ctx.IsSet(strictFlag.Name) {
		cfg.Strict = ctx.Bool(strictFlag.Name)
	}
	if ctx.IsSet(outputFlag.Name) {
		cfg.Output = ctx.String(outputFlag.Name)
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if ctx.IsSet(logFormatFlag.Name) {
		cfg.LogFormat = ctx.String(logFormatFlag.Name)
	}
	switch cfg.Output {
	case "json", "dump":
	default:
		return cfg, fmt.Errorf("unknown output format %q (want json or dump)", cfg.Output)
	}
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
