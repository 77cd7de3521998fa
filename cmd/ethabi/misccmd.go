// Copyright 2016 The go-ethereum Authors
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
	"fmt"
	"runtime"

	"github.com/sunyihoo/ethabi/internal/version"
	"github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func printVersion(ctx *cli.Context) error {
	w := ctx.App.Writer
	fmt.Fprintln(w, "Ethabi")
	fmt.Fprintln(w, "Version:", version.WithMeta)
	if vcs, ok := version.VCS(); ok {
		fmt.Fprintln(w, "Git Commit:", vcs)
	}
	fmt.Fprintln(w, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Operating System:", runtime.GOOS)
	return nil
}
