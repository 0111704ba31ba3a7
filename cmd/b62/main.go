// Copyright 2025 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command b62 transcodes between raw bytes and base-62 symbols on the command
// line. It exists mostly as a driver for the base62 package and for generating
// test material.
package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/logging/gologger"

	"go.chromium.org/encodings/base62"
)

type commonFlags struct {
	subcommands.CommandRunBase
	input    string
	output   string
	alphabet string
}

func (c *commonFlags) init() {
	c.Flags.StringVar(&c.input, "input", "-", "Path to read input from ('-' for stdin).")
	c.Flags.StringVar(&c.output, "output", "-", "Path to write output to ('-' for stdout).")
	c.Flags.StringVar(&c.alphabet, "alphabet", base62.StdAlphabet, "Custom 62-symbol alphabet.")
}

func (c *commonFlags) encoding() (*base62.Encoding, error) {
	if c.alphabet == base62.StdAlphabet {
		return base62.StdEncoding, nil
	}
	enc, err := base62.NewEncoding(c.alphabet)
	if err != nil {
		return nil, errors.Annotate(err, "parsing -alphabet").Err()
	}
	return enc, nil
}

func (c *commonFlags) readInput() ([]byte, error) {
	if c.input == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(c.input)
}

func (c *commonFlags) writeOutput(data []byte) error {
	if c.output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(c.output, data, 0664)
}

func cmdEncode() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "encode [flags]",
		ShortDesc: "encode raw bytes as base-62 symbols",
		LongDesc: `Reads raw bytes from -input and writes their base-62 encoding to -output.

A trailing newline is appended when writing to stdout.`,
		CommandRun: func() subcommands.CommandRun {
			c := &encodeRun{}
			c.init()
			return c
		},
	}
}

type encodeRun struct {
	commonFlags
}

func (c *encodeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	if err := c.run(ctx, args); err != nil {
		logging.Errorf(ctx, "%s", err)
		return 1
	}
	return 0
}

func (c *encodeRun) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.Reason("positional arguments not expected").Err()
	}
	enc, err := c.encoding()
	if err != nil {
		return err
	}
	data, err := c.readInput()
	if err != nil {
		return errors.Annotate(err, "reading input").Err()
	}
	out := enc.AppendEncode(nil, data)
	if c.output == "-" {
		out = append(out, '\n')
	}
	return errors.Annotate(c.writeOutput(out), "writing output").Err()
}

func cmdDecode() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "decode [flags]",
		ShortDesc: "decode base-62 symbols back to raw bytes",
		LongDesc: `Reads base-62 symbols from -input and writes the decoded bytes to -output.

A trailing newline in the input is ignored.`,
		CommandRun: func() subcommands.CommandRun {
			c := &decodeRun{}
			c.init()
			return c
		},
	}
}

type decodeRun struct {
	commonFlags
}

func (c *decodeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	if err := c.run(ctx, args); err != nil {
		logging.Errorf(ctx, "%s", err)
		return 1
	}
	return 0
}

func (c *decodeRun) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.Reason("positional arguments not expected").Err()
	}
	enc, err := c.encoding()
	if err != nil {
		return err
	}
	data, err := c.readInput()
	if err != nil {
		return errors.Annotate(err, "reading input").Err()
	}
	out, err := enc.AppendDecode(nil, bytes.TrimRight(data, "\r\n"))
	if err != nil {
		return errors.Annotate(err, "decoding input").Err()
	}
	return errors.Annotate(c.writeOutput(out), "writing output").Err()
}

func main() {
	app := &cli.Application{
		Name:  "b62",
		Title: "base-62 binary-to-text transcoder",
		Context: func(ctx context.Context) context.Context {
			return gologger.StdConfig.Use(ctx)
		},
		Commands: []*subcommands.Command{
			subcommands.CmdHelp,
			cmdEncode(),
			cmdDecode(),
		},
	}
	os.Exit(subcommands.Run(app, os.Args[1:]))
}
