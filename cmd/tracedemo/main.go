// tracedemo exercises every ntrace emission form against a choice of
// handlers, and decodes the framed output of the serial handler.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oklog/run"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	var (
		ctx    = context.Background()
		stdin  = os.Stdin
		stdout = os.Stdout
		stderr = os.Stderr
		args   = os.Args[1:]
	)
	err := exec(ctx, stdin, stdout, stderr, args)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.As(err, &(run.SignalError{})):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func exec(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) (err error) {
	rootFlags := ff.NewFlagSet("tracedemo")
	rootCommand := &ff.Command{
		Name:      "tracedemo",
		ShortHelp: "emit trace messages through a chosen handler",
		Flags:     rootFlags,
	}

	// Config for `tracedemo emit`.
	emitConfig := &emitConfig{stdout: stdout}
	emitFlags := ff.NewFlagSet("emit").SetParent(rootFlags)
	emitConfig.register(emitFlags)
	emitCommand := &ff.Command{
		Name:      "emit",
		ShortHelp: "emit every message form, then a periodic heartbeat",
		LongHelp:  "Install the selected handler, emit one message of every form, and emit a heartbeat until --count is reached or the process is interrupted.",
		Flags:     emitFlags,
		Exec:      emitConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, emitCommand)

	// Config for `tracedemo decode`.
	decodeConfig := &decodeConfig{stdin: stdin, stdout: stdout}
	decodeFlags := ff.NewFlagSet("decode").SetParent(rootFlags)
	decodeConfig.register(decodeFlags)
	decodeCommand := &ff.Command{
		Name:      "decode",
		ShortHelp: "print frames written by `emit --handler serial`",
		Flags:     decodeFlags,
		Exec:      decodeConfig.Exec,
	}
	rootCommand.Subcommands = append(rootCommand.Subcommands, decodeCommand)

	// Print help when appropriate.
	defer func() {
		if errors.Is(err, ff.ErrHelp) || errors.Is(err, ff.ErrNoExec) {
			fmt.Fprintf(stderr, "\n%s\n", ffhelp.Command(rootCommand))
			err = nil
		}
	}()

	if err := rootCommand.Parse(args, ff.WithEnvVarPrefix("NTRACE")); err != nil {
		return err
	}

	return rootCommand.Run(ctx)
}
