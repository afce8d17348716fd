package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"

	"github.com/philipp01105/ntrace/handler/serialhandler"
)

type decodeConfig struct {
	stdin  io.Reader
	stdout io.Writer

	quoted bool
}

func (cfg *decodeConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 'q', LongName: "quote", Value: ffval.NewValue(&cfg.quoted), Usage: "print messages as quoted Go strings", NoDefault: true})
}

func (cfg *decodeConfig) Exec(ctx context.Context, args []string) error {
	r := serialhandler.NewReader(cfg.stdin)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := r.ReadFrame()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		if cfg.quoted {
			fmt.Fprintf(cfg.stdout, "%d %s %q\n", frame.Seq, frame.Level, frame.Message)
		} else {
			fmt.Fprintf(cfg.stdout, "%d %s %s", frame.Seq, frame.Level, frame.Message)
		}
	}
}
