package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/ntrace/handler"
	"github.com/philipp01105/ntrace/handler/consolehandler"
	"github.com/philipp01105/ntrace/handler/serialhandler"
	"github.com/philipp01105/ntrace/handler/sloghandler"
	"github.com/philipp01105/ntrace/handler/zaphandler"
	"github.com/philipp01105/ntrace/trace"
)

type emitConfig struct {
	stdout io.Writer

	handler    string
	color      string
	level      string
	count      int
	interval   time.Duration
	undecorate bool
}

func (cfg *emitConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{ShortName: 'H', LongName: "handler" /* */, Value: ffval.NewEnum(&cfg.handler, "console", "zap", "slog", "serial") /* */, Usage: "handler: console, zap, slog, serial" /*  */, Placeholder: "NAME"})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "color" /*   */, Value: ffval.NewEnum(&cfg.color, "auto", "always", "never") /*            */, Usage: "console colour: auto, always, never" /*  */, Placeholder: "MODE"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'l', LongName: "level" /*   */, Value: ffval.NewValueDefault(&cfg.level, "info") /*                        */, Usage: "heartbeat level: none, debug, info, warning, error, panic", Placeholder: "LEVEL"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'n', LongName: "count" /*   */, Value: ffval.NewValueDefault(&cfg.count, 5) /*                             */, Usage: "heartbeats to emit, 0 for no limit"})
	fs.AddFlag(ff.FlagConfig{ShortName: 'i', LongName: "interval" /**/, Value: ffval.NewValueDefault(&cfg.interval, 500*time.Millisecond) /*      */, Usage: "time between heartbeats"})
	fs.AddFlag(ff.FlagConfig{ShortName: 0x0, LongName: "undecorate", Value: ffval.NewValue(&cfg.undecorate), Usage: "strip decorations before framing (serial handler)", NoDefault: true})
}

func (cfg *emitConfig) Exec(ctx context.Context, args []string) error {
	if cfg.count < 0 {
		return fmt.Errorf("--count must not be negative")
	}
	if cfg.interval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	h, flush, err := cfg.newHandler()
	if err != nil {
		return err
	}
	trace.Setup(h)
	defer trace.Cleanup()
	defer flush()

	showcase()

	var g run.Group

	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return cfg.heartbeat(ctx)
		}, func(error) {
			cancel()
		})
	}

	{
		g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	}

	return g.Run()
}

func (cfg *emitConfig) newHandler() (handler.Handler, func(), error) {
	nop := func() {}
	switch cfg.handler {
	case "console":
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer: cfg.consoleWriter(),
			Color:  consolehandler.ParseColorMode(cfg.color),
		}), nop, nil

	case "zap":
		zc := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(cfg.stdout),
			zapcore.DebugLevel,
		)
		zh := zaphandler.NewZapHandler(zap.New(zc))
		// Syncing a terminal or pipe fails with EINVAL on Linux; nothing
		// is buffered by this core, so the error carries no data loss.
		return zh, func() { _ = zh.Sync() }, nil

	case "slog":
		sh := slog.NewTextHandler(cfg.stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
		return sloghandler.NewSlogHandler(sh), nop, nil

	case "serial":
		var opts []serialhandler.Option
		if cfg.undecorate {
			opts = append(opts, serialhandler.WithUndecorate())
		}
		return serialhandler.NewSerialHandler(cfg.stdout, opts...), nop, nil

	default:
		return nil, nil, fmt.Errorf("invalid handler %q", cfg.handler)
	}
}

// consoleWriter leaves the writer unset for the real stdout, so the
// console handler can apply its own terminal detection.
func (cfg *emitConfig) consoleWriter() io.Writer {
	if cfg.stdout == os.Stdout {
		return nil
	}
	return cfg.stdout
}

// showcase emits one message of every form.
func showcase() {
	trace.Write("raw write, passed through untouched\r\n")
	trace.Tracef("tracef without a line end, ")
	trace.Tracelnf("then tracelnf with one")
	trace.Debugf("debug %d", 1)
	trace.Infof("info %q", "two")
	trace.Warningf("warning %.1f", 3.0)
	trace.Errorf("error %v", fmt.Errorf("four"))
	trace.Panicf("panic path, safe to call from a recover")
}

func (cfg *emitConfig) heartbeat(ctx context.Context) error {
	level := trace.ParseLevel(cfg.level)

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	for i := 1; cfg.count == 0 || i <= cfg.count; i++ {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}

		trace.InfofOnce("first heartbeat after %s", cfg.interval)
		trace.Logf(level, "heartbeat %d", i)
		if i > 1 {
			trace.WarningfOnce("heartbeat %d is the first repeat; once forms stay quiet from here", i)
		}
	}
	return nil
}
