// Command collkit runs the collection algorithms over integers given as arguments.
//
//	collkit stride --from 0 --to 10 --by 3
//	collkit split --separator 0 1 2 0 3 4
//	collkit sort 3 1 2
package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"go.llib.dev/collkit/pkg/errorkit"
	"go.llib.dev/collkit/pkg/logger"
)

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Error(ctx, "collkit failed", logger.ErrField(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	app := newApp(ctx, out)
	return errorkit.Recover(func() error {
		_, err := app.Parse(args)
		return err
	})
}

func newApp(ctx context.Context, out io.Writer) *kingpin.Application {
	app := kingpin.New("collkit", "Run collection algorithms over integers.")
	app.UsageWriter(out)

	var level string
	app.Flag("log-level", "Logging level, overrides the LOG_LEVEL environment variable.").
		EnumVar(&level, "debug", "info", "warn", "error")
	app.PreAction(func(*kingpin.ParseContext) error {
		if level == "" {
			return nil
		}
		lvl, err := logger.ParseLevel(level)
		if err != nil {
			return err
		}
		logger.Default.Level = lvl
		return nil
	})

	p := printer{Out: out}
	addStrideCommand(ctx, app, p)
	addSplitCommand(ctx, app, p)
	addReverseCommand(ctx, app, p)
	addShuffleCommand(ctx, app, p)
	addPartitionCommand(ctx, app, p)
	addSliceCommand(ctx, app, p)
	addSortCommand(ctx, app, p)
	return app
}
