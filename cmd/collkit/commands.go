package main

import (
	"cmp"
	"context"
	"math"
	"math/rand/v2"

	"github.com/alecthomas/kingpin/v2"

	"go.llib.dev/collkit/pkg/collkit"
	"go.llib.dev/collkit/pkg/datastruct"
	"go.llib.dev/collkit/pkg/logger"
	"go.llib.dev/collkit/pkg/stride"
)

func valuesArg(c *kingpin.CmdClause) *[]int64 {
	return c.Arg("values", "The integers to work on.").Int64List()
}

func commandContext(ctx context.Context, name string, input int) context.Context {
	ctx = logger.ContextWith(ctx, logger.Field("command", name))
	logger.Debug(ctx, "input parsed", logger.Field("input_count", input))
	return ctx
}

// strideCommand prints an arithmetic progression.
type strideCommand struct {
	ctx          context.Context
	out          printer
	from, to, by float64
	through      bool
}

func addStrideCommand(ctx context.Context, app *kingpin.Application, p printer) {
	cmd := &strideCommand{ctx: ctx, out: p}
	c := app.Command("stride", "Print the progression from --from towards --to, by --by.").Action(cmd.run)
	c.Flag("from", "The first value.").Default("0").Float64Var(&cmd.from)
	c.Flag("to", "The end bound.").Required().Float64Var(&cmd.to)
	c.Flag("by", "The step between the values.").Default("1").Float64Var(&cmd.by)
	c.Flag("through", "Include the end bound when the progression reaches it.").BoolVar(&cmd.through)
}

func (cmd *strideCommand) run(*kingpin.ParseContext) error {
	ctx := commandContext(cmd.ctx, "stride", 0)
	if isIntegral(cmd.from) && isIntegral(cmd.to) && isIntegral(cmd.by) {
		from, to, by := int64(cmd.from), int64(cmd.to), int64(cmd.by)
		r := stride.IntTo(from, to, by)
		if cmd.through {
			r = stride.IntThrough(from, to, by)
		}
		logger.Debug(ctx, "progression made", logger.Field("count", r.Len()))
		return cmd.out.Span(r)
	}
	r := stride.To(cmd.from, cmd.to, cmd.by)
	if cmd.through {
		r = stride.Through(cmd.from, cmd.to, cmd.by)
	}
	logger.Debug(ctx, "progression made", logger.Field("count", collkit.Len[float64](r)))
	return cmd.out.FloatSpan(r)
}

func isIntegral(v float64) bool {
	const maxExact = 1 << 53
	return v == math.Trunc(v) && math.Abs(v) <= maxExact
}

// splitCommand prints the spans between the separators.
type splitCommand struct {
	ctx       context.Context
	out       printer
	values    *[]int64
	separator int64
	maxSplits int
	keepEmpty bool
}

func addSplitCommand(ctx context.Context, app *kingpin.Application, p printer) {
	cmd := &splitCommand{ctx: ctx, out: p}
	c := app.Command("split", "Print the spans between the separator values, one span per line.").Action(cmd.run)
	c.Flag("separator", "The separator value.").Default("0").Int64Var(&cmd.separator)
	c.Flag("max-splits", "The maximum number of splits, negative means unlimited.").Default("-1").IntVar(&cmd.maxSplits)
	c.Flag("keep-empty", "Print the empty spans as well.").BoolVar(&cmd.keepEmpty)
	cmd.values = valuesArg(c)
}

func (cmd *splitCommand) run(*kingpin.ParseContext) error {
	ctx := commandContext(cmd.ctx, "split", len(*cmd.values))
	var maxSplits collkit.SplitOption
	if 0 <= cmd.maxSplits {
		maxSplits = collkit.SplitMaxSplits(cmd.maxSplits)
	}
	spans := collkit.SplitSeparator(collkit.FromSlice(*cmd.values), cmd.separator,
		collkit.SplitOmitEmpty(!cmd.keepEmpty), maxSplits)
	logger.Debug(ctx, "split done", logger.Field("span_count", len(spans)))
	return cmd.out.Spans(spans)
}

// reverseCommand prints the values in reverse order.
type reverseCommand struct {
	ctx    context.Context
	out    printer
	values *[]int64
	view   bool
}

func addReverseCommand(ctx context.Context, app *kingpin.Application, p printer) {
	cmd := &reverseCommand{ctx: ctx, out: p}
	c := app.Command("reverse", "Print the values in reverse order.").Action(cmd.run)
	c.Flag("view", "Read the values through a reversed view instead of reversing them in place.").BoolVar(&cmd.view)
	cmd.values = valuesArg(c)
}

func (cmd *reverseCommand) run(*kingpin.ParseContext) error {
	ctx := commandContext(cmd.ctx, "reverse", len(*cmd.values))
	a := datastruct.NewArray(*cmd.values...)
	if cmd.view {
		logger.Debug(ctx, "reading through a reversed view")
		return cmd.out.Span(collkit.RandomAccessReversed[int64, int](a))
	}
	collkit.Reverse[int64, int](a)
	return cmd.out.Span(a)
}

// shuffleCommand prints the values in a random order.
type shuffleCommand struct {
	ctx    context.Context
	out    printer
	values *[]int64
	seed   uint64
}

func addShuffleCommand(ctx context.Context, app *kingpin.Application, p printer) {
	cmd := &shuffleCommand{ctx: ctx, out: p}
	c := app.Command("shuffle", "Print the values in a random order.").Action(cmd.run)
	c.Flag("seed", "Seed of the random order, zero means a random seed.").Default("0").Uint64Var(&cmd.seed)
	cmd.values = valuesArg(c)
}

func (cmd *shuffleCommand) run(*kingpin.ParseContext) error {
	ctx := commandContext(cmd.ctx, "shuffle", len(*cmd.values))
	var rnd collkit.RandomSource
	if cmd.seed != 0 {
		rnd = rand.New(rand.NewPCG(cmd.seed, cmd.seed))
	}
	a := datastruct.NewArray(*cmd.values...)
	collkit.Shuffle[int64, int](a, rnd)
	logger.Debug(ctx, "shuffled", logger.Field("seeded", rnd != nil))
	return cmd.out.Span(a)
}

// partitionCommand prints the values below the pivot on the first line,
// and the rest on the second.
type partitionCommand struct {
	ctx    context.Context
	out    printer
	values *[]int64
	pivot  int64
}

func addPartitionCommand(ctx context.Context, app *kingpin.Application, p printer) {
	cmd := &partitionCommand{ctx: ctx, out: p}
	c := app.Command("partition", "Print the values below --pivot, then the values not below it.").Action(cmd.run)
	c.Flag("pivot", "The pivot value.").Default("0").Int64Var(&cmd.pivot)
	cmd.values = valuesArg(c)
}

func (cmd *partitionCommand) run(*kingpin.ParseContext) error {
	ctx := commandContext(cmd.ctx, "partition", len(*cmd.values))
	a := datastruct.NewArray(*cmd.values...)
	p, err := collkit.Partition[int64, int](a, func(v int64) bool { return cmd.pivot <= v })
	if err != nil {
		return err
	}
	logger.Debug(ctx, "partitioned", logger.Field("first_count", p))
	if err := cmd.out.Span(collkit.RandomAccessSliceOf[int64, int](a, a.StartIndex(), p)); err != nil {
		return err
	}
	return cmd.out.Span(collkit.RandomAccessSliceOf[int64, int](a, p, a.EndIndex()))
}

// sliceCommand prints the values in the [--from, --to) positions.
type sliceCommand struct {
	ctx      context.Context
	out      printer
	values   *[]int64
	from, to int
}

func addSliceCommand(ctx context.Context, app *kingpin.Application, p printer) {
	cmd := &sliceCommand{ctx: ctx, out: p}
	c := app.Command("slice", "Print the values in the [--from, --to) positions.").Action(cmd.run)
	c.Flag("from", "The first position.").Default("0").IntVar(&cmd.from)
	c.Flag("to", "The end position, negative means the end of the values.").Default("-1").IntVar(&cmd.to)
	cmd.values = valuesArg(c)
}

func (cmd *sliceCommand) run(*kingpin.ParseContext) error {
	ctx := commandContext(cmd.ctx, "slice", len(*cmd.values))
	a := datastruct.NewArray(*cmd.values...)
	to := cmd.to
	if to < 0 {
		to = a.EndIndex()
	}
	view := collkit.RandomAccessSliceOf[int64, int](a, cmd.from, to)
	logger.Debug(ctx, "sliced", logger.Field("count", view.Len()))
	return cmd.out.Span(view)
}

// sortCommand prints the values in ascending or descending order.
type sortCommand struct {
	ctx    context.Context
	out    printer
	values *[]int64
	desc   bool
}

func addSortCommand(ctx context.Context, app *kingpin.Application, p printer) {
	cmd := &sortCommand{ctx: ctx, out: p}
	c := app.Command("sort", "Print the values in ascending order.").Action(cmd.run)
	c.Flag("desc", "Sort in descending order.").BoolVar(&cmd.desc)
	cmd.values = valuesArg(c)
}

func (cmd *sortCommand) run(*kingpin.ParseContext) error {
	commandContext(cmd.ctx, "sort", len(*cmd.values))
	compare := cmp.Compare[int64]
	if cmd.desc {
		compare = func(a, b int64) int { return cmp.Compare(b, a) }
	}
	a := datastruct.NewArray(*cmd.values...)
	collkit.Sort[int64, int](a, compare)
	return cmd.out.Span(a)
}
