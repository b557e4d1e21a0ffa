package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/edgelist"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// run is main without the process: it returns the exit code instead of exiting.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	if err = execute(context.Background(), cfg, logger, stdout); err != nil {
		logger.Error("waypath failed", zap.Error(err))
		return exitError
	}

	return exitOK
}

// answer is the outcome of one query, kept in input order.
type answer struct {
	query  string
	result *dijkstra.Result
	err    error
}

// execute loads the graph and answers cfg.Queries, or the query from the
// first to the last vertex when none is given. cfg must be valid.
func execute(ctx context.Context, cfg Config, logger *zap.Logger, out io.Writer) error {
	g, err := loadGraph(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Stats {
		fmt.Fprintf(out, "graph: %s vertices, %s edges\n",
			humanize.Comma(int64(g.VertexCount())), humanize.Comma(int64(g.EdgeCount())))
	}
	if cfg.Dump {
		if err = edgelist.Write(out, g); err != nil {
			return fmt.Errorf("dump graph: %w", err)
		}
	}

	queries := cfg.Queries
	if len(queries) == 0 {
		queries = defaultQueries(g)
	}
	answers, err := answerAll(ctx, g, queries, cfg, logger)
	if err != nil {
		return err
	}
	for _, a := range answers {
		if a.err != nil {
			fmt.Fprintf(out, "%s (no path)\n", a.query)
			continue
		}
		fmt.Fprintf(out, "%s (distance %d)\n", a.result, a.result.Distance)
	}

	return nil
}

// loadGraph reads cfg.Graph, or generates a lettered random graph when it is empty.
func loadGraph(cfg Config, logger *zap.Logger) (*core.Graph, error) {
	if cfg.Graph != "" {
		f, err := os.Open(cfg.Graph)
		if err != nil {
			return nil, fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()

		g, err := edgelist.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("parse graph %s: %w", cfg.Graph, err)
		}
		logger.Info("graph loaded",
			zap.String("file", cfg.Graph),
			zap.Int("vertices", g.VertexCount()),
			zap.Int("edges", g.EdgeCount()))

		return g, nil
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithLetterIDs(),
		builder.WithSeed(cfg.Random.Seed),
		builder.WithWeightFn(builder.UniformWeightFn(cfg.Random.MinWeight, cfg.Random.MaxWeight)),
	}, builder.RandomAttach(cfg.Random.Vertices))
	if err != nil {
		return nil, fmt.Errorf("generate graph: %w", err)
	}
	logger.Info("graph generated",
		zap.Int64("seed", cfg.Random.Seed),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// answerAll evaluates every query on a bounded pool of goroutines. An
// unreachable destination is recorded in its answer; any other failure
// aborts the batch.
func answerAll(ctx context.Context, g *core.Graph, queries []string, cfg Config, logger *zap.Logger) ([]answer, error) {
	answers := make([]answer, len(queries))
	opts := cfg.queryOptions()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, q := range queries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, dst, err := edgelist.ParseQuery(q)
			if err != nil {
				return err
			}

			res, err := dijkstra.ShortestPath(g, src, dst, opts...)
			switch {
			case errors.Is(err, dijkstra.ErrNoPathFound):
				logger.Warn("no path", zap.String("query", q))
			case err != nil:
				return fmt.Errorf("query %s: %w", q, err)
			default:
				logger.Debug("query answered",
					zap.String("query", q),
					zap.Int64("distance", res.Distance),
					zap.Int("hops", len(res.Path)-1))
			}
			answers[i] = answer{query: q, result: res, err: err}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}

// defaultQueries returns "first->last" over g's insertion order, or nothing
// for graphs with fewer than two vertices.
func defaultQueries(g *core.Graph) []string {
	ids := g.Vertices()
	if len(ids) < 2 {
		return nil
	}

	return []string{ids[0] + edgelist.QuerySeparator + ids[len(ids)-1]}
}
