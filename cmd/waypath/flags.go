package main

import (
	"flag"
	"fmt"
	"io"
)

// flagValues mirrors the command line before it is merged into a Config.
type flagValues struct {
	config      string
	graph       string
	random      int
	seed        int64
	minWeight   int64
	maxWeight   int64
	strategy    string
	maxDistance int64
	workers     int
	dump        bool
	stats       bool
	env         string
	logLevel    string
	logFile     string
}

// parseFlags reads args and returns the Config they describe. Values from
// the -config file are applied first, then every flag set explicitly.
func parseFlags(args []string, stderr io.Writer) (Config, error) {
	var fv flagValues
	fs := flag.NewFlagSet("waypath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&fv.config, "config", "", "TOML or YAML config file")
	fs.StringVar(&fv.graph, "graph", "", "edge-list file (\"a, b, weight\" per line)")
	fs.IntVar(&fv.random, "random", DefaultRandomVertices, "vertices in the generated graph when -graph is empty")
	fs.Int64Var(&fv.seed, "seed", 0, "seed for the generated graph")
	fs.Int64Var(&fv.minWeight, "min-weight", DefaultMinWeight, "smallest generated edge weight")
	fs.Int64Var(&fv.maxWeight, "max-weight", DefaultMaxWeight, "largest generated edge weight")
	fs.StringVar(&fv.strategy, "strategy", "lazy", "frontier strategy: lazy (alias heap) or rebuild")
	fs.Int64Var(&fv.maxDistance, "max-distance", 0, "ignore vertices farther than this; 0 disables the limit instead of keeping only the source")
	fs.IntVar(&fv.workers, "workers", DefaultWorkers, "queries evaluated concurrently")
	fs.BoolVar(&fv.dump, "dump", false, "print the graph as an edge list before answering")
	fs.BoolVar(&fv.stats, "stats", false, "print graph size before answering")
	fs.StringVar(&fv.env, "env", envDevelopment, "logger flavor: development or production")
	fs.StringVar(&fv.logLevel, "log-level", "info", "minimum log level")
	fs.StringVar(&fv.logFile, "log-file", "", "also log to this rotating file")

	var queries multiFlag
	fs.Var(&queries, "query", "query of the form src->dst (repeatable)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if fv.config != "" {
		if err := LoadConfigFile(fv.config, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Graph = fv.graph
		case "random":
			cfg.Random.Vertices = fv.random
		case "seed":
			cfg.Random.Seed = fv.seed
		case "min-weight":
			cfg.Random.MinWeight = fv.minWeight
		case "max-weight":
			cfg.Random.MaxWeight = fv.maxWeight
		case "strategy":
			cfg.Strategy = fv.strategy
		case "max-distance":
			cfg.MaxDistance = fv.maxDistance
		case "workers":
			cfg.Workers = fv.workers
		case "dump":
			cfg.Dump = fv.dump
		case "stats":
			cfg.Stats = fv.stats
		case "env":
			cfg.Log.Environment = fv.env
		case "log-level":
			cfg.Log.Level = fv.logLevel
		case "log-file":
			cfg.Log.File = fv.logFile
		}
	})

	if len(queries) > 0 || fs.NArg() > 0 {
		cfg.Queries = append(append([]string(nil), queries...), fs.Args()...)
	}

	return cfg, nil
}

// multiFlag collects every occurrence of a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint([]string(*m)) }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
