package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Infinity is the priority of a vertex with no known path from the source.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownVertex indicates that a query referenced a vertex not present in the graph.
	ErrUnknownVertex = errors.New("dijkstra: unknown vertex")

	// ErrNoPathFound indicates that the destination is unreachable from the source.
	ErrNoPathFound = errors.New("dijkstra: no path found")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadStrategy indicates an unknown frontier Strategy.
	ErrBadStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the frontier (min-priority structure) is maintained.
type Strategy int

const (
	// StrategyLazyHeap pushes a fresh heap entry on every decrease and skips
	// stale entries on pop. O((V + E) log V).
	StrategyLazyHeap Strategy = iota

	// StrategyRebuild keeps all vertices in one heap and re-heapifies it after
	// every extraction round. O(V²).
	StrategyRebuild
)

// String returns the name used by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyLazyHeap:
		return "lazy"
	case StrategyRebuild:
		return "rebuild"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name to a Strategy, ignoring case and surrounding
// blanks: "lazy" or its alias "heap" select StrategyLazyHeap, "rebuild"
// selects StrategyRebuild. The empty string selects the default,
// StrategyLazyHeap.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lazy", "heap":
		return StrategyLazyHeap, nil
	case "rebuild":
		return StrategyRebuild, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// Options configures the behavior of a shortest-path query.
type Options struct {
	Strategy    Strategy // frontier maintenance; default StrategyLazyHeap
	MaxDistance int64    // vertices farther than this stay unreachable; ≥ 0, default Infinity
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithStrategy selects the frontier strategy.
// Panics with ErrBadStrategy on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != StrategyLazyHeap && s != StrategyRebuild {
		panic(ErrBadStrategy.Error())
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options initialized with sensible defaults:
//   - Strategy:    StrategyLazyHeap.
//   - MaxDistance: Infinity (explore all reachable vertices).
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyLazyHeap,
		MaxDistance: Infinity,
	}
}
