package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/waypath/core"
)

const (
	commentPrefix  = "#"
	fieldSeparator = ","

	// QuerySeparator splits the two vertex names of a query.
	QuerySeparator = "->"
)

// Sentinel errors for the edgelist package.
var (
	// ErrMalformedLine indicates a line that is neither "a, b, weight" nor a lone vertex.
	ErrMalformedLine = errors.New("edgelist: malformed line")

	// ErrUnencodableID indicates a vertex ID that Parse could not read back
	// unchanged: it contains a comma or a line break, starts with "#", or
	// carries surrounding blanks.
	ErrUnencodableID = errors.New("edgelist: vertex ID cannot be encoded")

	// ErrMalformedQuery indicates a query that is not of the form "src->dst".
	ErrMalformedQuery = errors.New("edgelist: malformed query")
)

// LineError attaches a 1-based line number and the offending text to err.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Parse reads an edge list from r and returns the populated graph.
// On any malformed line no graph is returned and the error aggregates every
// LineError found.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	var result *multierror.Error

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		if err := parseLine(g, text); err != nil {
			result = multierror.Append(result, &LineError{Line: line, Text: text, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		result = multierror.Append(result, fmt.Errorf("edgelist: read: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return g, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*core.Graph, error) {
	return Parse(strings.NewReader(s))
}

// parseLine applies one non-empty, non-comment record to g.
func parseLine(g *core.Graph, text string) error {
	fields := strings.Split(text, fieldSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	switch len(fields) {
	case 1:
		return g.AddVertex(fields[0])
	case 3:
		u, v := fields[0], fields[1]
		if u == "" || v == "" {
			return fmt.Errorf("%w: empty vertex name", ErrMalformedLine)
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: weight %q: %v", ErrMalformedLine, fields[2], err)
		}
		return g.AddEdge(u, v, w)
	default:
		return fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedLine, len(fields))
	}
}

// Write serializes g in the format accepted by Parse: every edge in
// (From, To) order, then every isolated vertex in insertion order.
// Every vertex ID is checked first; if any would not survive Parse,
// nothing is written and the error wraps ErrUnencodableID.
func Write(w io.Writer, g *core.Graph) error {
	ids := g.Vertices()
	for _, id := range ids {
		if err := checkEncodable(id); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s, %s, %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	for _, id := range ids {
		deg, err := g.Degree(id)
		if err != nil {
			return err
		}
		if deg > 0 {
			continue
		}
		if _, err = fmt.Fprintln(bw, id); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// checkEncodable reports whether id reads back unchanged from a record.
func checkEncodable(id string) error {
	switch {
	case strings.Contains(id, fieldSeparator),
		strings.ContainsAny(id, "\r\n"),
		strings.HasPrefix(id, commentPrefix),
		strings.TrimSpace(id) != id:
		return fmt.Errorf("%w: %q", ErrUnencodableID, id)
	}

	return nil
}

// ParseQuery splits "src->dst" into its two trimmed vertex names.
func ParseQuery(q string) (src, dst string, err error) {
	parts := strings.Split(q, QuerySeparator)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedQuery, q)
	}
	src, dst = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if src == "" || dst == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedQuery, q)
	}

	return src, dst, nil
}
