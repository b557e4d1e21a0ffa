package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roads = `
# A-C directly costs more than the detour through B
A, B, 1
B, C, 2
A, C, 4
C, D, 1
X, Y, 3
`

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(args, &out, &errb)

	return code, out.String(), errb.String()
}

func TestRun_AnswersQueriesInOrder(t *testing.T) {
	path := writeFile(t, "roads.txt", roads)

	for _, strategy := range []string{"lazy", "heap", "rebuild"} {
		t.Run(strategy, func(t *testing.T) {
			code, out, _ := runCLI(t, "-graph", path, "-strategy", strategy, "-log-level", "error",
				"A->C", "D->A", "A->A", "A->Y")
			require.Equal(t, exitOK, code)
			assert.Equal(t, strings.Join([]string{
				"A->B->C (distance 3)",
				"D->C->B->A (distance 4)",
				"A (distance 0)",
				"A->Y (no path)",
			}, "\n")+"\n", out)
		})
	}
}

func TestRun_MaxDistance(t *testing.T) {
	path := writeFile(t, "roads.txt", roads)

	code, out, _ := runCLI(t, "-graph", path, "-max-distance", "3", "-log-level", "error", "A->C", "A->D")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "A->B->C (distance 3)\nA->D (no path)\n", out)

	// Zero disables the limit on the command line.
	code, out, _ = runCLI(t, "-graph", path, "-max-distance", "0", "-log-level", "error", "A->D")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "A->B->C->D (distance 4)\n", out)
}

func TestRun_DefaultQueryIsFirstToLast(t *testing.T) {
	path := writeFile(t, "roads.txt", "A, B, 2\nB, C, 2\n")

	code, out, _ := runCLI(t, "-graph", path, "-log-level", "error")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "A->B->C (distance 4)\n", out)
}

func TestRun_StatsAndDump(t *testing.T) {
	path := writeFile(t, "roads.txt", "B, A, 2\nlonely\n")

	code, out, _ := runCLI(t, "-graph", path, "-stats", "-dump", "-log-level", "error", "A->B")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "graph: 3 vertices, 1 edges\nA, B, 2\nlonely\nA->B (distance 2)\n", out)
}

func TestRun_RandomGraphIsReproducible(t *testing.T) {
	args := []string{"-random", "12", "-seed", "42", "-dump", "-log-level", "error", "a->l"}

	code1, out1, _ := runCLI(t, args...)
	code2, out2, _ := runCLI(t, args...)
	require.Equal(t, exitOK, code1)
	require.Equal(t, exitOK, code2)
	assert.Equal(t, out1, out2)

	lines := strings.Split(strings.TrimSpace(out1), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "a"), last)
	assert.True(t, strings.Contains(last, "(distance") || strings.Contains(last, "(no path)"), last)
}

func TestRun_Failures(t *testing.T) {
	path := writeFile(t, "roads.txt", roads)
	broken := writeFile(t, "broken.txt", "A, B\nA, A, 1\n")

	tests := []struct {
		name    string
		args    []string
		code    int
		errText string
	}{
		{"unknown strategy", []string{"-graph", path, "-strategy", "fibonacci"}, exitUsage, "invalid"},
		{"malformed query", []string{"-graph", path, "A=>B"}, exitUsage, "malformed query"},
		{"bad flag", []string{"-no-such-flag"}, exitUsage, "no-such-flag"},
		{"bad log level", []string{"-graph", path, "-log-level", "chatty"}, exitUsage, "logger"},
		{"missing file", []string{"-graph", path + ".gone", "A->B"}, exitError, "open graph"},
		{"broken file", []string{"-graph", broken, "A->B"}, exitError, "line 2"},
		{"unknown vertex", []string{"-graph", path, "A->Q"}, exitError, "query A->Q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errText := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, out)
			assert.Contains(t, errText, tt.errText)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errText := runCLI(t, "-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errText, "-strategy")
	assert.Contains(t, errText, "lazy (alias heap) or rebuild")
	assert.Contains(t, errText, "0 disables the limit")
}

func TestRun_ProductionLoggerWritesJSON(t *testing.T) {
	path := writeFile(t, "roads.txt", roads)

	code, _, errText := runCLI(t, "-graph", path, "-env", "production", "A->C")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errText, `"msg":"graph loaded"`)
	assert.Contains(t, errText, `"vertices":6`)
}
