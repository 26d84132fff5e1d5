// SPDX-License-Identifier: MIT

package console_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmul/console"
	"github.com/katalvlaran/lvmul/matrix"
	"github.com/katalvlaran/lvmul/numparse"
)

func build(t *testing.T, input string, rows, cols int, opts ...console.Option) (*matrix.Dense, *console.BuildReport, string) {
	t.Helper()
	var out bytes.Buffer
	s := console.NewSession(strings.NewReader(input), &out, opts...)
	m, rep, err := s.BuildMatrix(rows, cols)
	require.NoError(t, err)

	return m, rep, out.String()
}

func TestBuildMatrix_AllBlankIsZero(t *testing.T) {
	m, rep, _ := build(t, "\n\n\n  \n\t\n\n", 2, 3)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m.ToRows())
	require.Equal(t, 6, rep.Blank)
	require.Zero(t, rep.Parsed)
	require.Zero(t, rep.Invalid())
	require.NoError(t, rep.Err())
}

func TestBuildMatrix_ValuesRowMajor(t *testing.T) {
	m, rep, _ := build(t, "1\n2\n3\n4\n5\n6\n", 2, 3)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
	require.Equal(t, 6, rep.Parsed)
}

func TestBuildMatrix_InvalidFallsBackAndContinues(t *testing.T) {
	m, rep, out := build(t, "abc\n2\n1,5\n4\n", 2, 2)
	require.Equal(t, [][]float64{{0, 2}, {0, 4}}, m.ToRows())
	require.Equal(t, 2, rep.Invalid())
	require.Equal(t, 2, rep.Parsed)
	require.ErrorIs(t, rep.Err(), numparse.ErrInvalidNumber)
	require.Equal(t, 2, strings.Count(out, "Invalid input! Using default value 0.0.\n"))
}

func TestBuildMatrix_StoresNonFiniteValues(t *testing.T) {
	m, rep, out := build(t, "NaN\ninf\n-infinity\n1e400\n", 2, 2)
	require.Equal(t, 4, rep.Parsed)
	require.Zero(t, rep.Invalid())
	require.NotContains(t, out, "Invalid input!")

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
	v, _ = m.At(0, 1)
	require.True(t, math.IsInf(v, 1))
	v, _ = m.At(1, 0)
	require.True(t, math.IsInf(v, -1))
	v, _ = m.At(1, 1)
	require.True(t, math.IsInf(v, 1))
}

func TestBuildMatrix_Transcript(t *testing.T) {
	_, _, out := build(t, "5\nabc\n", 1, 2)
	require.Equal(t, "Creating a 1×2 matrix:\n"+
		"Enter values or press Enter for default values (0.0):\n"+
		"Enter value for position [0,0]: "+
		"Enter value for position [0,1]: "+
		"Invalid input! Using default value 0.0.\n", out)
}

func TestBuildMatrix_EndOfInputReadsAsBlank(t *testing.T) {
	m, rep, _ := build(t, "1\n7", 2, 2)
	require.Equal(t, [][]float64{{1, 7}, {0, 0}}, m.ToRows())
	require.Equal(t, 2, rep.Blank)
}

func TestBuildMatrix_CustomDefault(t *testing.T) {
	m, _, out := build(t, "\nx\n3\n", 1, 4, console.WithDefault(1.5))
	require.Equal(t, [][]float64{{1.5, 1.5, 3, 1.5}}, m.ToRows())
	require.Contains(t, out, "default values (1.5):")
	require.Contains(t, out, "Using default value 1.5.")
}

// lineReader hands out one line per Read and records the output written so
// far, so tests can check that each prompt precedes its read.
type lineReader struct {
	lines []string
	out   *bytes.Buffer
	seen  []string
}

func (r *lineReader) Read(p []byte) (int, error) {
	r.seen = append(r.seen, r.out.String())
	if len(r.lines) == 0 {
		return 0, errors.New("unexpected extra read")
	}
	n := copy(p, r.lines[0])
	r.lines = r.lines[1:]

	return n, nil
}

func TestBuildMatrix_PromptPrecedesEachRead(t *testing.T) {
	var out bytes.Buffer
	r := &lineReader{lines: []string{"1\n", "2\n", "3\n"}, out: &out}
	s := console.NewSession(r, &out)
	_, _, err := s.BuildMatrix(3, 1)
	require.NoError(t, err)

	require.Len(t, r.seen, 3)
	for i, snapshot := range r.seen {
		require.True(t, strings.HasSuffix(snapshot, "Enter value for position ["+string(rune('0'+i))+",0]: "),
			"read %d happened before its prompt: %q", i, snapshot)
	}
}

func TestBuildMatrix_InvalidDimensions(t *testing.T) {
	s := console.NewSession(strings.NewReader(""), &bytes.Buffer{})
	_, _, err := s.BuildMatrix(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestBuildMatrix_UnreadableInput(t *testing.T) {
	boom := errors.New("boom")
	s := console.NewSession(iotest.ErrReader(boom), &bytes.Buffer{})
	m, rep, err := s.BuildMatrix(1, 1)
	require.ErrorIs(t, err, console.ErrInputUnreadable)
	require.ErrorIs(t, err, boom)
	require.Nil(t, m)
	require.Nil(t, rep)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBuildMatrix_UnwritableOutput(t *testing.T) {
	s := console.NewSession(strings.NewReader("1\n"), failingWriter{})
	_, _, err := s.BuildMatrix(1, 1)
	require.ErrorIs(t, err, console.ErrOutputUnwritable)
}

func TestBuildMatrix_Logs(t *testing.T) {
	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Name: "test", Level: hclog.Trace, Output: &logs})
	_, _, _ = build(t, "q\n", 1, 1, console.WithLogger(logger))
	require.Contains(t, logs.String(), "cell fell back to default")
	require.Contains(t, logs.String(), "matrix built")
}
