// Package batch runs the line protocol: a count of strings and the strings,
// then a count of queries and the queries, answering one line per query.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Invalid is written for a query with no substring at that rank.
const Invalid = "INVALID"

type Set interface {
	Insert(s string) int
	Find(order int) (string, bool)
}

// Report describes one run.
type Report struct {
	NumStrings      int
	TotalLength     int
	AvgStringLength float64
	Construction    time.Duration
	NumQueries      int
	Invalid         int
	Queries         time.Duration
}

func (r Report) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("strings", r.NumStrings),
		zap.Float64("avg string length", r.AvgStringLength),
		zap.Duration("construction", r.Construction),
		zap.Int("queries", r.NumQueries),
		zap.Int("invalid queries", r.Invalid),
		zap.Duration("query time", r.Queries),
	}
}

type Runner struct {
	Clock clock.Clock
}

func NewRunner() *Runner {
	return &Runner{Clock: clock.New()}
}

// LineReader reads lines terminated by "\n" or "\r\n". A final line without
// a terminator is still a line.
type LineReader struct {
	r    *bufio.Reader
	line int
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Line is the 1-based number of the last line returned.
func (lr *LineReader) Line() int {
	return lr.line
}

// Next returns the next line without its terminator, or io.EOF once the
// input is exhausted.
func (lr *LineReader) Next() (string, error) {
	s, err := lr.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	lr.line++
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// ReadLines returns every remaining line of r.
func ReadLines(r io.Reader) ([]string, error) {
	lines := []string{}
	lr := NewLineReader(r)
	for {
		s, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, fmt.Errorf("line %d: %w", lr.line+1, err)
		}
		lines = append(lines, s)
	}
}

// expect is Next for input that must still be there.
func (lr *LineReader) expect() (string, error) {
	s, err := lr.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("line %d: %w", lr.line+1, err)
	}
	return s, nil
}

func (lr *LineReader) nextInt(what string) (int, error) {
	s, err := lr.expect()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("line %d: %s is not an integer: %w", lr.line, what, err)
	}
	return n, nil
}

func (lr *LineReader) nextCount(what string) (int, error) {
	n, err := lr.nextInt(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("line %d: %s is negative: %d", lr.line, what, n)
	}
	return n, nil
}

// Run inserts every string into set before answering any query. Malformed
// input stops the run; answers already produced are still flushed to out.
func (r *Runner) Run(in io.Reader, out io.Writer, set Set) (report Report, err error) {
	lr := NewLineReader(in)
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("writing answers: %w", ferr)
		}
	}()

	report.NumStrings, err = lr.nextCount("string count")
	if err != nil {
		return report, err
	}
	start := r.Clock.Now()
	for i := 0; i < report.NumStrings; i++ {
		s, err := lr.expect()
		if err != nil {
			return report, fmt.Errorf("reading string %d of %d: %w", i+1, report.NumStrings, err)
		}
		report.TotalLength += len(s)
		set.Insert(s)
	}
	report.Construction = r.Clock.Since(start)
	if report.NumStrings > 0 {
		report.AvgStringLength = float64(report.TotalLength) / float64(report.NumStrings)
	}

	report.NumQueries, err = lr.nextCount("query count")
	if err != nil {
		return report, err
	}
	start = r.Clock.Now()
	defer func() {
		report.Queries = r.Clock.Since(start)
	}()
	for i := 0; i < report.NumQueries; i++ {
		order, err := lr.nextInt(fmt.Sprintf("query %d of %d", i+1, report.NumQueries))
		if err != nil {
			return report, err
		}
		result, ok := set.Find(order)
		if !ok {
			report.Invalid++
			result = Invalid
		}
		if _, err := w.WriteString(result); err != nil {
			return report, fmt.Errorf("writing answers: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return report, fmt.Errorf("writing answers: %w", err)
		}
	}
	return report, nil
}
