package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fgs/matrix"
)

// Whitespace is the delimiter value meaning "any run of spaces or tabs".
const Whitespace = ' '

// Options controls how Read parses a table.
type Options struct {
	// Delimiter separates fields. Zero means tab.
	Delimiter rune

	// Exclude lists variable names to drop. Every name must appear in the header.
	Exclude []string
}

// ParseDelimiter maps a CLI delimiter spelling to a rune. It accepts the
// names tab, comma, space, whitespace, semicolon, colon and pipe, escapes
// such as "\t", or any single character.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "space", "whitespace":
		return Whitespace, nil
	case "semicolon":
		return ';', nil
	case "colon":
		return ':', nil
	case "pipe":
		return '|', nil
	}
	r := []rune(s)
	if len(r) != 1 || r[0] == '\n' || r[0] == '\r' || r[0] == '"' {
		return 0, fmt.Errorf("dataset: %q: %w", s, ErrBadDelimiter)
	}

	return r[0], nil
}

// records returns a function yielding one split line per call, io.EOF at end.
func records(r io.Reader, delim rune) func() ([]string, error) {
	if delim == Whitespace {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
		return func() ([]string, error) {
			for sc.Scan() {
				if f := strings.Fields(sc.Text()); len(f) > 0 {
					return f, nil
				}
			}
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr.Read
}

// Read parses a table from r.
//
// Errors: ErrMalformed (wrapped with the line number), ErrUnknownVariable,
// ErrBadDelimiter.
func Read(r io.Reader, opts Options) (*Dataset, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = '\t'
	}
	if delim == '\n' || delim == '\r' || delim == '"' {
		return nil, ErrBadDelimiter
	}
	next := records(r, delim)

	// 1) Header and column selection.
	header, err := next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("dataset: empty input: %w", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %v: %w", err, ErrMalformed)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}
	keep, kept, err := selectColumns(names, opts.Exclude)
	if err != nil {
		return nil, err
	}

	// 2) Rows.
	var values []float64
	line := 1
	for {
		rec, err := next()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %v: %w", line, err, ErrMalformed)
		}
		if len(rec) != len(names) {
			return nil, fmt.Errorf("dataset: line %d: %d fields, want %d: %w", line, len(rec), len(names), ErrMalformed)
		}
		for _, j := range keep {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("dataset: line %d: column %q: %q: %w", line, names[j], rec[j], ErrMalformed)
			}
			values = append(values, v)
		}
	}

	// 3) Shape checks.
	rows := 0
	if len(kept) > 0 {
		rows = len(values) / len(kept)
	}
	if rows < 2 {
		return nil, fmt.Errorf("dataset: %d cases, need at least 2: %w", rows, ErrMalformed)
	}
	m, err := matrix.NewDenseFrom(rows, len(kept), values)
	if err != nil {
		return nil, fmt.Errorf("dataset: %v: %w", err, ErrMalformed)
	}

	return New(kept, m)
}

// selectColumns returns the header positions and names that survive exclusion.
func selectColumns(names, exclude []string) ([]int, []string, error) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return nil, nil, fmt.Errorf("dataset: empty variable name: %w", ErrMalformed)
		}
		if _, dup := seen[n]; dup {
			return nil, nil, fmt.Errorf("dataset: duplicate variable %q: %w", n, ErrMalformed)
		}
		seen[n] = struct{}{}
	}
	drop := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		if _, ok := seen[e]; !ok {
			return nil, nil, fmt.Errorf("dataset: exclude %q: %w", e, ErrUnknownVariable)
		}
		drop[e] = struct{}{}
	}
	var (
		keep []int
		kept []string
	)
	for i, n := range names {
		if _, skip := drop[n]; !skip {
			keep = append(keep, i)
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return nil, nil, fmt.Errorf("dataset: no variables left: %w", ErrMalformed)
	}

	return keep, kept, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(bufio.NewReader(f), opts)
}

// CountLines returns the number of non-empty lines in path, header included.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var n int
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}

	return n, sc.Err()
}

// CountColumns returns the number of fields in the header line of path.
func CountColumns(path string, delim rune) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if delim == 0 {
		delim = '\t'
	}
	header, err := records(bufio.NewReader(f), delim)()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return len(header), nil
}

// ReadExclusions reads one variable name per line from path. Blank lines are
// skipped and repeated names are kept once, in first-seen order.
func ReadExclusions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readExclusions(f)
}

func readExclusions(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	seen := make(map[string]struct{})
	var out []string
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out, sc.Err()
}
