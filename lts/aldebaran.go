package lts

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Header and row patterns of the Aldebaran format. Interior whitespace is
// tolerated; the quotes around the action are literal.
var (
	headerRe = regexp.MustCompile(`^des\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rowRe    = regexp.MustCompile(`^\(\s*(\d+)\s*,\s*"([^"]*)"\s*,\s*(\d+)\s*\)$`)
)

// ParseAldebaran reads Aldebaran text from r and builds the indexed LTS.
// Every failure wraps ErrMalformedLTS and cites the offending line.
func ParseAldebaran(r io.Reader) (*LTS, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		l    *LTS
		want int // declared transition count
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		// First non-blank line must be the header.
		if l == nil {
			m := headerRe.FindStringSubmatch(text)
			if m == nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrHeader, line, text)
			}
			initial, nTrans, nStates := atoi(m[1]), atoi(m[2]), atoi(m[3])

			built, err := New(State(nStates), State(initial))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLTS, line, err)
			}
			l, want = built, nTrans

			continue
		}

		m := rowRe.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrTransition, line, text)
		}
		if err := l.AddTransition(State(atoi(m[1])), m[2], State(atoi(m[3]))); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLTS, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLTS, err)
	}
	if l == nil {
		return nil, fmt.Errorf("%w: empty input", ErrHeader)
	}
	if l.n != want {
		return nil, fmt.Errorf("%w: header declares %d, read %d", ErrTransitionCount, want, l.n)
	}

	return l, nil
}

// Parse is ParseAldebaran over a string.
func Parse(s string) (*LTS, error) {
	return ParseAldebaran(strings.NewReader(s))
}

// atoi converts a digits-only submatch; the patterns guarantee the format, so
// the only possible failure is overflow, reported as -1 and caught by the
// range checks downstream.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}

	return n
}

// String renders the LTS back in Aldebaran syntax with transitions sorted by
// (source, action, target).
func (l *LTS) String() string {
	type row struct {
		src, dst State
		action   string
	}
	rows := make([]row, 0, l.n)
	for tr := range l.seen {
		rows = append(rows, row{src: tr.src, dst: tr.dst, action: l.labels[tr.action]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].src != rows[j].src {
			return rows[i].src < rows[j].src
		}
		if rows[i].action != rows[j].action {
			return rows[i].action < rows[j].action
		}

		return rows[i].dst < rows[j].dst
	})

	var b strings.Builder
	fmt.Fprintf(&b, "des (%d,%d,%d)\n", l.initial, l.n, l.numStates)
	for _, r := range rows {
		fmt.Fprintf(&b, "(%d,%q,%d)\n", r.src, r.action, r.dst)
	}

	return b.String()
}
