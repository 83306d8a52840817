package index

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// maxLine bounds a single "<score> <path>" line.
const maxLine = 1 << 20

// Encode serializes the index as one "<score> <path>" line per entry, ranked
// like Entries so an unchanged index always encodes to the same text.
func (x *Index) Encode() string {
	var b strings.Builder
	for i, e := range x.Entries() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.FormatUint(e.Score, 10))
		b.WriteByte(' ')
		b.WriteString(e.Path)
	}
	return b.String()
}

// Decode parses text produced by Encode. Only the first space on a line
// separates the score from the path, so paths may contain spaces.
func Decode(text string) (*Index, error) {
	x := New()

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 4096), maxLine)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()

		sep := strings.IndexByte(line, ' ')
		if sep < 0 {
			return nil, &DecodeError{Line: n, Err: ErrMalformedLine}
		}
		score, err := strconv.ParseUint(line[:sep], 10, 64)
		if err != nil {
			return nil, &DecodeError{Line: n, Err: fmt.Errorf("%w: %v", ErrInvalidScore, err)}
		}
		path := line[sep+1:]
		if _, dup := x.entries[path]; dup {
			return nil, &DecodeError{Line: n, Path: path, Err: ErrDuplicatePath}
		}
		x.entries[path] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read index at line %d: %w", n+1, err)
	}
	return x, nil
}
