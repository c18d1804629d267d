package ledger

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dundeezhang/secret-santa/pkg/santa"
)

// Format renders pairs as "giver: receiver" lines with a trailing newline.
func Format(pairs []santa.NamePair) []byte {
	var buf bytes.Buffer
	for _, p := range pairs {
		buf.WriteString(p.Giver)
		buf.WriteString(": ")
		buf.WriteString(p.Receiver)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Parse reads "giver: receiver" lines. Names are trimmed; blank lines are skipped.
// The line is split at the first colon, so receiver names may contain colons.
func Parse(r io.Reader) ([]santa.NamePair, error) {
	var pairs []santa.NamePair
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		giver, receiver, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		pairs = append(pairs, santa.NamePair{
			Giver:    strings.TrimSpace(giver),
			Receiver: strings.TrimSpace(receiver),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return pairs, nil
}
