// Package roster reads Secret Santa participants.
//
// Two formats are supported. The text format has one participant per line,
// a name and an email separated by whitespace:
//
//	Alice alice@example.com
//	Bob   bob@example.com
//
// Blank lines, lines starting with '#', and lines missing either field are
// skipped. The YAML format is a document with a participants list:
//
//	participants:
//	  - name: Alice
//	    email: alice@example.com
//
// Names are trimmed and normalized to Unicode NFC so that visually identical
// names compare equal. Duplicate names are rejected, since a name is a
// participant's identity during matching.
package roster

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/dundeezhang/secret-santa/pkg/santa"
)

// Format identifies a roster encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// FormatFromPath picks the format from the file extension, defaulting to text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads the roster file at path.
func Load(path string) ([]santa.Participant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return Decode(bytes.NewReader(data), FormatFromPath(path))
}

// Decode parses a roster in the given format and validates it.
func Decode(r io.Reader, format Format) ([]santa.Participant, error) {
	var (
		participants []santa.Participant
		err          error
	)
	switch format {
	case FormatText, "":
		participants, err = decodeText(r)
	case FormatYAML:
		participants, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return Validate(participants)
}

// Validate normalizes names and checks emails and uniqueness.
// The returned slice is a normalized copy in input order.
func Validate(participants []santa.Participant) ([]santa.Participant, error) {
	if len(participants) == 0 {
		return nil, ErrEmptyRoster
	}

	out := make([]santa.Participant, 0, len(participants))
	seen := make(map[string]int, len(participants))
	for i, p := range participants {
		p.Name = NormalizeName(p.Name)
		p.Email = strings.TrimSpace(p.Email)

		if p.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrEmptyRoster, i+1)
		}
		// Names are stored as "giver: receiver" lines.
		if strings.ContainsAny(p.Name, ":\r\n") {
			return nil, fmt.Errorf("%w: %q at entry %d", ErrInvalidName, p.Name, i+1)
		}
		if !emailRegex.MatchString(p.Email) {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidEmail, p.Email, p.Name)
		}
		if prev, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q at entries %d and %d", ErrDuplicateName, p.Name, prev+1, i+1)
		}
		seen[p.Name] = i
		out = append(out, p)
	}
	return out, nil
}

// NormalizeName trims surrounding whitespace and applies NFC normalization.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

func decodeText(r io.Reader) ([]santa.Participant, error) {
	var participants []santa.Participant
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		participants = append(participants, santa.Participant{Name: fields[0], Email: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToDecode, err)
	}
	return participants, nil
}

type yamlRoster struct {
	Participants []santa.Participant `yaml:"participants"`
}

func decodeYAML(r io.Reader) ([]santa.Participant, error) {
	var doc yamlRoster
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToDecode, err)
	}
	return doc.Participants, nil
}
