package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
)

// ErrNotDefinition indicates a line that is not a define command.
var ErrNotDefinition = errors.New("not a define line")

// Definition is one parsed range definition.
type Definition struct {
	// Name is the range name.
	Name string
	// Left is the first endpoint as written.
	Left models.Endpoint
	// Right is the second endpoint, equal to Left for single cells.
	Right models.Endpoint
	// IsRange is true when two endpoints were given.
	IsRange bool
}

// ParseDefine parses a line of the form
//
//	define "<name>" <ref>[:<ref>]
func ParseDefine(line string) (Definition, error) {
	var def Definition

	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "define")
	if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
		return def, ErrNotDefinition
	}
	rest = strings.TrimSpace(rest)

	if !strings.HasPrefix(rest, `"`) {
		return def, fmt.Errorf("missing quoted name in %q", line)
	}
	name, ref, found := strings.Cut(rest[1:], `"`)
	if !found {
		return def, fmt.Errorf("unterminated name in %q", line)
	}

	left, right, isRange, err := ParseRange(strings.TrimSpace(ref))
	if err != nil {
		return def, err
	}

	def.Name = name
	def.Left = left
	def.Right = right
	def.IsRange = isRange
	return def, nil
}

// ParseDefinitions reads every define line from r. Blank lines, comments
// and other commands are skipped; a malformed define line is an error.
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	var defs []Definition

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		def, err := ParseDefine(line)
		if errors.Is(err, ErrNotDefinition) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		defs = append(defs, def)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return defs, nil
}
