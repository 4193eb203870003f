package suite

import (
	"fmt"
	"strings"

	"chess-test-utils/model"
)

// Tag is a PGN tag pair.
type Tag struct {
	Name  string
	Value string
}

// Content is the result of ParsePGN.
type Content struct {
	// Tags are in file order.
	Tags []Tag
	// Moves is the movetext without move numbers and game termination marker.
	Moves []string
}

// Tag returns the value of the tag pair named name.
func (c Content) Tag(name string) (string, bool) {
	for _, t := range c.Tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// TagNames returns the tag pair names in file order.
func (c Content) TagNames() []string {
	names := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		names[i] = t.Name
	}
	return names
}

var terminationMarkers = map[string]bool{"1-0": true, "0-1": true, "1/2-1/2": true, "*": true}

// ParsePGN parses a single game PGN: tag pairs, an empty line, then the movetext.
// It does not check the moves themselves.
func ParsePGN(pgn string) (Content, error) {
	var content Content
	separatorFound := false
	for _, line := range strings.Split(strings.TrimRight(pgn, "\r\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			if separatorFound {
				return Content{}, fmt.Errorf("%w: tag pair %s after the tag pairs - movetext separator", model.ErrInvalidArgument, line)
			}
			tag, err := parseTag(line)
			if err != nil {
				return Content{}, err
			}
			content.Tags = append(content.Tags, tag)
		case line == "":
			if separatorFound {
				return Content{}, fmt.Errorf("%w: more than one tag pairs - movetext separator", model.ErrInvalidArgument)
			}
			separatorFound = true
		default:
			if !separatorFound {
				return Content{}, fmt.Errorf("%w: tag pairs - movetext separator is missing", model.ErrInvalidArgument)
			}
			for _, token := range strings.Split(line, " ") {
				if token == "" || strings.HasSuffix(token, ".") || terminationMarkers[token] {
					continue
				}
				content.Moves = append(content.Moves, token)
			}
		}
	}
	return content, nil
}

func parseTag(line string) (Tag, error) {
	inner := line[1 : len(line)-1]
	name, value, ok := strings.Cut(inner, " ")
	if !ok || strings.TrimSpace(name) == "" || len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return Tag{}, fmt.Errorf("%w: invalid tag %s", model.ErrInvalidArgument, line)
	}
	return Tag{Name: name, Value: value[1 : len(value)-1]}, nil
}
