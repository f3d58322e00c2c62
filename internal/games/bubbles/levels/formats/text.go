package formats

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// ParseText parses the plain text level format:
//
//	12
//	0011223344
//	.0.1.2.3.4
//
// Blank lines are ignored. The first line is the shot budget, every
// following line is one grid row of color digits. '.', '-' and ' ' leave a
// slot empty. Lines starting with '#' are comments; "# name: X" sets the
// level name.
func ParseText(data []byte) (Level, error) {
	var level Level
	header := false
	row, lineNo := 0, 0

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			parseComment(&level, line)
			continue
		}

		if !header {
			shots, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return Level{}, &SyntaxError{Line: lineNo, Row: -1, Msg: "shot count " + strconv.Quote(line)}
			}
			level.Shots = shots
			header = true
			continue
		}

		var err error
		if level.Items, err = parseRow(level.Items, row, line); err != nil {
			if se, ok := err.(*SyntaxError); ok {
				se.Line = lineNo
			}
			return Level{}, err
		}
		level.Width = max(level.Width, len([]rune(line)))
		row++
	}
	if err := sc.Err(); err != nil {
		return Level{}, err
	}
	if !header {
		return Level{}, &SyntaxError{Line: lineNo, Row: -1, Msg: "missing shot count"}
	}

	level.Height = row
	return level, nil
}

func parseComment(level *Level, line string) {
	key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
	if !ok {
		return
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	switch key {
	case "id":
		level.ID = value
	case "name":
		level.Name = value
	default:
		if level.Metadata == nil {
			level.Metadata = make(map[string]string)
		}
		level.Metadata[key] = value
	}
}

// FormatText renders level back into the text format.
func FormatText(level Level) []byte {
	var buf bytes.Buffer
	if level.ID != "" {
		buf.WriteString("# id: " + level.ID + "\n")
	}
	if level.Name != "" {
		buf.WriteString("# name: " + level.Name + "\n")
	}
	buf.WriteString(strconv.Itoa(level.Shots) + "\n")

	for _, r := range RowStrings(level) {
		buf.WriteString(r)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
