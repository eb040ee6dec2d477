// Package puzzle defines the contract shared by every day's solvers: the
// immutable puzzle input, the displayable answer, and the solve failure.
package puzzle

import "strings"

// Input is the immutable text of one puzzle input file.
// Both parts of a day read the same Input; nothing may modify it.
type Input struct {
	source string
	text   string
}

// Line is a single line of input. Number is 1-based.
type Line struct {
	Number int
	Text   string
}

// NewInput wraps already-loaded text. source is informational (usually the file path).
func NewInput(source, text string) Input {
	return Input{source: source, text: text}
}

// Source returns where the input was loaded from.
func (in Input) Source() string { return in.source }

// Text returns the raw content.
func (in Input) Text() string { return in.text }

// Bytes returns a copy of the raw content.
func (in Input) Bytes() []byte { return []byte(in.text) }

// Len returns the content length in bytes.
func (in Input) Len() int { return len(in.text) }

// Lines splits the content on '\n', dropping a trailing '\r' from each line.
// A final newline does not produce an extra empty line.
func (in Input) Lines() []Line {
	if in.text == "" {
		return nil
	}
	raw := strings.Split(strings.TrimSuffix(in.text, "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, s := range raw {
		lines[i] = Line{Number: i + 1, Text: strings.TrimSuffix(s, "\r")}
	}
	return lines
}

// NonEmptyLines returns the lines that are not empty. A line of spaces is
// kept; rejecting it is up to the solver. Input without a non-empty line
// fails with ErrEmptyInput.
func (in Input) NonEmptyLines() ([]Line, error) {
	var out []Line
	for _, l := range in.Lines() {
		if l.Text == "" {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, &SolveError{Kind: ErrEmptyInput, Msg: "no non-empty lines in " + in.describe()}
	}
	return out, nil
}

func (in Input) describe() string {
	if in.source == "" {
		return "input"
	}
	return in.source
}
