// Package day3 reads an engine schematic: a grid of digits, dots and symbols.
//
// Columns are counted in runes, so multi-byte characters line up with the
// lines above and below them.
package day3

import (
	"strconv"

	"aoc2023/internal/puzzle"
)

// PartNumber is a number adjacent to at least one symbol.
// Line is 0-based; [Start, End) is its rune range on that line.
type PartNumber struct {
	Value      uint64
	Line       int
	Start, End int
}

// Gear is a '*' adjacent to exactly two part numbers.
type Gear struct {
	Line, Col int
	Parts     [2]PartNumber
}

// Ratio is the product of the two part numbers, or ok=false if it does not
// fit in 64 bits.
func (g Gear) Ratio() (ratio uint64, ok bool) {
	return puzzle.CheckedMul(g.Parts[0].Value, g.Parts[1].Value)
}

// Schematic holds the part numbers and gears of a grid, in reading order.
type Schematic struct {
	PartNumbers []PartNumber
	Gears       []Gear
}

// PartNumberSum sums every part number.
func PartNumberSum(in puzzle.Input) (puzzle.Answer, error) {
	s, err := parse(in)
	if err != nil {
		return nil, err
	}
	values := make([]uint64, len(s.PartNumbers))
	for i, p := range s.PartNumbers {
		values[i] = p.Value
	}
	sum, ok := puzzle.CheckedSum(values)
	if !ok {
		return nil, puzzle.Overflow("sum of part numbers does not fit in 64 bits")
	}
	return puzzle.Number(sum), nil
}

// GearRatioSum sums the ratios of every gear.
func GearRatioSum(in puzzle.Input) (puzzle.Answer, error) {
	s, err := parse(in)
	if err != nil {
		return nil, err
	}
	var sum uint64
	for _, g := range s.Gears {
		ratio, ok := g.Ratio()
		if !ok {
			return nil, puzzle.Overflow("gear ratio at line %d column %d does not fit in 64 bits", g.Line+1, g.Col+1)
		}
		if sum, ok = puzzle.CheckedAdd(sum, ratio); !ok {
			return nil, puzzle.Overflow("sum of gear ratios does not fit in 64 bits")
		}
	}
	return puzzle.Number(sum), nil
}

func parse(in puzzle.Input) (Schematic, error) {
	if _, err := in.NonEmptyLines(); err != nil {
		return Schematic{}, err
	}
	lines := in.Lines()
	grid := make([][]rune, len(lines))
	for i, l := range lines {
		grid[i] = []rune(l.Text)
	}
	return Parse(grid, func(i int, err error, digits string) error {
		return puzzle.ParseFailure(lines[i], err, "`%s` is not a valid unsigned 64 bit integer", digits)
	})
}

// Parse finds the part numbers and gears in grid. onBadNumber builds the
// error returned for a digit run that does not fit in a uint64.
func Parse(grid [][]rune, onBadNumber func(line int, err error, digits string) error) (Schematic, error) {
	var s Schematic
	for li, row := range grid {
		for start := 0; start < len(row); {
			if !isDigit(row[start]) {
				start++
				continue
			}
			end := start
			for end < len(row) && isDigit(row[end]) {
				end++
			}
			digits := string(row[start:end])
			value, err := strconv.ParseUint(digits, 10, 64)
			if err != nil {
				return Schematic{}, onBadNumber(li, err, digits)
			}
			if symbolLeft(row, start) || symbolRight(row, end) ||
				symbolNear(grid, li-1, start, end) || symbolNear(grid, li+1, start, end) {
				s.PartNumbers = append(s.PartNumbers, PartNumber{Value: value, Line: li, Start: start, End: end})
			}
			start = end
		}
	}

	for li, row := range grid {
		for col, r := range row {
			if r != '*' {
				continue
			}
			var near []PartNumber
			for _, p := range s.PartNumbers {
				if p.neighbors(li, col) {
					near = append(near, p)
				}
			}
			if len(near) == 2 {
				s.Gears = append(s.Gears, Gear{Line: li, Col: col, Parts: [2]PartNumber{near[0], near[1]}})
			}
		}
	}
	return s, nil
}

// neighbors reports whether the cell at (line, col) touches p, diagonals
// included.
func (p PartNumber) neighbors(line, col int) bool {
	switch line {
	case p.Line:
		return col == p.Start-1 || col == p.End
	case p.Line - 1, p.Line + 1:
		return col >= p.Start-1 && col <= p.End
	default:
		return false
	}
}

func symbolLeft(row []rune, start int) bool {
	return start > 0 && isSymbol(row[start-1])
}

func symbolRight(row []rune, end int) bool {
	return end < len(row) && isSymbol(row[end])
}

// symbolNear reports whether line li of grid has a symbol in [start-1, end].
func symbolNear(grid [][]rune, li, start, end int) bool {
	if li < 0 || li >= len(grid) {
		return false
	}
	row := grid[li]
	for c := max(start-1, 0); c <= end && c < len(row); c++ {
		if isSymbol(row[c]) {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isSymbol: anything but an ASCII digit or '.'.
func isSymbol(r rune) bool { return !isDigit(r) && r != '.' }
