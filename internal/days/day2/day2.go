// Package day2 evaluates games of drawing coloured cubes from a bag.
package day2

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

// Bag is the cube set part one checks games against.
var Bag = Draw{Red: 12, Green: 13, Blue: 14}

// Draw is one handful of cubes revealed from the bag.
type Draw struct {
	Red, Green, Blue uint8
}

// Game is one line of input.
type Game struct {
	ID    uint64
	Draws []Draw
}

var gameFormat = regexp.MustCompile(`^Game (\d+): ((?:\d+ (?:red|green|blue)(?:[,;] )?)+)$`)

// PossibleGames sums the ids of the games that could have been played with Bag.
func PossibleGames(in puzzle.Input) (puzzle.Answer, error) {
	games, err := parseGames(in)
	if err != nil {
		return nil, err
	}
	var sum uint64
	for _, g := range games {
		if !g.Possible(Bag) {
			continue
		}
		var ok bool
		if sum, ok = puzzle.CheckedAdd(sum, g.ID); !ok {
			return nil, puzzle.Overflow("sum of game ids does not fit in 64 bits")
		}
	}
	return puzzle.Number(sum), nil
}

// PowerSum sums the power of the minimum bag of every game.
func PowerSum(in puzzle.Input) (puzzle.Answer, error) {
	games, err := parseGames(in)
	if err != nil {
		return nil, err
	}
	powers := make([]uint64, len(games))
	for i, g := range games {
		powers[i] = g.MinimumBag().Power()
	}
	sum, ok := puzzle.CheckedSum(powers)
	if !ok {
		return nil, puzzle.Overflow("sum of powers does not fit in 64 bits")
	}
	return puzzle.Number(sum), nil
}

func parseGames(in puzzle.Input) ([]Game, error) {
	lines, err := in.NonEmptyLines()
	if err != nil {
		return nil, err
	}
	games := make([]Game, 0, len(lines))
	for _, line := range lines {
		g, err := ParseGame(line.Text)
		if err != nil {
			return nil, lineError(line, err)
		}
		games = append(games, g)
	}
	return games, nil
}

func lineError(line puzzle.Line, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return puzzle.ParseFailure(line, err, "in `%s`", line.Text)
	}
	return puzzle.Malformed(line, "%v", err)
}

// ParseGame parses a line such as
// "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func ParseGame(s string) (Game, error) {
	m := gameFormat.FindStringSubmatch(s)
	if m == nil {
		return Game{}, fmt.Errorf("game `%s` is of invalid format", s)
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("game id `%s` is not valid: %w", m[1], err)
	}
	var draws []Draw
	for _, ds := range strings.Split(m[2], "; ") {
		d, err := ParseDraw(ds)
		if err != nil {
			return Game{}, err
		}
		draws = append(draws, d)
	}
	return Game{ID: id, Draws: draws}, nil
}

// ParseDraw parses a draw such as "1 red, 2 green, 6 blue". Every colour may
// appear at most once and counts must be between 1 and 255.
func ParseDraw(s string) (Draw, error) {
	var d Draw
	for _, item := range strings.Split(s, ", ") {
		numStr, color, ok := strings.Cut(item, " ")
		if !ok {
			return Draw{}, fmt.Errorf("draw `%s`: no space between number and color in `%s`", s, item)
		}
		n, err := strconv.ParseUint(numStr, 10, 8)
		if err != nil {
			return Draw{}, fmt.Errorf("draw `%s`: number `%s` is not valid: %w", s, numStr, err)
		}
		if n == 0 {
			return Draw{}, fmt.Errorf("draw `%s`: cannot specify that zero %s were drawn", s, color)
		}
		var field *uint8
		switch color {
		case "red":
			field = &d.Red
		case "green":
			field = &d.Green
		case "blue":
			field = &d.Blue
		default:
			return Draw{}, fmt.Errorf("draw `%s`: color `%s` is not valid", s, color)
		}
		if *field != 0 {
			return Draw{}, fmt.Errorf("draw `%s`: multiple instances of %s", s, color)
		}
		*field = uint8(n)
	}
	if d == (Draw{}) {
		return Draw{}, fmt.Errorf("draw `%s`: no cubes were drawn", s)
	}
	return d, nil
}

// Possible reports whether every draw fits in bag.
func (g Game) Possible(bag Draw) bool {
	for _, d := range g.Draws {
		if d.Red > bag.Red || d.Green > bag.Green || d.Blue > bag.Blue {
			return false
		}
	}
	return true
}

// MinimumBag returns the fewest cubes of each colour that make every draw
// of g possible. A game without draws needs an empty bag.
func (g Game) MinimumBag() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// Power is the product of the three counts.
func (d Draw) Power() uint64 {
	return uint64(d.Red) * uint64(d.Green) * uint64(d.Blue)
}
