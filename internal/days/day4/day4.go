// Package day4 scores scratchcards.
package day4

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"aoc2023/internal/puzzle"
)

var (
	cardFormat = regexp.MustCompile(`^Card +[0-9]+: +([0-9 ]+?) +\| +([0-9 ]+)$`)
	spaces     = regexp.MustCompile(` +`)
)

// Card is one scratchcard.
type Card struct {
	Winning map[uint8]struct{}
	Ours    map[uint8]struct{}
}

// ParseCard parses a line such as "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseCard(s string) (Card, error) {
	m := cardFormat.FindStringSubmatch(s)
	if m == nil {
		return Card{}, fmt.Errorf("invalid scratchcard format: %s", s)
	}
	winning, err := parseNumbers(m[1])
	if err != nil {
		return Card{}, err
	}
	ours, err := parseNumbers(m[2])
	if err != nil {
		return Card{}, err
	}
	return Card{Winning: winning, Ours: ours}, nil
}

// NumberError reports a value that is not a number between 0 and 255.
type NumberError struct {
	Value string
	Err   error
}

func (e *NumberError) Error() string { return fmt.Sprintf("invalid number `%s`", e.Value) }

func (e *NumberError) Unwrap() error { return e.Err }

func parseNumbers(s string) (map[uint8]struct{}, error) {
	set := make(map[uint8]struct{})
	for _, f := range spaces.Split(s, -1) {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, &NumberError{Value: f, Err: err}
		}
		set[uint8(n)] = struct{}{}
	}
	return set, nil
}

// Matches counts our numbers that are also winning numbers.
func (c Card) Matches() int {
	n := 0
	for v := range c.Ours {
		if _, ok := c.Winning[v]; ok {
			n++
		}
	}
	return n
}

// Points is 0 without matches and 2^(matches-1) otherwise.
func (c Card) Points() (uint64, error) {
	n := c.Matches()
	if n == 0 {
		return 0, nil
	}
	if n > 64 {
		return 0, puzzle.Overflow("points for %d matches: 2^%d does not fit in 64 bits", n, n-1)
	}
	return 1 << (n - 1), nil
}

// PointSum sums the points of every card.
func PointSum(in puzzle.Input) (puzzle.Answer, error) {
	cards, err := parseCards(in)
	if err != nil {
		return nil, err
	}
	var sum uint64
	for _, c := range cards {
		p, err := c.Points()
		if err != nil {
			return nil, err
		}
		var ok bool
		if sum, ok = puzzle.CheckedAdd(sum, p); !ok {
			return nil, puzzle.Overflow("sum of points does not fit in 64 bits")
		}
	}
	return puzzle.Number(sum), nil
}

// CardCount plays the copy rules: every copy of a card with n matches wins
// one copy of each of the next n cards. It returns the total number of cards.
func CardCount(in puzzle.Input) (puzzle.Answer, error) {
	cards, err := parseCards(in)
	if err != nil {
		return nil, err
	}
	copies, err := Copies(cards)
	if err != nil {
		return nil, err
	}
	total, ok := puzzle.CheckedSum(copies)
	if !ok {
		return nil, puzzle.Overflow("total number of cards does not fit in 64 bits")
	}
	return puzzle.Number(total), nil
}

// Copies returns how many instances of each card end up being held.
// It fails with ErrOverflow if a count does not fit in 64 bits.
func Copies(cards []Card) ([]uint64, error) {
	copies := make([]uint64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			var ok bool
			if copies[j], ok = puzzle.CheckedAdd(copies[j], copies[i]); !ok {
				return nil, puzzle.Overflow("copies of card %d do not fit in 64 bits", j+1)
			}
		}
	}
	return copies, nil
}

func parseCards(in puzzle.Input) ([]Card, error) {
	lines, err := in.NonEmptyLines()
	if err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(lines))
	for _, line := range lines {
		c, err := ParseCard(line.Text)
		if err != nil {
			var numErr *NumberError
			if errors.As(err, &numErr) {
				return nil, puzzle.ParseFailure(line, numErr.Err, "invalid number `%s`", numErr.Value)
			}
			return nil, puzzle.Malformed(line, "%v", err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
