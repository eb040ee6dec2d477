// Package day1 recovers calibration values from lines of text.
//
// Each non-empty line yields a two-digit number made of its first and last
// digit. Part one only counts the ASCII digits 1-9; part two also counts the
// spelled-out words "one" to "nine", which may overlap ("eightwo").
package day1

import (
	"strings"

	"aoc2023/internal/puzzle"
)

// Digits sums the calibration values using ASCII digits only.
func Digits(in puzzle.Input) (puzzle.Answer, error) {
	return sumCalibration(in, FirstLastDigit)
}

// DigitsAndWords sums the calibration values counting spelled-out digits too.
func DigitsAndWords(in puzzle.Input) (puzzle.Answer, error) {
	return sumCalibration(in, FirstLastDigitOrWord)
}

func sumCalibration(in puzzle.Input, find func(string) (first, last int, ok bool)) (puzzle.Answer, error) {
	lines, err := in.NonEmptyLines()
	if err != nil {
		return nil, err
	}
	var values []uint64
	for _, line := range lines {
		first, last, ok := find(line.Text)
		if !ok {
			return nil, puzzle.Malformed(line, "`%s` does not contain any digits", line.Text)
		}
		values = append(values, uint64(first*10+last))
	}
	sum, ok := puzzle.CheckedSum(values)
	if !ok {
		return nil, puzzle.Overflow("sum of calibration values does not fit in 64 bits")
	}
	return puzzle.Number(sum), nil
}

// FirstLastDigit returns the first and last digit 1-9 in s. Zero and any
// other character are ignored. A single digit is both first and last.
func FirstLastDigit(s string) (first, last int, ok bool) {
	for i := 0; i < len(s); i++ {
		if d, isDigit := digitAt(s, i); isDigit {
			if !ok {
				first, ok = d, true
			}
			last = d
		}
	}
	return first, last, ok
}

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// FirstLastDigitOrWord is FirstLastDigit that also accepts the words "one"
// to "nine". Words may share letters with their neighbours.
func FirstLastDigitOrWord(s string) (first, last int, ok bool) {
	for i := 0; i < len(s); i++ {
		if d, found := digitOrWordAt(s, i); found {
			first, ok = d, true
			break
		}
	}
	if !ok {
		return 0, 0, false
	}
	for i := len(s) - 1; i >= 0; i-- {
		if d, found := digitOrWordAt(s, i); found {
			last = d
			break
		}
	}
	return first, last, true
}

func digitAt(s string, i int) (int, bool) {
	if c := s[i]; c >= '1' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}

func digitOrWordAt(s string, i int) (int, bool) {
	if d, ok := digitAt(s, i); ok {
		return d, true
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
