// Package days holds the built-in day table.
package days

import (
	"aoc2023/internal/days/day1"
	"aoc2023/internal/days/day2"
	"aoc2023/internal/days/day3"
	"aoc2023/internal/days/day4"
	"aoc2023/internal/registry"
)

var table = registry.MustNew(
	registry.Day{
		ID:          "day1",
		Description: "Trebuchet calibration values",
		Parts: [2]registry.Part{
			{Name: "digits", Solve: day1.Digits},
			{Name: "digits and spelled-out digits", Solve: day1.DigitsAndWords},
		},
	},
	registry.Day{
		ID:          "day2",
		Description: "Cube conundrum games",
		Parts: [2]registry.Part{
			{Name: "possible games", Solve: day2.PossibleGames},
			{Name: "sum of powers", Solve: day2.PowerSum},
		},
	},
	registry.Day{
		ID:          "day3",
		Description: "Gear ratios in the engine schematic",
		Parts: [2]registry.Part{
			{Name: "part numbers", Solve: day3.PartNumberSum},
			{Name: "gear ratios", Solve: day3.GearRatioSum},
		},
	},
	registry.Day{
		ID:          "day4",
		Description: "Scratchcards",
		Parts: [2]registry.Part{
			{Name: "points", Solve: day4.PointSum},
			{Name: "total cards", Solve: day4.CardCount},
		},
	},
)

// Registry returns the table of every built-in day.
func Registry() *registry.Registry { return table }
