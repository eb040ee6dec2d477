package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"aoc2023/internal/registry"
	"aoc2023/internal/ui"
)

func newHelpCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "help [day]",
		Short: "List the registered days, or describe one day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Root().Help()
			}
			day, err := c.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			writeDay(c.stdout, day)
			return nil
		},
	}
}

// withDayList makes the root help output end with the day table.
func withDayList(c *cli, root *cobra.Command) {
	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		if cmd == root {
			fmt.Fprintln(cmd.OutOrStdout())
			writeDayList(cmd.OutOrStdout(), c.registry)
		}
	})
}

// writeDayList prints every registered day with its description.
func writeDayList(w io.Writer, r *registry.Registry) {
	table := ui.NewSimpleTable("Registered days", []string{"DAY", "DESCRIPTION"})
	for _, d := range r.Days() {
		table.AddRow(d.ID, d.Description)
	}
	fmt.Fprint(w, table.View(ui.StylesFor(w)))
}

func writeDay(w io.Writer, d registry.Day) {
	table := ui.NewSimpleTable(d.ID+" - "+d.Description, []string{"PART", "NAME"})
	for i, p := range d.Parts {
		table.AddRow(strconv.Itoa(i+1), p.Name)
	}
	fmt.Fprint(w, table.View(ui.StylesFor(w)))
}
