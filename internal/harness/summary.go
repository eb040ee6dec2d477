package harness

import (
	"fmt"
	"io"
	"strings"
	"time"

	"aoc2023/internal/ui"
)

// WriteSummary writes the human-readable result of r to w: a header line,
// one line per part in variant order, and the outcome.
func WriteSummary(w io.Writer, r *Report) error {
	styles := ui.StylesFor(w)
	var sb strings.Builder

	header := r.Day
	if r.Description != "" {
		header += " - " + r.Description
	}
	sb.WriteString(styles.Title.Render(header))
	sb.WriteString(styles.Muted.Render(fmt.Sprintf(" (%s)", r.InputPath)))
	sb.WriteString("\n")

	for _, p := range r.Parts {
		sb.WriteString(styles.Label.Render(fmt.Sprintf("Part %d (%s):", p.Index, p.Name)))
		sb.WriteString(" ")
		if p.OK() {
			sb.WriteString(styles.Body.Render(p.Answer.String()))
		} else {
			sb.WriteString(styles.Error.Render("failed"))
		}
		sb.WriteString(styles.Muted.Render(fmt.Sprintf(" [%s]", formatDuration(p.Duration))))
		sb.WriteString("\n")
	}

	outcome := r.Outcome()
	style := styles.Success
	switch outcome {
	case PartialFailure:
		style = styles.Warning
	case TotalFailure, LoadFailure:
		style = styles.Error
	}
	sb.WriteString(styles.Label.Render("Outcome:"))
	sb.WriteString(" ")
	sb.WriteString(style.Render(outcome.String()))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteErrors writes one diagnostic line per failure in r. Nothing is
// written for a successful run.
func WriteErrors(w io.Writer, r *Report) error {
	styles := ui.StylesFor(w)
	var sb strings.Builder
	prefix := styles.Error.Render("error:")

	if r.LoadErr != nil {
		fmt.Fprintf(&sb, "%s %s: cannot load input: %v\n", prefix, r.Day, r.LoadErr)
	}
	for _, p := range r.Failed() {
		fmt.Fprintf(&sb, "%s %s part %d (%s): %v\n", prefix, r.Day, p.Index, p.Name, p.Err)
	}
	if sb.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func formatDuration(d time.Duration) string {
	if d >= time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.String()
}
