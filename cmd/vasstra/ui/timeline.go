package ui

import (
	"strings"

	"vasstra/internal/order"
)

// Timeline renders an order progress timeline as a vertical checklist.
// Reached steps get a filled marker, the current step is highlighted,
// steps not yet reached stay muted.
func Timeline(steps []order.Step, styles Styles) string {
	var sb strings.Builder

	for i, step := range steps {
		marker := "○"
		label := titleCase(string(step.Status))

		switch {
		case step.Current:
			sb.WriteString(styles.Selected.Render("● " + label))
		case step.Reached:
			sb.WriteString(styles.Success.Render("● " + label))
		default:
			sb.WriteString(styles.Muted.Render(marker + " " + label))
		}
		sb.WriteString("\n")

		if i < len(steps)-1 {
			if step.Reached && !step.Current {
				sb.WriteString(styles.Success.Render("│"))
			} else {
				sb.WriteString(styles.Muted.Render("│"))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// TrackingHistory renders courier updates, newest last, as reported.
func TrackingHistory(updates []order.TrackingUpdate, styles Styles) string {
	if len(updates) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Tracking history"))
	sb.WriteString("\n")

	for _, u := range updates {
		line := u.Message
		if line == "" {
			line = titleCase(u.Status)
		}
		if u.Location != "" {
			line += " - " + u.Location
		}
		sb.WriteString(styles.Muted.Render(u.Timestamp.Format("02 Jan 2006 15:04")))
		sb.WriteString("  ")
		sb.WriteString(styles.Body.Render(line))
		sb.WriteString("\n")
	}

	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
