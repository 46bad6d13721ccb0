package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/sherine-k/onboarding/pkg/simulation"
)

const (
	chartWidth  = 80
	chartHeight = 12
)

// Generator generates ASCII reports of a run
type Generator struct {
	width  int
	height int
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		width:  chartWidth,
		height: chartHeight,
	}
}

// GenerateActivityChart generates an ASCII histogram of interaction messages over simulated time
func (g *Generator) GenerateActivityChart(records []simulation.Record, duration time.Duration) string {
	var messages []simulation.Record
	for _, r := range records {
		if r.IsMessage() {
			messages = append(messages, r)
		}
	}
	if len(messages) == 0 || duration <= 0 {
		return "No messages to display"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\n")
	sb.WriteString("Messages Over Time\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	// Bucket messages into one column per character
	columns := g.width - 6
	type bucket struct {
		welcomes int
		others   int
	}
	buckets := make([]bucket, columns)
	for _, m := range messages {
		col := int(float64(m.Time) / float64(duration) * float64(columns))
		if col >= columns {
			col = columns - 1
		}
		if m.Kind == string(simulation.EventMessageWelcome) {
			buckets[col].welcomes++
		} else {
			buckets[col].others++
		}
	}

	maxCount := 0
	for _, b := range buckets {
		if total := b.welcomes + b.others; total > maxCount {
			maxCount = total
		}
	}

	rows := maxCount
	if rows > g.height {
		rows = g.height
	}
	scale := float64(maxCount) / float64(rows)

	// Build the chart from top to bottom
	for row := rows; row >= 1; row-- {
		threshold := float64(row) * scale
		sb.WriteString(fmt.Sprintf("%3d |", int(threshold+0.5)))

		for _, b := range buckets {
			total := float64(b.welcomes + b.others)
			switch {
			case float64(b.welcomes) >= threshold:
				sb.WriteString("W")
			case total >= threshold:
				sb.WriteString("█")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis
	sb.WriteString("    +")
	sb.WriteString(strings.Repeat("-", columns))
	sb.WriteString("\n")

	// X-axis labels - a marker at every quarter of the run
	labelLine := make([]rune, columns)
	for i := range labelLine {
		labelLine[i] = ' '
	}
	for quarter := 0; quarter <= 4; quarter++ {
		position := quarter * (columns - 1) / 4
		marker := FormatDuration(duration * time.Duration(quarter) / 4)
		if position+len(marker) > columns {
			position = columns - len(marker)
		}
		for i, ch := range marker {
			labelLine[position+i] = ch
		}
	}
	sb.WriteString("    ")
	sb.WriteString(string(labelLine))
	sb.WriteString("\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("Legend:\n")
	sb.WriteString("    W - Welcome messages\n")
	sb.WriteString("    █ - Introduce and greet messages\n")
	sb.WriteString("\n")

	return sb.String()
}

// GenerateEventSummary generates a summary of triggers and messages
func (g *Generator) GenerateEventSummary(records []simulation.Record) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Event Summary\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	// Group records by kind
	byKind := make(map[string]int)
	messages := 0
	for _, r := range records {
		byKind[r.Kind]++
		if r.IsMessage() {
			messages++
		}
	}

	sb.WriteString(fmt.Sprintf("Total Triggers: %d\n", len(records)-messages))
	sb.WriteString(fmt.Sprintf("  - Entities Joined: %d\n", byKind[string(simulation.TriggerEntityInit)]))
	sb.WriteString(fmt.Sprintf("  - Introductions Requested: %d\n", byKind[string(simulation.TriggerEntityIntroduce)]))
	sb.WriteString(fmt.Sprintf("  - Greetings Requested: %d\n", byKind[string(simulation.TriggerFriendsGreet)]))
	sb.WriteString(fmt.Sprintf("Total Messages: %d\n", messages))
	sb.WriteString(fmt.Sprintf("  - Welcome: %d\n", byKind[string(simulation.EventMessageWelcome)]))
	sb.WriteString(fmt.Sprintf("  - Introduce: %d\n", byKind[string(simulation.EventMessageIntroduce)]))
	sb.WriteString(fmt.Sprintf("  - Greet: %d\n", byKind[string(simulation.EventMessageGreet)]))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateFailures generates a list of activity failures
func (g *Generator) GenerateFailures(failures []error) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Failures\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	if len(failures) == 0 {
		sb.WriteString("No failures!\n")
		return sb.String()
	}

	for _, failure := range failures {
		sb.WriteString(fmt.Sprintf("- %s\n", failure))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total Failures: %d\n", len(failures)))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateDetailedTimeline generates a detailed timeline of triggers and messages
func (g *Generator) GenerateDetailedTimeline(records []simulation.Record, limit int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Detailed Timeline")
	if limit > 0 && limit < len(records) {
		sb.WriteString(fmt.Sprintf(" (showing first %d records)", limit))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	displayCount := len(records)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for i := 0; i < displayCount; i++ {
		r := records[i]

		typeIcon := " "
		switch r.Kind {
		case string(simulation.TriggerEntityInit):
			typeIcon = "+"
		case string(simulation.TriggerEntityIntroduce), string(simulation.TriggerFriendsGreet):
			typeIcon = ">"
		case string(simulation.EventMessageWelcome):
			typeIcon = "W"
		case string(simulation.EventMessageIntroduce):
			typeIcon = "I"
		case string(simulation.EventMessageGreet):
			typeIcon = "G"
		}

		sb.WriteString(fmt.Sprintf("[%8s] %s %-17s %s\n",
			FormatDuration(r.Time),
			typeIcon,
			r.Kind,
			r.Message))
	}

	if limit > 0 && limit < len(records) {
		sb.WriteString(fmt.Sprintf("\n... and %d more records\n", len(records)-limit))
	}

	sb.WriteString("\n")

	return sb.String()
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
