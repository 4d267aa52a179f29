// Package ui holds the heads-up display shared by the snake hosts.
package ui

import (
	"fmt"

	"snake/internal/core"
)

// ScoreLine is the header shown above the board.
func ScoreLine(score, highScore int, paused bool) string {
	line := fmt.Sprintf("Score = %d, Highscore = %d", score, highScore)
	if paused {
		line += "  [paused]"
	}
	return line
}

// ParameterLines flattens a parameter snapshot into "Label: value" lines
// with a heading per group.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for i, g := range snap.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// HelpLines lists the host key bindings.
func HelpLines() []string {
	return []string{
		"arrows/WASD  steer",
		"space        pause",
		"n            single step",
		"r            restart",
		"esc/q        quit",
	}
}
