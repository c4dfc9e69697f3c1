package kociemba

import "strings"

// Notation renders a move in standard cube notation: a face letter
// optionally suffixed with 2 (double turn) or ' (counter-clockwise).
func (m Move) Notation() string {
	switch m.Power {
	case Half:
		return m.Axis.String() + "2"
	case CounterQuarter:
		return m.Axis.String() + "'"
	default:
		return m.Axis.String()
	}
}

// FormatMoves joins a solution into a space-separated notation string,
// e.g. "R U R' U' F2".
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
