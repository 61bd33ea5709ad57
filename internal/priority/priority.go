// Package priority holds the priority label set shared by goals and tasks,
// and the rank mapping used to order them. Keeping the rank expression in
// one place guarantees the goal listing, the task listing and the focus
// selector can never disagree on what "high" means.
package priority

import "fmt"

type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Rank maps a priority label to its sort rank. Lower rank means higher
// urgency; unset or unrecognized labels sink to the bottom.
func Rank(p Priority) int {
	switch p {
	case High:
		return 1
	case Medium:
		return 2
	case Low:
		return 3
	default:
		return 4
	}
}

// RankExpr returns the SQL CASE expression computing Rank for a column.
// NULL and unknown labels both fall through to 4, which also covers the
// absent-goal rows produced by a LEFT JOIN.
func RankExpr(column string) string {
	return fmt.Sprintf(
		"CASE %s WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END",
		column,
	)
}
