package menus

import (
	"github.com/2beens/workouttracker/pkg"
)

// Document maps a menu tab name (e.g. "Push") to its exercises, tabs kept in creation order.
type Document = pkg.OrderedMap[[]Exercise]

type Exercise struct {
	Name     string   `json:"name"`
	Body     string   `json:"body"`
	RepRange string   `json:"repRange"`
	Records  []Record `json:"records"`
}

// Record holds the sets of one training day.
type Record struct {
	Date string `json:"date"`
	Sets []Set  `json:"sets"`
}

// Set values are whatever the client typed, a number or a (possibly empty) string.
type Set struct {
	Kg   pkg.Amount `json:"kg"`
	Reps pkg.Amount `json:"reps"`
}

// Performed reports whether any weight or reps were logged for the set.
// Planned sets carry blank or zero values.
func (s Set) Performed() bool {
	return s.Kg.Float() != 0 || s.Reps.Float() != 0
}
