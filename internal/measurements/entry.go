package measurements

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/2beens/workouttracker/pkg"
)

// Entry is one day of body measurements. The values are kept the way the
// client sent them, a number or a string, blank ones as "".
type Entry struct {
	Date      string     `json:"date"`
	Weight    pkg.Amount `json:"weight"`
	Waist     pkg.Amount `json:"waist"`
	Chest     pkg.Amount `json:"chest"`
	Arm       pkg.Amount `json:"arm"`
	Thigh     pkg.Amount `json:"thigh"`
	Hip       pkg.Amount `json:"hip"`
	Memo      string     `json:"memo"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	return json.Marshal(struct {
		plain
		UpdatedAt string `json:"updatedAt"`
	}{plain(e), pkg.FormatTimestamp(e.UpdatedAt)})
}

type EntryInput struct {
	Date   string     `json:"date"`
	Weight pkg.Amount `json:"weight"`
	Waist  pkg.Amount `json:"waist"`
	Chest  pkg.Amount `json:"chest"`
	Arm    pkg.Amount `json:"arm"`
	Thigh  pkg.Amount `json:"thigh"`
	Hip    pkg.Amount `json:"hip"`
	Memo   string     `json:"memo"`
	// UpdatedAt is accepted so clients can post back a listed entry, the server stamps its own.
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (in EntryInput) toEntry(now time.Time) Entry {
	return Entry{
		Date:      in.Date,
		Weight:    in.Weight.OrEmpty(),
		Waist:     in.Waist.OrEmpty(),
		Chest:     in.Chest.OrEmpty(),
		Arm:       in.Arm.OrEmpty(),
		Thigh:     in.Thigh.OrEmpty(),
		Hip:       in.Hip.OrEmpty(),
		Memo:      in.Memo,
		UpdatedAt: now,
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"2006.01.02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
}

func parseDate(date string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compareDatesDesc orders newer dates first. Dates which cannot be parsed go
// after all parseable ones, in descending string order among themselves.
func compareDatesDesc(a, b string) int {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	switch {
	case okA && okB:
		return tb.Compare(ta)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(b, a)
	}
}
