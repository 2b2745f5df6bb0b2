package comments

import (
	"encoding/json"
	"time"

	"github.com/2beens/workouttracker/pkg"
)

const AnonymousAuthor = "匿名"

// Document maps a session key, "<date>_<menu tab>" by convention, to its comments.
type Document = pkg.OrderedMap[[]Comment]

type Comment struct {
	Author string    `json:"author"`
	Text   string    `json:"text"`
	Time   time.Time `json:"time"`
}

func (c Comment) MarshalJSON() ([]byte, error) {
	type plain Comment
	return json.Marshal(struct {
		plain
		Time string `json:"time"`
	}{plain(c), pkg.FormatTimestamp(c.Time)})
}

type NewComment struct {
	Key    string `json:"key"`
	Author string `json:"author,omitempty"`
	Text   string `json:"text"`
}
