package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/workouttracker/internal/comments"
	"github.com/2beens/workouttracker/internal/menus"
)

const (
	utf8BOM = "\uFEFF"

	RowTypeRecord  = "RECORD"
	RowTypeComment = "COMMENT"
)

var Header = []string{
	"type", "user", "date", "menu", "exercise", "bodyPart",
	"setNum", "kg", "reps", "repRange", "author", "comment",
}

// File is a finished CSV export, ready to be downloaded.
type File struct {
	Filename string
	Data     []byte
}

func Filename(user string, at time.Time) string {
	return fmt.Sprintf("workout_%s_%s.csv", user, at.UTC().Format("2006-01-02"))
}

// WriteCSV flattens the training records and the comments of the user into rows.
// Record rows come first, in tab, exercise, record and set order; sets without
// any weight or reps are left out. Comment rows follow in thread order.
func WriteCSV(user string, menuDoc *menus.Document, commentDoc *comments.Document) []byte {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	writeRow(&buf, Header)

	if menuDoc != nil {
		for tab, exercises := range menuDoc.All() {
			for _, ex := range exercises {
				for _, rec := range ex.Records {
					for i, set := range rec.Sets {
						if !set.Performed() {
							continue
						}
						writeRow(&buf, []string{
							RowTypeRecord, user, rec.Date, tab, ex.Name, ex.Body,
							strconv.Itoa(i + 1), set.Kg.Display(), set.Reps.Display(), ex.RepRange,
							"", "",
						})
					}
				}
			}
		}
	}

	if commentDoc != nil {
		for key, thread := range commentDoc.All() {
			// "2024-02-08_Push_Heavy" -> "2024-02-08", "Push_Heavy"
			date, menu, _ := strings.Cut(key, "_")
			for _, c := range thread {
				writeRow(&buf, []string{
					RowTypeComment, user, date, menu, "", "",
					"", "", "", "",
					c.Author, c.Text,
				})
			}
		}
	}

	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(quoteField(field))
	}
	buf.WriteByte('\n')
}

// quoteField quotes only fields holding a comma, a double quote or a line feed,
// doubling the quotes inside. Everything else is written as is.
func quoteField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
