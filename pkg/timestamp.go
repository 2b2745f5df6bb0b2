package pkg

import "time"

// TimestampLayout always writes milliseconds, "2024-02-08T10:00:00.120Z".
// Clients compare and sort these strings, so the width must not vary.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
