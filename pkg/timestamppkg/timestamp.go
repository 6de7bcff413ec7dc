// Package timestamppkg renders times as Discord timestamp markup.
//
// Discord clients render <t:epoch:style> in the viewer's locale and timezone.
package timestamppkg

import (
	"fmt"
	"time"
)

// Format selects the style in which the client renders the timestamp.
type Format string

// Timestamp styles understood by Discord clients.
const (
	ShortTime               Format = "t"
	LongTime                Format = "T"
	ShortDate               Format = "d"
	LongDate                Format = "D"
	LongDateShortTime       Format = "f"
	LongDateDayAndShortTime Format = "F"
	Relative                Format = "R"
)

// Discord formats t as Discord timestamp markup.
func Discord(t time.Time, format Format) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}
