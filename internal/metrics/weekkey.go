package metrics

import (
	"fmt"
	"math"
	"time"
)

// WeekKey computes the year-W{week} key for a point in time. The week number
// uses the original ceil((days since Jan 1 + Jan-1 weekday + 1)/7) rule with
// Sunday as weekday 0. It is not true ISO-8601 numbering; the pending-review
// matching depends on this exact output, so it is preserved as-is.
func WeekKey(t time.Time) string {
	janFirst := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.Sub(janFirst).Hours() / 24
	week := int(math.Ceil((days + float64(janFirst.Weekday()) + 1) / 7))
	return fmt.Sprintf("%d-W%02d", t.Year(), week)
}
