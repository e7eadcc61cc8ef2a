package gpumon

import "time"

// NextWake returns the next wall-clock minute boundary that is an
// exact multiple of the interval: with a 5 minute interval a cycle
// ending at 10:17:32 wakes at 10:20:00, one ending at 10:59:40 with a
// 1 minute interval wakes at 11:00:00. intervals that don't divide 60
// re-anchor at the top of each hour, so a 7 minute interval walks
// :00, :07, :14, ... and snaps back to :00 after :56.
func NextWake(now time.Time, intervalMinutes int) time.Time {
	next := (now.Minute()/intervalMinutes + 1) * intervalMinutes
	if next >= 60 {
		next = 60
	}
	top := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	return top.Add(time.Duration(next) * time.Minute)
}
