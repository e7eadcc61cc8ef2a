package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Chicago")
	if err != nil {
		panic(err)
	}
}

// force timezone to match the Houston store because minute-boundary
// scheduling and stock text both assume store-local wall-clock time,
// regardless of where the server itself ends up running
func Now() time.Time {
	return time.Now().In(Location)
}
