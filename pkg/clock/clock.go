package clock

import (
	"time"
)

// Clock is an interface around time.Now(). It has been added to aid
// unit testing of code that updates timestamps of files.
type Clock interface {
	// Return the current time of day. Equivalent to time.Now().
	Now() time.Time
}
