package clock

import "time"

// Clock provides time to the application. Record timestamps and review
// creation times come from here so tests can pin them.
type Clock interface {
	Now() time.Time
}
