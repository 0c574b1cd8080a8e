package ports

import "time"

// Clock supplies the current time. Injected so handlers and jobs can be
// tested with a frozen clock.
type Clock interface {
	Now() time.Time
}
