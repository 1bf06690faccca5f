// Package clock abstracts wall-clock time so time-bucketed statistics can be
// tested deterministically.
package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock in UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

var Module = fx.Module("clock",
	fx.Provide(func() Clock { return System{} }),
)
