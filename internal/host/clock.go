package host

import (
	"time"

	"github.com/conneroisu/lispy/internal/value"
)

// NewClock builds the clock handle: `(clock 'now)` for wall-clock
// milliseconds since the epoch, `(clock 'monotonic)` for a process-local
// monotonic reading suitable only for measuring elapsed time.
func NewClock() *value.Dict {
	d := value.NewDict()
	start := time.Now()

	d.Set("now", value.NewProcedure("clock:now", func([]value.Value) (value.Value, error) {
		return value.Number(time.Now().UnixMilli()), nil
	}))

	d.Set("monotonic", value.NewProcedure("clock:monotonic", func([]value.Value) (value.Value, error) {
		return value.Number(time.Since(start).Seconds()), nil
	}))

	return d
}
