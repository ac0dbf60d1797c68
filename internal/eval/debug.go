package eval

import (
	"strings"
	"sync/atomic"

	"github.com/juju/loggo"

	"github.com/conneroisu/lispy/internal/value"
)

var (
	debugEnabled atomic.Bool
	callDepth    atomic.Int32
	tracer       = loggo.GetLogger("lispy.eval")
)

// SetDebug toggles the indented (expr -> value) trace from spec.md §4.C
// "Debug mode". Toggling never changes what Evaluate returns, only
// whether it logs along the way.
func SetDebug(flag bool) {
	debugEnabled.Store(flag)
	if flag {
		_ = loggo.ConfigureLoggers("lispy.eval=TRACE")
	} else {
		_ = loggo.ConfigureLoggers("lispy.eval=WARNING")
	}
}

// Debug reports whether debug mode is active, for the kernel:debug? builtin.
func Debug() bool { return debugEnabled.Load() }

func traceEval(depth int32, expr value.Value) {
	if debugEnabled.Load() {
		tracer.Tracef("%s%s", strings.Repeat("  ", int(depth)), expr.String())
	}
}

func traceResult(depth int32, result value.Value) {
	if debugEnabled.Load() {
		tracer.Tracef("%s-> %s", strings.Repeat("  ", int(depth)), result.String())
	}
}
