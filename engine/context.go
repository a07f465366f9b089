// Package engine implements the iterative hachure placement engine:
// the contour-driven spacing controller, the streamline tracer, and
// the topological contour model that together sweep a DEM's contour
// stack low to high and produce down-slope hachure polylines.
package engine

import (
	"fmt"
	"time"
)

// LogCategory classifies a single log entry produced during a build.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // a progress log entry
	LogWarning                         // a per-segment anomaly absorbed locally (see spec §7)
	LogError                           // a structural failure
)

// TimerLabel names one of the named performance timers a Context can
// accumulate across a run.
type TimerLabel int

const (
	TimerTotal TimerLabel = iota
	TimerContourBuild
	TimerSplit
	TimerTrace
	TimerClip
	maxTimers
)

// Contexter is implemented by a concrete log/timer sink. Context
// dispatches to it only when logging/timers are enabled, mirroring
// the teacher's split between the enable/disable wrapper and the
// storage implementation.
type Contexter interface {
	doLog(category LogCategory, msg string)
	doResetLog()
	doStartTimer(label TimerLabel)
	doStopTimer(label TimerLabel)
	doAccumulatedTime(label TimerLabel) time.Duration
	doResetTimers()
}

// Context provides optional logging and performance tracking for an
// engine run. A nil *Context disables both; Run treats it the same
// as one constructed with logging/timers turned off.
type Context struct {
	logEnabled   bool
	timerEnabled bool
	Contexter
}

// NewContext returns a Context wrapping ctxer, with logging and
// timers enabled according to state.
func NewContext(state bool, ctxer Contexter) *Context {
	return &Context{logEnabled: state, timerEnabled: state, Contexter: ctxer}
}

func (c *Context) log(category LogCategory, format string, v ...interface{}) {
	if c == nil || !c.logEnabled {
		return
	}
	c.doLog(category, fmt.Sprintf(format, v...))
}

// Progressf logs a progress message.
func (c *Context) Progressf(format string, v ...interface{}) { c.log(LogProgress, format, v...) }

// Warningf logs an absorbed per-segment anomaly.
func (c *Context) Warningf(format string, v ...interface{}) { c.log(LogWarning, format, v...) }

// Errorf logs a structural failure.
func (c *Context) Errorf(format string, v ...interface{}) { c.log(LogError, format, v...) }

// ResetLog clears all log entries.
func (c *Context) ResetLog() {
	if c != nil && c.logEnabled {
		c.doResetLog()
	}
}

// StartTimer starts the named timer.
func (c *Context) StartTimer(label TimerLabel) {
	if c != nil && c.timerEnabled {
		c.doStartTimer(label)
	}
}

// StopTimer stops the named timer, accumulating elapsed time.
func (c *Context) StopTimer(label TimerLabel) {
	if c != nil && c.timerEnabled {
		c.doStopTimer(label)
	}
}

// AccumulatedTime returns the total time accumulated on label, or 0 if
// timers are disabled or the context is nil.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if c != nil && c.timerEnabled {
		return c.doAccumulatedTime(label)
	}
	return 0
}

// ResetTimers clears all accumulated timers.
func (c *Context) ResetTimers() {
	if c != nil && c.timerEnabled {
		c.doResetTimers()
	}
}
