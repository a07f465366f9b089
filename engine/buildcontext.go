package engine

import (
	"fmt"
	"time"
)

const maxMessages = 1000

// BuildStats counts per-segment anomalies absorbed during a run (see
// spec §7): conditions that are never errors, only logged/counted.
type BuildStats struct {
	EmptyIntersections int // ring/hachure intersection returned empty or a geometry collection; no engine code increments it
	ZeroUnitDashes      int // dash planner rounded length/(2*spacing) down to zero
	RejectedSeeds       int // tracer seed sampled aspect == 0
	TracerCapped        int // trace stopped by max_tracer_steps, not a stop rule
}

// BuildContext is a concrete, in-memory Contexter, wrapped by
// NewContext. When it backs the Context handed to New, the engine
// counts into its Stats. It accumulates log messages and
// per-timer durations, in the same fixed-capacity style as the
// teacher's recast.BuildContext.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int

	Stats BuildStats
}

// NewBuildContext returns a BuildContext ready for use with NewContext.
func NewBuildContext() *BuildContext {
	return &BuildContext{}
}

func (c *BuildContext) doResetLog() {
	c.numMessages = 0
}

func (c *BuildContext) doLog(category LogCategory, msg string) {
	if c.numMessages >= maxMessages {
		return
	}
	prefix := "PROG"
	switch category {
	case LogWarning:
		prefix = "WARN"
	case LogError:
		prefix = "ERR"
	}
	c.messages[c.numMessages] = prefix + " " + msg
	c.numMessages++
}

func (c *BuildContext) doResetTimers() {
	for i := range c.accTime {
		c.accTime[i] = 0
	}
}

func (c *BuildContext) doStartTimer(label TimerLabel) {
	c.startTime[label] = time.Now()
}

func (c *BuildContext) doStopTimer(label TimerLabel) {
	c.accTime[label] += time.Since(c.startTime[label])
}

func (c *BuildContext) doAccumulatedTime(label TimerLabel) time.Duration {
	return c.accTime[label]
}

// DumpLog prints the header followed by every captured log message.
func (c *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < c.numMessages; i++ {
		fmt.Println(c.messages[i])
	}
}

// LogCount returns the number of captured messages.
func (c *BuildContext) LogCount() int { return c.numMessages }

// LogText returns the i-th captured message.
func (c *BuildContext) LogText(i int) string { return c.messages[i] }
