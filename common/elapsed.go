package common

import (
	"fmt"
	"time"
)

type Duration time.Duration

func (it Duration) Seconds() float64 {
	return time.Duration(it).Seconds()
}

func (it Duration) String() string {
	return fmt.Sprintf("%.3fs", it.Seconds())
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(form, details...),
		started: time.Now(),
	}
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Elapsed()
	Debug("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Log("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Text() string {
	return fmt.Sprintf("%v %v", it.message, it.Elapsed())
}
