package clock

import "time"

// System - настенные часы процесса.
type System struct{}

func New() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}
