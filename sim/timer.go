package sim

import "time"

type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
	}
}

func (t *Timer) Update(elapsed time.Duration) {
	t.currentTime += elapsed
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}

// Remaining is zero once the timer is ready.
func (t *Timer) Remaining() time.Duration {
	return max(t.targetTime-t.currentTime, 0)
}
