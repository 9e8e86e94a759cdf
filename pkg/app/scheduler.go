package app

import "time"

// Scheduler runs a function once after a delay and returns a cancel func.
// The Service keys the returned cancels by item id so a pending completion
// can be revoked before it fires.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// NewTimerScheduler returns the production scheduler backed by
// time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Immediate returns a scheduler that runs callbacks synchronously. CLI verbs
// use it because the animation window only means something on screen.
func Immediate() Scheduler {
	return immediateScheduler{}
}

type immediateScheduler struct{}

func (immediateScheduler) Schedule(_ time.Duration, fn func()) func() {
	fn()
	return func() {}
}
