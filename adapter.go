// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Adapter lifecycle states. polling marks a resumption in flight and
// exists to detect re-entrant polls, not to license concurrent ones.
const (
	stateActive uint32 = iota
	statePolling
	stateCompleted
)

// Adapter drives one Coroutine to completion under a cooperative driver.
// It owns the coroutine for its entire lifetime and is address-stable:
// an Adapter is created by New, referenced by pointer, and must not be
// copied once polling has begun.
//
// An Adapter has no internal synchronization. It must be polled by one
// goroutine at a time, and never from within its own resumption.
type Adapter[A any] struct {
	co     Coroutine[A]
	state  atomix.Uint32
	serial Serial
}

// New wraps a coroutine in an Adapter.
func New[A any](co Coroutine[A]) *Adapter[A] {
	return &Adapter[A]{co: co, serial: nextSerial()}
}

// Serial returns the serial number assigned to this adapter.
func (ad *Adapter[A]) Serial() Serial {
	return ad.serial
}

// Poll resumes the computation once, with w installed as the calling
// goroutine's ambient waker for the duration of the resumption.
//
// Returns (value, nil) when the computation completed; the adapter must
// not be polled again. Returns (zero, iox.ErrWouldBlock) when it paused:
// return to the driver immediately and re-poll after w fires.
//
// Panics with ErrCompleted if the adapter already completed, and panics
// on a re-entrant poll. A panic raised by the computation itself passes
// through untouched, with the waker slot and adapter state restored.
func (ad *Adapter[A]) Poll(w Waker) (A, error) {
	if !ad.state.CompareAndSwap(stateActive, statePolling) {
		if ad.state.Load() == stateCompleted {
			panic(ErrCompleted)
		}
		panic("poll: re-entrant poll of the same adapter")
	}
	return ad.resume(w)
}

// TryPoll is the defensive variant of Poll.
// Returns (zero, ErrCompleted) instead of panicking when the adapter
// already completed or was discarded. A re-entrant poll still panics:
// it is a driver bug in every harness, never a probe.
func (ad *Adapter[A]) TryPoll(w Waker) (A, error) {
	if !ad.state.CompareAndSwap(stateActive, statePolling) {
		if ad.state.Load() == stateCompleted {
			var zero A
			return zero, ErrCompleted
		}
		panic("poll: re-entrant poll of the same adapter")
	}
	return ad.resume(w)
}

// PollAmbient polls with the waker an enclosing poll installed.
// A nested suspendable computation uses it to resume an inner adapter
// with the handle its own resumption received implicitly.
//
// Panics with ErrNoWaker when no enclosing poll is in progress on the
// calling goroutine.
func (ad *Adapter[A]) PollAmbient() (A, error) {
	r := TakeWaker(func(w Waker) pollResult[A] {
		value, err := ad.Poll(w)
		return pollResult[A]{value: value, err: err}
	})
	return r.value, r.err
}

// pollResult carries one poll outcome through the generic accessors.
type pollResult[A any] struct {
	value A
	err   error
}

// resumeStep carries one resumption outcome through WithWaker.
type resumeStep[A any] struct {
	value A
	done  bool
}

// resume runs one resumption under the waker slot.
// On entry the state is statePolling; the deferred store restores
// stateActive even when the computation panics through Resume.
func (ad *Adapter[A]) resume(w Waker) (A, error) {
	next := stateActive
	defer func() { ad.state.Store(next) }()

	s := WithWaker(w, func() resumeStep[A] {
		value, done := ad.co.Resume()
		return resumeStep[A]{value: value, done: done}
	})
	if s.done {
		next = stateCompleted
		return s.value, nil
	}
	var zero A
	return zero, iox.ErrWouldBlock
}

// Discard cancels a paused adapter: the driver stops polling and drops
// it. The adapter transitions to completed, and the coroutine's retained
// resources are released through its structural Discard, if implemented.
// Discarding a completed or already-discarded adapter is a no-op.
func (ad *Adapter[A]) Discard() {
	if !ad.state.CompareAndSwap(stateActive, stateCompleted) {
		return
	}
	if d, ok := ad.co.(interface{ Discard() }); ok {
		d.Discard()
	}
}
