// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import "errors"

// ErrNoWaker reports that no waker is installed on the calling goroutine.
// Raised by TakeWaker (as a panic value) and TryTakeWaker (as a return
// value) before the body runs.
//
// This signals a contract violation by the driver/computation pairing:
// a computation reading its waker while not being resumed inside a poll,
// or a nested take that already consumed the handle. It is not retryable
// and must propagate — defaulting it would leave the computation unable
// to register for re-wakeup.
var ErrNoWaker = errors.New("poll: no waker installed on this goroutine")

// ErrCompleted reports a poll of an adapter that already completed.
// Adapter.Poll panics with it; Adapter.TryPoll returns it.
// Guards against a driver bug; not retryable.
var ErrCompleted = errors.New("poll: adapter polled after completion")
