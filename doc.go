// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package poll adapts suspendable computations to cooperative polling.
//
// A suspendable computation is a resumable state machine: each resumption
// either pauses again or finishes with a result. [Adapter] wraps one such
// computation behind a uniform poll-until-ready interface, and carries the
// driver's wake handle ([Waker]) into every suspension point ambiently,
// because the resumption primitive has no parameter slot.
//
// # Architecture
//
//   - Computation: Any [Coroutine] — one Resume operation returning
//     (zero, false) while paused or (value, true) on completion. Computations
//     built on [code.hybscloud.com/kont] bridge via [FromEff]/[FromExpr],
//     pausing at each [Yield] effect.
//   - Non-blocking: A pending poll returns [code.hybscloud.com/iox.ErrWouldBlock].
//     Return immediately; re-poll after the waker fires.
//   - Ambient waker: A per-goroutine single-cell slot, written only by the
//     paired accessors [WithWaker] and [TakeWaker] under a strict stack
//     discipline with deferred restore on every exit path.
//   - Lifecycle: Adapter state via [code.hybscloud.com/atomix], detecting
//     polls after completion and re-entrant polls of the same adapter.
//
// # Polling
//
//   - [New]: Wrap a [Coroutine] in an address-stable [Adapter]
//   - [Adapter.Poll]: Resume once with a waker installed; panics with
//     [ErrCompleted] after completion
//   - [Adapter.TryPoll]: Non-panicking variant returning [ErrCompleted]
//   - [Adapter.PollAmbient]: Poll with the waker an enclosing poll installed
//   - [Adapter.Discard]: Cancel a paused adapter, releasing held resources
//   - [Adapter.Serial]: Monotonic identifier for driver bookkeeping
//
// The driver contract: call Poll repeatedly until it returns a nil error;
// never call again afterward. A fresh or reused waker may be supplied on
// each attempt. An adapter must be polled by one goroutine at a time, and
// never from within its own resumption.
//
// # Ambient waker slot
//
//   - [WithWaker]: Install a waker for the duration of a body, restoring
//     the previous slot value afterward (normally or on panic unwind)
//   - [TakeWaker]: Retrieve the installed waker, holding the slot empty
//     while the body runs so a nested take fails instead of aliasing the
//     handle; panics with [ErrNoWaker] when the slot is empty
//   - [TryTakeWaker]: Non-panicking variant returning [ErrNoWaker]
//
// Install and take nest as a pure stack: each call restores the slot to its
// immediately prior value, so nested polls compose. The slot is scoped to
// the calling goroutine; distinct goroutines may drive distinct adapters
// concurrently without interference.
//
// # kont bridge
//
//   - [Yield]: Effect operation pausing the computation with no value
//   - [YieldThen], [ExprYieldThen]: Fused yield-then-continue constructors
//   - [YieldLoop], [ExprYieldLoop]: Iterative computations pausing once per
//     iteration
//   - [FromEff], [FromExpr]: Wrap a kont computation as an [Adapter]
//
// A bridged computation reads its waker with [TakeWaker] inside its own
// closures; they execute during Resume, under the WithWaker the enclosing
// Poll installed. A suspension on any operation other than [Yield] panics:
// effect handling belongs to the computation, not to the adapter.
//
// # Errors
//
//   - [ErrNoWaker]: No waker installed on this goroutine. Contract violation
//     by the driver/computation pairing; propagates rather than defaulting,
//     since swallowing it would leave the computation unable to register
//     for re-wakeup.
//   - [ErrCompleted]: Poll of an already-completed adapter (driver bug).
//
// Both are programmer-error signals with no retry semantics. Panics raised
// inside the wrapped computation pass through Poll untouched; the slot and
// adapter state are still restored by deferred guards.
//
// # Example
//
//	ad := poll.FromEff(poll.YieldThen(poll.YieldThen(kont.Pure(42))))
//	for {
//		v, err := ad.Poll(w)
//		if err == nil {
//			return v // 42, after two pending polls
//		}
//		// iox.ErrWouldBlock: park until w fires, then re-poll
//	}
package poll
