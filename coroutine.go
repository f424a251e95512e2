// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// Coroutine is a suspendable computation producing a value of type A
// across repeated resumptions.
//
// Once Resume has reported completion it must not be called again; the
// adapter enforces this at its own boundary, not here. A coroutine's
// internal state may hold references into itself across a Resume call,
// so implementations are addressed through this interface only and are
// never copied by the adapter.
//
// A coroutine may additionally implement
//
//	interface{ Discard() }
//
// to release retained resources when discarded while paused.
type Coroutine[A any] interface {
	// Resume advances the computation by one step.
	// Returns (zero, false) if the computation paused,
	// or (value, true) if it completed with value.
	Resume() (A, bool)
}

// CoroutineFunc adapts a plain step function to the Coroutine interface.
// The function typically closes over its own saved state.
type CoroutineFunc[A any] func() (A, bool)

// Resume calls f.
func (f CoroutineFunc[A]) Resume() (A, bool) { return f() }
