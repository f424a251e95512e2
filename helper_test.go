// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/poll"
)

// countWaker counts wake requests. Polls borrow it; nothing stores it.
type countWaker struct {
	wakes int
}

func (w *countWaker) Wake() { w.wakes++ }

// yieldN builds a coroutine that pauses n times before completing with v.
func yieldN[A any](n int, v A) poll.CoroutineFunc[A] {
	remaining := n
	return func() (A, bool) {
		if remaining > 0 {
			remaining--
			var zero A
			return zero, false
		}
		return v, true
	}
}

// drive polls ad until completion, returning the result and the number
// of pending polls observed on the way.
func drive[A any](t *testing.T, ad *poll.Adapter[A], w poll.Waker, limit int) (A, int) {
	t.Helper()
	pending := 0
	for range limit {
		v, err := ad.Poll(w)
		if err == nil {
			return v, pending
		}
		if !errors.Is(err, iox.ErrWouldBlock) {
			t.Fatalf("poll error: %v", err)
		}
		pending++
	}
	t.Fatalf("no completion within %d polls", limit)
	var zero A
	return zero, 0
}

// readWaker captures the ambient waker without holding the slot.
func readWaker() poll.Waker {
	return poll.TakeWaker(func(w poll.Waker) poll.Waker { return w })
}

// effect is a lazily evaluated side effect in the Cont world.
// f runs when the computation reaches this step, not at construction.
func effect[A any](f func() kont.Eff[A]) kont.Eff[A] {
	return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[A] {
		return f()
	})
}
