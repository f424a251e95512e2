// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll_test

import (
	"errors"
	"testing"
	"testing/quick"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/poll"
)

// TestPropertyPendingCount proves that a computation pausing exactly n
// times is pending for exactly n polls and ready on the (n+1)-th, for
// arbitrary n and result values.
func TestPropertyPendingCount(t *testing.T) {
	property := func(count uint8, v int) bool {
		n := int(count % 64)
		ad := poll.New(yieldN(n, v))
		w := &countWaker{}
		for range n {
			if _, err := ad.Poll(w); !errors.Is(err, iox.ErrWouldBlock) {
				return false
			}
		}
		got, err := ad.Poll(w)
		return err == nil && got == v
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyNestedInstallRestore proves that for an arbitrary nesting
// depth, each frame observes the innermost installed waker and every
// exit restores the slot to its immediately prior value.
func TestPropertyNestedInstallRestore(t *testing.T) {
	property := func(count uint8) bool {
		depth := int(count%16) + 1
		wakers := make([]*countWaker, depth)
		for i := range wakers {
			wakers[i] = &countWaker{}
		}

		ok := true
		var descend func(level int)
		descend = func(level int) {
			if level == depth {
				return
			}
			poll.WithWaker(wakers[level], func() struct{} {
				if got := readWaker(); got != poll.Waker(wakers[level]) {
					ok = false
				}
				descend(level + 1)
				// The inner frames restored this level's waker.
				if got := readWaker(); got != poll.Waker(wakers[level]) {
					ok = false
				}
				return struct{}{}
			})
		}
		descend(0)

		_, err := poll.TryTakeWaker(func(poll.Waker) int { return 0 })
		return ok && errors.Is(err, poll.ErrNoWaker)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyWakerNeverRetained proves that the adapter itself never
// signals or stores a waker: after driving any computation to
// completion, the wake count equals exactly what the computation itself
// requested (zero here).
func TestPropertyWakerNeverRetained(t *testing.T) {
	property := func(count uint8, v int) bool {
		n := int(count % 32)
		ad := poll.New(yieldN(n, v))
		w := &countWaker{}
		for {
			if _, err := ad.Poll(w); err == nil {
				break
			}
		}
		return w.wakes == 0
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
