// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"runtime"
	"sync"
)

// slot is one goroutine's ambient waker cell.
// Fields are accessed only by the owning goroutine. depth counts live
// accessor frames so the registry entry can be dropped when the
// outermost frame exits, leaving idle goroutines with no entry.
type slot struct {
	w     Waker
	depth int
}

// slots maps goroutine id → *slot. Each goroutine touches only its own
// key (disjoint key sets), the access pattern sync.Map is optimized for.
var slots sync.Map

// enterSlot returns the calling goroutine's slot, creating it if absent,
// and opens one accessor frame.
func enterSlot(id uint64) *slot {
	if v, ok := slots.Load(id); ok {
		s := v.(*slot)
		s.depth++
		return s
	}
	s := &slot{depth: 1}
	slots.Store(id, s)
	return s
}

// exitSlot closes one accessor frame, removing the registry entry when
// the outermost frame exits.
func exitSlot(id uint64, s *slot) {
	s.depth--
	if s.depth == 0 {
		slots.Delete(id)
	}
}

// WithWaker installs w as the calling goroutine's ambient waker for the
// duration of body, then restores the slot to its previous value — on
// normal return and on panic unwind alike.
//
// Installs nest as a pure stack: each call restores the immediately
// prior value, so an inner WithWaker shadows an outer one only until
// it returns.
func WithWaker[R any](w Waker, body func() R) R {
	id := goid()
	s := enterSlot(id)
	prev := s.w
	s.w = w
	defer func() {
		s.w = prev
		exitSlot(id, s)
	}()
	return body()
}

// TakeWaker retrieves the waker installed by an enclosing WithWaker and
// passes it to body. The slot is held empty while body runs, so a nested
// TakeWaker observes emptiness and fails instead of aliasing the handle;
// the restore runs on every exit path.
//
// Panics with ErrNoWaker, before invoking body, if no waker is installed.
func TakeWaker[R any](body func(Waker) R) R {
	v, err := TryTakeWaker(body)
	if err != nil {
		panic(err)
	}
	return v
}

// TryTakeWaker is the non-panicking variant of TakeWaker.
// Returns (zero, ErrNoWaker) without invoking body if no waker is
// installed on the calling goroutine.
func TryTakeWaker[R any](body func(Waker) R) (R, error) {
	id := goid()
	v, ok := slots.Load(id)
	if !ok {
		var zero R
		return zero, ErrNoWaker
	}
	s := v.(*slot)
	if s.w == nil {
		var zero R
		return zero, ErrNoWaker
	}
	w := s.w
	s.w = nil
	s.depth++
	defer func() {
		s.w = w
		exitSlot(id, s)
	}()
	return body(w), nil
}

// goid returns the calling goroutine's id.
// The runtime does not expose goroutine identity; the id is parsed from
// the goroutine's stack header line ("goroutine N [running]:"). The cost
// sits at the poll boundary, never inside the computation's own steps.
func goid() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for _, c := range buf[len("goroutine "):n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
