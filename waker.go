// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

// Waker is the wake handle a paused computation uses to ask its driver
// to poll it again.
//
// Wakers are constructed and signaled entirely by the driver; this package
// only carries them. A waker passed to Poll is borrowed for the duration
// of that one call and never stored beyond it.
type Waker interface {
	// Wake requests that the driver re-poll the computation this waker
	// was supplied to.
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }
