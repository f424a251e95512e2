// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"code.hybscloud.com/kont"
)

// Yield is the effect operation for pausing the computation.
// Perform(Yield{}) suspends with no value; the driver's next poll resumes
// past it. A computation that needs its wake handle reads it with
// TakeWaker before yielding.
type Yield struct {
	kont.Phantom[struct{}]
}

// YieldThen pauses once and then continues with next.
// Fuses Perform(Yield{}) + Then.
func YieldThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield{}), next)
}

// Pre-allocated erased operation and frame to eliminate heap escapes
// when boxing empty structs during Expr-world construction.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprYield       kont.Erased = Yield{}
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprYieldThen pauses once and then continues with next.
// Fuses ExprPerform(Yield{}) + ExprThen.
func ExprYieldThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprYield
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// YieldLoop runs an iterative computation that pauses once per iteration
// (Cont-world). step returns Left(nextState) to pause and continue, or
// Right(result) to finish without a trailing pause.
func YieldLoop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return YieldThen(YieldLoop(left, step))
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}

// ExprYieldLoop runs an iterative computation that pauses once per
// iteration (Expr-world). step returns Left(nextState) to pause and
// continue, or Right(result) to finish without a trailing pause.
// Fuses ExprBind inline to avoid the type-erasing wrapper closure.
func ExprYieldLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	m := step(initial)
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		if left, ok := m.Value.GetLeft(); ok {
			return ExprYieldThen(ExprYieldLoop(left, step))
		}
		right, _ := m.Value.GetRight()
		return kont.ExprReturn(right)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		e := a.(kont.Either[S, A])
		if left, ok := e.GetLeft(); ok {
			result := ExprYieldThen(ExprYieldLoop(left, step))
			return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
		}
		right, _ := e.GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(right), Frame: kont.ReturnFrame{}}
	}
	bf.Next = kont.ReturnFrame{}
	var zero A
	return kont.Expr[A]{
		Value: zero,
		Frame: kont.ChainFrames(m.Frame, bf),
	}
}

// kontCoroutine adapts a kont computation to the Coroutine interface.
// The first Resume runs start, stepping the computation to its first
// suspension or completion; later Resumes advance the held suspension.
// The initial step is deferred to the first Resume so that everything
// the computation does — including reading its waker — happens inside a
// poll, never at construction.
//
// Every pause must be a Yield suspension; the computation's closures run
// during Resume, so TakeWaker inside them observes the waker the
// enclosing poll installed.
type kontCoroutine[A any] struct {
	start func() (A, *kont.Suspension[A])
	susp  *kont.Suspension[A]
}

func (c *kontCoroutine[A]) Resume() (A, bool) {
	var value A
	if c.start != nil {
		start := c.start
		c.start = nil
		value, c.susp = start()
	} else {
		value, c.susp = c.susp.Resume(struct{}{})
	}
	if c.susp == nil {
		return value, true
	}
	if _, ok := c.susp.Op().(Yield); !ok {
		panic("poll: unhandled effect in Adapter")
	}
	var zero A
	return zero, false
}

// Discard abandons a paused computation, releasing the pending
// suspension's pooled frames.
func (c *kontCoroutine[A]) Discard() {
	c.start = nil
	if c.susp != nil {
		c.susp.Discard()
		c.susp = nil
	}
}

// FromExpr wraps an Expr-world kont computation as an Adapter.
// Each Yield suspension is one pending poll; the poll after the last
// Yield reports the computation's result.
func FromExpr[A any](m kont.Expr[A]) *Adapter[A] {
	return New[A](&kontCoroutine[A]{
		start: func() (A, *kont.Suspension[A]) { return kont.StepExpr(m) },
	})
}

// FromEff wraps a Cont-world kont computation as an Adapter.
// Stepped natively via kont.Step; Reify would run the computation up to
// its first effect at construction, outside any poll.
func FromEff[A any](m kont.Eff[A]) *Adapter[A] {
	return New[A](&kontCoroutine[A]{
		start: func() (A, *kont.Suspension[A]) { return kont.Step(m) },
	})
}
