// Package chflow holds small channel helpers that give up as soon as the
// context is done.
package chflow

import "context"

// Receive returns the next value from ch. ok is false when ctx is done first
// or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case v, ok := <-ch:
		return v, ok
	}
}

// Send delivers v on ch and reports whether it was delivered before ctx was done.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}

// Forward copies values from in to out until in is closed or ctx is done.
// It returns true only when in was drained to its close.
func Forward[T any](ctx context.Context, in <-chan T, out chan<- T) bool {
	for {
		v, ok := Receive(ctx, in)
		if !ok {
			return ctx.Err() == nil
		}

		if !Send(ctx, out, v) {
			return false
		}
	}
}
