package restbase

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// stubKey keys an installed stub in a context by operation name, so each
// operation has its own independent slot and nested scopes shadow cleanly.
type stubKey struct {
	op string
}

// Stub stands in for one operation inside an interception scope. It records
// every call's explicit arguments and returns either a fixed value or a
// substitute error. Recording is safe for concurrent use.
type Stub struct {
	op string

	mu    sync.Mutex
	calls [][]interface{}
	ret   interface{}
	err   error
}

// Operation returns the name of the operation the Stub redirects.
func (s *Stub) Operation() string {
	return s.op
}

// Return configures the fixed value returned by every redirected call.
func (s *Stub) Return(v interface{}) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ret = v

	return s
}

// Fail configures the error returned by every redirected call. The exact
// error instance is surfaced, never a copy.
func (s *Stub) Fail(err error) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err

	return s
}

// Calls returns a copy of the recorded calls, one argument slice per call.
func (s *Stub) Calls() [][]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([][]interface{}, len(s.calls))
	copy(calls, s.calls)

	return calls
}

// CallCount returns the number of redirected calls.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.calls)
}

// CalledOnceWith reports whether the Stub saw exactly one call, with the
// given arguments.
func (s *Stub) CalledOnceWith(args ...interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.calls) != 1 {
		return false
	}

	recorded := s.calls[0]
	if len(recorded) != len(args) {
		return false
	}

	// Deep comparison: arguments are routinely maps and slices, which
	// would panic under ==.
	for i := range recorded {
		if !reflect.DeepEqual(recorded[i], args[i]) {
			return false
		}
	}

	return true
}

func (s *Stub) invoke(args []interface{}) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, args)

	return s.ret, s.err
}

// Intercept derives a context that redirects the named operation to a fresh
// Stub and returns both. The redirection lives exactly as long as the
// derived context is used: callers holding only the parent context never
// observe the stub, on any exit path. Intercepting one operation does not
// affect any other.
func Intercept(ctx context.Context, op string) (context.Context, *Stub) {
	stub := &Stub{op: op}

	return context.WithValue(ctx, stubKey{op: op}, stub), stub
}

// StubFor returns the stub redirecting op in ctx, if one is installed.
func StubFor(ctx context.Context, op string) (*Stub, bool) {
	stub, ok := ctx.Value(stubKey{op: op}).(*Stub)

	return stub, ok
}

// Call routes one operation invocation. When ctx carries a stub for op, the
// call is redirected to it with the explicit arguments only and the real
// implementation never runs; otherwise real is invoked.
func Call[T any](ctx context.Context, op string, args []interface{}, real func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	stub, ok := StubFor(ctx, op)
	if !ok {
		return real(ctx)
	}

	value, err := stub.invoke(args)
	if err != nil {
		return zero, err
	}

	if value == nil {
		return zero, nil
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: operation %s configured with %T", ErrStubReturnType, op, value)
	}

	return typed, nil
}
