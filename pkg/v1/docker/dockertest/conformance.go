package dockertest

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker"
	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/delegating"
)

// TestingT is the part of *testing.T a single conformance case uses.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
	Logf(format string, args ...any)
	Helper()
}

// Constructor builds the client under test around delegate, applying the
// hook options the suite passes in.
type Constructor func(delegate docker.Client, opts ...delegating.Option) docker.Client

// Suite checks that a wrapping client forwards every docker.Client
// operation exactly once and reports each result to the right hook.
//
// For every operation and a fresh mock delegate, a case:
//   - builds distinguishable arguments and a sentinel result,
//   - invokes the operation on the client under test,
//   - requires one delegate call with the same arguments,
//   - requires the sentinel back, unchanged,
//   - requires exactly one hook call after the delegate call: the answer
//     hook with the sentinel for non-void operations, the void hook otherwise.
//
// Operations returning an error get a second case requiring a delegate
// error to be returned unchanged without running any hook.
type Suite struct {
	// New builds the client under test. Defaults to delegating.New.
	New Constructor

	// Factory produces arguments and sentinels. Defaults to DefaultFactory().
	Factory *FakeFactory

	// Overridden names operations the client under test deliberately
	// handles itself. Their cases are reported as skipped.
	Overridden []string
}

// Run runs one subtest per docker.Client operation.
func (s *Suite) Run(t *testing.T) {
	t.Helper()

	ops, err := ClientOperations()
	require.NoError(t, err, "setup: listing docker.Client operations")
	require.NotEmpty(t, ops, "setup: docker.Client has no operations")

	for _, op := range ops {
		t.Run(op.CaseName(), func(t *testing.T) {
			if s.overridden(op.Name) {
				t.Skipf("%s is overridden by the client under test", op.Name)
			}
			t.Run("forwards", func(t *testing.T) {
				s.Check(t, op)
			})
			if op.ReturnsErr {
				t.Run("propagates error", func(t *testing.T) {
					s.CheckError(t, op)
				})
			}
		})
	}
}

// Check runs the forwarding case for a single operation.
func (s *Suite) Check(t TestingT, op Operation) {
	t.Helper()

	c, ok := s.setup(t, op)
	if !ok {
		return
	}
	c.expectDelegateCall(nil)
	if op.Void() {
		c.hooks.On("Voided").Once().Run(func(mock.Arguments) {
			c.seq.add("hook")
		})
	} else {
		c.hooks.On("Answered", c.sentinel.Interface()).Once().Run(func(mock.Arguments) {
			c.seq.add("hook")
		})
	}

	out := c.invoke()

	if !op.Void() {
		got := out[0].Interface()
		assert.True(t, identical(c.sentinel.Interface(), got),
			"%s returned %#v, want the delegate's answer %#v", op.Name, got, c.sentinel.Interface())
	}
	if op.ReturnsErr {
		assert.Nil(t, out[len(out)-1].Interface(), "%s returned an error the delegate did not", op.Name)
	}

	c.delegate.AssertExpectations(t)
	assert.Len(t, c.delegate.Calls, 1, "%s must reach the delegate exactly once", op.Name)
	c.hooks.AssertExpectations(t)
	if assert.Len(t, c.hooks.Calls, 1, "%s must run exactly one hook", op.Name) && !op.Void() {
		assert.True(t, identical(c.sentinel.Interface(), c.hooks.Calls[0].Arguments.Get(0)),
			"%s passed a different value to the answer hook", op.Name)
	}
	assert.Equal(t, []string{"delegate", "hook", "return"}, c.seq.events(),
		"%s must call the delegate, then the hook, then return", op.Name)
}

// CheckError runs the error case for a single operation. It fails the test
// if op does not return an error.
func (s *Suite) CheckError(t TestingT, op Operation) {
	t.Helper()

	if !op.ReturnsErr {
		t.Errorf("setup: %s does not return an error", op.Name)
		t.FailNow()
		return
	}
	c, ok := s.setup(t, op)
	if !ok {
		return
	}
	injected := &DelegateError{Operation: op.Name}
	c.expectDelegateCall(injected)

	out := c.invoke()

	if !op.Void() {
		got := out[0].Interface()
		assert.True(t, identical(c.sentinel.Interface(), got),
			"%s changed the delegate's answer on error: got %#v", op.Name, got)
	}
	assert.Same(t, injected, out[len(out)-1].Interface(), "%s must return the delegate's error unchanged", op.Name)
	c.delegate.AssertExpectations(t)
	assert.Len(t, c.delegate.Calls, 1, "%s must reach the delegate exactly once", op.Name)
	assert.Empty(t, c.hooks.Calls, "%s must not run hooks when the delegate fails", op.Name)
	assert.Equal(t, []string{"delegate", "return"}, c.seq.events())
}

// DelegateError is the error injected by CheckError.
type DelegateError struct {
	Operation string
}

func (e *DelegateError) Error() string {
	return "injected failure of " + e.Operation
}

func (s *Suite) overridden(name string) bool {
	for _, o := range s.Overridden {
		if o == name {
			return true
		}
	}
	return false
}

func (s *Suite) factory() *FakeFactory {
	if s.Factory != nil {
		return s.Factory
	}
	return DefaultFactory()
}

func (s *Suite) constructor() Constructor {
	if s.New != nil {
		return s.New
	}
	return func(delegate docker.Client, opts ...delegating.Option) docker.Client {
		return delegating.New(delegate, opts...)
	}
}

// ============================================================================
// Case plumbing
// ============================================================================

type conformanceCase struct {
	t        TestingT
	op       Operation
	args     []reflect.Value
	sentinel reflect.Value
	delegate *MockClient
	hooks    *hookRecorder
	client   docker.Client
	seq      *sequence
}

func (s *Suite) setup(t TestingT, op Operation) (*conformanceCase, bool) {
	t.Helper()

	factory := s.factory()
	c := &conformanceCase{
		t:        t,
		op:       op,
		delegate: &MockClient{},
		hooks:    &hookRecorder{},
		seq:      &sequence{},
	}
	c.delegate.Test(t)
	c.hooks.Test(t)

	for i, p := range op.Params {
		v, err := factory.Fake(p, fmt.Sprintf("arg%d", i))
		if err != nil {
			t.Errorf("setup: %v", &SynthesisError{Operation: op.Name, Param: i, Type: p, Err: err})
			t.FailNow()
			return nil, false
		}
		c.args = append(c.args, v)
	}
	if !op.Void() {
		v, err := factory.Fake(op.Result, op.Name+"ReturnedValue")
		if err != nil {
			t.Errorf("setup: %v", &SynthesisError{Operation: op.Name, Param: -1, Type: op.Result, Err: err})
			t.FailNow()
			return nil, false
		}
		c.sentinel = v
	}

	c.client = s.constructor()(c.delegate,
		delegating.WithAnswerHook(func(answer any) any {
			c.hooks.Answered(answer)
			return answer
		}),
		delegating.WithVoidHook(func() {
			c.hooks.Voided()
		}),
	)
	if c.client == nil {
		t.Errorf("setup: constructor returned nil for %s", op.Name)
		t.FailNow()
		return nil, false
	}
	return c, true
}

// expectDelegateCall programs the delegate to answer the case's call once
// with the sentinel and err.
func (c *conformanceCase) expectDelegateCall(err error) {
	args := make([]any, len(c.args))
	for i, a := range c.args {
		args[i] = a.Interface()
	}

	var returns []any
	if !c.op.Void() {
		returns = append(returns, c.sentinel.Interface())
	}
	if c.op.ReturnsErr {
		returns = append(returns, err)
	}

	c.delegate.On(c.op.Name, args...).Return(returns...).Once().Run(func(mock.Arguments) {
		c.seq.add("delegate")
	})
}

func (c *conformanceCase) invoke() []reflect.Value {
	method := reflect.ValueOf(c.client).MethodByName(c.op.Name)
	var out []reflect.Value
	if c.op.Variadic {
		out = method.CallSlice(c.args)
	} else {
		out = method.Call(c.args)
	}
	c.seq.add("return")
	return out
}

// hookRecorder records hook invocations handed to it by the suite's hooks.
type hookRecorder struct {
	mock.Mock
}

func (h *hookRecorder) Answered(answer any) {
	h.Called(answer)
}

func (h *hookRecorder) Voided() {
	h.Called()
}

// sequence records the order of delegate calls, hook calls and returns.
type sequence struct {
	mu   sync.Mutex
	list []string
}

func (s *sequence) add(event string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = append(s.list, event)
}

func (s *sequence) events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.list...)
}

// identical reports whether got is the same value as want: the same
// reference for pointer-like kinds, an equal value otherwise.
func identical(want, got any) bool {
	if want == nil || got == nil {
		return want == nil && got == nil
	}
	wv, gv := reflect.ValueOf(want), reflect.ValueOf(got)
	if wv.Type() != gv.Type() {
		return false
	}
	switch wv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return wv.Pointer() == gv.Pointer()
	case reflect.Slice:
		return wv.Pointer() == gv.Pointer() && wv.Len() == gv.Len()
	default:
		return assert.ObjectsAreEqual(want, got)
	}
}
