package dockertest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker"
	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/delegating"
)

// recordingT collects failures instead of failing the enclosing test.
type recordingT struct {
	errors []string
	failed bool
}

var errStopCase = errors.New("FailNow")

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failed = true
	panic(errStopCase)
}

func (r *recordingT) Logf(string, ...any) {}
func (r *recordingT) Helper()             {}

func (r *recordingT) ok() bool {
	return !r.failed && len(r.errors) == 0
}

func (r *recordingT) String() string {
	return strings.Join(r.errors, "\n")
}

func runCase(check func(TestingT, Operation), op Operation) (rt *recordingT) {
	rt = &recordingT{}
	defer func() {
		if p := recover(); p != nil && p != errStopCase {
			panic(p)
		}
	}()
	check(rt, op)
	return rt
}

func wrapWith(wrap func(*delegating.Client) docker.Client) Constructor {
	return func(d docker.Client, opts ...delegating.Option) docker.Client {
		return wrap(delegating.New(d, opts...))
	}
}

func clientOperation(t *testing.T, name string) Operation {
	t.Helper()
	ops, err := ClientOperations()
	require.NoError(t, err)
	return findOperation(t, ops, name)
}

// ---------------------------------------------------------------------------
// Wrappers with one broken method each
// ---------------------------------------------------------------------------

type skipsVoidHook struct{ *delegating.Client }

func (c skipsVoidHook) ContainerPause(ctx context.Context, containerID string) error {
	return c.Delegate().ContainerPause(ctx, containerID)
}

type hooksBeforeDelegate struct{ *delegating.Client }

func (c hooksBeforeDelegate) ContainerPause(ctx context.Context, containerID string) error {
	c.InterceptVoid()
	return c.Delegate().ContainerPause(ctx, containerID)
}

type callsTwice struct{ *delegating.Client }

func (c callsTwice) ContainerStart(ctx context.Context, containerID string) error {
	_ = c.Delegate().ContainerStart(ctx, containerID)
	if err := c.Delegate().ContainerStart(ctx, containerID); err != nil {
		return err
	}
	c.InterceptVoid()
	return nil
}

type wrongHook struct{ *delegating.Client }

func (c wrongHook) ServerVersion(ctx context.Context) (docker.Version, error) {
	v, err := c.Delegate().ServerVersion(ctx)
	if err != nil {
		return v, err
	}
	c.InterceptVoid()
	return v, nil
}

type replacesAnswer struct{ *delegating.Client }

func (c replacesAnswer) ServerVersion(ctx context.Context) (docker.Version, error) {
	v, err := c.Delegate().ServerVersion(ctx)
	if err != nil {
		return v, err
	}
	c.InterceptAnswer(v)
	return docker.Version{Version: "other"}, nil
}

type swapsArguments struct{ *delegating.Client }

func (c swapsArguments) ContainerRename(ctx context.Context, containerID string, newName string) error {
	if err := c.Delegate().ContainerRename(ctx, newName, containerID); err != nil {
		return err
	}
	c.InterceptVoid()
	return nil
}

type swallowsError struct{ *delegating.Client }

func (c swallowsError) ImageSave(ctx context.Context, imageIDs ...string) (io.ReadCloser, error) {
	r, err := c.Delegate().ImageSave(ctx, imageIDs...)
	if err != nil {
		return nil, nil
	}
	return c.InterceptAnswer(r).(io.ReadCloser), nil
}

type hooksOnError struct{ *delegating.Client }

func (c hooksOnError) ContainerWait(ctx context.Context, containerID string, condition docker.WaitCondition) (int64, error) {
	code, err := c.Delegate().ContainerWait(ctx, containerID, condition)
	c.InterceptAnswer(code)
	return code, err
}

type dropsAnswer struct{ *delegating.Client }

func (c dropsAnswer) ContainerUpdate(ctx context.Context, containerID string, update docker.UpdateConfig) (docker.UpdateResponse, error) {
	r, err := c.Delegate().ContainerUpdate(ctx, containerID, update)
	if err != nil {
		return r, err
	}
	c.InterceptAnswer(r)
	return docker.UpdateResponse{}, nil
}

type dropsOptions struct{ *delegating.Client }

func (c dropsOptions) ContainerRemove(ctx context.Context, containerID string, _ docker.RemoveContainerOptions) error {
	if err := c.Delegate().ContainerRemove(ctx, containerID, docker.RemoveContainerOptions{}); err != nil {
		return err
	}
	c.InterceptVoid()
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSuite_AcceptsDelegatingClient(t *testing.T) {
	s := &Suite{}
	ops, err := ClientOperations()
	require.NoError(t, err)

	for _, op := range ops {
		rt := runCase(s.Check, op)
		assert.True(t, rt.ok(), "%s: %s", op.CaseName(), rt)

		if op.ReturnsErr {
			rt = runCase(s.CheckError, op)
			assert.True(t, rt.ok(), "%s error case: %s", op.CaseName(), rt)
		}
	}
}

func TestSuite_DetectsBrokenWrappers(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		wrap    func(*delegating.Client) docker.Client
		errCase bool
	}{
		{
			name: "missing void hook",
			op:   "ContainerPause",
			wrap: func(c *delegating.Client) docker.Client { return skipsVoidHook{c} },
		},
		{
			name: "hook before delegate",
			op:   "ContainerPause",
			wrap: func(c *delegating.Client) docker.Client { return hooksBeforeDelegate{c} },
		},
		{
			name: "delegate called twice",
			op:   "ContainerStart",
			wrap: func(c *delegating.Client) docker.Client { return callsTwice{c} },
		},
		{
			name: "void hook on non-void operation",
			op:   "ServerVersion",
			wrap: func(c *delegating.Client) docker.Client { return wrongHook{c} },
		},
		{
			name: "answer replaced",
			op:   "ServerVersion",
			wrap: func(c *delegating.Client) docker.Client { return replacesAnswer{c} },
		},
		{
			name: "arguments swapped",
			op:   "ContainerRename",
			wrap: func(c *delegating.Client) docker.Client { return swapsArguments{c} },
		},
		{
			name: "answer replaced by zero value",
			op:   "ContainerUpdate",
			wrap: func(c *delegating.Client) docker.Client { return dropsAnswer{c} },
		},
		{
			name: "options dropped",
			op:   "ContainerRemove",
			wrap: func(c *delegating.Client) docker.Client { return dropsOptions{c} },
		},
		{
			name:    "error swallowed",
			op:      "ImageSave",
			wrap:    func(c *delegating.Client) docker.Client { return swallowsError{c} },
			errCase: true,
		},
		{
			name:    "hook on error",
			op:      "ContainerWait",
			wrap:    func(c *delegating.Client) docker.Client { return hooksOnError{c} },
			errCase: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Suite{New: wrapWith(tt.wrap)}
			op := clientOperation(t, tt.op)

			check := s.Check
			if tt.errCase {
				check = s.CheckError
			}
			rt := runCase(check, op)
			assert.False(t, rt.ok(), "broken %s passed", tt.op)
		})
	}
}

func TestSuite_BrokenWrapperLeavesOtherOperationsPassing(t *testing.T) {
	s := &Suite{New: wrapWith(func(c *delegating.Client) docker.Client { return skipsVoidHook{c} })}

	rt := runCase(s.Check, clientOperation(t, "ContainerUnpause"))
	assert.True(t, rt.ok(), rt.String())
}

func TestSuite_SetupFailureIsReported(t *testing.T) {
	f := NewFakeFactory()
	// No context.Context fake: every operation taking a context fails setup.
	s := &Suite{Factory: f}

	rt := runCase(s.Check, clientOperation(t, "ContainerPause"))
	require.True(t, rt.failed)
	require.NotEmpty(t, rt.errors)
	assert.True(t, strings.HasPrefix(rt.errors[0], "setup: "), rt.errors[0])
	assert.Contains(t, rt.errors[0], "ContainerPause")
	assert.Contains(t, rt.errors[0], "context.Context")
}

func TestSuite_CheckErrorRejectsOperationsWithoutError(t *testing.T) {
	s := &Suite{}

	rt := runCase(s.CheckError, clientOperation(t, "AuthConfig"))
	require.True(t, rt.failed)
	assert.Contains(t, rt.String(), "setup: AuthConfig does not return an error")
}

func TestSuite_CheckIsRepeatable(t *testing.T) {
	s := &Suite{}
	op := clientOperation(t, "ImageSave")

	first := runCase(s.Check, op)
	second := runCase(s.Check, op)
	assert.True(t, first.ok(), first.String())
	assert.True(t, second.ok(), second.String())
}

func TestIdentical(t *testing.T) {
	v := &docker.Volume{Name: "v"}
	same := v
	other := &docker.Volume{Name: "v"}
	s := []string{"a"}

	assert.True(t, identical(v, same))
	assert.False(t, identical(v, other))
	assert.True(t, identical(s, s))
	assert.False(t, identical(s, []string{"a"}))
	assert.True(t, identical(docker.Version{Build: "42"}, docker.Version{Build: "42"}))
	assert.False(t, identical(int64(1), 1))
	assert.True(t, identical(nil, nil))
	assert.False(t, identical(nil, v))
}
