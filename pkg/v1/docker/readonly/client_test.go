package readonly_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker"
	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/delegating"
	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/dockertest"
	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/readonly"
)

func TestClient_ForwardsReadOperations(t *testing.T) {
	suite := &dockertest.Suite{
		New: func(d docker.Client, opts ...delegating.Option) docker.Client {
			return readonly.New(d, opts...)
		},
		Overridden: readonly.MutatingOperations(),
	}
	suite.Run(t)
}

func TestClient_RefusesMutatingOperations(t *testing.T) {
	ops, err := dockertest.ClientOperations()
	require.NoError(t, err)
	byName := make(map[string]dockertest.Operation, len(ops))
	for _, op := range ops {
		byName[op.Name] = op
	}
	factory := dockertest.DefaultFactory()

	for _, name := range readonly.MutatingOperations() {
		t.Run(name, func(t *testing.T) {
			op, ok := byName[name]
			require.True(t, ok, "%s is not a docker.Client operation", name)
			require.True(t, op.ReturnsErr, "%s cannot report refusal", name)

			delegate := &dockertest.MockClient{}
			delegate.Test(t)
			hookCalls := 0
			c := readonly.New(delegate,
				delegating.WithAnswerHook(func(a any) any { hookCalls++; return a }),
				delegating.WithVoidHook(func() { hookCalls++ }),
			)

			args := make([]reflect.Value, len(op.Params))
			for i, p := range op.Params {
				v, err := factory.Fake(p, fmt.Sprintf("arg%d", i))
				require.NoError(t, err)
				args[i] = v
			}
			method := reflect.ValueOf(c).MethodByName(name)
			var out []reflect.Value
			if op.Variadic {
				out = method.CallSlice(args)
			} else {
				out = method.Call(args)
			}

			gotErr, _ := out[len(out)-1].Interface().(error)
			require.ErrorIs(t, gotErr, readonly.ErrReadOnly)
			assert.Contains(t, gotErr.Error(), name)
			if !op.Void() {
				assert.True(t, out[0].IsZero(), "%s returned a non-zero answer", name)
			}
			assert.Empty(t, delegate.Calls)
			assert.Zero(t, hookCalls)
		})
	}
}

func TestMutatingOperations_Unique(t *testing.T) {
	names := readonly.MutatingOperations()
	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
	}
	assert.Contains(t, names, "ContainerRemove")
	assert.NotContains(t, names, "ContainerInspect")
}

func TestClient_ReadsStillForward(t *testing.T) {
	ctx := context.Background()
	delegate := &dockertest.MockClient{}
	delegate.Test(t)
	delegate.On("ContainerList", ctx, docker.ListContainersOptions{All: true}).
		Return([]docker.ContainerSummary{{ID: "abc"}}, nil).Once()

	c := readonly.New(delegate)
	list, err := c.ContainerList(ctx, docker.ListContainersOptions{All: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "abc", list[0].ID)

	assert.ErrorIs(t, c.ContainerRemove(ctx, "abc", docker.RemoveContainerOptions{Force: true}), readonly.ErrReadOnly)
	delegate.AssertExpectations(t)
}
