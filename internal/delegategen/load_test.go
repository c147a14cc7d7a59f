package delegategen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePattern = "./testdata/fixture"

func loadFixture(t *testing.T, name string) *Interface {
	t.Helper()
	iface, err := Load(context.Background(), "", fixturePattern, name)
	require.NoError(t, err)
	return iface
}

func methodNamed(t *testing.T, iface *Interface, name string) Method {
	t.Helper()
	for _, m := range iface.Methods {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("method %s not found", name)
	return Method{}
}

func TestLoad_Fixture(t *testing.T) {
	iface := loadFixture(t, "Shapes")

	assert.Equal(t, "github.com/omniviewdev/dockerclient-sdk/internal/delegategen/testdata/fixture", iface.ImportPath)
	assert.Equal(t, "fixture", iface.PkgName)
	assert.Equal(t, "Shapes", iface.Name)

	var names []string
	for _, m := range iface.Methods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{
		"Close", "Get", "Join", "Keys", "Lookup", "Put", "Rename", "Reset", "Unnamed", "Value", "Watch",
	}, names, "methods are sorted and include embedded interfaces")
}

func TestLoad_Shapes(t *testing.T) {
	iface := loadFixture(t, "Shapes")

	tests := []struct {
		method    string
		shape     string
		signature string
	}{
		{method: "Close", shape: "void+error", signature: "Close() error"},
		{method: "Get", shape: "answer+error", signature: "Get(ctx context.Context, key string) (string, error)"},
		{method: "Keys", shape: "answer", signature: "Keys() []string"},
		{method: "Reset", shape: "void", signature: "Reset()"},
		{method: "Join", shape: "answer+error", signature: "Join(sep string, parts ...string) (string, error)"},
		{method: "Put", shape: "void+error", signature: "Put(ctx context.Context, key string, body io.Reader) error"},
		{method: "Lookup", shape: "answer+error", signature: "Lookup(ctx context.Context, keys map[string][]byte) (*fixture.Entry, error)"},
		{method: "Watch", shape: "answer+error", signature: "Watch(ctx context.Context) (<-chan fixture.Entry, error)"},
		{method: "Value", shape: "answer", signature: "Value(key any) any"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			m := methodNamed(t, iface, tt.method)
			assert.Equal(t, tt.shape, m.Shape())
			assert.Equal(t, tt.signature, m.Signature())
		})
	}

	assert.True(t, methodNamed(t, iface, "Join").Variadic)
	assert.False(t, methodNamed(t, iface, "Get").Variadic)
}

func TestLoad_RenamesReservedParams(t *testing.T) {
	iface := loadFixture(t, "Shapes")

	rename := methodNamed(t, iface, "Rename")
	require.Len(t, rename.Params, 2)
	assert.Equal(t, "arg0", rename.Params[0].Name)
	assert.Equal(t, "arg1", rename.Params[1].Name)

	unnamed := methodNamed(t, iface, "Unnamed")
	require.Len(t, unnamed.Params, 2)
	assert.Equal(t, "arg0", unnamed.Params[0].Name)
	assert.Equal(t, "arg1", unnamed.Params[1].Name)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{name: "TooMany", wantErr: ErrUnsupportedShape},
		{name: "WithFunc", wantErr: ErrUnsupportedType},
		{name: "NotAnInterface", wantErr: ErrNotInterface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), "", fixturePattern, tt.name)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.name)
		})
	}

	_, err := Load(context.Background(), "", fixturePattern, "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = Load(context.Background(), "", "./testdata/does-not-exist", "Shapes")
	require.Error(t, err)
}

func TestLoad_DockerClient(t *testing.T) {
	iface, err := Load(context.Background(), "", "github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker", "Client")
	require.NoError(t, err)

	save := methodNamed(t, iface, "ImageSave")
	assert.True(t, save.Variadic)
	assert.Equal(t, "ImageSave(ctx context.Context, imageIDs ...string) (io.ReadCloser, error)", save.Signature())

	assert.Equal(t, "void", methodNamed(t, iface, "NegotiateAPIVersion").Shape())
	assert.Equal(t, "answer", methodNamed(t, iface, "AuthConfig").Shape())
}
