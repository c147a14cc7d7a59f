package delegategen

import (
	"bytes"
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureOut = "github.com/omniviewdev/dockerclient-sdk/internal/delegategen/testdata/fixturewrap"

func renderFixture(t *testing.T, render func(*bytes.Buffer, *Interface, Output) error, typ string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render(&buf, loadFixture(t, "Shapes"), Output{ImportPath: fixtureOut, Type: typ}))
	return buf.String()
}

func wrapper(buf *bytes.Buffer, iface *Interface, out Output) error {
	return RenderWrapper(buf, iface, out)
}

func mockOf(buf *bytes.Buffer, iface *Interface, out Output) error {
	return RenderMock(buf, iface, out)
}

// ---------------------------------------------------------------------------
// Wrapper
// ---------------------------------------------------------------------------

func TestRenderWrapper(t *testing.T) {
	src := renderFixture(t, wrapper, "Wrapper")

	assert.Contains(t, src, "// Code generated by delegategen. DO NOT EDIT.")
	assert.Contains(t, src, "package fixturewrap")

	assert.Contains(t, src, `func (c *Wrapper) Get(ctx context.Context, key string) (string, error) {
	r, err := c.Delegate().Get(ctx, key)
	if err != nil {
		return r, err
	}
	return answer(c, r), nil
}`)
	assert.Contains(t, src, `func (c *Wrapper) Close() error {
	if err := c.Delegate().Close(); err != nil {
		return err
	}
	c.InterceptVoid()
	return nil
}`)
	assert.Contains(t, src, `func (c *Wrapper) Reset() {
	c.Delegate().Reset()
	c.InterceptVoid()
}`)
	assert.Contains(t, src, `func (c *Wrapper) Keys() []string {
	return answer(c, c.Delegate().Keys())
}`)
	assert.Contains(t, src, "func (c *Wrapper) Join(sep string, parts ...string) (string, error) {")
	assert.Contains(t, src, "c.Delegate().Join(sep, parts...)")
	assert.Contains(t, src, "c.Delegate().Rename(arg0, arg1)")
	assert.Contains(t, src, "func (c *Wrapper) Value(key interface{}) interface{} {")
	assert.NotContains(t, src, "}\nfunc ", "methods are separated by a blank line")
}

func TestRenderWrapper_IsValidGo(t *testing.T) {
	src := renderFixture(t, wrapper, "Wrapper")

	file, err := parser.ParseFile(token.NewFileSet(), "wrapper.go", src, 0)
	require.NoError(t, err)
	assert.Len(t, funcNames(file), len(loadFixture(t, "Shapes").Methods))
}

// ---------------------------------------------------------------------------
// Mock
// ---------------------------------------------------------------------------

func TestRenderMock(t *testing.T) {
	src := renderFixture(t, mockOf, "Mock")

	assert.Contains(t, src, "package fixturewrap")
	assert.Contains(t, src, "mock.Mock\n}")
	assert.Contains(t, src, "var _ fixture.Shapes = (*Mock)(nil)")

	assert.Contains(t, src, `func (m *Mock) Get(ctx context.Context, key string) (string, error) {
	ret := m.Called(ctx, key)
	r0, _ := ret.Get(0).(string)
	return r0, ret.Error(1)
}`)
	assert.Contains(t, src, `func (m *Mock) Close() error {
	ret := m.Called()
	return ret.Error(0)
}`)
	assert.Contains(t, src, `func (m *Mock) Reset() {
	m.Called()
}`)
	assert.Contains(t, src, `func (m *Mock) Keys() []string {
	ret := m.Called()
	r0, _ := ret.Get(0).([]string)
	return r0
}`)
	assert.Contains(t, src, "ret := m.Called(sep, parts)", "variadic arguments are recorded as one slice")
	assert.Contains(t, src, "r0, _ := ret.Get(0).(*fixture.Entry)")
	assert.Contains(t, src, "r0, _ := ret.Get(0).(<-chan fixture.Entry)")
	assert.Contains(t, src, "mock.Mock\n}\n\nvar _ fixture.Shapes = (*Mock)(nil)\n\nfunc ")
	assert.NotContains(t, src, "}\nfunc ", "methods are separated by a blank line")
}

func TestRenderMock_SamePackageIsUnqualified(t *testing.T) {
	iface := loadFixture(t, "Shapes")
	var buf bytes.Buffer
	require.NoError(t, RenderMock(&buf, iface, Output{ImportPath: iface.ImportPath, Type: "Mock"}))

	src := buf.String()
	assert.Contains(t, src, "package fixture")
	assert.Contains(t, src, "var _ Shapes = (*Mock)(nil)")
	assert.NotContains(t, src, "fixture.Entry")
}

// ---------------------------------------------------------------------------
// Committed files
// ---------------------------------------------------------------------------

func funcNames(file *ast.File) []string {
	var names []string
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			names = append(names, fn.Name.Name)
		}
	}
	sort.Strings(names)
	return names
}

// TestCommittedFilesAreUpToDate fails when the generated files differ from
// what delegategen renders, e.g. after docker.Client gained a method.
func TestCommittedFilesAreUpToDate(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "delegategen.yaml"))
	require.NoError(t, err)

	for _, target := range cfg.Targets {
		t.Run(target.Name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(context.Background(), &buf, cfg.Dir(), target))

			committed, err := os.ReadFile(cfg.OutputPath(target))
			require.NoError(t, err)
			assert.Equal(t, buf.String(), string(committed), "run go generate ./...")

			res, err := Generate(context.Background(), cfg, target, true)
			require.NoError(t, err)
			assert.False(t, res.Changed, "generate --check would report %s as stale", target.Output)
		})
	}
}
