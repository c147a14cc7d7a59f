package delegategen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
)

// Render loads the target's interface and renders its file. Relative
// sources are resolved against dir; an absolute source directory is loaded
// from that directory.
func Render(ctx context.Context, w io.Writer, dir string, t Target) (err error) {
	ctx, span := startSpan(ctx, "delegategen.Render",
		attribute.String("delegategen.target", t.Name),
		attribute.String("delegategen.kind", t.Kind),
	)
	defer func() { endSpan(span, err) }()

	pattern := t.Source
	if filepath.IsAbs(pattern) {
		dir, pattern = pattern, "."
	}
	iface, err := Load(ctx, dir, pattern, t.Interface)
	if err != nil {
		return err
	}
	return RenderInterface(w, iface, t)
}

// RenderInterface renders the target's file for an already loaded interface.
func RenderInterface(w io.Writer, iface *Interface, t Target) error {
	out := Output{ImportPath: t.Package, Type: t.Type}
	switch t.Kind {
	case KindWrapper:
		return RenderWrapper(w, iface, out)
	case KindMock:
		return RenderMock(w, iface, out)
	default:
		return fmt.Errorf("target %s: unknown kind %q", t.Name, t.Kind)
	}
}

// Result describes what Generate did for one target.
type Result struct {
	Target  string
	Path    string
	Changed bool
}

// Generate renders the target and writes it to its output path unless the
// content is unchanged. With dryRun the file is never written; Changed then
// reports whether it is stale.
func Generate(ctx context.Context, cfg *Config, t Target, dryRun bool) (res Result, err error) {
	ctx, span := startSpan(ctx, "delegategen.Generate",
		attribute.String("delegategen.target", t.Name),
		attribute.Bool("delegategen.dry_run", dryRun),
	)
	defer func() {
		span.SetAttributes(attribute.Bool("delegategen.changed", res.Changed))
		endSpan(span, err)
	}()

	var buf bytes.Buffer
	if err := Render(ctx, &buf, cfg.Dir(), t); err != nil {
		return Result{}, fmt.Errorf("target %s: %w", t.Name, err)
	}

	res = Result{Target: t.Name, Path: cfg.OutputPath(t)}
	current, err := os.ReadFile(res.Path)
	switch {
	case err == nil:
		res.Changed = !bytes.Equal(current, buf.Bytes())
	case os.IsNotExist(err):
		res.Changed = true
	default:
		return Result{}, fmt.Errorf("target %s: %w", t.Name, err)
	}

	if !res.Changed || dryRun {
		return res, nil
	}
	if err := os.WriteFile(res.Path, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("target %s: writing %s: %w", t.Name, res.Path, err)
	}
	return res, nil
}
