package render

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/features/userdirectory"
)

// ErrNilInnerRenderer occurs when no inner renderer is supplied to the modal.
var ErrNilInnerRenderer = errors.New("inner renderer must not be nil")

// ModalRenderer decorates another renderer with a titled frame, the way a
// modal dialog wraps arbitrary content. The modal knows nothing about what
// it frames.
type ModalRenderer struct {
	out   io.Writer
	title string
	inner userdirectory.Renderer
}

// NewModalRenderer creates a ModalRenderer framing the inner renderer's output.
func NewModalRenderer(out io.Writer, title string, inner userdirectory.Renderer) (ModalRenderer, error) {
	if out == nil {
		return ModalRenderer{}, ErrNilWriter
	}

	if inner == nil {
		return ModalRenderer{}, ErrNilInnerRenderer
	}

	return ModalRenderer{out: out, title: title, inner: inner}, nil
}

// RenderLoading frames the inner loading indicator.
func (r ModalRenderer) RenderLoading(ctx context.Context) error {
	return r.framed(func() error {
		return r.inner.RenderLoading(ctx)
	})
}

// RenderUsers frames the inner user list.
func (r ModalRenderer) RenderUsers(ctx context.Context, view userdirectory.UserDirectory) error {
	return r.framed(func() error {
		return r.inner.RenderUsers(ctx, view)
	})
}

// RenderError frames the inner failure output.
func (r ModalRenderer) RenderError(ctx context.Context, reason error) error {
	return r.framed(func() error {
		return r.inner.RenderError(ctx, reason)
	})
}

func (r ModalRenderer) framed(renderContent func() error) error {
	if _, err := fmt.Fprintf(r.out, "=== %s ===\n", r.title); err != nil {
		return err
	}

	if err := renderContent(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(r.out, "===")

	return err
}
