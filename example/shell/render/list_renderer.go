package render

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/features/userdirectory"
)

// ErrNilWriter occurs when no output writer is supplied.
var ErrNilWriter = errors.New("output writer must not be nil")

// ListRenderer renders the user directory as a plain text list.
type ListRenderer struct {
	out io.Writer
}

// NewListRenderer creates a ListRenderer writing to the given writer.
func NewListRenderer(out io.Writer) (ListRenderer, error) {
	if out == nil {
		return ListRenderer{}, ErrNilWriter
	}

	return ListRenderer{out: out}, nil
}

// RenderLoading prints the loading indicator.
func (r ListRenderer) RenderLoading(_ context.Context) error {
	_, err := fmt.Fprintln(r.out, "loading ...")
	return err
}

// RenderUsers prints one line per user plus a trailing count.
func (r ListRenderer) RenderUsers(_ context.Context, view userdirectory.UserDirectory) error {
	for _, user := range view.Users {
		if _, err := fmt.Fprintf(r.out, "%d\t%s\n", user.ID, user.Name); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.out, "%d users\n", view.Count)

	return err
}

// RenderError prints the failure reason.
func (r ListRenderer) RenderError(_ context.Context, reason error) error {
	_, err := fmt.Fprintf(r.out, "error: %v\n", reason)
	return err
}
