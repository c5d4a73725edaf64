package render_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/core"
	"github.com/jsteinbrecher/remote-data-hooks-go/example/features/userdirectory"
	"github.com/jsteinbrecher/remote-data-hooks-go/example/shell/render"
)

func Test_NewListRenderer_RequiresWriter(t *testing.T) {
	_, err := render.NewListRenderer(nil)
	assert.ErrorIs(t, err, render.ErrNilWriter)
}

func Test_ListRenderer_RenderLoading(t *testing.T) {
	var out bytes.Buffer
	renderer, err := render.NewListRenderer(&out)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderLoading(context.Background()))

	assert.Equal(t, "loading ...\n", out.String())
}

func Test_ListRenderer_RenderUsers(t *testing.T) {
	var out bytes.Buffer
	renderer, err := render.NewListRenderer(&out)
	require.NoError(t, err)

	view := userdirectory.UserDirectory{
		Users: []core.LocalUser{{ID: 1, Name: "Antonette"}, {ID: 2, Name: "Bret"}},
		Count: 2,
	}

	require.NoError(t, renderer.RenderUsers(context.Background(), view))

	assert.Equal(t, "1\tAntonette\n2\tBret\n2 users\n", out.String())
}

func Test_ListRenderer_RenderError(t *testing.T) {
	var out bytes.Buffer
	renderer, err := render.NewListRenderer(&out)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderError(context.Background(), errors.New("endpoint down")))

	assert.Equal(t, "error: endpoint down\n", out.String())
}

func Test_NewModalRenderer_ValidatesDependencies(t *testing.T) {
	var out bytes.Buffer
	inner, err := render.NewListRenderer(&out)
	require.NoError(t, err)

	_, err = render.NewModalRenderer(nil, "Users", inner)
	assert.ErrorIs(t, err, render.ErrNilWriter)

	_, err = render.NewModalRenderer(&out, "Users", nil)
	assert.ErrorIs(t, err, render.ErrNilInnerRenderer)
}

func Test_ModalRenderer_FramesInnerOutput(t *testing.T) {
	var out bytes.Buffer
	inner, err := render.NewListRenderer(&out)
	require.NoError(t, err)

	modal, err := render.NewModalRenderer(&out, "User Directory", inner)
	require.NoError(t, err)

	view := userdirectory.UserDirectory{
		Users: []core.LocalUser{{ID: 1, Name: "A"}},
		Count: 1,
	}

	require.NoError(t, modal.RenderUsers(context.Background(), view))

	assert.Equal(t, "=== User Directory ===\n1\tA\n1 users\n===\n", out.String())
}

func Test_ModalRenderer_FramesLoadingAndError(t *testing.T) {
	var out bytes.Buffer
	inner, err := render.NewListRenderer(&out)
	require.NoError(t, err)

	modal, err := render.NewModalRenderer(&out, "Users", inner)
	require.NoError(t, err)

	require.NoError(t, modal.RenderLoading(context.Background()))
	require.NoError(t, modal.RenderError(context.Background(), errors.New("endpoint down")))

	assert.Equal(
		t,
		"=== Users ===\nloading ...\n===\n=== Users ===\nerror: endpoint down\n===\n",
		out.String(),
	)
}
