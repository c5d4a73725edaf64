package userdirectory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/core"
	"github.com/jsteinbrecher/remote-data-hooks-go/example/features/userdirectory"
	"github.com/jsteinbrecher/remote-data-hooks-go/example/shell"
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
	"github.com/jsteinbrecher/remote-data-hooks-go/testutil/testdoubles"
)

type fetcherStub struct {
	payload    remotedata.Payload
	err        error
	fetchCount int
}

func (f *fetcherStub) Fetch(_ context.Context, _ string) (remotedata.Payload, remotedata.FetchInfo, error) {
	f.fetchCount++
	if f.err != nil {
		return nil, remotedata.FetchInfo{}, f.err
	}

	return f.payload, remotedata.FetchInfo{StatusCode: 200}, nil
}

type rendererSpy struct {
	calls        []string
	renderedView userdirectory.UserDirectory
	renderedErr  error
	failUsers    error
	failLoading  error
}

func (r *rendererSpy) RenderLoading(_ context.Context) error {
	r.calls = append(r.calls, "loading")
	return r.failLoading
}

func (r *rendererSpy) RenderUsers(_ context.Context, view userdirectory.UserDirectory) error {
	r.calls = append(r.calls, "users")
	r.renderedView = view
	return r.failUsers
}

func (r *rendererSpy) RenderError(_ context.Context, reason error) error {
	r.calls = append(r.calls, "error")
	r.renderedErr = reason
	return nil
}

func Test_NewViewHandler_ValidatesDependencies(t *testing.T) {
	fetcher := &fetcherStub{}
	renderer := &rendererSpy{}

	_, err := userdirectory.NewViewHandler(nil, "http://example.com/users", renderer)
	assert.ErrorIs(t, err, remotedata.ErrNilFetcher)

	_, err = userdirectory.NewViewHandler(fetcher, "", renderer)
	assert.ErrorIs(t, err, remotedata.ErrEmptyURL)

	_, err = userdirectory.NewViewHandler(fetcher, "http://example.com/users", nil)
	assert.ErrorIs(t, err, userdirectory.ErrNilRenderer)
}

func Test_ViewHandler_Handle_RendersLoadingThenUsers(t *testing.T) {
	fetcher := &fetcherStub{payload: remotedata.Payload(`[{"id": 1, "name": "A"}]`)}
	renderer := &rendererSpy{}

	handler, err := userdirectory.NewViewHandler(fetcher, "http://example.com/users", renderer)
	require.NoError(t, err)

	view, err := handler.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"loading", "users"}, renderer.calls)
	assert.Equal(t, 1, fetcher.fetchCount)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, []core.LocalUser{{ID: 1, Name: "A"}}, view.Users)
	assert.Equal(t, view, renderer.renderedView)
}

func Test_ViewHandler_Handle_FetchFailureRendersErrorView(t *testing.T) {
	endpointDown := errors.New("endpoint down")
	fetcher := &fetcherStub{err: endpointDown}
	renderer := &rendererSpy{}

	handler, err := userdirectory.NewViewHandler(fetcher, "http://example.com/users", renderer)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background())
	require.Error(t, err)

	assert.ErrorIs(t, err, remotedata.ErrFetchingPayloadFailed)
	assert.Equal(t, []string{"loading", "error"}, renderer.calls)
	assert.ErrorIs(t, renderer.renderedErr, remotedata.ErrFetchingPayloadFailed)
}

func Test_ViewHandler_Handle_RenderFailureSurfaces(t *testing.T) {
	fetcher := &fetcherStub{payload: remotedata.Payload(`[]`)}
	renderer := &rendererSpy{failUsers: errors.New("terminal gone")}

	handler, err := userdirectory.NewViewHandler(fetcher, "http://example.com/users", renderer)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background())

	assert.ErrorIs(t, err, userdirectory.ErrRenderingFailed)
}

func Test_ViewHandler_Handle_EachCallIssuesExactlyOneFetch(t *testing.T) {
	fetcher := &fetcherStub{payload: remotedata.Payload(`[]`)}
	renderer := &rendererSpy{}

	handler, err := userdirectory.NewViewHandler(fetcher, "http://example.com/users", renderer)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background())
	require.NoError(t, err)
	_, err = handler.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.fetchCount)
}

func Test_ViewHandler_Handle_RecordsObservability(t *testing.T) {
	fetcher := &fetcherStub{payload: remotedata.Payload(`[{"id": 1, "name": "A"}]`)}
	renderer := &rendererSpy{}
	metricsSpy := testdoubles.NewMetricsCollectorSpy()
	tracingSpy := testdoubles.NewTracingCollectorSpy()
	loggerSpy := testdoubles.NewLoggerSpy()

	handler, err := userdirectory.NewViewHandler(
		fetcher,
		"http://example.com/users",
		renderer,
		userdirectory.WithMetrics(metricsSpy),
		userdirectory.WithTracing(tracingSpy),
		userdirectory.WithLogging(loggerSpy),
	)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background())
	require.NoError(t, err)

	durationRecords := metricsSpy.RecordsForMetric(shell.ViewHandlerDurationMetric)
	require.Len(t, durationRecords, 1)
	assert.Equal(t, shell.StatusSuccess, durationRecords[0].Labels[shell.LogAttrStatus])

	componentRecords := metricsSpy.RecordsForMetric(shell.ViewHandlerComponentDurationMetric)
	components := make([]string, 0, len(componentRecords))
	for _, record := range componentRecords {
		components = append(components, record.Labels["component"])
	}
	assert.ElementsMatch(
		t,
		[]string{shell.ComponentFetch, shell.ComponentProjection, shell.ComponentRender},
		components,
	)

	spans := tracingSpy.Spans()
	require.Len(t, spans, 1)
	assert.True(t, spans[0].Finished)
	assert.Equal(t, shell.StatusSuccess, spans[0].Status)

	infoRecords := loggerSpy.RecordsWithLevel("info")
	require.Len(t, infoRecords, 2)
	assert.Equal(t, shell.LogMsgViewStarted, infoRecords[0].Message)
	assert.Equal(t, shell.LogMsgViewCompleted, infoRecords[1].Message)
}

func Test_ViewHandler_Handle_FetchErrorRecordsErrorObservability(t *testing.T) {
	fetcher := &fetcherStub{err: errors.New("endpoint down")}
	renderer := &rendererSpy{}
	metricsSpy := testdoubles.NewMetricsCollectorSpy()
	tracingSpy := testdoubles.NewTracingCollectorSpy()

	handler, err := userdirectory.NewViewHandler(
		fetcher,
		"http://example.com/users",
		renderer,
		userdirectory.WithMetrics(metricsSpy),
		userdirectory.WithTracing(tracingSpy),
	)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background())
	require.Error(t, err)

	durationRecords := metricsSpy.RecordsForMetric(shell.ViewHandlerDurationMetric)
	require.Len(t, durationRecords, 1)
	assert.Equal(t, shell.StatusError, durationRecords[0].Labels[shell.LogAttrStatus])

	spans := tracingSpy.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, shell.StatusError, spans[0].Status)
}
