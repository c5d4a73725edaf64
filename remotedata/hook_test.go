package remotedata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

type userForTest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// fetcherDouble implements remotedata.Fetcher with a canned payload or error.
type fetcherDouble struct {
	payload    remotedata.Payload
	err        error
	fetchCalls int
}

func (f *fetcherDouble) Fetch(_ context.Context, _ string) (remotedata.Payload, remotedata.FetchInfo, error) {
	f.fetchCalls++

	if f.err != nil {
		return nil, remotedata.FetchInfo{}, f.err
	}

	return f.payload, remotedata.FetchInfo{FetchID: "fetch-1", StatusCode: 200}, nil
}

func Test_NewHook_ErrorCases(t *testing.T) {
	t.Run("nil fetcher", func(t *testing.T) {
		_, err := remotedata.NewHook[[]userForTest](nil, "https://api.example.com/users")

		assert.ErrorIs(t, err, remotedata.ErrNilFetcher)
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := remotedata.NewHook[[]userForTest](&fetcherDouble{}, "")

		assert.ErrorIs(t, err, remotedata.ErrEmptyURL)
	})
}

func Test_Hook_StartsPendingAndLoading(t *testing.T) {
	hook, err := remotedata.NewHook[[]userForTest](&fetcherDouble{}, "https://api.example.com/users")
	require.NoError(t, err)

	assert.True(t, hook.IsLoading())
	assert.Equal(t, remotedata.StatusPending, hook.State().Status())
}

func Test_Hook_Activate_TransitionsLoadingToFinishedAndExposesData(t *testing.T) {
	fetcher := &fetcherDouble{payload: remotedata.Payload(`[{"id": 1, "name": "A"}]`)}
	hook, err := remotedata.NewHook[[]userForTest](fetcher, "https://api.example.com/users")
	require.NoError(t, err)

	var observed []remotedata.Result[[]userForTest]
	hook.Subscribe(func(result remotedata.Result[[]userForTest]) {
		observed = append(observed, result)
	})

	result, err := hook.Activate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.fetchCalls)
	assert.False(t, hook.IsLoading())

	data, ok := result.Data()
	require.True(t, ok)
	assert.Equal(t, []userForTest{{ID: 1, Name: "A"}}, data)

	// Subscribers see the loading transition first, then exactly one terminal transition.
	require.Len(t, observed, 2)
	assert.True(t, observed[0].IsLoading())
	assert.Equal(t, remotedata.StatusSuccess, observed[1].Status())
}

func Test_Hook_Activate_FetchFailureTransitionsToFailed(t *testing.T) {
	fetchErr := errors.New("connection refused")
	fetcher := &fetcherDouble{err: fetchErr}
	hook, err := remotedata.NewHook[[]userForTest](fetcher, "https://api.example.com/users")
	require.NoError(t, err)

	result, err := hook.Activate(context.Background())

	assert.ErrorIs(t, err, remotedata.ErrFetchingPayloadFailed)
	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, remotedata.StatusFailed, result.Status())
	assert.False(t, hook.IsLoading(), "a failed fetch must not leave the hook loading forever")
}

func Test_Hook_Activate_DecodeFailureTransitionsToFailed(t *testing.T) {
	// Valid JSON, but not decodable into []userForTest.
	fetcher := &fetcherDouble{payload: remotedata.Payload(`{"not": "an array"}`)}
	hook, err := remotedata.NewHook[[]userForTest](fetcher, "https://api.example.com/users")
	require.NoError(t, err)

	result, err := hook.Activate(context.Background())

	assert.ErrorIs(t, err, remotedata.ErrDecodingPayloadFailed)
	assert.Equal(t, remotedata.StatusFailed, result.Status())
	assert.False(t, hook.IsLoading())
}

func Test_Hook_Activate_ExactlyOneFetchPerActivation(t *testing.T) {
	fetcher := &fetcherDouble{payload: remotedata.Payload(`[{"id": 1, "name": "A"}]`)}
	hook, err := remotedata.NewHook[[]userForTest](fetcher, "https://api.example.com/users")
	require.NoError(t, err)

	first, err := hook.Activate(context.Background())
	require.NoError(t, err)

	second, err := hook.Activate(context.Background())

	assert.ErrorIs(t, err, remotedata.ErrActivationConsumed)
	assert.Equal(t, 1, fetcher.fetchCalls)
	assert.Equal(t, first.Status(), second.Status(), "consumed activation returns the current state")
}

func Test_Hook_SubscribeAfterActivation_SeesNoTransitions(t *testing.T) {
	fetcher := &fetcherDouble{payload: remotedata.Payload(`[]`)}
	hook, err := remotedata.NewHook[[]userForTest](fetcher, "https://api.example.com/users")
	require.NoError(t, err)

	_, err = hook.Activate(context.Background())
	require.NoError(t, err)

	notified := false
	hook.Subscribe(func(remotedata.Result[[]userForTest]) {
		notified = true
	})

	assert.False(t, notified)
	assert.Equal(t, remotedata.StatusSuccess, hook.State().Status())
}
