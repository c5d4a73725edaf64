package remotedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

func Test_NewLoadingState_StartsLoading(t *testing.T) {
	state := remotedata.NewLoadingState()

	assert.True(t, state.IsLoading)
}

func Test_ReduceLoading_TransitionTable(t *testing.T) {
	tests := []struct {
		name              string
		initialIsLoading  bool
		eventTag          remotedata.LoadingEventTagString
		expectedIsLoading bool
	}{
		{
			name:              "loading event on loading state stays loading",
			initialIsLoading:  true,
			eventTag:          remotedata.LoadingEventTagLoading,
			expectedIsLoading: true,
		},
		{
			name:              "loading event on finished state yields loading regardless of prior state",
			initialIsLoading:  false,
			eventTag:          remotedata.LoadingEventTagLoading,
			expectedIsLoading: true,
		},
		{
			name:              "finished event on loading state yields not loading",
			initialIsLoading:  true,
			eventTag:          remotedata.LoadingEventTagFinished,
			expectedIsLoading: false,
		},
		{
			name:              "finished event on finished state stays not loading",
			initialIsLoading:  false,
			eventTag:          remotedata.LoadingEventTagFinished,
			expectedIsLoading: false,
		},
		{
			name:              "failed event on loading state yields not loading",
			initialIsLoading:  true,
			eventTag:          remotedata.LoadingEventTagFailed,
			expectedIsLoading: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := remotedata.LoadingState{IsLoading: tt.initialIsLoading}

			next := remotedata.ReduceLoading(state, remotedata.LoadingEventOf(tt.eventTag))

			assert.Equal(t, tt.expectedIsLoading, next.IsLoading)
		})
	}
}

func Test_ReduceLoading_UnknownTagReturnsStateUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		state remotedata.LoadingState
	}{
		{
			name:  "identity on loading state",
			state: remotedata.LoadingState{IsLoading: true},
		},
		{
			name:  "identity on finished state",
			state: remotedata.LoadingState{IsLoading: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := remotedata.ReduceLoading(tt.state, remotedata.LoadingEventOf("UNKNOWN"))

			assert.Equal(t, tt.state, next)
		})
	}
}

func Test_ReduceLoading_HasNoSideEffectsOnInput(t *testing.T) {
	state := remotedata.NewLoadingState()

	_ = remotedata.ReduceLoading(state, remotedata.LoadingEventOf(remotedata.LoadingEventTagFinished))

	assert.True(t, state.IsLoading, "input state must not be mutated")
}
