package remotedata_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

func Test_PendingResult_IsLoadingWithoutDataOrError(t *testing.T) {
	result := remotedata.PendingResult[[]string]()

	assert.Equal(t, remotedata.StatusPending, result.Status())
	assert.True(t, result.IsLoading())
	assert.NoError(t, result.Err())

	data, ok := result.Data()
	assert.False(t, ok)
	assert.Nil(t, data)
}

func Test_SuccessResult_ExposesData(t *testing.T) {
	result := remotedata.SuccessResult([]string{"A", "B"})

	assert.Equal(t, remotedata.StatusSuccess, result.Status())
	assert.False(t, result.IsLoading())
	assert.NoError(t, result.Err())

	data, ok := result.Data()
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, data)
}

func Test_FailedResult_ExposesReason(t *testing.T) {
	reason := errors.New("endpoint unreachable")

	result := remotedata.FailedResult[[]string](reason)

	assert.Equal(t, remotedata.StatusFailed, result.Status())
	assert.False(t, result.IsLoading())
	assert.ErrorIs(t, result.Err(), reason)

	data, ok := result.Data()
	assert.False(t, ok)
	assert.Nil(t, data)
}
