package remotedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

func Test_BuildPayload_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		raw         []byte
		expectedErr error
	}{
		{
			name:        "invalid json",
			raw:         []byte(`[{"id": 1, "name": }]`),
			expectedErr: remotedata.ErrInvalidPayloadJSON,
		},
		{
			name:        "empty input",
			raw:         []byte(``),
			expectedErr: remotedata.ErrInvalidPayloadJSON,
		},
		{
			name:        "nil input",
			raw:         nil,
			expectedErr: remotedata.ErrInvalidPayloadJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := remotedata.BuildPayload(tt.raw)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BuildPayload_AcceptsValidJSON(t *testing.T) {
	raw := []byte(`[{"id": 1, "name": "A"}]`)

	payload, err := remotedata.BuildPayload(raw)

	assert.NoError(t, err)
	assert.Equal(t, remotedata.Payload(raw), payload)
}
