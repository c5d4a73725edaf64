package remotedata

import (
	"encoding/json"
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")

// Payload is the raw JSON body of one fetch operation.
//
// It is built on scalars to be completely agnostic of the decoded data
// contracts in the client code. It should only be constructed with
// BuildPayload so invalid JSON never crosses a component boundary.
type Payload = json.RawMessage

// BuildPayload is a factory method for Payload.
// Returns an error if raw is not valid JSON.
func BuildPayload(raw []byte) (Payload, error) {
	if !jsoniter.ConfigFastest.Valid(raw) {
		return nil, ErrInvalidPayloadJSON
	}

	return Payload(raw), nil
}
