package remotedata

type StatusString = string

const (
	// StatusPending indicates the fetch has not reached a terminal state yet.
	StatusPending StatusString = "pending"

	// StatusSuccess indicates the fetch completed and the payload was decoded.
	StatusSuccess StatusString = "success"

	// StatusFailed indicates the fetch or the payload decoding failed.
	StatusFailed StatusString = "failed"
)

// Result is the tagged three-state value a hook exposes to its rendering
// layer: Pending until exactly one terminal transition, then either
// Success carrying the decoded data or Failed carrying the reason.
//
// While its accessors are exported, it should only be constructed with the
// supplied factory methods:
//   - PendingResult
//   - SuccessResult
//   - FailedResult
type Result[T any] struct {
	status StatusString
	data   T
	err    error
}

// PendingResult is a factory method for a Result in the pending state.
func PendingResult[T any]() Result[T] {
	return Result[T]{status: StatusPending}
}

// SuccessResult is a factory method for a Result in the success state carrying the decoded data.
func SuccessResult[T any](data T) Result[T] {
	return Result[T]{status: StatusSuccess, data: data}
}

// FailedResult is a factory method for a Result in the failed state carrying the failure reason.
func FailedResult[T any](err error) Result[T] {
	return Result[T]{status: StatusFailed, err: err}
}

func (r Result[T]) Status() StatusString {
	return r.status
}

// IsLoading reports whether the result is still pending, mirroring the
// loading flag of LoadingState for the rendering layer.
func (r Result[T]) IsLoading() bool {
	return r.status == StatusPending
}

// Data returns the decoded payload and true if the result is a success,
// the zero value and false otherwise.
func (r Result[T]) Data() (T, bool) {
	if r.status != StatusSuccess {
		var empty T
		return empty, false
	}

	return r.data, true
}

// Err returns the failure reason if the result is failed, nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}
