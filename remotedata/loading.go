package remotedata

type LoadingEventTagString = string

const (
	// LoadingEventTagLoading marks the start of a fetch operation.
	LoadingEventTagLoading LoadingEventTagString = "LOADING"

	// LoadingEventTagFinished marks the successful completion of a fetch operation.
	LoadingEventTagFinished LoadingEventTagString = "FINISHED"

	// LoadingEventTagFailed marks the failed completion of a fetch operation.
	LoadingEventTagFailed LoadingEventTagString = "FAILED"
)

// LoadingEvent is an input to the loading reducer, tagged with one of the
// LoadingEventTag* constants. Events with unrecognized tags are legal input
// and leave the state unchanged.
type LoadingEvent struct {
	tag LoadingEventTagString
}

// LoadingEventOf builds a LoadingEvent with the given tag.
func LoadingEventOf(tag LoadingEventTagString) LoadingEvent {
	return LoadingEvent{tag: tag}
}

func (e LoadingEvent) Tag() LoadingEventTagString {
	return e.tag
}

// LoadingState tracks whether a fetch operation is still in flight.
// It is scoped to the lifetime of one fetch operation and mutated only
// through ReduceLoading.
type LoadingState struct {
	IsLoading bool
}

// NewLoadingState creates the initial state of one fetch operation, which is loading.
func NewLoadingState() LoadingState {
	return LoadingState{IsLoading: true}
}

// ReduceLoading is a pure state-transition function mapping the current
// LoadingState and a LoadingEvent to the next LoadingState.
//
// Transition table:
//   - LOADING always yields {IsLoading: true}
//   - FINISHED and FAILED always yield {IsLoading: false}
//   - any other tag returns the given state unchanged
func ReduceLoading(state LoadingState, event LoadingEvent) LoadingState {
	switch event.Tag() {
	case LoadingEventTagLoading:
		return LoadingState{IsLoading: true}

	case LoadingEventTagFinished, LoadingEventTagFailed:
		return LoadingState{IsLoading: false}

	default:
		return state
	}
}
