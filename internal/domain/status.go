package domain

type FetchState string

const (
	FetchStateIdle      FetchState = "idle"
	FetchStateFetching  FetchState = "fetching"
	FetchStateSucceeded FetchState = "succeeded"
	FetchStateFailed    FetchState = "failed"
)

func (s FetchState) String() string {
	return string(s)
}

// IsFinished reports whether s is terminal. A controller never leaves a terminal state.
func (s FetchState) IsFinished() bool {
	return s == FetchStateSucceeded || s == FetchStateFailed
}
