package domain

import (
	"time"

	"github.com/google/uuid"
)

type FetchResult struct {
	FetchID    uuid.UUID
	State      FetchState
	Count      int    // filled in case of a success
	Message    string // filled in case of a success
	Err        error  // filled in case of a failure
	StartedAt  time.Time
	FinishedAt time.Time
}
