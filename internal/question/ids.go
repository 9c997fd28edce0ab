package question

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// lastQuestionID is the process-wide Question id counter. The first
// Question gets id 1. It is never reset, so ids are unique per process only;
// use Question.Key for identity that must survive a restart.
var lastQuestionID atomic.Int64

func nextQuestionID() int64 {
	return lastQuestionID.Add(1)
}

func newKey() uuid.UUID {
	return uuid.New()
}
