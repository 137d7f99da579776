package events

import (
	"sync"
	"time"
)

// DeadLetter is an event that could not be published after all retries.
// Kept in memory only, like the rest of the portal state.
type DeadLetter struct {
	ID       int       `json:"id"`
	Topic    string    `json:"topic"`
	Key      string    `json:"key"`
	Payload  string    `json:"payload"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
}

var (
	dlqMutex sync.Mutex
	dlq      []DeadLetter
	dlqSeq   int
)

func storeDeadLetter(topic, key string, payload []byte, errMsg string) {
	dlqMutex.Lock()
	defer dlqMutex.Unlock()

	dlqSeq++
	dlq = append(dlq, DeadLetter{
		ID:       dlqSeq,
		Topic:    topic,
		Key:      key,
		Payload:  string(payload),
		Error:    errMsg,
		FailedAt: time.Now(),
	})
}

// DeadLetters returns a snapshot of the dead-letter list, newest last.
func DeadLetters() []DeadLetter {
	dlqMutex.Lock()
	defer dlqMutex.Unlock()

	out := make([]DeadLetter, len(dlq))
	copy(out, dlq)
	return out
}
