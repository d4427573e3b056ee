package notify

import "sync"

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu     sync.Mutex
	Events []Notification
}

func (r *Recorder) Success(message string) { r.record(KindSuccess, message) }

func (r *Recorder) Error(message string) { r.record(KindError, message) }

func (r *Recorder) record(kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Notification{Kind: kind, Message: message})
}

// Last returns the most recent notification, or a zero value.
func (r *Recorder) Last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Events) == 0 {
		return Notification{}
	}
	return r.Events[len(r.Events)-1]
}

// Count returns how many notifications were recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Events)
}
