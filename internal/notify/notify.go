// Package notify carries transient user-facing outcome messages, the
// dashboard's equivalent of toast notifications.
package notify

import (
	"sync"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/logging"
)

// Notifier receives the outcome of every mutation and failed fetch.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Kind of a recorded notification.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Notification is one transient message with its display kind.
type Notification struct {
	Kind    string
	Message string
	At      time.Time
}

// LogNotifier writes notifications to the structured log. Used where no
// interactive surface is attached.
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	logging.Info("notification", "kind", KindSuccess, "message", message)
}

func (LogNotifier) Error(message string) {
	logging.Warn("notification", "kind", KindError, "message", message)
}

// Feed keeps the most recent notifications in a ring so the dashboard
// can flush them into its flash area on the next render.
type Feed struct {
	mu    sync.Mutex
	items []Notification
	limit int
}

// NewFeed creates a feed holding at most limit notifications.
func NewFeed(limit int) *Feed {
	if limit < 1 {
		limit = 10
	}
	return &Feed{limit: limit}
}

func (f *Feed) Success(message string) { f.push(KindSuccess, message) }

func (f *Feed) Error(message string) { f.push(KindError, message) }

func (f *Feed) push(kind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Notification{Kind: kind, Message: message, At: time.Now()})
	if len(f.items) > f.limit {
		f.items = f.items[len(f.items)-f.limit:]
	}
}

// Drain returns the pending notifications and clears the feed.
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.items
	f.items = nil
	return items
}
