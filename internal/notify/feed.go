package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is one toast-style message for a UI to render.
type Notice struct {
	Kind    Kind
	Message string
	At      time.Time
}

// Feed buffers notices for a presentation layer to drain. When the buffer
// is full the oldest notice is dropped; a toast nobody saw is not worth
// blocking an operation for.
type Feed struct {
	mu  sync.Mutex
	buf []Notice
	cap int
}

func NewFeed(capacity int) *Feed {
	if capacity < 1 {
		capacity = 1
	}
	return &Feed{cap: capacity}
}

func (f *Feed) Success(msg string) { f.push(KindSuccess, msg) }
func (f *Feed) Error(msg string)   { f.push(KindError, msg) }

func (f *Feed) push(kind Kind, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.buf) == f.cap {
		f.buf = f.buf[1:]
	}
	f.buf = append(f.buf, Notice{Kind: kind, Message: msg, At: time.Now()})
}

// Drain returns and clears all pending notices.
func (f *Feed) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.buf
	f.buf = nil
	return out
}
