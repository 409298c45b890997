package errors

import (
	"sync"
	"time"
)

// Handler receives errors reported by the library for conditions that are
// logged rather than raised, such as an indicator target that no longer
// resolves to an item.
type Handler interface {
	HandleError(err *FluentError)
}

var (
	handlerMu sync.RWMutex
	handler   Handler = &LogHandler{}
)

// SetHandler replaces the global error handler. Returns the previous
// handler so callers can restore it.
func SetHandler(h Handler) Handler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Report sends an error to the global handler. Nil handlers and nil errors
// are ignored.
func Report(op string, kind Kind, err error) {
	if err == nil {
		return
	}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	if h == nil {
		return
	}
	h.HandleError(&FluentError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	})
}
