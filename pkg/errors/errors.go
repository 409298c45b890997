// Package errors provides structured error reporting for fluent components.
//
// Two kinds of failure exist in this library: caller-contract violations,
// which fail fast via panic with a typed error, and expected transient
// conditions, which components handle internally and at most report through
// the pluggable [Handler].
package errors

import (
	"fmt"
	"runtime"
	"time"
)

// Kind categorizes an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an invalid component configuration.
	KindConfig
	// KindVariant indicates an unsupported item variant reached a layout
	// strategy.
	KindVariant
	// KindGeometry indicates an indicator target with no resolvable item.
	KindGeometry
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindVariant:
		return "variant"
	case KindGeometry:
		return "geometry"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FluentError is a structured error raised or reported by the library.
type FluentError struct {
	// Op is the operation that failed (e.g. "pane.NewPane").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FluentError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FluentError) Unwrap() error {
	return e.Err
}

// ConfigError reports a caller-supplied configuration that violates a
// component's contract. Components panic with a ConfigError at construction
// or update time so bugs surface immediately instead of being clamped away.
type ConfigError struct {
	// Op is the operation that rejected the configuration.
	Op string
	// Reason describes the violated contract.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid configuration: %s", e.Op, e.Reason)
}

// VariantError reports an item variant a layout strategy cannot render.
// Strategies panic with a VariantError rather than silently dropping items.
type VariantError struct {
	// Strategy is the layout strategy that hit the variant.
	Strategy string
	// Variant is the concrete type name of the unsupported item.
	Variant string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s: unsupported pane item variant %s", e.Strategy, e.Variant)
}

// CaptureStack returns the current goroutine's stack trace.
func CaptureStack() string {
	buf := make([]byte, 16*1024)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
