// Package diag reports developer-facing warnings about misconfigured
// comboboxes. Reports never change engine behavior and are compiled out of
// release builds.
package diag

import (
	"fmt"
	"log"
	"sync"
)

// Code identifies a class of diagnostic
type Code string

const (
	LabelNotString     Code = "label-not-string"
	ValueNotInOptions  Code = "value-not-in-options"
	AmbiguousEquality  Code = "ambiguous-equality"
	DuplicateGroupKeys Code = "duplicate-group"
)

// Reporter receives diagnostics
type Reporter interface {
	Report(code Code, format string, args ...any)
}

// Nop drops every report
type Nop struct{}

func (Nop) Report(Code, string, ...any) {}

// LogReporter writes reports through a standard logger. A nil Logger uses the
// package-level log output.
type LogReporter struct {
	Logger *log.Logger
}

func (r LogReporter) Report(code Code, format string, args ...any) {
	msg := fmt.Sprintf("combogrip [%s]: %s", code, fmt.Sprintf(format, args...))
	if r.Logger != nil {
		r.Logger.Print(msg)
		return
	}
	log.Print(msg)
}

// Entry is one recorded diagnostic
type Entry struct {
	Code    Code
	Message string
}

// Recorder keeps reports in memory
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Report(code Code, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Entries returns a copy of everything reported so far
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns how many reports carried the given code
func (r *Recorder) Count(code Code) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Code == code {
			n++
		}
	}
	return n
}

// Default returns the reporter used when the caller supplies none
func Default() Reporter {
	if !Enabled {
		return Nop{}
	}
	return LogReporter{}
}
