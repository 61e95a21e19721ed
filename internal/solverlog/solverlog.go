// Package solverlog provides dual-format progress logging shared by every
// search in this module: a human-readable console stream and an optional
// JSONL trace file for later analysis.
package solverlog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"
)

// Logger writes search progress to a console writer, a JSONL file writer,
// or both. Either may be nil to disable that channel.
type Logger struct {
	console   io.Writer
	file      io.Writer
	startTime time.Time
	verbose   bool
}

// New creates a Logger. console and file may each be nil.
func New(console, file io.Writer, verbose bool) *Logger {
	return &Logger{console: console, file: file, startTime: time.Now(), verbose: verbose}
}

// Event is one JSONL trace record. Fields are optional; only those that
// apply to a given line are populated.
type Event struct {
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	ElapsedMs int64     `json:"elapsed_ms"`

	Algorithm string `json:"algorithm,omitempty"`

	Step      *int     `json:"step,omitempty"`
	Bins      *int     `json:"bins,omitempty"`
	Score     *float64 `json:"score,omitempty"`
	Generation *int    `json:"generation,omitempty"`

	Message string `json:"message,omitempty"`
}

func (l *Logger) writeJSON(e Event) {
	if l == nil || l.file == nil {
		return
	}
	e.Timestamp = time.Now()
	e.ElapsedMs = time.Since(l.startTime).Milliseconds()
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = l.file.Write(data)
}

// MustFprintf writes a formatted line to w, logging and exiting on error.
// Mirrors the teacher's fatal-on-write-failure convention for console
// output that the user is actively watching.
func MustFprintf(w io.Writer, format string, args ...interface{}) {
	if w == nil {
		return
	}
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		log.Fatalf("console write failed: %v", err)
	}
}

// Found logs a new-best-packing event: "F: <algorithm> step=<n> bins=<k> score=<s>".
func (l *Logger) Found(algorithm string, step, bins int, score float64) {
	if l == nil {
		return
	}
	MustFprintf(l.console, "F: %s step=%d bins=%d score=%.6f\n", algorithm, step, bins, score)
	l.writeJSON(Event{Kind: "found", Algorithm: algorithm, Step: &step, Bins: &bins, Score: &score})
}

// BestKnown logs the bin count of a new best-so-far packing:
// "BN: <algorithm> step=<n> bins=<k>".
func (l *Logger) BestKnown(algorithm string, step, bins int) {
	if l == nil {
		return
	}
	MustFprintf(l.console, "BN: %s step=%d bins=%d\n", algorithm, step, bins)
	l.writeJSON(Event{Kind: "best_known", Algorithm: algorithm, Step: &step, Bins: &bins})
}

// Restart logs a tabu-search restart or GA population-reset event.
func (l *Logger) Restart(algorithm string, step int, reason string) {
	if l == nil {
		return
	}
	MustFprintf(l.console, "R: %s step=%d reason=%s\n", algorithm, step, reason)
	l.writeJSON(Event{Kind: "restart", Algorithm: algorithm, Step: &step, Message: reason})
}

// Stop logs the terminal state of a search: "S: <algorithm> step=<n> bins=<k> score=<s>".
func (l *Logger) Stop(algorithm string, step, bins int, score float64) {
	if l == nil {
		return
	}
	MustFprintf(l.console, "S: %s step=%d bins=%d score=%.6f\n", algorithm, step, bins, score)
	l.writeJSON(Event{Kind: "stop", Algorithm: algorithm, Step: &step, Bins: &bins, Score: &score})
}

// Generation logs a per-generation progress line for GA/ACO: "G: <algorithm> gen=<n> bins=<k> score=<s>".
func (l *Logger) Generation(algorithm string, gen, bins int, score float64) {
	if l == nil {
		return
	}
	MustFprintf(l.console, "G: %s gen=%d bins=%d score=%.6f\n", algorithm, gen, bins, score)
	l.writeJSON(Event{Kind: "generation", Algorithm: algorithm, Generation: &gen, Bins: &bins, Score: &score})
}

// Verbose logs a diagnostic line only when verbose mode is enabled, e.g.
// tabu search's "bad result" notice when the adopted non-tabu neighbour is
// worse than the current packing.
func (l *Logger) Verbose(algorithm, message string) {
	if l == nil || !l.verbose {
		return
	}
	MustFprintf(l.console, "V: %s %s\n", algorithm, message)
	l.writeJSON(Event{Kind: "verbose", Algorithm: algorithm, Message: message})
}
