// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// logInterval is the minimum time between unforced progress messages.
const logInterval = 10 * time.Second

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of progress towards some action such as
// benchmarking a set of generators.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate information about generated output between log
	// statements.
	receivedBits     uint64
	receivedRequests uint64
}

// New returns a new generation progress logger.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates the number of bits produced by a single generate
// request and periodically (every 10 seconds) logs an information message to
// show progress to the user along with duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.
//
// The progress message is templated as follows:
//  {progressAction} {numBits} {bits|bit} in {numRequests} {requests|request}
//  in the last {timePeriod} (source {name}, {progress}% done)
func (l *Logger) LogProgress(name string, numBits uint64, forceLog bool, progress func() float64) {
	l.Lock()
	defer l.Unlock()

	l.receivedBits += numBits
	l.receivedRequests++
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < logInterval {
		return
	}

	l.subsystemLogger.Infof("%s %d %s in %d %s in the last %0.2fs (source "+
		"%s, %0.2f%% done)", l.progressAction,
		l.receivedBits, pickNoun(l.receivedBits, "bit", "bits"),
		l.receivedRequests, pickNoun(l.receivedRequests, "request", "requests"),
		duration.Seconds(), name, progress()*100)

	l.receivedBits = 0
	l.receivedRequests = 0
	l.lastLogTime = now
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
