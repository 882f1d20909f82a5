// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logger is a central log for the simulator. Entries are made of a
// tag naming the component and a detail string. Consecutive identical entries
// are collapsed into one with a repeat count. Nothing is printed unless echo
// is turned on.
//
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// MaxEntries is the number of entries kept by the central log.
//
const MaxEntries = 256

// Entry is a single entry in the log.
//
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Tag)
	b.WriteString(": ")
	b.WriteString(e.Detail)
	if e.repeated > 0 {
		fmt.Fprintf(&b, " (repeat x%d)", e.repeated+1)
	}
	b.WriteByte('\n')
	return b.String()
}

type logger struct {
	mu         sync.Mutex
	maxEntries int
	entries    []Entry
	echo       io.Writer
}

func newLogger(maxEntries int) *logger {
	return &logger{maxEntries: maxEntries}
}

func (l *logger) log(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		e = &l.entries[n-1]
		e.repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		if len(l.entries) > l.maxEntries {
			l.entries = l.entries[len(l.entries)-l.maxEntries:]
		}
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

func (l *logger) write(w io.Writer, last int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return false
	}
	if last <= 0 || last > len(l.entries) {
		last = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-last:] {
		io.WriteString(w, e.String())
	}
	return true
}

var central = newLogger(MaxEntries)

// Log adds an entry to the central log.
//
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central log.
//
func Logf(tag, format string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// Write writes the whole log to w. It returns false if the log is empty.
//
func Write(w io.Writer) bool {
	return central.write(w, 0)
}

// Tail writes the last n entries of the log to w.
//
func Tail(w io.Writer, n int) {
	central.write(w, n)
}

// Entries returns a copy of the log entries.
//
func Entries() []Entry {
	central.mu.Lock()
	defer central.mu.Unlock()
	c := make([]Entry, len(central.entries))
	copy(c, central.entries)
	return c
}

// Clear empties the log.
//
func Clear() {
	central.mu.Lock()
	central.entries = central.entries[:0]
	central.mu.Unlock()
}

// SetEcho echoes every new entry to w. A nil w turns echo off.
//
func SetEcho(w io.Writer) {
	central.mu.Lock()
	central.echo = w
	central.mu.Unlock()
}
