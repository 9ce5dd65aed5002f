// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log is a small leveled-logging abstraction in the style of
// go-kratos/kratos's log package: a minimal Logger interface, a level
// filter that wraps one, and a Helper that adds printf-style convenience
// methods on top. Parsers in this module log through a *Helper so callers
// can plug in their own Logger (or silence everything below Error, the
// default) without this module taking a hard dependency on any particular
// logging backend.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level is a logging severity level, ordered low to high.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the level's canonical, upper-case name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger is the interface every backend in this package implements: a
// single structured logging call, level plus alternating key/value pairs.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes to an *os.File (or any io.Writer) via the standard
// library's log package, one line per Log call.
type stdLogger struct {
	mu  sync.Mutex
	log *log.Logger
}

// NewStdLogger returns a Logger that writes to w, one line per call.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{log: log.New(w, "", log.LstdFlags)}
}

func (l *stdLogger) Log(level Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	buf := fmt.Sprintf("level=%s", level.String())
	for i := 0; i < len(keyvals); i += 2 {
		var k, v interface{} = keyvals[i], "MISSING"
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		buf += fmt.Sprintf(" %v=%v", k, v)
	}
	l.log.Output(4, buf) //nolint:errcheck
	return nil
}

// FilterOption configures a filtering Logger built by NewFilter.
type FilterOption func(*filter)

// FilterLevel drops any Log call below level.
func FilterLevel(level Level) FilterOption {
	return func(f *filter) { f.level = level }
}

type filter struct {
	logger Logger
	level  Level
}

// NewFilter wraps logger so only calls at or above the configured level
// (LevelError by default) reach it.
func NewFilter(logger Logger, opts ...FilterOption) Logger {
	f := &filter{logger: logger, level: LevelError}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.logger.Log(level, keyvals...)
}

// Helper adds printf-style convenience methods on top of a Logger.
type Helper struct {
	logger Logger
}

// NewHelper returns a Helper backed by logger.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, msg string) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Log(level, "msg", msg) //nolint:errcheck
}

func (h *Helper) Debug(msg string)                    { h.log(LevelDebug, msg) }
func (h *Helper) Debugf(format string, a ...interface{}) { h.log(LevelDebug, fmt.Sprintf(format, a...)) }
func (h *Helper) Info(msg string)                     { h.log(LevelInfo, msg) }
func (h *Helper) Infof(format string, a ...interface{})  { h.log(LevelInfo, fmt.Sprintf(format, a...)) }
func (h *Helper) Warn(msg string)                     { h.log(LevelWarn, msg) }
func (h *Helper) Warnf(format string, a ...interface{})  { h.log(LevelWarn, fmt.Sprintf(format, a...)) }
func (h *Helper) Error(msg string)                    { h.log(LevelError, msg) }
func (h *Helper) Errorf(format string, a ...interface{}) { h.log(LevelError, fmt.Sprintf(format, a...)) }

func (h *Helper) Fatal(msg string) {
	h.log(LevelFatal, msg)
	os.Exit(1)
}

func (h *Helper) Fatalf(format string, a ...interface{}) {
	h.log(LevelFatal, fmt.Sprintf(format, a...))
	os.Exit(1)
}

// defaultHelper backs the package-level convenience functions below, for
// callers that don't want to plumb a *Helper through every call site.
var defaultHelper = NewHelper(NewFilter(NewStdLogger(os.Stderr), FilterLevel(LevelError)))

func Debug(msg string)                       { defaultHelper.Debug(msg) }
func Debugf(format string, a ...interface{}) { defaultHelper.Debugf(format, a...) }
func Info(msg string)                        { defaultHelper.Info(msg) }
func Infof(format string, a ...interface{})  { defaultHelper.Infof(format, a...) }
func Warn(msg string)                        { defaultHelper.Warn(msg) }
func Warnf(format string, a ...interface{})  { defaultHelper.Warnf(format, a...) }
func Error(msg string)                       { defaultHelper.Error(msg) }
func Errorf(format string, a ...interface{}) { defaultHelper.Errorf(format, a...) }
func Fatal(msg string)                       { defaultHelper.Fatal(msg) }
func Fatalf(format string, a ...interface{}) { defaultHelper.Fatalf(format, a...) }
