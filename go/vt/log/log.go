/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a thin adapter around glog with optional structured
// logging via slog.
//
// By default, it uses glog and its flags. Structured logging is enabled only
// when the --log-fmt flag is explicitly set; the printf style helpers then
// emit their formatted message as a slog record.
package log

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"vitess.io/sqlmath/go/vt/utils"
)

// Flush ensures any pending I/O is written.
var Flush = glog.Flush

// Level is the glog verbosity level.
type Level = glog.Level

// Verbose is the boolean type returned by V.
type Verbose bool

// V reports whether verbosity at the call site is at least the requested
// level. With structured logging it maps V(1) and above to debug.
func V(level Level) Verbose {
	if structuredLoggingEnabled.Load() {
		if level <= 0 {
			return Verbose(Enabled(slog.LevelInfo))
		}
		return Verbose(Enabled(slog.LevelDebug))
	}
	return Verbose(bool(glog.V(level)))
}

// Infof logs at info level if v is true.
func (v Verbose) Infof(format string, args ...any) {
	if v {
		logf(slog.LevelInfo, format, args...)
	}
}

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}

func logf(level slog.Level, format string, args ...any) {
	if structuredLoggingEnabled.Load() {
		logS(level, 1, fmt.Sprintf(format, args...))
		return
	}
	// skip logf and the exported wrapper
	const depth = 2
	switch level {
	case slog.LevelError:
		glog.ErrorDepthf(depth, format, args...)
	default:
		glog.InfoDepthf(depth, format, args...)
	}
}

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	flagVal := logRotateMaxSize{
		val: strconv.FormatUint(atomic.LoadUint64(&glog.MaxSize), 10),
	}
	utils.SetFlagVar(fs, &flagVal, "log-rotate-max-size", "size in bytes at which logs are rotated (glog.MaxSize)")

	// Structured logging flags.
	utils.SetFlagStringVar(fs, &logFormat, "log-fmt", "json", "format for structured logging output: json or logfmt")
	utils.SetFlagStringVar(fs, &logLevel, "log-level", "info", "minimum structured logging level: info, warn, debug, or error")
}

// logRotateMaxSize implements pflag.Value and is used to
// try and provide thread-safe access to glog.MaxSize.
type logRotateMaxSize struct {
	val string
}

func (lrms *logRotateMaxSize) Set(s string) error {
	maxSize, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	atomic.StoreUint64(&glog.MaxSize, maxSize)
	lrms.val = s
	return nil
}

func (lrms *logRotateMaxSize) String() string {
	return lrms.val
}

func (lrms *logRotateMaxSize) Type() string {
	return "uint64"
}
