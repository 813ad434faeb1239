/*
Copyright 2025.

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

// Package logging builds the logr.Logger used across stdseam and moves it
// in and out of contexts. Loggers are zap-backed through controller-runtime.
package logging

import (
	"context"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Log levels accepted by Options.Level
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Options configures New
type Options struct {
	// Development switches to the console encoder with stack traces on
	// warnings.
	Development bool
	// Level is one of the Level constants. Unknown values mean info.
	Level string
	// Output defaults to stderr.
	Output io.Writer
}

// New creates a zap-backed logger
func New(opts Options) logr.Logger {
	zapOpts := []zap.Opts{
		zap.UseDevMode(opts.Development),
		zap.Level(ParseLevel(opts.Level)),
	}
	if opts.Output != nil {
		zapOpts = append(zapOpts, zap.WriteTo(opts.Output))
	}
	return zap.New(zapOpts...)
}

// ParseLevel converts a level name to a zap level. logr's V(1) maps to
// debug.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetDefault installs l as the logger returned by FromContext when the
// context carries none.
func SetDefault(l logr.Logger) {
	ctrllog.SetLogger(l)
}

// FromContext returns the logger stored in ctx, or the default logger
func FromContext(ctx context.Context, keysAndValues ...any) logr.Logger {
	return ctrllog.FromContext(ctx, keysAndValues...)
}

// IntoContext stores l in ctx
func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return ctrllog.IntoContext(ctx, l)
}
