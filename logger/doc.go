// Package logger provides structured logging for matrixflow built on zerolog.
//
// A single global logger is initialized once via Init and shared by all
// components. Component-scoped loggers are derived with WithComponent, and
// run-scoped loggers carry the run ID via WithRunID / FromContext.
package logger
