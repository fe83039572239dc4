// Package errors provides the coded error types used across matrixflow.
package errors
