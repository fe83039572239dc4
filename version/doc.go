// Package version provides build version information embedding for
// matrixflow binaries.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/matrixflow/version.Version=1.0.0"
package version
