// Package log provides the leveled logging interface used across the
// extraction tools, backed by kataras/golog by default.
//
// The Logger interface keeps the rest of the codebase independent of the
// logging backend; the normalizer and the agent runner accept any Logger,
// and tests pass a NoOpLogger.
package log
