package vdf

import "github.com/pkg/errors"

// ErrCancelled is returned by the evaluator when should_continue reports
// false at a poll boundary.
var ErrCancelled = errors.New("vdf: evaluation cancelled")

// ErrInvalidInput mirrors classgroup.ErrInvalidInput for failures that
// originate in this package rather than being passed through from it
// (malformed cascade blobs, segment count mismatches).
var ErrInvalidInput = errors.New("vdf: invalid input")
