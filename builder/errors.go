// SPDX-License-Identifier: MIT
// Package: hopdom/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRNG indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRNG = errors.New("builder: rng is required")

// ErrConstructFailed indicates the graph could not be assembled, e.g. a nil
// constructor or a core insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")
