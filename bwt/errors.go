package bwt

import "errors"

// ErrOutOfRange is returned when a row or interval argument falls
// outside a BWT's valid bounds.
var ErrOutOfRange = errors.New("bwt: index out of range")

// ErrNotDynamic is returned by the dynamic-only mutation methods when
// called on a BWT built over a static, immutable sequence.
var ErrNotDynamic = errors.New("bwt: sequence does not support mutation")
