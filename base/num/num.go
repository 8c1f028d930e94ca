// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic numeric type constraints and small
// conversion helpers used by the enum and bitflag machinery.
package num

// Integer is the set of integer types that enum and bitflag values are
// backed by.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of all integer and floating point types.
type Number interface {
	Integer | Float
}

// Signed is the set of signed integer and floating point types, for which
// Abs is meaningful.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ToBool converts a number to a bool: zero is false, anything else is true.
func ToBool[T Number](v T) bool {
	return v != 0
}

// FromBool converts a bool to 0 or 1 in the given numeric type.
func FromBool[T Number](b bool) T {
	if b {
		return 1
	}
	return 0
}

// SetFromBool sets *v to 0 or 1 according to b.
func SetFromBool[T Number](v *T, b bool) {
	*v = FromBool[T](b)
}

// Abs returns the absolute value of v.
func Abs[T Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
