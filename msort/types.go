// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msort

import (
	"errors"
	"fmt"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for the scalar types the engine can sort.
// Every such type has a built-in <= operator. Floats are totally ordered
// except for NaN, which Validate rejects.
type Element interface {
	Integers | Floats | ~string
}

// ErrUnordered is returned when the input holds a value that does not
// compare consistently with the others.
var ErrUnordered = errors.New("msort: value is not totally ordered")

// UnorderedError reports the position of the first unordered value.
type UnorderedError struct {
	Index int
}

func (e *UnorderedError) Error() string {
	return fmt.Sprintf("msort: value at index %d is not totally ordered (NaN)", e.Index)
}

// Is reports whether target is ErrUnordered.
func (e *UnorderedError) Is(target error) bool {
	return target == ErrUnordered
}

// Validate checks that every value of input can take part in a <= comparison.
// The only values rejected are NaNs, for which x != x.
func Validate[T Element](input []T) error {
	for i, v := range input {
		if v != v {
			return &UnorderedError{Index: i}
		}
	}
	return nil
}
