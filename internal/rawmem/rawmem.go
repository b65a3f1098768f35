// Copyright 2024 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package rawmem implements a fixed-capacity block of element slots
// with no knowledge of element lifetimes.
//
// A Block owns storage for exactly the number of slots it was created
// with and never grows. Which slots hold meaningful values, and what it
// takes to tear those values down, is entirely the caller's business;
// the only cleanup a Block performs is dropping the storage reference.
package rawmem

// A Block owns a contiguous run of element slots.
// The zero value owns no storage and has capacity 0.
//
// A Block must not be copied by assignment; use Swap to transfer
// ownership of the storage between two blocks.
type Block[T any] struct {
	buf []T
}

// Make allocates a Block with exactly capacity slots.
// capacity == 0 allocates nothing. Make panics if capacity
// is negative.
func Make[T any](capacity int) Block[T] {
	if capacity < 0 {
		panic("rawmem: negative capacity")
	}
	if capacity == 0 {
		return Block[T]{}
	}
	return Block[T]{buf: make([]T, capacity)}
}

// Cap returns the number of slots the block holds.
func (b *Block[T]) Cap() int { return len(b.buf) }

// At returns a pointer to slot i.
// At panics if i is not below the capacity.
func (b *Block[T]) At(i int) *T {
	if i < 0 || i >= len(b.buf) {
		panic("rawmem: slot index out of range")
	}
	return &b.buf[i]
}

// Window returns the slot range [i, j) as a slice aliasing
// the block's storage. Window panics unless 0 <= i <= j <= Cap().
func (b *Block[T]) Window(i, j int) []T {
	if i < 0 || j < i || j > len(b.buf) {
		panic("rawmem: window out of range")
	}
	return b.buf[i:j:j]
}

// Swap exchanges the storage and capacity of two blocks. O(1).
func (b *Block[T]) Swap(other *Block[T]) {
	b.buf, other.buf = other.buf, b.buf
}

// Release drops the storage reference, returning the block to the
// zero value. It runs no per-slot teardown; callers that put values
// needing cleanup into slots must do that first.
func (b *Block[T]) Release() {
	b.buf = nil
}
