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

package vec

import (
	"github.com/SnellerInc/vec/internal/rawmem"
)

// Push appends x, taking ownership of it.
// If the append faults, v is unchanged.
func (v *Vector[T]) Push(x T) {
	v.EmplaceAt(v.n, func() T { return x })
}

// Emplace appends an element built by construct and returns a pointer
// to it. construct may panic; if it does, or if growth faults, v is
// unchanged.
func (v *Vector[T]) Emplace(construct func() T) *T {
	return v.EmplaceAt(v.n, construct)
}

// Insert inserts x at position i, taking ownership of it.
// i may range over [0, Len()]; Insert panics otherwise.
// Atomicity is as documented on EmplaceAt.
func (v *Vector[T]) Insert(i int, x T) {
	v.EmplaceAt(i, func() T { return x })
}

// EmplaceAt inserts an element built by construct at position i and
// returns a pointer to it. i may range over [0, Len()]; EmplaceAt
// panics otherwise.
//
// If construct panics, v is unchanged: for an insertion at the end or
// one that grows the storage, the element is built before any live
// slot is touched; for an interior insertion it is built into a
// temporary first. A fault while relocating into grown storage also
// leaves v unchanged, since the new block is still private. Only the
// element shift of an interior insertion is weaker: a fault there
// leaves v valid but with unspecified contents.
func (v *Vector[T]) EmplaceAt(i int, construct func() T) *T {
	if i < 0 || i > v.n {
		panic("vec: insert position out of range")
	}
	if v.n < v.data.Cap() {
		if i == v.n {
			return v.appendFast(construct)
		}
		return v.insertShift(i, construct)
	}
	return v.insertGrow(i, construct)
}

// appendFast constructs directly into the free slot past the live
// range. A construction panic touches nothing.
func (v *Vector[T]) appendFast(construct func() T) *T {
	p := v.data.At(v.n)
	*p = construct()
	v.n++
	return p
}

// insertShift handles an interior insertion within spare capacity:
// build the temporary, move the last element into the free end slot,
// shift [i, n-1) right one slot back to front, then move the
// temporary into place.
func (v *Vector[T]) insertShift(i int, construct func() T) *T {
	tr := v.traits()
	tmp := construct()
	win := v.data.Window(0, v.n+1)
	tr.moveAssign(&win[v.n], &win[v.n-1])
	for j := v.n - 1; j > i; j-- {
		tr.moveAssign(&win[j], &win[j-1])
	}
	tr.moveAssign(&win[i], &tmp)
	v.n++
	return v.data.At(i)
}

// insertGrow handles the full-storage case: allocate a private block
// of the next capacity, construct the new element at its final offset
// there, relocate the prefix and suffix around it, then retire the
// old block and adopt the new one. The vector is mutated only after
// every fallible step has succeeded.
func (v *Vector[T]) insertGrow(i int, construct func() T) *T {
	tr := v.traits()
	nb := rawmem.Make[T](nextCap(v.data.Cap()))
	dst := nb.Window(0, nb.Cap())
	src := v.live()

	placed := false
	npre, nsuf := 0, 0
	adopted := false
	defer func() {
		if adopted || tr.dispose == nil {
			return
		}
		// the private block is being abandoned; tear down whatever
		// was built inside it so Dispose hooks are not skipped
		tr.destroy(dst[:npre])
		if placed {
			tr.destroy(dst[i : i+1])
		}
		tr.destroy(dst[i+1 : i+1+nsuf])
	}()

	dst[i] = construct()
	placed = true
	tr.transfer(dst[:i], src[:i], &npre)
	tr.transfer(dst[i+1:], src[i:], &nsuf)

	tr.retire(src)
	v.data.Swap(&nb)
	nb.Release()
	v.n++
	adopted = true
	return v.data.At(i)
}
