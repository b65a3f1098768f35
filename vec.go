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

// Package vec implements a generic contiguous growable array with
// explicit control over storage capacity, element lifetimes, and the
// atomicity each mutating operation delivers when element code
// faults.
//
// A Vector owns one fixed-capacity storage block (see internal/rawmem)
// and tracks how many of its leading slots hold live elements. Slots
// at and above Len() are raw: they are never read, assigned over
// except by an insertion, or disposed, and they always hold the zero
// value so dead slots cannot pin heap objects.
//
// Element code can fault by panicking: constructors passed to Emplace
// and EmplaceAt, and the Clone method of Cloner element types. Each
// mutating operation documents what the caller observes if such a
// panic unwinds through it. "Unchanged" means the strong guarantee:
// the vector's length, capacity, and elements are exactly as before
// the call. Operations that only promise a "valid" vector may leave
// it with different contents, but its invariants hold and every live
// element remains usable.
//
// A Vector is not safe for concurrent use and must not be copied by
// assignment; use Clone, Take, or Swap.
package vec

import (
	"github.com/SnellerInc/vec/internal/rawmem"
)

// A Vector is a contiguous growable array of T.
// The zero value is an empty vector with no storage, ready to use.
type Vector[T any] struct {
	data rawmem.Block[T]
	n    int

	tr     traits[T]
	trInit bool
}

// Make returns a Vector with n elements, each the zero value of T,
// and capacity exactly n. Make panics if n is negative.
func Make[T any](n int) Vector[T] {
	if n < 0 {
		panic("vec: negative size")
	}
	return Vector[T]{data: rawmem.Make[T](n), n: n}
}

// traits lazily resolves the per-type strategy table. The result is
// determined entirely by T, so resolving it on first use is
// equivalent to resolving it at construction.
func (v *Vector[T]) traits() *traits[T] {
	if !v.trInit {
		v.tr = traitsOf[T]()
		v.trInit = true
	}
	return &v.tr
}

func (v *Vector[T]) live() []T {
	return v.data.Window(0, v.n)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int { return v.data.Cap() }

// Empty returns whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// At returns a pointer to element i.
// At panics if i is not below Len().
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.n {
		panic("vec: index out of range")
	}
	return v.data.At(i)
}

// Slice returns the live elements as a slice aliasing the vector's
// storage. The slice is invalidated by any operation that reallocates
// or shifts elements (growth, insertion, erasure); read or write it
// only up to the next such call.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// Swap exchanges the storage and length of two vectors. O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.n, other.n = other.n, v.n
}

// Take moves other's storage and elements into v and v's into other,
// in O(1) with no element copies. Taking from a vector into a fresh
// one transfers its contents and leaves the source empty; the storage
// displaced from v is torn down whenever other is released.
func (v *Vector[T]) Take(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other)
}

// Clone returns an independent copy of v with capacity equal to its
// length. Cloner elements are duplicated via Clone; all others are
// assigned. If an element's Clone panics, the partially built copy is
// torn down and v is unchanged.
func (v *Vector[T]) Clone() Vector[T] {
	tr := v.traits()
	out := Vector[T]{data: rawmem.Make[T](v.n)}
	cloneConstruct(tr, out.data.Window(0, v.n), v.live())
	out.n = v.n
	return out
}

// CopyFrom makes v an element-wise copy of other.
//
// If other does not fit in v's current capacity, a full copy is built
// first and swapped in, so a panicking Clone leaves v unchanged.
// Otherwise v's storage is reused: the overlapping prefix is
// copy-assigned, then the excess tail is destroyed (when shrinking)
// or the extra suffix is copy-constructed (when growing). On that
// path a panicking Clone leaves v valid but possibly holding a mix of
// old and copied elements.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	if other.n > v.data.Cap() {
		dup := other.Clone()
		v.Swap(&dup)
		dup.Release()
		return
	}
	tr := v.traits()
	src := other.live()
	overlap := minInt(v.n, other.n)
	for i := 0; i < overlap; i++ {
		tr.copyAssign(v.data.At(i), &src[i])
	}
	if other.n < v.n {
		tr.destroy(v.data.Window(other.n, v.n))
	} else {
		cloneConstruct(tr, v.data.Window(v.n, other.n), src[v.n:])
	}
	v.n = other.n
}

// Pop destroys the last element.
// Pop panics if the vector is empty.
func (v *Vector[T]) Pop() {
	if v.n == 0 {
		panic("vec: pop from empty vector")
	}
	v.traits().destroy(v.data.Window(v.n-1, v.n))
	v.n--
}

// Erase removes element i, shifting every later element one slot left
// by move-assignment. Erase panics if i is not below Len().
//
// Erase leaves the vector valid but with unspecified contents if a
// shift faults partway; the length shrinks only once the shift has
// fully completed.
func (v *Vector[T]) Erase(i int) {
	if i < 0 || i >= v.n {
		panic("vec: erase position out of range")
	}
	tr := v.traits()
	win := v.live()
	if i == v.n-1 {
		tr.destroy(win[i:])
		v.n--
		return
	}
	// the erased element's teardown runs before its slot is reused
	// as the shift destination
	if tr.dispose != nil {
		tr.dispose(&win[i])
	}
	for j := i; j < v.n-1; j++ {
		tr.moveAssign(&win[j], &win[j+1])
	}
	tr.discard(&win[v.n-1])
	v.n--
}

// Reserve grows the capacity to exactly c, relocating the live
// elements into the new storage. It is a no-op when c does not exceed
// the current capacity. Reserve panics if c is negative.
//
// If relocation faults, the new storage is abandoned and v is
// unchanged.
func (v *Vector[T]) Reserve(c int) {
	if c < 0 {
		panic("vec: negative capacity")
	}
	if c <= v.data.Cap() {
		return
	}
	tr := v.traits()
	nb := rawmem.Make[T](c)
	dst := nb.Window(0, c)
	src := v.live()
	built := 0
	adopted := false
	defer func() {
		if adopted || tr.dispose == nil {
			return
		}
		tr.destroy(dst[:built])
	}()
	tr.transfer(dst, src, &built)
	tr.retire(src)
	v.data.Swap(&nb)
	nb.Release()
	adopted = true
}

// Resize changes the length to n. Shrinking destroys the trailing
// elements; growing reserves capacity for n and extends the live
// range with zero-valued elements. Resize panics if n is negative.
//
// A faulting relocation during growth leaves v unchanged.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vec: negative size")
	}
	if n <= v.n {
		v.traits().destroy(v.data.Window(n, v.n))
	} else {
		// raw slots already hold the zero value, so extending the
		// live range is the default construction
		v.Reserve(n)
	}
	v.n = n
}

// Release destroys all live elements and drops the storage, returning
// v to the zero value. Releasing an empty vector is a no-op; Release
// is how Disposer elements get their end-of-life teardown, and is
// optional for element types that need none.
func (v *Vector[T]) Release() {
	v.traits().destroy(v.live())
	v.data.Release()
	v.n = 0
}
