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

// Cloner is implemented by element types for which plain assignment
// is not a true copy (types owning heap state, handles, and so on).
// When a Vector needs an independent duplicate of an element it calls
// Clone instead of assigning. Clone may panic; the calling operation
// documents the atomicity it provides when that happens.
type Cloner[T any] interface {
	Clone() T
}

// Mover is implemented by element types that can transfer ownership
// of their contents into the returned value. Move must not panic, and
// must leave the receiver in a state that can be safely disposed and
// safely assigned over.
//
// A type implementing both Cloner and Mover is relocated with Move
// (relocation discards the source, so transfer is safe and cannot
// fault); Clone is reserved for operations that duplicate.
type Mover[T any] interface {
	Move() T
}

// Disposer is implemented by element types that need teardown beyond
// garbage collection. Dispose runs for every element a Vector
// destroys or replaces; it must not panic and must tolerate running
// on a moved-from value.
type Disposer interface {
	Dispose()
}

// traits is the per-type strategy table, resolved once from the
// optional interfaces above. A nil entry means the capability is
// absent and the plain-value behavior (direct assignment, no
// teardown) applies.
type traits[T any] struct {
	clone   func(*T) T
	move    func(*T) T
	dispose func(*T)
}

// traitsOf probes T for the optional capability interfaces, accepting
// methods declared on either the value or the pointer type.
func traitsOf[T any]() traits[T] {
	var zero T
	var tr traits[T]
	if _, ok := any(zero).(Cloner[T]); ok {
		tr.clone = func(p *T) T { return any(*p).(Cloner[T]).Clone() }
	} else if _, ok := any(&zero).(Cloner[T]); ok {
		tr.clone = func(p *T) T { return any(p).(Cloner[T]).Clone() }
	}
	if _, ok := any(zero).(Mover[T]); ok {
		tr.move = func(p *T) T { return any(*p).(Mover[T]).Move() }
	} else if _, ok := any(&zero).(Mover[T]); ok {
		tr.move = func(p *T) T { return any(p).(Mover[T]).Move() }
	}
	if _, ok := any(zero).(Disposer); ok {
		tr.dispose = func(p *T) { any(*p).(Disposer).Dispose() }
	} else if _, ok := any(&zero).(Disposer); ok {
		tr.dispose = func(p *T) { any(p).(Disposer).Dispose() }
	}
	return tr
}

// cloneByPolicy reports whether block-to-block relocation must go
// through Clone: the type has a clone and no non-faulting move. Such
// a relocation can panic partway, but it leaves the source elements
// untouched, so the original block stays fully valid and only the
// private destination is abandoned. Every other type moves, which
// cannot fault.
func (tr *traits[T]) cloneByPolicy() bool {
	return tr.clone != nil && tr.move == nil
}

// moveAssign moves *src into *dst. For Mover types this transfers
// ownership and empties the source; otherwise it is plain assignment.
// moveAssign does not fault.
func (tr *traits[T]) moveAssign(dst, src *T) {
	if tr.move != nil {
		*dst = tr.move(src)
		return
	}
	*dst = *src
}

// copyAssign replaces *dst with a copy of *src, running *dst's
// Dispose hook so the replaced value is not leaked. For Cloner types
// the clone is built first, so a panicking Clone leaves *dst
// untouched.
func (tr *traits[T]) copyAssign(dst, src *T) {
	if tr.clone != nil {
		c := tr.clone(src)
		if tr.dispose != nil {
			tr.dispose(dst)
		}
		*dst = c
		return
	}
	if tr.dispose != nil {
		tr.dispose(dst)
	}
	*dst = *src
}

// destroy tears down fully live slots: each element's Dispose hook
// runs (if any) and the slot is re-zeroed so a dead slot cannot pin
// heap objects.
func (tr *traits[T]) destroy(win []T) {
	var zero T
	for i := range win {
		if tr.dispose != nil {
			tr.dispose(&win[i])
		}
		win[i] = zero
	}
}

// discard tears down a slot whose contents were moved elsewhere by
// moveAssign. Only a Mover source is disposed (Move left it
// droppable); a plainly assigned source now shares ownership with its
// destination and is only re-zeroed.
func (tr *traits[T]) discard(p *T) {
	var zero T
	if tr.move != nil && tr.dispose != nil {
		tr.dispose(p)
	}
	*p = zero
}

// retire tears down slots whose contents were relocated into another
// block by transfer. Cloned-from sources are still fully live and
// Mover sources are droppable, so both are disposed; plainly assigned
// sources transferred ownership bit-for-bit and are only re-zeroed.
func (tr *traits[T]) retire(win []T) {
	var zero T
	dispose := tr.dispose != nil && (tr.clone != nil || tr.move != nil)
	for i := range win {
		if dispose {
			tr.dispose(&win[i])
		}
		win[i] = zero
	}
}

// transfer relocates src into the raw slots dst (len(dst) >= len(src)),
// counting each successfully placed element in *built so the caller
// can tear down a partially populated destination if a Clone panics.
// The move paths cannot fault.
func (tr *traits[T]) transfer(dst, src []T, built *int) {
	if tr.cloneByPolicy() {
		for ; *built < len(src); *built++ {
			dst[*built] = tr.clone(&src[*built])
		}
		return
	}
	if tr.move != nil {
		for i := range src {
			dst[i] = tr.move(&src[i])
		}
	} else {
		copy(dst, src)
	}
	*built = len(src)
}

// cloneConstruct copy-constructs src into the raw slots dst. If a
// Clone panics partway, the clones built so far are torn down before
// the panic continues, so dst is raw again on failure.
func cloneConstruct[T any](tr *traits[T], dst, src []T) {
	built := 0
	defer func() {
		if built != len(src) {
			tr.destroy(dst[:built])
		}
	}()
	for ; built < len(src); built++ {
		if tr.clone != nil {
			dst[built] = tr.clone(&src[built])
		} else {
			dst[built] = src[built]
		}
	}
}
