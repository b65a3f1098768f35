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
	"testing"

	"golang.org/x/exp/slices"
)

// FuzzOps drives a random operation sequence against a plain-slice
// model and checks that the vector agrees with it element-wise after
// every step.
func FuzzOps(f *testing.F) {
	f.Add([]byte{0, 0, 1, 2, 3})
	f.Add([]byte{5, 9, 2, 2, 4, 0, 0, 3, 1, 7})
	f.Add([]byte{4, 200, 4, 0, 5, 16, 1, 1, 1})
	f.Fuzz(func(t *testing.T, program []byte) {
		var v Vector[int]
		var model []int
		for pc := 0; pc+1 < len(program); pc += 2 {
			op, arg := program[pc], int(program[pc+1])
			switch op % 6 {
			case 0: // push
				v.Push(arg)
				model = append(model, arg)
			case 1: // pop
				if len(model) > 0 {
					v.Pop()
					model = model[:len(model)-1]
				}
			case 2: // insert
				i := arg % (len(model) + 1)
				v.Insert(i, arg)
				model = slices.Insert(model, i, arg)
			case 3: // erase
				if len(model) > 0 {
					i := arg % len(model)
					v.Erase(i)
					model = slices.Delete(model, i, i+1)
				}
			case 4: // resize, bounded to keep the fuzzer fast
				n := arg % 64
				v.Resize(n)
				for len(model) < n {
					model = append(model, 0)
				}
				model = model[:minInt(len(model), n)]
			case 5: // reserve
				v.Reserve(arg % 128)
			}

			if v.Len() != len(model) {
				t.Fatalf("pc=%d: len=%d, model len=%d", pc, v.Len(), len(model))
			}
			if v.Cap() < v.Len() {
				t.Fatalf("pc=%d: cap=%d below len=%d", pc, v.Cap(), v.Len())
			}
			if !slices.Equal(v.Slice(), model) {
				t.Fatalf("pc=%d: vector %v, model %v", pc, v.Slice(), model)
			}
		}
	})
}
