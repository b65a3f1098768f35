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
	"golang.org/x/exp/constraints"
)

// nextCap returns the capacity to grow to when the current storage is
// exhausted: doubling, starting from 1, which keeps the amortized
// cost of repeated appends constant.
func nextCap(cap int) int {
	if cap == 0 {
		return 1
	}
	return cap * 2
}

// minInt returns the smaller value of x and y
func minInt[T constraints.Integer](x, y T) T {
	if x <= y {
		return x
	}
	return y
}

// maxInt returns the greater value of x and y
func maxInt[T constraints.Integer](x, y T) T {
	if x >= y {
		return x
	}
	return y
}
