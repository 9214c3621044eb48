// Copyright 2026 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for matrix operations in the
// Dendrite ML framework.
//
// # Overview
//
// Matrices are the fundamental data structure in Dendrite: dense, 2-D,
// float64, stored row-major. The whole framework works in denominator
// layout, meaning each column of a data matrix is one sample and weight
// matrices have shape [out_units, in_units].
//
// # Basic Usage
//
//	import "github.com/dendrite-ml/dendrite/matrix"
//
//	func main() {
//	    // [[1, 2],
//	    //  [3, 4]]
//	    a, _ := matrix.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	    b := matrix.Zeros(2, 2)
//
//	    c := a.Add(b)
//	    d := a.MatMul(a.Transpose())
//	    _ = c
//	    _ = d
//	}
//
// # Error Handling
//
// Construction functions (New, FromSlice) return errors so callers can
// validate untrusted dimensions. Operations on constructed matrices
// (MatMul, Add, Hadamard, ...) panic on shape mismatch: at that point a
// mismatch is a bug in the calling code, not a recoverable condition.
package matrix
