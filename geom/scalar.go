// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Scalar is the set of numeric types the geometry primitives are generic
// over. Arithmetic between incompatible scalar types (Pixels vs
// DevicePixels) is only possible through an explicit conversion, never
// through the generic Point/Size/Bounds machinery.
type Scalar interface {
	~float32 | ~int32
}
