// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/mvec/buffer"
)

// SetIdentity overwrites the n×n buffer b with the identity matrix.
func SetIdentity[T buffer.Element](b *buffer.Buffer[T], n int) error {
	if err := ValidateMatrix(b, n, n); err != nil {
		return fail(b, opSetIdentity, err)
	}

	for i, p := range b.Each() {
		if i%(n+1) == 0 {
			*p = 1
		} else {
			*p = 0
		}
	}

	return nil
}

// Identity allocates an n×n identity matrix accounted against tr.
// A non-positive n is reported through tr (nil selects buffer.Default()).
func Identity[T buffer.Element](tr *buffer.Tracker, n int) (*buffer.Buffer[T], error) {
	if err := ValidateShape(n); err != nil {
		return nil, tr.Fail(matrixErrorf(opIdentity, err))
	}

	b := buffer.New[T](tr, n*n)
	_ = b.SetCount(n * n)
	if err := SetIdentity(b, n); err != nil {
		_ = b.Destroy()
		return nil, matrixErrorf(opIdentity, err)
	}

	return b, nil
}
