// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cf

import (
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mat"
)

// ValidateMatrixSize checks that m is exactly size×size.
func ValidateMatrixSize(m mat.Matrix, size int) error {
	rows, cols := m.Dims()
	if rows != size || cols != size {
		return errors.Annotatef(ErrCoMatrixWrongDimensions,
			"got %dx%d, want %dx%d", rows, cols, size, size)
	}
	return nil
}

// ValidateUserIndex checks that userIndex addresses a row of ratings.
func ValidateUserIndex(userIndex int, ratings [][]float64) error {
	if userIndex < 0 || userIndex >= len(ratings) {
		return errors.Annotatef(ErrUserIndexOutOfRange,
			"user index %d outside [0, %d)", userIndex, len(ratings))
	}
	return nil
}

// ValidateRatingValues checks that every cell of ratings is exactly 0 or 1.
// The whole matrix is scanned, O(U*I).
func ValidateRatingValues(ratings [][]float64) error {
	for userIndex, row := range ratings {
		for itemIndex, value := range row {
			if value != 0 && value != 1 {
				return errors.Annotatef(ErrRatingValueInvalid,
					"ratings[%d][%d] = %v", userIndex, itemIndex, value)
			}
		}
	}
	return nil
}
