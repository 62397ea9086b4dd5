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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollaborativeFilter(t *testing.T) {
	ratings := [][]float64{
		{1, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
	}
	recommendations, err := CollaborativeFilter(ratings, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 1}, recommendations)
}

func TestCollaborativeFilterInvalidInput(t *testing.T) {
	_, err := CollaborativeFilter([][]float64{{1, 2}}, 0)
	assert.ErrorIs(t, err, ErrRatingValueInvalid)
	_, err = CollaborativeFilter([][]float64{{1, 0}}, 5)
	assert.ErrorIs(t, err, ErrUserIndexOutOfRange)
}
