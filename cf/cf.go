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

// Package cf implements item-based collaborative filtering over binary
// implicit feedback. Item co-occurrence across users serves as the
// similarity signal: two items are similar when the users who engaged with
// one tend to have engaged with the other. There are no model parameters
// to fit; the pipeline is counting, normalization and ranking.
package cf

import (
	"github.com/juju/errors"
)

// CollaborativeFilter recommends unrated items for the given user. It is
// equivalent to CreateCoMatrix with popularity normalization followed by
// Recommendations restricted to similar taste. Callers ranking many users
// should build the co-occurrence matrix once and call Recommendations per
// user instead.
func CollaborativeFilter(ratings [][]float64, userIndex int) ([]int, error) {
	coMatrix, err := CreateCoMatrix(ratings, true)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return Recommendations(ratings, coMatrix, userIndex, true)
}
