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
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Recommendations ranks the items the user has not rated yet by their
// average co-occurrence with the items the user has rated, descending.
// Items with equal score are ordered by ascending item index. When
// onlyRecommendFromSimilarTaste is set, items with zero score are dropped
// as well.
//
// coMatrix must be the itemCount×itemCount matrix produced by
// CoMatrixBuilder for the same ratings. Validation runs before any numeric
// work, cheapest check first.
func Recommendations(ratings [][]float64, coMatrix mat.Matrix, userIndex int, onlyRecommendFromSimilarTaste bool) ([]int, error) {
	itemCount := 0
	if len(ratings) > 0 {
		itemCount = len(ratings[0])
	}
	if err := ValidateMatrixSize(coMatrix, itemCount); err != nil {
		return nil, errors.Trace(err)
	}
	if err := ValidateUserIndex(userIndex, ratings); err != nil {
		return nil, errors.Trace(err)
	}
	if err := ValidateRatingValues(ratings); err != nil {
		return nil, errors.Trace(err)
	}

	// items the user has rated, ascending
	ratedItems := make([]int, 0, itemCount)
	for itemIndex, value := range ratings[userIndex] {
		if value != 0 {
			ratedItems = append(ratedItems, itemIndex)
		}
	}

	// average co-occurrence of each item with the user's rated items; a user
	// without rated items keeps an all-zero score vector
	scores := make([]float64, itemCount)
	row := make([]float64, itemCount)
	for _, ratedItem := range ratedItems {
		mat.Row(row, ratedItem, coMatrix)
		floats.Add(scores, row)
	}
	if len(ratedItems) > 0 {
		floats.Scale(1/float64(len(ratedItems)), scores)
	}

	// rank by descending score; stable sort keeps equal scores in ascending
	// item index order
	ranked := make([]int, itemCount)
	for itemIndex := range ranked {
		ranked[itemIndex] = itemIndex
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	ratedSet := mapset.NewSet(ratedItems...)
	return lo.Filter(ranked, func(itemIndex int, _ int) bool {
		if onlyRecommendFromSimilarTaste && scores[itemIndex] == 0 {
			return false
		}
		return !ratedSet.Contains(itemIndex)
	}), nil
}
