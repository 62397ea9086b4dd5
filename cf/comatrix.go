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
	"github.com/gorse-io/cooccur/base/log"
	"github.com/gorse-io/cooccur/base/parallel"
	"github.com/juju/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// batchSize is the number of users handed to a worker at once during a
// parallel build.
const batchSize = 64

// CoMatrixBuilder builds a symmetric item×item co-occurrence matrix from a
// binary ratings matrix. The matrix is user-independent, so one build can
// serve many ranking calls.
type CoMatrixBuilder struct {
	// NormalizeOnPopularity divides each co-occurrence count by the number
	// of users who rated either item of the pair, bounding entries to [0,1]
	// and reducing bias toward generally popular items.
	NormalizeOnPopularity bool
	// Jobs is the number of workers scanning users. The result is identical
	// for any job count.
	Jobs int
}

// NewCoMatrixBuilder creates a CoMatrixBuilder with default settings:
// popularity normalization enabled, single worker.
func NewCoMatrixBuilder() *CoMatrixBuilder {
	return &CoMatrixBuilder{
		NormalizeOnPopularity: true,
		Jobs:                  1,
	}
}

// Build scans every user and every unordered item pair, O(U*I^2). Both
// triangles are written from a single upper-triangle scan, so the result is
// symmetric with a zero diagonal by construction.
func (b *CoMatrixBuilder) Build(ratings [][]float64) (*mat.Dense, error) {
	if err := ValidateRatingValues(ratings); err != nil {
		return nil, errors.Trace(err)
	}
	userCount := len(ratings)
	itemCount := 0
	if userCount > 0 {
		itemCount = len(ratings[0])
	}
	if itemCount == 0 {
		return nil, errors.New("ratings matrix must not be empty")
	}
	jobs := b.Jobs
	if jobs < 1 {
		jobs = 1
	}
	log.Logger().Debug("build co-occurrence matrix",
		zap.Int("users", userCount),
		zap.Int("items", itemCount),
		zap.Bool("normalize_on_popularity", b.NormalizeOnPopularity),
		zap.Int("jobs", jobs))

	// Per-worker accumulators, sized once. Counts are small integers held in
	// float64, so the merge below is exact and order-independent.
	counts := make([][]float64, jobs)
	normalizers := make([][]float64, jobs)
	for workerId := 0; workerId < jobs; workerId++ {
		counts[workerId] = make([]float64, itemCount*itemCount)
		if b.NormalizeOnPopularity {
			normalizers[workerId] = make([]float64, itemCount*itemCount)
		}
	}
	err := parallel.BatchParallel(userCount, jobs, batchSize, func(workerId, beginUser, endUser int) error {
		count := counts[workerId]
		normalizer := normalizers[workerId]
		for userIndex := beginUser; userIndex < endUser; userIndex++ {
			row := ratings[userIndex]
			for x := 0; x < itemCount; x++ {
				for i := x + 1; i < itemCount; i++ {
					if row[x] == 1 && row[i] == 1 {
						count[x*itemCount+i]++
						count[i*itemCount+x]++
					}
					if normalizer != nil && (row[x] == 1 || row[i] == 1) {
						normalizer[x*itemCount+i]++
						normalizer[i*itemCount+x]++
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	for workerId := 1; workerId < jobs; workerId++ {
		floats.Add(counts[0], counts[workerId])
		if b.NormalizeOnPopularity {
			floats.Add(normalizers[0], normalizers[workerId])
		}
	}

	coMatrix := mat.NewDense(itemCount, itemCount, counts[0])
	if b.NormalizeOnPopularity {
		// Seed the diagonal as the identity and lift untouched denominators
		// to 1. A pair nobody rated has a zero count, so dividing by 1 keeps
		// the cell at zero instead of producing NaN.
		denominator := normalizers[0]
		for i := range denominator {
			if denominator[i] == 0 {
				denominator[i] = 1
			}
		}
		coMatrix.DivElem(coMatrix, mat.NewDense(itemCount, itemCount, denominator))
	}
	return coMatrix, nil
}

// CreateCoMatrix builds the item×item co-occurrence matrix of ratings with a
// single worker. It fails with ErrRatingValueInvalid if any cell of ratings
// is not 0 or 1.
func CreateCoMatrix(ratings [][]float64, normalizeOnPopularity bool) (*mat.Dense, error) {
	builder := NewCoMatrixBuilder()
	builder.NormalizeOnPopularity = normalizeOnPopularity
	return builder.Build(ratings)
}
