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

import "github.com/juju/errors"

// Input contract violations. Every failure of this package unwraps to one
// of these kinds; match with errors.Is.
var (
	// ErrCoMatrixWrongDimensions is returned when the supplied co-occurrence
	// matrix does not match the item count implied by the ratings matrix.
	ErrCoMatrixWrongDimensions = errors.New("co-occurrence matrix has wrong dimensions")
	// ErrUserIndexOutOfRange is returned when the user index does not address
	// a row of the ratings matrix.
	ErrUserIndexOutOfRange = errors.New("user index out of range")
	// ErrRatingValueInvalid is returned when a ratings cell holds anything
	// but 0 or 1.
	ErrRatingValueInvalid = errors.New("rating value must be 0 or 1")
)
