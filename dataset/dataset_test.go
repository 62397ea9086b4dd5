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

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetMatrix(t *testing.T) {
	dataset := NewDataset()
	dataset.AddFeedback("alice", "pulp_fiction")
	dataset.AddFeedback("alice", "heat")
	dataset.AddFeedback("bob", "pulp_fiction")
	dataset.AddFeedback("bob", "pulp_fiction")
	assert.Equal(t, 2, dataset.CountUsers())
	assert.Equal(t, 2, dataset.CountItems())
	assert.Equal(t, [][]float64{
		{1, 1},
		{1, 0},
	}, dataset.Matrix())

	userIndex, ok := dataset.UserIndex("bob")
	assert.True(t, ok)
	assert.Equal(t, 1, userIndex)
	_, ok = dataset.UserIndex("carol")
	assert.False(t, ok)

	itemId, ok := dataset.ItemId(1)
	assert.True(t, ok)
	assert.Equal(t, "heat", itemId)
	assert.Equal(t, 3, dataset.ItemFreq(0))
	assert.Equal(t, 1, dataset.ItemFreq(1))
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.csv")
	text := "# user,item\n" +
		"1,101\n" +
		"1,102\n" +
		"2,101\n" +
		"\n" +
		"3,103,extra_field\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	dataset, err := LoadCSV(path)
	assert.NoError(t, err)
	assert.Equal(t, 3, dataset.CountUsers())
	assert.Equal(t, 3, dataset.CountItems())
	assert.Equal(t, [][]float64{
		{1, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}, dataset.Matrix())
}

func TestLoadCSVInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,101\njust_one_field\n"), 0644))
	_, err := LoadCSV(path)
	assert.Error(t, err)

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
