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

// Package dataset turns implicit feedback into the dense binary ratings
// matrix consumed by the cf package.
package dataset

import (
	"bufio"
	"os"
	"strings"

	"github.com/gorse-io/cooccur/base/log"
	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Dataset accumulates (user, item) feedback pairs and hands them out as a
// dense binary ratings matrix. User and item ids are interned in insertion
// order, so indices are stable across calls.
type Dataset struct {
	userDict     *FreqDict
	itemDict     *FreqDict
	userFeedback [][]int
}

func NewDataset() *Dataset {
	return &Dataset{
		userDict: NewFreqDict(),
		itemDict: NewFreqDict(),
	}
}

// AddFeedback records that userId engaged with itemId. Duplicate pairs are
// harmless since the matrix is binary.
func (d *Dataset) AddFeedback(userId, itemId string) {
	userIndex := d.userDict.Id(userId)
	itemIndex := d.itemDict.Id(itemId)
	for userIndex >= len(d.userFeedback) {
		d.userFeedback = append(d.userFeedback, nil)
	}
	d.userFeedback[userIndex] = append(d.userFeedback[userIndex], itemIndex)
}

func (d *Dataset) CountUsers() int {
	return d.userDict.Count()
}

func (d *Dataset) CountItems() int {
	return d.itemDict.Count()
}

// UserIndex resolves a user id to its row index.
func (d *Dataset) UserIndex(userId string) (int, bool) {
	return d.userDict.Lookup(userId)
}

// ItemId resolves a column index back to the item id.
func (d *Dataset) ItemId(itemIndex int) (string, bool) {
	return d.itemDict.String(itemIndex)
}

// ItemFreq returns how many feedback pairs named the item.
func (d *Dataset) ItemFreq(itemIndex int) int {
	return d.itemDict.Freq(itemIndex)
}

// Matrix materializes the dense binary ratings matrix, one row per user in
// insertion order.
func (d *Dataset) Matrix() [][]float64 {
	matrix := make([][]float64, d.CountUsers())
	for userIndex := range matrix {
		row := make([]float64, d.CountItems())
		if userIndex < len(d.userFeedback) {
			for _, itemIndex := range d.userFeedback[userIndex] {
				row[itemIndex] = 1
			}
		}
		matrix[userIndex] = row
	}
	return matrix
}

// LoadCSV reads feedback pairs from a headerless CSV file with lines of the
// form "userId,itemId". Blank lines and lines starting with '#' are skipped;
// fields beyond the second are ignored.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.Trace(err)
	}
	pbReader := progressbar.NewReader(file, progressbar.DefaultBytes(
		stat.Size(),
		"Loading feedback",
	))
	dataset := NewDataset()
	lineNumber := 0
	scanner := bufio.NewScanner(&pbReader)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, errors.Errorf("invalid feedback at %s:%d: %q", path, lineNumber, line)
		}
		dataset.AddFeedback(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Info("feedback loaded",
		zap.String("path", path),
		zap.Int("users", dataset.CountUsers()),
		zap.Int("items", dataset.CountItems()))
	return dataset, nil
}
