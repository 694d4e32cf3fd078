// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlat(t *testing.T) {
	t.Run("should keep the order of the subslices", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4}, Flat([][]int{{1, 2}, {}, {3}, {4}}))
	})
	t.Run("should return an empty, non-nil slice for no input", func(t *testing.T) {
		res := Flat[int](nil)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})
}

func TestUniqBy(t *testing.T) {
	res := UniqBy([]string{"flask:2.0.1", "requests:2.25.1", "flask:2.0.1"}, func(s string) string { return s })
	assert.Equal(t, []string{"flask:2.0.1", "requests:2.25.1"}, res)
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"2", "4"}, Map([]int{2, 4}, strconv.Itoa))
}
