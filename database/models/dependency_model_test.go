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

package models

import (
	"encoding/json"
	"testing"

	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDependency(t *testing.T) {
	t.Run("should store a nil advisory list as an empty json array", func(t *testing.T) {
		dep, err := NewDependency(dtos.ResolvedDependency{Package: dtos.Package{Name: "requests", Version: "2.25.1"}})
		require.NoError(t, err)

		assert.Equal(t, "requests:2.25.1", dep.ID)
		assert.JSONEq(t, `[]`, string(dep.Vulnerabilities))
	})

	t.Run("should keep the advisories verbatim", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"PYSEC-2023-62","affected":[{"versions":["2.0.1"]}]}`)
		dep, err := NewDependency(dtos.ResolvedDependency{
			Package:    dtos.Package{Name: "flask", Version: "2.0.1"},
			Advisories: []dtos.Advisory{raw},
		})
		require.NoError(t, err)

		advisories, err := dep.Advisories()
		require.NoError(t, err)
		require.Len(t, advisories, 1)
		assert.JSONEq(t, string(raw), string(advisories[0]))
	})
}
