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

package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/shared"
)

// name, one of == >= <= > <, version token
var requirementLine = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)\s*(==|>=|<=|>|<)\s*([A-Za-z0-9][A-Za-z0-9.*+!_-]*)$`)

var inlineComment = regexp.MustCompile(`\s+#.*$`)

// ParseRequirements turns a requirements file into its ordered list of packages.
// Blank lines and comments are skipped, package names are lowercased and duplicates are kept.
// Only the version token of a specifier is kept, the operator is not.
func ParseRequirements(content string) ([]dtos.Package, error) {
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("%w: manifest is not valid utf-8", shared.ErrMalformedManifest)
	}
	content = strings.TrimPrefix(content, "\ufeff")

	packages := []dtos.Package{}
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(inlineComment.ReplaceAllString(line, ""))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		match := requirementLine.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("%w: line %d: %q", shared.ErrMalformedManifest, i+1, line)
		}
		packages = append(packages, dtos.Package{
			Name:    strings.ToLower(match[1]),
			Version: match[3],
		})
	}
	return packages, nil
}
