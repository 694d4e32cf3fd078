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

package dtos

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// Package is a single manifest entry.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DependencyID builds the identity key of a dependency row: name:version with a lowercased name.
func DependencyID(name, version string) string {
	return strings.ToLower(name) + ":" + version
}

func (p Package) ID() string {
	return DependencyID(p.Name, p.Version)
}

// Purl renders the package as a pypi package url. Only PyPI is supported.
func (p Package) Purl() string {
	return packageurl.NewPackageURL(packageurl.TypePyPi, "", strings.ToLower(p.Name), p.Version, nil, "").ToString()
}

// ResolvedDependency is one manifest entry together with its advisory snapshot.
type ResolvedDependency struct {
	Package
	Advisories []Advisory `json:"vulnerabilities"`
}

// Resolution is the result of resolving a whole manifest.
// Dependencies keeps the manifest order, Advisories is the flattened union in the same order.
type Resolution struct {
	Dependencies []ResolvedDependency `json:"dependencies"`
	Advisories   []Advisory           `json:"vulnerabilities"`
}

func (r Resolution) IsVulnerable() bool {
	return len(r.Advisories) > 0
}
