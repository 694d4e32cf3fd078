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
	"encoding/json"
	"strings"
	"time"
)

// Advisory is a single OSV record exactly as the advisory service returned it.
// We never re-encode it, the stored snapshot stays byte for byte what OSV sent.
type Advisory = json.RawMessage

type OSVPackage struct {
	Name      string `json:"name"`
	Ecosystem string `json:"ecosystem"`
}

// OSVQuery is the body of a POST /v1/query request.
type OSVQuery struct {
	Version string     `json:"version"`
	Package OSVPackage `json:"package"`
}

type OSVQueryResponse struct {
	Vulns []Advisory `json:"vulns"`
}

// OSV is the subset of an advisory we read for display purposes.
type OSV struct {
	ID       string    `json:"id"`
	Summary  string    `json:"summary"`
	Modified time.Time `json:"modified"`
	Aliases  []string  `json:"aliases"`
	Related  []string  `json:"related"`
}

func (osv OSV) GetAssociatedCVEs() []string {
	cves := make([]string, 0)
	if strings.HasPrefix(osv.ID, "CVE-") {
		cves = append(cves, osv.ID)
	}
	for _, alias := range osv.Aliases {
		if strings.HasPrefix(alias, "CVE-") {
			cves = append(cves, alias)
		}
	}
	for _, related := range osv.Related {
		if strings.HasPrefix(related, "CVE-") {
			cves = append(cves, related)
		}
	}
	return cves
}

// AdvisoryIDs extracts the ids of the given advisories.
// Records which cannot be decoded are skipped, they are still stored verbatim.
func AdvisoryIDs(advisories []Advisory) []string {
	ids := make([]string, 0, len(advisories))
	for _, a := range advisories {
		var osv OSV
		if err := json.Unmarshal(a, &osv); err != nil || osv.ID == "" {
			continue
		}
		ids = append(ids, osv.ID)
	}
	return ids
}
