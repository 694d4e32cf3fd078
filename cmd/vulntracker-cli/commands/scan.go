// Copyright (C) 2025 Tim Bastin, l3montree GmbH
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

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/vulntracker/cache"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/normalize"
	"github.com/l3montree-dev/vulntracker/services"
	"github.com/l3montree-dev/vulntracker/vulndb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewScanCommand() *cobra.Command {
	scan := cobra.Command{
		Use:   "scan <requirements.txt>",
		Short: "Resolves the known vulnerabilities of a manifest without persisting anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "could not read manifest")
			}
			packages, err := normalize.ParseRequirements(string(content))
			if err != nil {
				return err
			}

			store, err := cache.NewStore(cfg)
			if err != nil {
				return errors.Wrap(err, "could not create cache store")
			}
			defer store.Close()

			resolver := services.NewVulnerabilityResolver(
				cache.NewVulnerabilityCache(store, cfg.SummaryCacheTTL),
				vulndb.NewOSVService(vulndb.OSVOptionsFromConfig(cfg)),
				cfg,
			)
			resolution, err := resolver.Resolve(cmd.Context(), packages)
			if err != nil {
				return err
			}

			printResolution(cmd.OutOrStdout(), resolution)
			return nil
		},
	}

	return &scan
}

func printResolution(w io.Writer, resolution dtos.Resolution) {
	tw := table.NewWriter()
	tw.SetAllowedRowLength(130)
	tw.AppendHeader(table.Row{"Package", "Version", "Advisories"})

	red := text.FgRed
	for _, dependency := range resolution.Dependencies {
		ids := make([]string, 0, len(dependency.Advisories))
		for _, advisory := range dependency.Advisories {
			var osv dtos.OSV
			if err := json.Unmarshal(advisory, &osv); err != nil || osv.ID == "" {
				ids = append(ids, "<unknown>")
				continue
			}
			if cves := osv.GetAssociatedCVEs(); len(cves) > 0 && cves[0] != osv.ID {
				ids = append(ids, fmt.Sprintf("%s (%s)", osv.ID, strings.Join(cves, ", ")))
			} else {
				ids = append(ids, osv.ID)
			}
		}
		if len(ids) == 0 {
			tw.AppendRow(table.Row{dependency.Name, dependency.Version, "-"})
			continue
		}
		tw.AppendRow(table.Row{dependency.Name, dependency.Version, red.Sprint(strings.Join(ids, "\n"))})
	}

	fmt.Fprintln(w, tw.Render())
	fmt.Fprintf(w, "%d dependencies, %d vulnerabilities\n", len(resolution.Dependencies), len(resolution.Advisories))
}
