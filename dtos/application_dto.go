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

import "time"

type CreateApplicationRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	UserID      string  `json:"user_id" validate:"required"`
	// Manifest is the raw requirements file content
	Manifest string `json:"-"`
}

// ApplicationResponse is served by the api and is also the value of the application summary cache entry.
type ApplicationResponse struct {
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	IsVulnerable bool      `json:"is_vulnerable"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       string    `json:"user_id"`
}

type DependencyResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Version         string     `json:"version"`
	Purl            string     `json:"purl"`
	Applications    []string   `json:"applications"`
	Vulnerabilities []Advisory `json:"vulnerabilities"`
}

type UserCreateRequest struct {
	ID string `json:"id" validate:"required,max=255"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Applications []string  `json:"applications"`
}
