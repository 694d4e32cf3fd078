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

package shared

import "errors"

// Error kinds. Wrap them with fmt.Errorf("...: %w", Err...) or errors.Wrap and check them with errors.Is.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrDefaultUserProtected = errors.New("the default user cannot be deleted")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDependencyNotFound   = errors.New("dependency not found")
	ErrMalformedManifest    = errors.New("malformed manifest")
	ErrAdvisoryUnavailable  = errors.New("advisory service unavailable")
	// ErrCacheUnavailable never leaves the cache package
	ErrCacheUnavailable = errors.New("cache unavailable")
	ErrStorageFailure   = errors.New("storage failure")
)

// IsNotFound reports whether err is any of the not found kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrApplicationNotFound) ||
		errors.Is(err, ErrDependencyNotFound)
}
