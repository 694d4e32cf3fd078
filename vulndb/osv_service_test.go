// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package vulndb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOSVService(url string, retries uint64) osvService {
	return NewOSVService(OSVOptions{
		URL:             url,
		Timeout:         time.Second,
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
	})
}

func TestOSVLookup(t *testing.T) {
	t.Run("should send the package query and return the vulns verbatim", func(t *testing.T) {
		var received dtos.OSVQuery
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Write([]byte(`{"vulns":[{"id":"GHSA-m2qf-hxjv-5gpq","summary":"Flask session cookie disclosure","affected":[{"package":{"name":"flask"}}]}]}`)) // nolint:errcheck
		}))
		defer srv.Close()

		advisories, err := newTestOSVService(srv.URL, 0).Lookup(context.Background(), "flask", "2.0.1")
		require.NoError(t, err)

		assert.Equal(t, dtos.OSVQuery{Version: "2.0.1", Package: dtos.OSVPackage{Name: "flask", Ecosystem: "PyPI"}}, received)
		require.Len(t, advisories, 1)
		assert.JSONEq(t, `{"id":"GHSA-m2qf-hxjv-5gpq","summary":"Flask session cookie disclosure","affected":[{"package":{"name":"flask"}}]}`, string(advisories[0]))
	})

	t.Run("should return an empty, non nil list if osv knows no vulns", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`)) // nolint:errcheck
		}))
		defer srv.Close()

		advisories, err := newTestOSVService(srv.URL, 0).Lookup(context.Background(), "requests", "2.25.1")
		require.NoError(t, err)
		assert.NotNil(t, advisories)
		assert.Empty(t, advisories)
	})

	t.Run("should retry on server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"vulns":[]}`)) // nolint:errcheck
		}))
		defer srv.Close()

		advisories, err := newTestOSVService(srv.URL, 2).Lookup(context.Background(), "flask", "2.0.1")
		require.NoError(t, err)
		assert.Empty(t, advisories)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("should retry on too many requests and give up after the max retries", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := newTestOSVService(srv.URL, 2).Lookup(context.Background(), "flask", "2.0.1")
		assert.ErrorIs(t, err, shared.ErrAdvisoryUnavailable)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("should not retry on client errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		_, err := newTestOSVService(srv.URL, 2).Lookup(context.Background(), "flask", "2.0.1")
		assert.ErrorIs(t, err, shared.ErrAdvisoryUnavailable)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should not retry on undecodable bodies", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`<html>`)) // nolint:errcheck
		}))
		defer srv.Close()

		_, err := newTestOSVService(srv.URL, 2).Lookup(context.Background(), "flask", "2.0.1")
		assert.ErrorIs(t, err, shared.ErrAdvisoryUnavailable)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should fail on network errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := newTestOSVService(url, 1).Lookup(context.Background(), "flask", "2.0.1")
		assert.ErrorIs(t, err, shared.ErrAdvisoryUnavailable)
	})

	t.Run("should bound every attempt by the timeout", func(t *testing.T) {
		done := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-done:
			}
		}))
		defer srv.Close()
		defer close(done)

		s := NewOSVService(OSVOptions{URL: srv.URL, Timeout: 50 * time.Millisecond, InitialInterval: time.Millisecond})
		start := time.Now()
		_, err := s.Lookup(context.Background(), "flask", "2.0.1")
		assert.ErrorIs(t, err, shared.ErrAdvisoryUnavailable)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("should give up if the rate limit does not allow a request before the deadline", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{}`)) // nolint:errcheck
		}))
		defer srv.Close()

		// a burst of five, then one request every 1000 seconds
		s := NewOSVService(OSVOptions{URL: srv.URL, Timeout: time.Second, InitialInterval: time.Millisecond, RateLimit: 0.001})
		for range 5 {
			_, err := s.Lookup(context.Background(), "flask", "2.0.1")
			require.NoError(t, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := s.Lookup(ctx, "flask", "2.0.1")
		assert.ErrorIs(t, err, shared.ErrAdvisoryUnavailable)
		assert.Equal(t, int32(5), calls.Load())
	})
}
