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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/monitoring"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

type OSVOptions struct {
	URL       string
	Ecosystem string
	// Timeout bounds a single attempt
	Timeout    time.Duration
	MaxRetries uint64
	// InitialInterval is the first backoff delay, it grows exponentially
	InitialInterval time.Duration
	// RateLimit is the maximum of requests per second sent to osv. Zero disables the limit.
	RateLimit float64
}

func OSVOptionsFromConfig(cfg config.Config) OSVOptions {
	retries := cfg.AdvisoryMaxRetries
	if retries < 0 {
		retries = 0
	}
	return OSVOptions{
		URL:             cfg.OSVURL,
		Ecosystem:       cfg.OSVEcosystem,
		Timeout:         cfg.AdvisoryTimeout,
		MaxRetries:      uint64(retries),
		InitialInterval: 250 * time.Millisecond,
		RateLimit:       cfg.AdvisoryRateLimit,
	}
}

type osvService struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	opts        OSVOptions
}

var _ shared.AdvisoryClient = osvService{}

func NewOSVService(opts OSVOptions) osvService {
	if opts.Ecosystem == "" {
		opts.Ecosystem = "PyPI"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = 250 * time.Millisecond
	}
	rateLimiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		rateLimiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 5)
	}
	return osvService{
		httpClient:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		rateLimiter: rateLimiter,
		opts:        opts,
	}
}

// retryableError marks failures worth another attempt: network errors, timeouts, 429 and 5xx
type retryableError struct {
	err error
}

func (e retryableError) Error() string { return e.err.Error() }

func (s osvService) query(ctx context.Context, body []byte) ([]dtos.Advisory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.opts.URL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, retryableError{errors.Wrap(err, "could not query osv")}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500 {
		return nil, retryableError{fmt.Errorf("osv responded with status %d", res.StatusCode)}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("osv responded with status %d", res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, retryableError{errors.Wrap(err, "could not read osv response")}
	}

	var response dtos.OSVQueryResponse
	if err := json.Unmarshal(b, &response); err != nil {
		return nil, errors.Wrap(err, "could not decode osv response")
	}
	if response.Vulns == nil {
		// osv answers {} if the package version has no known vulnerabilities
		return []dtos.Advisory{}, nil
	}
	return response.Vulns, nil
}

// Lookup returns every advisory osv knows for the package version.
func (s osvService) Lookup(ctx context.Context, pkg string, version string) ([]dtos.Advisory, error) {
	start := time.Now()
	defer func() {
		monitoring.AdvisoryLookupDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(dtos.OSVQuery{
		Version: version,
		Package: dtos.OSVPackage{Name: pkg, Ecosystem: s.opts.Ecosystem},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not encode osv query")
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.opts.InitialInterval
	bo.MaxElapsedTime = 0

	var advisories []dtos.Advisory
	err = backoff.RetryNotify(func() error {
		// every attempt counts against the limit, retries included
		if err := s.rateLimiter.Wait(ctx); err != nil {
			return backoff.Permanent(errors.Wrap(err, "rate limit"))
		}
		result, err := s.query(ctx, body)
		if err != nil {
			if _, ok := err.(retryableError); ok && ctx.Err() == nil {
				return err
			}
			return backoff.Permanent(err)
		}
		advisories = result
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, s.opts.MaxRetries), ctx), func(err error, d time.Duration) {
		slog.Warn("advisory lookup failed, retrying", "package", pkg, "version", version, "in", d, "err", err)
	})
	if err != nil {
		monitoring.AdvisoryLookupFailures.Inc()
		return nil, fmt.Errorf("%w: %s==%s: %v", shared.ErrAdvisoryUnavailable, pkg, version, err)
	}
	return advisories, nil
}
