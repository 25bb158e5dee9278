// Package api fetches quota utilization from the usage endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/LounisBou/claudeline/internal/credentials"
)

const (
	defaultBaseURL = "https://claude.ai"
	userAgent      = "claudeline/1.0"
)

// Fetch failure taxonomy. Callers branch on these with errors.Is; the
// cache layer swallows all of them into its fallback chain.
var (
	ErrInvalidOrg    = errors.New("invalid organization id")
	ErrTimeout       = errors.New("usage request timed out")
	ErrNetwork       = errors.New("usage request failed")
	ErrBadStatus     = errors.New("usage endpoint returned non-200")
	ErrMalformedBody = errors.New("usage response missing expected fields")
)

// Client issues authenticated usage requests. The zero value targets the
// production endpoint with http.DefaultClient semantics.
type Client struct {
	// BaseURL overrides the endpoint host, e.g. for httptest servers.
	BaseURL string
	// HTTP overrides the underlying client. The context deadline passed
	// to Fetch bounds the request either way.
	HTTP *http.Client
}

// Fetch performs a single authenticated GET of the usage endpoint. The
// whole operation is bounded by ctx; on deadline expiry it returns
// ErrTimeout rather than blocking the caller's render path.
func (c *Client) Fetch(ctx context.Context, creds credentials.Credentials) (*Snapshot, error) {
	org := creds.OrganizationID
	// The org id is interpolated into the request path; refuse anything
	// that could escape the /organizations/{id}/ segment.
	if org == "" || strings.Contains(org, "..") || strings.Contains(org, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrg, org)
	}

	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	url := base + "/api/organizations/" + org + "/usage"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Cookie", "sessionKey="+creds.SessionKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var body usageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if body.FiveHour == nil || body.FiveHour.Utilization == nil {
		return nil, fmt.Errorf("%w: no five_hour.utilization", ErrMalformedBody)
	}

	snap := &Snapshot{
		Utilization: clampPct(*body.FiveHour.Utilization),
		ResetsAt:    parseResetsAt(body.FiveHour.ResetsAt),
		ObservedAt:  time.Now(),
	}
	return snap, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// parseResetsAt converts an RFC3339 timestamp string to a time.Time.
// Returns the zero time on parse failure; the field is optional anyway.
func parseResetsAt(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}
