package envinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultLocateTimeout bounds the one-shot location read. On expiry the
// certificate simply omits the field.
const DefaultLocateTimeout = 3 * time.Second

// Locator resolves a coarse location. Implementations must respect the
// context deadline.
type Locator interface {
	Locate(ctx context.Context) (*Location, error)
}

// HTTPLocator queries a geolocation endpoint that answers with
// {"latitude": ..., "longitude": ..., "accuracy": ...}.
type HTTPLocator struct {
	Endpoint string
	Client   *http.Client
}

func (l *HTTPLocator) Locate(ctx context.Context) (*Location, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("locate: unexpected status %d", resp.StatusCode)
	}
	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// LocateWithTimeout performs the bounded location read. Any failure
// (timeout, refusal, transport error) resolves to "no location" (nil);
// this is the only error the engine swallows.
func LocateWithTimeout(ctx context.Context, l Locator, timeout time.Duration) *Location {
	if l == nil {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultLocateTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	loc, err := l.Locate(ctx)
	if err != nil {
		return nil
	}
	return loc
}
