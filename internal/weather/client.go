// README: OpenWeatherMap current-weather client.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"tripplanner/internal/types"
)

// DefaultBaseURL is the OpenWeatherMap current-weather endpoint base.
const DefaultBaseURL = "http://api.openweathermap.org/data/2.5"

// NotAvailable is returned when the API responds without a weather block.
const NotAvailable = "Weather data not available."

// Client calls the OpenWeatherMap current-weather API. Requests are rate
// limited so bulk planning runs stay inside the free-tier quota.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

// New builds a Client. base may be empty to use DefaultBaseURL; rps caps
// requests per second and defaults to 5 when non-positive.
func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 10 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type currentWeather struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Describe returns a short weather description for the location, or the
// NotAvailable sentinel when the API has no weather block for it.
func (c *Client) Describe(ctx context.Context, loc types.Point) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/weather?lat=%f&lon=%f&appid=%s", c.base, loc.Lat, loc.Lng, c.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather api error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var out currentWeather
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("weather api decode: %w", err)
	}

	if len(out.Weather) == 0 {
		return NotAvailable, nil
	}
	return out.Weather[0].Description, nil
}
