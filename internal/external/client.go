package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/kisanconnect/kisanconnect/internal/config"
	"github.com/kisanconnect/kisanconnect/internal/metrics"
)

// Client calls the external collaborators. Each collaborator sits behind its
// own circuit breaker so a dead weather service cannot take mandi prices
// down with it.
type Client struct {
	cfg      config.ExternalConfig
	http     *http.Client
	breakers map[string]*gobreaker.CircuitBreaker
}

const (
	collabWeather = "weather"
	collabMarket  = "market"
	collabBackend = "backend"
	collabDetect  = "detect"
)

// NewClient builds the collaborator client from config. Timeout applies per
// request; zero falls back to 10 seconds.
func NewClient(cfg config.ExternalConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	breakers := make(map[string]*gobreaker.CircuitBreaker)
	for _, name := range []string{collabWeather, collabMarket, collabBackend, collabDetect} {
		breakers[name] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 2,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		})
	}

	return &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: timeout},
		breakers: breakers,
	}
}

// FetchWeather returns weather for a location name.
func (c *Client) FetchWeather(ctx context.Context, location string) (WeatherData, error) {
	if c.cfg.OfflineMode {
		return offlineWeather(), nil
	}
	if c.cfg.WeatherURL == "" {
		return WeatherData{}, &Error{Collaborator: collabWeather, Kind: KindUnavailable}
	}

	q := url.Values{}
	if location != "" {
		q.Set("location", location)
	}

	var data WeatherData
	err := c.getJSON(ctx, collabWeather, c.cfg.WeatherURL+"?"+q.Encode(), &data)
	return data, err
}

// FetchMandiPrices returns market quotes filtered by commodity, state and
// market; empty filters are omitted.
func (c *Client) FetchMandiPrices(ctx context.Context, commodity, state, market string) ([]MandiPrice, error) {
	if c.cfg.OfflineMode {
		return offlineMandiPrices(commodity), nil
	}
	if c.cfg.MarketURL == "" {
		return nil, &Error{Collaborator: collabMarket, Kind: KindUnavailable}
	}

	q := url.Values{}
	if commodity != "" {
		q.Set("commodity", commodity)
	}
	if state != "" {
		q.Set("state", state)
	}
	if market != "" {
		q.Set("market", market)
	}

	var prices []MandiPrice
	err := c.getJSON(ctx, collabMarket, c.cfg.MarketURL+"?"+q.Encode(), &prices)
	return prices, err
}

// SendChatMessage forwards a turn to the backend chat endpoint. A non-success
// envelope is returned as an error so callers treat it like any other
// degradation.
func (c *Client) SendChatMessage(ctx context.Context, message, sessionID string, bc BackendContext) (BackendResponse, error) {
	if c.cfg.OfflineMode || c.cfg.BackendURL == "" {
		return BackendResponse{}, &Error{Collaborator: collabBackend, Kind: KindUnavailable}
	}

	payload := map[string]any{
		"message":   message,
		"sessionId": sessionID,
		"context":   bc,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return BackendResponse{}, &Error{Collaborator: collabBackend, Kind: KindBadResponse, cause: err}
	}

	var resp BackendResponse
	if err := c.postJSON(ctx, collabBackend, c.cfg.BackendURL, "application/json", bytes.NewReader(body), &resp); err != nil {
		return BackendResponse{}, err
	}
	if !resp.Success {
		return BackendResponse{}, &Error{Collaborator: collabBackend, Kind: KindBadResponse, cause: fmt.Errorf("backend: %s", resp.Error)}
	}
	return resp, nil
}

// DetectDisease uploads an image to the detection model.
func (c *Client) DetectDisease(ctx context.Context, image []byte, filename string) (DiseaseDetectionResult, error) {
	if c.cfg.OfflineMode {
		return offlineDiseaseDetection(), nil
	}
	if c.cfg.DetectURL == "" {
		return DiseaseDetectionResult{}, &Error{Collaborator: collabDetect, Kind: KindUnavailable}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return DiseaseDetectionResult{}, &Error{Collaborator: collabDetect, Kind: KindBadResponse, cause: err}
	}
	if _, err := fw.Write(image); err != nil {
		return DiseaseDetectionResult{}, &Error{Collaborator: collabDetect, Kind: KindBadResponse, cause: err}
	}
	if err := mw.Close(); err != nil {
		return DiseaseDetectionResult{}, &Error{Collaborator: collabDetect, Kind: KindBadResponse, cause: err}
	}

	var result DiseaseDetectionResult
	err = c.postJSON(ctx, collabDetect, c.cfg.DetectURL, mw.FormDataContentType(), &buf, &result)
	return result, err
}

func (c *Client) getJSON(ctx context.Context, collaborator, rawURL string, out any) error {
	return c.do(ctx, collaborator, http.MethodGet, rawURL, "", nil, out)
}

func (c *Client) postJSON(ctx context.Context, collaborator, rawURL, contentType string, body io.Reader, out any) error {
	return c.do(ctx, collaborator, http.MethodPost, rawURL, contentType, body, out)
}

func (c *Client) do(ctx context.Context, collaborator, method, rawURL, contentType string, body io.Reader, out any) error {
	_, err := c.breakers[collaborator].Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
		if err != nil {
			return nil, &Error{Collaborator: collaborator, Kind: KindBadResponse, cause: err}
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, &Error{Collaborator: collaborator, Kind: KindNetwork, cause: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return nil, &Error{Collaborator: collaborator, Kind: KindAuth}
		case resp.StatusCode >= 500:
			return nil, &Error{Collaborator: collaborator, Kind: KindUnavailable}
		case resp.StatusCode != http.StatusOK:
			return nil, &Error{Collaborator: collaborator, Kind: KindBadResponse, cause: fmt.Errorf("status %d", resp.StatusCode)}
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, &Error{Collaborator: collaborator, Kind: KindBadResponse, cause: err}
		}
		return nil, nil
	})
	if err != nil {
		metrics.CollaboratorFailuresTotal.WithLabelValues(collaborator).Inc()
		slog.Warn("collaborator call degraded", "collaborator", collaborator, "error", err)
		if _, ok := err.(*Error); !ok {
			// gobreaker rejected the call before our function ran
			return &Error{Collaborator: collaborator, Kind: KindCircuitOpen, cause: err}
		}
		return err
	}
	return nil
}
