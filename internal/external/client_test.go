package external

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanconnect/kisanconnect/internal/config"
	"github.com/kisanconnect/kisanconnect/internal/lang"
)

func TestFetchWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "nagpur", r.URL.Query().Get("location"))
		json.NewEncoder(w).Encode(WeatherData{Temperature: 31, Humidity: 40, Description: "Clear"})
	}))
	defer srv.Close()

	c := NewClient(config.ExternalConfig{WeatherURL: srv.URL, Timeout: time.Second})

	data, err := c.FetchWeather(context.Background(), "nagpur")
	require.NoError(t, err)
	assert.Equal(t, 31, data.Temperature)
	assert.Equal(t, "Clear", data.Description)
}

func TestFetchWeatherServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(config.ExternalConfig{WeatherURL: srv.URL, Timeout: time.Second})

	_, err := c.FetchWeather(context.Background(), "nagpur")
	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, KindUnavailable, extErr.Kind)
	assert.Equal(t, "weather", extErr.Collaborator)
}

func TestFetchMandiPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cotton", r.URL.Query().Get("commodity"))
		json.NewEncoder(w).Encode([]MandiPrice{
			{Commodity: "Cotton", Market: "Rajkot", ModalPrice: 6800, MinPrice: 6500, MaxPrice: 7200},
		})
	}))
	defer srv.Close()

	c := NewClient(config.ExternalConfig{MarketURL: srv.URL, Timeout: time.Second})

	prices, err := c.FetchMandiPrices(context.Background(), "cotton", "", "")
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, 6800, prices[0].ModalPrice)
}

func TestSendChatMessageNonSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(BackendResponse{Success: false, Error: "no advisor available"})
	}))
	defer srv.Close()

	c := NewClient(config.ExternalConfig{BackendURL: srv.URL, Timeout: time.Second})

	_, err := c.SendChatMessage(context.Background(), "hello", "kc_1_abc", BackendContext{})
	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, KindBadResponse, extErr.Kind)
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(config.ExternalConfig{WeatherURL: srv.URL, Timeout: time.Second})

	for i := 0; i < 5; i++ {
		_, err := c.FetchWeather(context.Background(), "x")
		require.Error(t, err)
	}
	// Breaker trips after 3 consecutive failures; later calls never reach
	// the server.
	assert.Equal(t, 3, calls)
}

func TestOfflineMode(t *testing.T) {
	c := NewClient(config.ExternalConfig{OfflineMode: true})

	weather, err := c.FetchWeather(context.Background(), "anywhere")
	require.NoError(t, err)
	assert.Equal(t, 28, weather.Temperature)

	prices, err := c.FetchMandiPrices(context.Background(), "Wheat", "", "")
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, "Indore", prices[0].Market)

	none, err := c.FetchMandiPrices(context.Background(), "dragonfruit", "", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMissingEndpointIsUnavailable(t *testing.T) {
	c := NewClient(config.ExternalConfig{})

	_, err := c.FetchWeather(context.Background(), "x")
	var extErr *Error
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, KindUnavailable, extErr.Kind)
}

func TestFormatWeather(t *testing.T) {
	w := WeatherData{Temperature: 28, Humidity: 65, Rainfall: 0, WindSpeed: 12}

	en := FormatWeather(w, lang.English)
	assert.Contains(t, en, "Temperature: 28°C")
	assert.Contains(t, en, "Humidity: 65%")

	hi := FormatWeather(w, lang.Hindi)
	assert.Contains(t, hi, "मौसम जानकारी")

	mr := FormatWeather(w, lang.Marathi)
	assert.Contains(t, mr, "हवामान माहिती")
}

func TestFormatMandiPricesTopThree(t *testing.T) {
	prices := []MandiPrice{
		{Market: "A", ModalPrice: 100, MinPrice: 90, MaxPrice: 110},
		{Market: "B", ModalPrice: 200, MinPrice: 190, MaxPrice: 210},
		{Market: "C", ModalPrice: 300, MinPrice: 290, MaxPrice: 310},
		{Market: "D", ModalPrice: 400, MinPrice: 390, MaxPrice: 410},
	}

	out := FormatMandiPrices(prices, lang.English)
	assert.Contains(t, out, "• A: ₹100 (90-110)")
	assert.Contains(t, out, "• C: ₹300")
	assert.NotContains(t, out, "• D:")
}

func TestFormatMandiPricesEmpty(t *testing.T) {
	assert.Contains(t, FormatMandiPrices(nil, lang.Hindi), "कोई भाव उपलब्ध नहीं")
}
