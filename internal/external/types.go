// Package external holds the HTTP clients for the collaborating services:
// weather, mandi prices, the backend chat endpoint and the disease detection
// model. Every call degrades to a typed error; callers omit the affected
// response section instead of failing the turn.
package external

import "fmt"

// ErrorKind classifies collaborator failures.
type ErrorKind string

const (
	KindNetwork     ErrorKind = "network"
	KindAuth        ErrorKind = "auth"
	KindUnavailable ErrorKind = "unavailable"
	KindBadResponse ErrorKind = "bad_response"
	KindCircuitOpen ErrorKind = "circuit_open"
)

// Error is a typed collaborator failure.
type Error struct {
	Collaborator string
	Kind         ErrorKind
	cause        error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Collaborator, e.Kind, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Collaborator, e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }

// ForecastDay is one day of the weather outlook.
type ForecastDay struct {
	Date      string `json:"date"`
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
}

// WeatherData is the weather collaborator's payload.
type WeatherData struct {
	Temperature int           `json:"temperature"`
	Humidity    int           `json:"humidity"`
	Description string        `json:"description"`
	Rainfall    int           `json:"rainfall"`
	WindSpeed   int           `json:"windSpeed"`
	Forecast    []ForecastDay `json:"forecast"`
}

// MandiPrice is one market quote in rupees per quintal.
type MandiPrice struct {
	Commodity  string `json:"commodity"`
	Market     string `json:"market"`
	State      string `json:"state"`
	MinPrice   int    `json:"minPrice"`
	MaxPrice   int    `json:"maxPrice"`
	ModalPrice int    `json:"modalPrice"`
	Date       string `json:"date"`
}

// DiseaseDetectionResult is the detection model's full payload. The dialogue
// core consumes only Disease and Confidence.
type DiseaseDetectionResult struct {
	Disease     string   `json:"disease"`
	Confidence  float64  `json:"confidence"`
	Description string   `json:"description"`
	Treatment   []string `json:"treatment"`
	Prevention  []string `json:"prevention"`
}

// BackendContext is the session context forwarded to the backend chat
// endpoint.
type BackendContext struct {
	Crop     string  `json:"crop,omitempty"`
	Season   string  `json:"season,omitempty"`
	State    string  `json:"state,omitempty"`
	FarmSize float64 `json:"farmSize,omitempty"`
}

// BackendResponse is the backend chat endpoint's envelope.
type BackendResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}
