package external

import "strings"

// Offline fixtures for demos without a backend. Values mirror typical
// central-India readings so formatted output stays plausible.

func offlineWeather() WeatherData {
	return WeatherData{
		Temperature: 28,
		Humidity:    65,
		Description: "Partly Cloudy",
		Rainfall:    0,
		WindSpeed:   12,
		Forecast: []ForecastDay{
			{Date: "2026-01-08", Temp: 29, Condition: "Sunny"},
			{Date: "2026-01-09", Temp: 27, Condition: "Cloudy"},
			{Date: "2026-01-10", Temp: 26, Condition: "Rain"},
		},
	}
}

var offlinePrices = map[string][]MandiPrice{
	"wheat": {
		{Commodity: "Wheat", Market: "Indore", State: "MP", MinPrice: 2100, MaxPrice: 2300, ModalPrice: 2200, Date: "2026-01-07"},
		{Commodity: "Wheat", Market: "Delhi", State: "Delhi", MinPrice: 2150, MaxPrice: 2350, ModalPrice: 2250, Date: "2026-01-07"},
	},
	"rice": {
		{Commodity: "Rice", Market: "Karnal", State: "Haryana", MinPrice: 2800, MaxPrice: 3200, ModalPrice: 3000, Date: "2026-01-07"},
	},
	"cotton": {
		{Commodity: "Cotton", Market: "Rajkot", State: "Gujarat", MinPrice: 6500, MaxPrice: 7200, ModalPrice: 6800, Date: "2026-01-07"},
	},
	"soybean": {
		{Commodity: "Soybean", Market: "Indore", State: "MP", MinPrice: 4800, MaxPrice: 5200, ModalPrice: 5000, Date: "2026-01-07"},
	},
	"onion": {
		{Commodity: "Onion", Market: "Nashik", State: "Maharashtra", MinPrice: 1200, MaxPrice: 1800, ModalPrice: 1500, Date: "2026-01-07"},
	},
}

func offlineMandiPrices(commodity string) []MandiPrice {
	return offlinePrices[strings.ToLower(commodity)]
}

func offlineDiseaseDetection() DiseaseDetectionResult {
	return DiseaseDetectionResult{
		Disease:     "Healthy",
		Confidence:  0.92,
		Description: "Plant is healthy - continue current practices",
		Treatment:   []string{"No treatment needed", "Continue regular monitoring"},
		Prevention:  []string{"Maintain current practices", "Regular scouting", "Balanced nutrition"},
	}
}
