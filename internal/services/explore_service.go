package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"trotter/internal/models/response_models"
	"trotter/pkg/utils"
)

// ExploreServiceInterface proxies the third-party lookups the web client
// needs while composing a plan: city autocomplete, current weather for the
// detail page, and cover-image search. Keeping them server-side keeps the
// API keys out of browser code.
type ExploreServiceInterface interface {
	SearchCities(ctx context.Context, namePrefix string) ([]response_models.CitySuggestion, error)
	CurrentWeather(ctx context.Context, city string) (*response_models.WeatherReport, error)
	SearchImages(ctx context.Context, query string) ([]response_models.ImageResult, error)
}

// ExploreConfig carries the upstream endpoints and credentials. Base URLs
// are configurable so tests can point at a local server.
type ExploreConfig struct {
	GeoDBBaseURL   string
	GeoDBAPIKey    string
	GeoDBAPIHost   string
	WeatherBaseURL string
	WeatherAPIKey  string
	ImageBaseURL   string
	ImageAccessKey string
}

type ExploreService struct {
	cfg    ExploreConfig
	client *http.Client
}

func NewExploreService(cfg ExploreConfig, client *http.Client) ExploreServiceInterface {
	if client == nil {
		client = http.DefaultClient
	}
	return &ExploreService{cfg: cfg, client: client}
}

func (e *ExploreService) getJSON(ctx context.Context, rawURL string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (e *ExploreService) SearchCities(ctx context.Context, namePrefix string) ([]response_models.CitySuggestion, error) {

	namePrefix = strings.TrimSpace(namePrefix)
	if namePrefix == "" {
		return nil, utils.ErrMissingRequiredField
	}

	u := fmt.Sprintf("%s/v1/geo/cities?namePrefix=%s&limit=10",
		strings.TrimRight(e.cfg.GeoDBBaseURL, "/"), url.QueryEscape(namePrefix))

	var payload struct {
		Data []struct {
			ID        int     `json:"id"`
			Name      string  `json:"name"`
			Region    string  `json:"region"`
			Country   string  `json:"country"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"data"`
	}

	headers := map[string]string{
		"X-RapidAPI-Key":  e.cfg.GeoDBAPIKey,
		"X-RapidAPI-Host": e.cfg.GeoDBAPIHost,
	}
	if err := e.getJSON(ctx, u, headers, &payload); err != nil {
		return nil, utils.ErrUpstreamUnavailable
	}

	out := make([]response_models.CitySuggestion, 0, len(payload.Data))
	for _, c := range payload.Data {
		out = append(out, response_models.CitySuggestion{
			ID:      c.ID,
			Name:    c.Name,
			Region:  c.Region,
			Country: c.Country,
			Lat:     c.Latitude,
			Lon:     c.Longitude,
		})
	}
	return out, nil
}

func (e *ExploreService) CurrentWeather(ctx context.Context, city string) (*response_models.WeatherReport, error) {

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, utils.ErrMissingRequiredField
	}

	u := fmt.Sprintf("%s/data/2.5/weather?q=%s&units=metric&appid=%s",
		strings.TrimRight(e.cfg.WeatherBaseURL, "/"), url.QueryEscape(city), e.cfg.WeatherAPIKey)

	var payload struct {
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Name string `json:"name"`
	}

	if err := e.getJSON(ctx, u, nil, &payload); err != nil {
		return nil, utils.ErrUpstreamUnavailable
	}

	report := &response_models.WeatherReport{
		Place:      payload.Name,
		TempC:      payload.Main.Temp,
		FeelsLikeC: payload.Main.FeelsLike,
		Humidity:   payload.Main.Humidity,
		WindSpeed:  payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
		report.Icon = payload.Weather[0].Icon
	}
	return report, nil
}

func (e *ExploreService) SearchImages(ctx context.Context, query string) ([]response_models.ImageResult, error) {

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ErrMissingRequiredField
	}

	u := fmt.Sprintf("%s/search/photos?query=%s&client_id=%s&orientation=landscape&per_page=10",
		strings.TrimRight(e.cfg.ImageBaseURL, "/"), url.QueryEscape(query), e.cfg.ImageAccessKey)

	var payload struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
				Thumb   string `json:"thumb"`
			} `json:"urls"`
			User struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"results"`
	}

	if err := e.getJSON(ctx, u, nil, &payload); err != nil {
		return nil, utils.ErrUpstreamUnavailable
	}

	out := make([]response_models.ImageResult, 0, len(payload.Results))
	for _, r := range payload.Results {
		out = append(out, response_models.ImageResult{
			RegularURL: r.URLs.Regular,
			ThumbURL:   r.URLs.Thumb,
			Credit:     r.User.Name,
		})
	}
	return out, nil
}
