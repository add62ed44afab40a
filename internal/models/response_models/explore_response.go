package response_models

// CitySuggestion is one autocomplete hit from the city search proxy.
type CitySuggestion struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"latitude"`
	Lon     float64 `json:"longitude"`
}

type WeatherReport struct {
	Place       string  `json:"place"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// ImageResult carries the cover-image candidates for a destination.
// The first RegularURL is what plan creation uses as the plan image.
type ImageResult struct {
	RegularURL string `json:"regular_url"`
	ThumbURL   string `json:"thumb_url,omitempty"`
	Credit     string `json:"credit,omitempty"`
}
