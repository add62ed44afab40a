package explore_fx

import (
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"
	"trotter/internal/services"
)

var Module = fx.Provide(provideExploreService)

func provideExploreService() services.ExploreServiceInterface {

	cfg := services.ExploreConfig{
		GeoDBBaseURL:   "https://wft-geo-db.p.rapidapi.com",
		GeoDBAPIKey:    os.Getenv("RAPIDAPI_KEY"),
		GeoDBAPIHost:   "wft-geo-db.p.rapidapi.com",
		WeatherBaseURL: "https://api.openweathermap.org",
		WeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		ImageBaseURL:   "https://api.unsplash.com",
		ImageAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
	}

	return services.NewExploreService(cfg, &http.Client{Timeout: 10 * time.Second})
}
