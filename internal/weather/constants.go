package weather

import "github.com/osse101/taskfarm/internal/domain"

// Growth multipliers per weather
const (
	MultiplierSunny = 1.0
	MultiplierRainy = 1.5
	MultiplierSnowy = 0.5
)

// Defaults for a new controller
const (
	DefaultWeather = domain.WeatherSunny
	DefaultSeason  = domain.SeasonSpring
)
