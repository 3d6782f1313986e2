package weather

import (
	"fmt"

	"github.com/osse101/taskfarm/internal/domain"
)

// Controller holds the current weather and season of one farm.
// Access is serialized by the owning session.
type Controller struct {
	weather domain.Weather
	season  domain.Season
}

// NewController creates a controller with sunny spring weather
func NewController() *Controller {
	return &Controller{
		weather: DefaultWeather,
		season:  DefaultSeason,
	}
}

// Weather returns the current weather
func (c *Controller) Weather() domain.Weather {
	return c.weather
}

// Season returns the current season
func (c *Controller) Season() domain.Season {
	return c.season
}

// SetWeather replaces the current weather. It reports whether the value changed.
func (c *Controller) SetWeather(w domain.Weather) (bool, error) {
	if !w.Valid() {
		return false, fmt.Errorf("%w: unknown weather %q", domain.ErrInvalidInput, w)
	}
	changed := c.weather != w
	c.weather = w
	return changed, nil
}

// SetSeason replaces the current season. It reports whether the value changed.
func (c *Controller) SetSeason(s domain.Season) (bool, error) {
	if !s.Valid() {
		return false, fmt.Errorf("%w: unknown season %q", domain.ErrInvalidInput, s)
	}
	changed := c.season != s
	c.season = s
	return changed, nil
}

// Multiplier returns the growth multiplier for the current weather
func (c *Controller) Multiplier() float64 {
	return MultiplierFor(c.weather)
}

// MultiplierFor is a pure lookup of the growth multiplier for w.
// Unknown weather grows at the sunny rate.
func MultiplierFor(w domain.Weather) float64 {
	switch w {
	case domain.WeatherRainy:
		return MultiplierRainy
	case domain.WeatherSnowy:
		return MultiplierSnowy
	default:
		return MultiplierSunny
	}
}
