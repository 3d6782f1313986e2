package domain

import (
	"fmt"
	"strings"
	"time"
)

// PlotStatus represents the lifecycle state of a farm plot
type PlotStatus string

const (
	PlotStatusEmpty   PlotStatus = "empty"
	PlotStatusGrowing PlotStatus = "growing"
	PlotStatusReady   PlotStatus = "ready"
)

// Weather represents the current weather over the farm
type Weather string

const (
	WeatherSunny Weather = "sunny"
	WeatherRainy Weather = "rainy"
	WeatherSnowy Weather = "snowy"
)

// Season represents the current season. It has no effect on growth.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// AllWeathers lists every valid weather in display order
var AllWeathers = []Weather{WeatherSunny, WeatherRainy, WeatherSnowy}

// AllSeasons lists every valid season in calendar order
var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// Valid reports whether w is one of the known weathers
func (w Weather) Valid() bool {
	switch w {
	case WeatherSunny, WeatherRainy, WeatherSnowy:
		return true
	}
	return false
}

// Valid reports whether s is one of the known seasons
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	}
	return false
}

// ParseWeather converts a case-insensitive name into a Weather
func ParseWeather(name string) (Weather, error) {
	w := Weather(strings.ToLower(strings.TrimSpace(name)))
	if !w.Valid() {
		return "", fmt.Errorf("%w: unknown weather %q", ErrInvalidInput, name)
	}
	return w, nil
}

// ParseSeason converts a case-insensitive name into a Season
func ParseSeason(name string) (Season, error) {
	s := Season(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown season %q", ErrInvalidInput, name)
	}
	return s, nil
}

// CropDefinition is an immutable catalog entry
type CropDefinition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	GrowthStages    int     `json:"growth_stages"`
	TotalGrowthTime float64 `json:"total_growth_time"` // seconds to 100% at multiplier 1.0
	HarvestReward   int     `json:"harvest_reward"`
	Cost            int     `json:"cost"`
}

// PlotView is a read-only snapshot of one plot
type PlotView struct {
	ID        int        `json:"id"`
	CropID    string     `json:"crop_id,omitempty"`
	Progress  float64    `json:"progress"`
	Status    PlotStatus `json:"status"`
	PlantedAt *time.Time `json:"planted_at,omitempty"`
}

// FarmState is the snapshot handed to the presentation layer
type FarmState struct {
	Balance int        `json:"balance"`
	Plots   []PlotView `json:"plots"`
	Weather Weather    `json:"weather"`
	Season  Season     `json:"season"`
}
