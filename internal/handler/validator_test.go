package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_CustomTags(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name  string
		input interface{}
		valid bool
	}{
		{"weather ok", WeatherRequest{Weather: "sunny"}, true},
		{"weather any case", WeatherRequest{Weather: "SNOWY"}, true},
		{"weather unknown", WeatherRequest{Weather: "hail"}, false},
		{"weather empty", WeatherRequest{}, false},
		{"season ok", SeasonRequest{Season: "autumn"}, true},
		{"season unknown", SeasonRequest{Season: "monsoon"}, false},
		{"crop ok", PlantRequest{CropID: "sun_flower2"}, true},
		{"crop uppercase", PlantRequest{CropID: "Wheat"}, false},
		{"crop spaces", PlantRequest{CropID: "wheat seed"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	fields := FormatValidationError(errors.New("boom"))
	assert.Equal(t, ErrMsgValidationFormatError, fields["error"])

	err := GetValidator().ValidateStruct(SeasonRequest{Season: "wet"})
	fields = FormatValidationError(err)
	assert.Equal(t, ErrMsgValidationSeason, fields["season"])
}
