package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vedanga/jyoti/internal/app"
)

// birthRequest mirrors the chart-generation input contract. Required
// numerics are pointers so that absent fields are distinguishable from
// zero values.
type birthRequest struct {
	Name      string   `json:"name,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Year      *int     `json:"year"`
	Month     *int     `json:"month"`
	Day       *int     `json:"day"`
	Hour      *int     `json:"hour"`
	Minute    *int     `json:"minute"`
	Second    *int     `json:"second,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timezone  *float64 `json:"timezone"`
}

// Validate applies the boundary rules: all required fields present, all
// coordinates and offsets within physical ranges. Calendar validity beyond
// these ranges is the engine's call.
func (b birthRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Year, validation.NotNil),
		validation.Field(&b.Month, validation.NotNil, validation.Min(1), validation.Max(12)),
		validation.Field(&b.Day, validation.NotNil, validation.Min(1), validation.Max(31)),
		validation.Field(&b.Hour, validation.NotNil, validation.Min(0), validation.Max(23)),
		validation.Field(&b.Minute, validation.NotNil, validation.Min(0), validation.Max(59)),
		validation.Field(&b.Second, validation.Min(0), validation.Max(59)),
		validation.Field(&b.Latitude, validation.NotNil, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&b.Longitude, validation.NotNil, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&b.Timezone, validation.NotNil, validation.Min(-14.0), validation.Max(14.0)),
	)
}

// toInput converts a validated request into the service input.
func (b birthRequest) toInput() app.BirthInput {
	second := 0
	if b.Second != nil {
		second = *b.Second
	}
	return app.BirthInput{
		Name:      b.Name,
		Gender:    b.Gender,
		Year:      *b.Year,
		Month:     *b.Month,
		Day:       *b.Day,
		Hour:      *b.Hour,
		Minute:    *b.Minute,
		Second:    second,
		Latitude:  *b.Latitude,
		Longitude: *b.Longitude,
		Timezone:  *b.Timezone,
	}
}

// compatibilityRequest carries the two birth payloads to score.
type compatibilityRequest struct {
	Person1 *birthRequest `json:"person1"`
	Person2 *birthRequest `json:"person2"`
}

// Validate requires both people and validates each in turn.
func (c compatibilityRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Person1, validation.NotNil),
		validation.Field(&c.Person2, validation.NotNil),
	)
}

// ChartResponse is the chart-generation response body.
type ChartResponse = app.ChartResult

// CompatibilityResponse is the compatibility response body.
type CompatibilityResponse = app.MatchResult

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
