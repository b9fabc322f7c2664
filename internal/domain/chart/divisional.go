package chart

import (
	"math"

	"github.com/vedanga/jyoti/internal/domain/zodiac"
)

// Divisional chart geometry.
const (
	navamsaParts  = 9
	dashamsaParts = 10

	navamsaSpan  = zodiac.SignSpan / navamsaParts
	dashamsaSpan = zodiac.SignSpan / dashamsaParts

	// Inclusive counting offsets for the dashamsa start sign.
	dashamsaFixedOffset = 8 // 9th sign from itself
	dashamsaDualOffset  = 4 // 5th sign from itself
)

// NavamsaSign returns the D9 sign index for a natal longitude: the sign's
// nine parts advance continuously around the zodiac.
func NavamsaSign(longitude float64) int {
	sign := SignIndex(longitude)
	part := int(math.Floor(DegreeInSign(longitude) / navamsaSpan))
	return (sign*navamsaParts + part) % zodiac.SignCount
}

// DashamsaSign returns the D10 sign index for a natal longitude. The ten
// parts count from a start sign chosen by the natal sign's mobility:
// movable signs start from themselves, fixed from the 9th, dual from the 5th.
func DashamsaSign(longitude float64) int {
	sign := SignIndex(longitude)
	part := int(math.Floor(DegreeInSign(longitude) / dashamsaSpan))

	start := sign
	switch zodiac.SignTypes[sign] {
	case zodiac.Fixed:
		start = (sign + dashamsaFixedOffset) % zodiac.SignCount
	case zodiac.Dual:
		start = (sign + dashamsaDualOffset) % zodiac.SignCount
	}
	return (start + part) % zodiac.SignCount
}
