package trajectory

import "math"

const (
	// MoundToPlate is the distance from the rubber to the front of home plate in feet
	MoundToPlate = 60.5

	// StrikezoneHeight is the height in feet the pitch is aimed at when it reaches the plate
	StrikezoneHeight = 2.5

	// Gravity is the acceleration due to gravity in feet/s^2
	Gravity = 32.174

	// MPHToFPS converts miles per hour to feet per second
	MPHToFPS = 1.467

	// InchesPerFoot is used for the break conversion
	InchesPerFoot = 12.0
)

// Tarp distance limits, matching the calculator slider
const (
	MinTarpDistance  = 11.0
	MaxTarpDistance  = MoundToPlate
	TarpDistanceStep = 0.5
)

// PitchParameters holds the inputs for a single calculation.
// Breaks are in feet and already sign-flipped (see BreakToFeet).
type PitchParameters struct {
	ReleaseHeight        float64 // feet
	ReleaseSide          float64 // feet
	Extension            float64 // feet
	Velocity             float64 // mph
	TarpDistance         float64 // feet from the rubber
	HorizontalBreak      float64 // feet
	InducedVerticalBreak float64 // feet
}

// TarpCoordinate is where the pitch crosses the tarp, in feet.
// Horizontal is relative to plate center, Vertical to the ground.
type TarpCoordinate struct {
	Horizontal float64
	Vertical   float64
}

// IsFinite reports whether both components are real numbers
func (c TarpCoordinate) IsFinite() bool {
	return !math.IsNaN(c.Horizontal) && !math.IsInf(c.Horizontal, 0) &&
		!math.IsNaN(c.Vertical) && !math.IsInf(c.Vertical, 0)
}

// BreakToFeet converts a break entered in inches to the signed feet the model uses
func BreakToFeet(inches float64) float64 {
	return inches / -InchesPerFoot
}

// Compute projects the pitch onto the tarp.
//
// The flight is modelled in closed form: the release velocity is chosen so the
// pitch would reach the middle of the zone under gravity alone, and the break
// components are then added linearly over the time of flight. Degenerate input
// (velocity of zero, extension at or past the tarp) is not guarded and yields
// non-finite or meaningless values.
func Compute(p PitchParameters) TarpCoordinate {
	velocity := p.Velocity * MPHToFPS
	timeToPlate := (MoundToPlate - p.Extension) / velocity

	verticalVelocity := ((StrikezoneHeight - p.ReleaseHeight) + 0.5*Gravity*timeToPlate*timeToPlate) / timeToPlate
	horizontalVelocity := -p.ReleaseSide / timeToPlate

	t := (p.TarpDistance - p.Extension) / velocity

	return TarpCoordinate{
		Horizontal: p.ReleaseSide + horizontalVelocity*t + (p.HorizontalBreak/timeToPlate)*t,
		Vertical:   p.ReleaseHeight + verticalVelocity*t - 0.5*Gravity*t*t + (p.InducedVerticalBreak/timeToPlate)*t,
	}
}

// ClampTarpDistance limits d to the supported tarp range
func ClampTarpDistance(d float64) float64 {
	switch {
	case math.IsNaN(d):
		return MaxTarpDistance
	case d < MinTarpDistance:
		return MinTarpDistance
	case d > MaxTarpDistance:
		return MaxTarpDistance
	}
	return d
}
