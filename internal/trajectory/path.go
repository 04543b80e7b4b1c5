package trajectory

// PathPoint is a sample of the flight at a given distance from the rubber
type PathPoint struct {
	Distance float64 // feet from the rubber
	TarpCoordinate
}

// Path samples the flight from release to the plate.
// It returns samples evenly spaced points, the first at the release point and the
// last at the plate. Fewer than two samples returns nil.
func Path(p PitchParameters, samples int) []PathPoint {
	if samples < 2 {
		return nil
	}

	points := make([]PathPoint, samples)
	span := MoundToPlate - p.Extension
	for i := range points {
		d := p.Extension + span*float64(i)/float64(samples-1)
		at := p
		at.TarpDistance = d
		points[i] = PathPoint{
			Distance:       d,
			TarpCoordinate: Compute(at),
		}
	}
	return points
}

// Heights returns the vertical component of each point, for charting
func Heights(points []PathPoint) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.Vertical
	}
	return out
}

// Sides returns the horizontal component of each point, for charting
func Sides(points []PathPoint) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.Horizontal
	}
	return out
}
