package catalog

import "math"

// Nearest returns the location closest to pos. Distances use an
// equirectangular projection, which is plenty at city scale.
func Nearest(locations []Location, pos Position) (Location, bool) {
	if len(locations) == 0 {
		return Location{}, false
	}

	best := 0
	bestDist := math.Inf(1)
	for i, loc := range locations {
		d := distanceSq(pos, Position{Lat: loc.Lat, Lng: loc.Lng})
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return locations[best], true
}

func distanceSq(a, b Position) float64 {
	meanLat := (a.Lat + b.Lat) / 2 * math.Pi / 180
	x := (b.Lng - a.Lng) * math.Cos(meanLat)
	y := b.Lat - a.Lat
	return x*x + y*y
}
