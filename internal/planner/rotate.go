package planner

import "poiroute/internal/model"

// Rotate returns a cyclic rotation of t that begins with start. The input is
// returned unchanged when start is negative or absent.
func Rotate(t Tour, start int) Tour {
	if start < 0 {
		return t
	}
	k := -1
	for i, v := range t {
		if v == start {
			k = i
			break
		}
	}
	if k <= 0 {
		return t
	}
	out := make(Tour, 0, len(t))
	out = append(out, t[k:]...)
	return append(out, t[:k]...)
}

// rotateToEnd rotates t so that end is the last element.
func rotateToEnd(t Tour, end int) Tour {
	for i, v := range t {
		if v == end {
			return Rotate(t, t[(i+1)%len(t)])
		}
	}
	return t
}

// Project maps a tour back to stop records in visiting order.
func Project(pois []model.POI, t Tour) []model.Stop {
	out := make([]model.Stop, 0, len(t))
	for _, i := range t {
		p := pois[i]
		out = append(out, model.Stop{Name: p.Name, Hours: p.Hours, Lat: p.Lat, Lng: p.Lng})
	}
	return out
}
