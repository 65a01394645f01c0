package api

import (
	"fmt"
	"time"

	"poiroute/internal/geo"
	"poiroute/internal/hours"
	"poiroute/internal/model"
)

// maxPOIs caps a single request; the planner is quadratic in the candidate count.
const maxPOIs = 64

// planInput is a validated request translated into planner terms. orig maps
// planner indices back to positions in the request body.
type planInput struct {
	pois   []model.POI
	orig   []int
	origin *geo.Point
	start  *int
	end    *int
}

func (in planInput) originalTour(t []int) []int {
	out := make([]int, len(t))
	for k, i := range t {
		out[k] = in.orig[i]
	}
	return out
}

func (in planInput) originalIndex(i int) int {
	if i < 0 || i >= len(in.orig) {
		return i
	}
	return in.orig[i]
}

func validatePlanRequest(req *model.PlanRequest) (planInput, error) {
	if len(req.POIs) > maxPOIs {
		return planInput{}, fmt.Errorf("at most %d pois per request, got %d", maxPOIs, len(req.POIs))
	}
	pois := make([]model.POI, len(req.POIs))
	for i, p := range req.POIs {
		if p.Location == nil {
			return planInput{}, fmt.Errorf("pois[%d]: location is required", i)
		}
		cat, err := resolveCategory(p)
		if err != nil {
			return planInput{}, fmt.Errorf("pois[%d]: %w", i, err)
		}
		pois[i] = model.POI{ID: p.ID, Name: p.Name, Category: cat, Lat: p.Location.Lat, Lng: p.Location.Lng, Hours: p.Hours}
	}
	in := planInput{pois: pois, orig: make([]int, len(pois))}
	for i := range in.orig {
		in.orig[i] = i
	}
	if req.Origin != nil {
		in.origin = &geo.Point{Lat: req.Origin.Lat, Lng: req.Origin.Lng}
	}
	in.start, in.end = req.StartIndex, req.EndIndex
	if req.Day == "" {
		return in, nil
	}

	day, err := hours.ParseDay(req.Day)
	if err != nil {
		return planInput{}, err
	}
	in.pois, in.orig = hours.Filter(pois, day)
	if in.start, err = remapIndex(req.StartIndex, len(pois), in.orig, "startIndex", day); err != nil {
		return planInput{}, err
	}
	if in.end, err = remapIndex(req.EndIndex, len(pois), in.orig, "endIndex", day); err != nil {
		return planInput{}, err
	}
	return in, nil
}

// remapIndex converts a request index into the filtered list. Out-of-range
// indices become -1 for the planner to reject.
func remapIndex(idx *int, total int, orig []int, field string, day time.Weekday) (*int, error) {
	if idx == nil {
		return nil, nil
	}
	if *idx < 0 || *idx >= total {
		bad := -1
		return &bad, nil
	}
	for k, i := range orig {
		if i == *idx {
			return &k, nil
		}
	}
	return nil, fmt.Errorf("%s: poi %d is not open on %s", field, *idx, day)
}

// resolveCategory prefers an explicit category, then a Kakao group code,
// then Google place types.
func resolveCategory(p model.POIIn) (model.Category, error) {
	switch {
	case p.Category != "":
		return model.ParseCategory(p.Category)
	case p.KakaoCode != "":
		return model.CategoryFromKakao(p.KakaoCode), nil
	case len(p.Types) > 0:
		return model.CategoryFromGoogleTypes(p.Types), nil
	}
	return model.Unknown, nil
}
