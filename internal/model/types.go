package model

// Domain types shared by the planner and the HTTP layer.

// POI is one candidate stop handed to the planner.
type POI struct {
    ID       string   `json:"id,omitempty"`
    Name     string   `json:"name"`
    Category Category `json:"category"`
    Lat      float64  `json:"lat"`
    Lng      float64  `json:"lng"`
    Hours    []string `json:"hours,omitempty"` // per-weekday descriptors, passed through
}

// Stop is a projected POI in visiting order.
type Stop struct {
    Name  string   `json:"name"`
    Hours []string `json:"hours,omitempty"`
    Lat   float64  `json:"lat"`
    Lng   float64  `json:"lng"`
}

// GeoPoint is the wire form of a coordinate.
type GeoPoint struct {
    Lat float64 `json:"lat"`
    Lng float64 `json:"lng"`
}

// POIIn is the request form of a POI. Exactly one of Category, KakaoCode or
// Types is used to resolve the category, in that order.
type POIIn struct {
    ID        string    `json:"id,omitempty"`
    Name      string    `json:"name"`
    Category  string    `json:"category,omitempty"`
    KakaoCode string    `json:"kakaoCode,omitempty"`
    Types     []string  `json:"types,omitempty"`
    Location  *GeoPoint `json:"location"`
    Hours     []string  `json:"hours,omitempty"`
}

type PlanRequest struct {
    TenantID   string    `json:"tenantId,omitempty"`
    POIs       []POIIn   `json:"pois"`
    Cycle      bool      `json:"cycle,omitempty"`
    Origin     *GeoPoint `json:"origin,omitempty"`
    StartIndex *int      `json:"startIndex,omitempty"`
    EndIndex   *int      `json:"endIndex,omitempty"`
    Day        string    `json:"day,omitempty"` // weekday filter, e.g. "월요일" or "Monday"
}

type PlanResponse struct {
    PlanID     string  `json:"planId"`
    Stops      []Stop  `json:"stops"`
    Tour       []int   `json:"tour"`
    Attempts   int     `json:"attempts"`
    Relaxed    bool    `json:"relaxed"`
    DistanceKm float64 `json:"distanceKm"`
    Dropped    int     `json:"dropped,omitempty"` // POIs removed by the weekday filter
}

// PlanRun is the audit record of one planning request. It never holds the
// ordered route itself.
type PlanRun struct {
    ID         string  `json:"id"`
    TenantID   string  `json:"tenantId"`
    POICount   int     `json:"poiCount"`
    Cycle      bool    `json:"cycle"`
    Attempts   int     `json:"attempts"`
    Relaxed    bool    `json:"relaxed"`
    DistanceKm float64 `json:"distanceKm"`
    DurationMs int     `json:"durationMs"`
    CreatedAt  string  `json:"createdAt"`
}
