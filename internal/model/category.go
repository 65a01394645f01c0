package model

import (
    "encoding/json"
    "fmt"
    "strings"
)

// Category is the closed set of POI kinds the adjacency rules understand.
type Category string

const (
    Restaurant Category = "RESTAURANT"
    Cafe       Category = "CAFE"
    Culture    Category = "CULTURE"
    Attraction Category = "ATTRACTION"
    Unknown    Category = "UNKNOWN"
)

// Known reports whether c is one of the enumerated values.
func (c Category) Known() bool {
    switch c {
    case Restaurant, Cafe, Culture, Attraction, Unknown:
        return true
    }
    return false
}

// ParseCategory accepts the enum names case-insensitively. Empty input is Unknown.
func ParseCategory(s string) (Category, error) {
    s = strings.ToUpper(strings.TrimSpace(s))
    if s == "" {
        return Unknown, nil
    }
    c := Category(s)
    if !c.Known() {
        return Unknown, fmt.Errorf("unknown category: %s", s)
    }
    return c, nil
}

// UnmarshalJSON rejects values outside the enumeration.
func (c *Category) UnmarshalJSON(b []byte) error {
    var s string
    if err := json.Unmarshal(b, &s); err != nil {
        return err
    }
    v, err := ParseCategory(s)
    if err != nil {
        return err
    }
    *c = v
    return nil
}

// Kakao local API category group codes.
var kakaoCategories = map[string]Category{
    "FD6": Restaurant,
    "CE7": Cafe,
    "CT1": Culture,
    "AT4": Attraction,
}

// CategoryFromKakao maps a Kakao category group code.
func CategoryFromKakao(code string) Category {
    if c, ok := kakaoCategories[strings.ToUpper(strings.TrimSpace(code))]; ok {
        return c
    }
    return Unknown
}

// Google Places types grouped by internal category.
var googleTypes = map[string]Category{
    // food
    "restaurant":            Restaurant,
    "fast_food_restaurant":  Restaurant,
    "pizza_restaurant":      Restaurant,
    "sandwich_shop":         Restaurant,
    "hamburger_restaurant":  Restaurant,
    "pub":                   Restaurant,
    "wine_bar":              Restaurant,
    "korean_restaurant":     Restaurant,
    "chinese_restaurant":    Restaurant,
    "japanese_restaurant":   Restaurant,
    "italian_restaurant":    Restaurant,
    "american_restaurant":   Restaurant,
    "thai_restaurant":       Restaurant,
    "indian_restaurant":     Restaurant,
    "mexican_restaurant":    Restaurant,
    "french_restaurant":     Restaurant,
    "vietnamese_restaurant": Restaurant,
    // cafe
    "cafe":           Cafe,
    "bar":            Cafe,
    "bakery":         Cafe,
    "coffee_shop":    Cafe,
    "dessert_shop":   Cafe,
    "ice_cream_shop": Cafe,
    // culture
    "art_gallery":             Culture,
    "museum":                  Culture,
    "performing_arts_theater": Culture,
    "cultural_landmark":       Culture,
    "historical_landmark":     Culture,
    // leisure
    "amusement_park":     Attraction,
    "aquarium":           Attraction,
    "zoo":                Attraction,
    "movie_theater":      Attraction,
    "park":               Attraction,
    "tourist_attraction": Attraction,
    "bowling_alley":      Attraction,
    "botanical_garden":   Attraction,
    "concert_hall":       Attraction,
    "cultural_center":    Attraction,
    "event_venue":        Attraction,
    "garden":             Attraction,
    "plaza":              Attraction,
}

// CategoryFromGoogleTypes returns the category of the first recognised type.
func CategoryFromGoogleTypes(types []string) Category {
    for _, t := range types {
        if c, ok := googleTypes[strings.ToLower(strings.TrimSpace(t))]; ok {
            return c
        }
    }
    return Unknown
}
