package planner

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poiroute/internal/model"
)

func TestRotate(t *testing.T) {
	tour := Tour{3, 1, 4, 0, 2}
	for _, start := range tour {
		got := Rotate(tour, start)
		require.Len(t, got, len(tour))
		assert.Equal(t, start, got[0])

		sorted := append(Tour(nil), got...)
		sort.Ints(sorted)
		assert.Equal(t, Tour{0, 1, 2, 3, 4}, sorted)

		// relative order is preserved: got is a window of tour+tour
		doubled := append(append(Tour(nil), tour...), tour...)
		found := false
		for i := 0; i+len(got) <= len(doubled); i++ {
			if assert.ObjectsAreEqual(Tour(doubled[i:i+len(got)]), got) {
				found = true
				break
			}
		}
		assert.True(t, found, "rotation %v of %v", got, tour)
	}
	assert.Equal(t, Tour{3, 1, 4, 0, 2}, tour, "input is not modified")
}

func TestRotateWithoutStart(t *testing.T) {
	tour := Tour{2, 0, 1}
	assert.Equal(t, tour, Rotate(tour, -1))
	assert.Equal(t, tour, Rotate(tour, 9))
	assert.Equal(t, Tour{}, Rotate(Tour{}, 0))
}

func TestRotateToEnd(t *testing.T) {
	assert.Equal(t, Tour{4, 0, 2, 3, 1}, rotateToEnd(Tour{3, 1, 4, 0, 2}, 1))
	assert.Equal(t, Tour{3, 1, 4, 0, 2}, rotateToEnd(Tour{3, 1, 4, 0, 2}, 2))
}

func TestProject(t *testing.T) {
	pois := []model.POI{
		{Name: "Gyeongbokgung", Category: model.Culture, Lat: 37.5796, Lng: 126.9770, Hours: []string{"월요일 09:00-18:00"}},
		{Name: "Cafe Onion", Category: model.Cafe, Lat: 37.5446, Lng: 127.0565},
		{Name: "Tosokchon", Category: model.Restaurant, Lat: 37.5779, Lng: 126.9716},
	}
	stops := Project(pois, Tour{2, 0, 1})
	require.Len(t, stops, 3)
	assert.Equal(t, "Tosokchon", stops[0].Name)
	assert.Equal(t, model.Stop{Name: "Gyeongbokgung", Hours: []string{"월요일 09:00-18:00"}, Lat: 37.5796, Lng: 126.9770}, stops[1])
	assert.Nil(t, stops[2].Hours)
	assert.Empty(t, Project(pois, Tour{}))
}
