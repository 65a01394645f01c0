package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poiroute/internal/model"
)

const (
	R = model.Restaurant
	C = model.Cafe
	U = model.Culture
	A = model.Attraction
)

func identity(n int) Tour {
	t := make(Tour, n)
	for i := range t {
		t[i] = i
	}
	return t
}

func permutations(n int, fn func(Tour)) {
	t := identity(n)
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			fn(append(Tour(nil), t...))
			return
		}
		for i := k; i < n; i++ {
			t[k], t[i] = t[i], t[k]
			rec(k + 1)
			t[k], t[i] = t[i], t[k]
		}
	}
	rec(0)
}

func TestMealOnlyToursAlwaysValid(t *testing.T) {
	v := NewValidator(0, nil)
	cats := []model.Category{R, R, R, C, R, C}
	permutations(len(cats), func(tour Tour) {
		assert.True(t, v.Valid(cats, tour), "tour %v", tour)
	})
}

func TestShortTourForgivesAttractionCulture(t *testing.T) {
	v := NewValidator(0, nil)
	assert.True(t, v.Valid([]model.Category{A, U}, identity(2)))
	assert.True(t, v.Valid([]model.Category{C, A, U, C}, identity(4)))
	assert.True(t, v.Valid([]model.Category{U, A, C}, identity(3)))
}

func TestLongTourRejectsAttractionCulture(t *testing.T) {
	v := NewValidator(0, nil)
	cats := []model.Category{R, A, U, R, C, C}
	assert.False(t, v.Valid(cats, identity(6)))

	// the same neighbours are fine once they are split apart
	assert.False(t, v.Valid([]model.Category{C, A, U, C, C}, identity(5)))
	assert.True(t, v.Valid([]model.Category{C, A, C, U, C}, identity(5)))
}

func TestValidatorReadsTourOrder(t *testing.T) {
	v := NewValidator(0, nil)
	cats := []model.Category{A, C, U, C, C}
	// positional order A,C,U,C,C is fine, but the tour puts A next to U
	assert.True(t, v.Valid(cats, identity(5)))
	assert.False(t, v.Valid(cats, Tour{1, 0, 2, 3, 4}))
}

func TestCafeAfterRestaurant(t *testing.T) {
	v := NewValidator(0, nil)
	cats := []model.Category{R, A, C, U, C}
	assert.False(t, v.Valid(cats, identity(5)), "restaurant followed by attraction with a cafe to spare")
	assert.True(t, v.Valid(cats, Tour{0, 2, 1, 4, 3}))
	// a restaurant in last position has no successor to check
	assert.True(t, v.Valid(cats, Tour{2, 1, 4, 3, 0}))
}

func TestCafeRuleExemptions(t *testing.T) {
	v := NewValidator(0, nil)
	// no cafe anywhere: any order passes
	noCafe := []model.Category{R, A, U}
	permutations(3, func(tour Tour) {
		assert.True(t, v.Valid(noCafe, tour), "tour %v", tour)
	})
	// fewer cafes than restaurants: rule waived
	assert.True(t, v.Valid([]model.Category{R, A, R, C, A}, identity(5)))
	// equal counts: enforced
	assert.False(t, v.Valid([]model.Category{R, A, C, A, A}, identity(5)))
}

func TestUnknownCategoryBreaksMealExemption(t *testing.T) {
	v := NewValidator(0, nil)
	cats := []model.Category{R, model.Unknown, C}
	assert.False(t, v.Valid(cats, identity(3)))
	assert.True(t, v.Valid(cats, Tour{0, 2, 1}))
}

func TestCustomShortTourLen(t *testing.T) {
	cats := []model.Category{C, A, U, C, C}
	assert.False(t, NewValidator(4, nil).Valid(cats, identity(5)))
	assert.True(t, NewValidator(5, nil).Valid(cats, identity(5)))
}

func TestRuleTable(t *testing.T) {
	r := SeparateAttractionCulture(4)
	assert.True(t, r.Forbids(A, U))
	assert.True(t, r.Forbids(U, A))
	assert.False(t, r.Forbids(A, A))
	assert.True(t, r.Exempt(TourFacts{Len: 4}))
	assert.False(t, r.Exempt(TourFacts{Len: 5}))

	assert.True(t, CafeAfterRestaurant.Forbids(R, A))
	assert.False(t, CafeAfterRestaurant.Forbids(R, C))
	assert.False(t, CafeAfterRestaurant.Forbids(C, R))
	assert.True(t, CafeAfterRestaurant.Exempt(Facts([]model.Category{R, A}, identity(2))))
	assert.True(t, CafeAfterRestaurant.Exempt(Facts([]model.Category{R, R, C}, identity(3))))
	assert.False(t, CafeAfterRestaurant.Exempt(Facts([]model.Category{R, C}, identity(2))))
}

func TestExtraRule(t *testing.T) {
	v := NewValidator(0, nil)
	v.Rules = append(v.Rules, Rule{
		Name:    "no_double_culture",
		Forbids: func(a, b model.Category) bool { return a == U && b == U },
	})
	assert.False(t, v.Valid([]model.Category{U, U, A}, identity(3)))
	assert.True(t, v.Valid([]model.Category{U, C, U}, identity(3)))
}
