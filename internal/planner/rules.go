package planner

import (
	"go.uber.org/zap"

	"poiroute/internal/model"
)

// TourFacts summarises the category multiset of a whole tour. Rule
// exemptions are evaluated against it, not against single pairs.
type TourFacts struct {
	Len    int
	Counts map[model.Category]int
}

// Has reports whether at least one stop has category c.
func (f TourFacts) Has(c model.Category) bool { return f.Counts[c] > 0 }

// OnlyOf reports whether every stop falls in the given categories.
func (f TourFacts) OnlyOf(cats ...model.Category) bool {
	allowed := 0
	for _, c := range cats {
		allowed += f.Counts[c]
	}
	return allowed == f.Len
}

// Rule forbids some adjacent category pairs unless its exemption holds for
// the tour as a whole.
type Rule struct {
	Name    string
	Forbids func(a, b model.Category) bool
	Exempt  func(f TourFacts) bool
}

// Exemption waives every rule for a tour.
type Exemption struct {
	Name    string
	Applies func(f TourFacts) bool
}

// DefaultShortTourLen is the longest tour in which attraction/culture
// neighbours are tolerated.
const DefaultShortTourLen = 4

// MealOnly waives ordering when only restaurants and cafes are present.
var MealOnly = Exemption{
	Name:    "meal_only",
	Applies: func(f TourFacts) bool { return f.OnlyOf(model.Restaurant, model.Cafe) },
}

// SeparateAttractionCulture keeps attractions and cultural sites apart
// unless the tour is too short to offer another order.
func SeparateAttractionCulture(shortLen int) Rule {
	return Rule{
		Name: "attraction_culture_separation",
		Forbids: func(a, b model.Category) bool {
			return (a == model.Attraction && b == model.Culture) || (a == model.Culture && b == model.Attraction)
		},
		Exempt: func(f TourFacts) bool { return f.Len <= shortLen },
	}
}

// CafeAfterRestaurant wants every restaurant followed by a cafe while there
// are enough cafes to go around.
var CafeAfterRestaurant = Rule{
	Name: "cafe_after_restaurant",
	Forbids: func(a, b model.Category) bool {
		return a == model.Restaurant && b != model.Cafe
	},
	Exempt: func(f TourFacts) bool {
		return !f.Has(model.Cafe) || f.Counts[model.Cafe] < f.Counts[model.Restaurant]
	},
}

// DefaultRules returns the standard policy table.
func DefaultRules(shortLen int) []Rule {
	return []Rule{SeparateAttractionCulture(shortLen), CafeAfterRestaurant}
}

// Validator checks tours against a policy table.
type Validator struct {
	Exemptions []Exemption
	Rules      []Rule
	Log        *zap.Logger
}

// NewValidator returns the standard validator.
func NewValidator(shortLen int, log *zap.Logger) *Validator {
	if log == nil {
		log = zap.NewNop()
	}
	if shortLen <= 0 {
		shortLen = DefaultShortTourLen
	}
	return &Validator{Exemptions: []Exemption{MealOnly}, Rules: DefaultRules(shortLen), Log: log}
}

// Facts computes the category multiset of t.
func Facts(categories []model.Category, t Tour) TourFacts {
	f := TourFacts{Len: len(t), Counts: make(map[model.Category]int, 5)}
	for _, i := range t {
		f.Counts[categories[i]]++
	}
	return f
}

// Valid reports whether t satisfies every rule. categories is indexed by
// node, t by visiting position.
func (v *Validator) Valid(categories []model.Category, t Tour) bool {
	f := Facts(categories, t)
	for _, ex := range v.Exemptions {
		if ex.Applies(f) {
			v.Log.Debug("tour exempt from ordering rules", zap.String("exemption", ex.Name))
			return true
		}
	}
	for pos := 0; pos+1 < len(t); pos++ {
		a, b := categories[t[pos]], categories[t[pos+1]]
		for _, r := range v.Rules {
			if !r.Forbids(a, b) {
				continue
			}
			if r.Exempt != nil && r.Exempt(f) {
				v.Log.Debug("violation forgiven", zap.String("rule", r.Name), zap.Int("pos", pos),
					zap.String("from", string(a)), zap.String("to", string(b)))
				continue
			}
			v.Log.Debug("violation", zap.String("rule", r.Name), zap.Int("pos", pos),
				zap.String("from", string(a)), zap.String("to", string(b)))
			return false
		}
	}
	return true
}
