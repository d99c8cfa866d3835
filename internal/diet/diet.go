package diet

import (
	"regexp"
	"strings"
)

// Diet codes classify a menu item's dietary category.
const (
	Vegan       = 1
	Vegetarian  = 2
	Eggitarian  = 3
	Pescatarian = 4
	Pollotarian = 5
	LambIndo    = 6
	Halal       = 7
	Carnivore   = 9
	RedMeat     = 10
)

type rule struct {
	pattern *regexp.Regexp
	code    int
}

// The table is ordered and the first matching rule wins, so the more
// specific categories sit above the generic meat ones. "vegan" has to come
// before "veg", and "egg" before the meat fallbacks.
var rules = []rule{
	{regexp.MustCompile(`\bvegan\b`), Vegan},
	{regexp.MustCompile(`\bveg(etarian)?\b`), Vegetarian},
	{regexp.MustCompile(`\begg(itarian)?s?\b`), Eggitarian},
	{regexp.MustCompile(`\b(fish|seafood|prawn|shrimp|salmon|tuna|calamari|pescatarian)\b`), Pescatarian},
	{regexp.MustCompile(`\b(chicken|pollo|poultry|pollotarian)\b`), Pollotarian},
	{regexp.MustCompile(`\b(lamb|mutton|goat)\b`), LambIndo},
	{regexp.MustCompile(`\bhalal\b`), Halal},
	{regexp.MustCompile(`\b(beef|steak|pork|bacon|veal)\b`), RedMeat},
	{regexp.MustCompile(`\bmeat\b`), Carnivore},
}

// Classify derives a diet code from free text, typically an item's course
// category and name. The first rule that matches any of the texts wins;
// when nothing matches the item is assumed to be a generic meat dish.
func Classify(texts ...string) int {
	for _, r := range rules {
		for _, text := range texts {
			if r.pattern.MatchString(strings.ToLower(text)) {
				return r.code
			}
		}
	}
	return Carnivore
}
