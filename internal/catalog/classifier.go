// Package catalog holds the canned content served by the mock tier and the
// keyword rules that pick it.
package catalog

import "strings"

type Category string

const (
	Dog     Category = "dog"
	Sunset  Category = "sunset"
	City    Category = "city"
	Kitchen Category = "kitchen"
	Lake    Category = "lake"
	Beach   Category = "beach"
	Cooking Category = "cooking"
	Nature  Category = "nature"
	Default Category = "default"
)

// Rule maps a keyword to the category it selects.
type Rule struct {
	Keyword  string
	Category Category
}

// Classify returns the category of the first rule whose keyword occurs in
// text, ignoring case. Rules are tried in declaration order. Default is
// returned when nothing matches.
func Classify(text string, rules []Rule) Category {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.Keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(r.Keyword)) {
			return r.Category
		}
	}
	return Default
}
