// Package grouping buckets names by their first letter.
package grouping

import (
	"errors"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrEmptyLetter = errors.New("a letter is required")
	ErrDigitLetter = errors.New("letter must not start with a digit")
)

// Group holds the names whose lower-cased first letter is Letter, sorted.
type Group struct {
	Letter string   `json:"letter"`
	Names  []string `json:"names"`
}

// ByFirstLetter sorts names and buckets them by lower-cased first letter.
// Buckets follow the order of alphabet and empty ones are left out. Names
// starting outside alphabet are dropped. An empty alphabet accepts every
// letter and orders the buckets by letter.
func ByFirstLetter(names []string, alphabet string) []Group {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	buckets := make(map[rune][]string)
	for _, name := range sorted {
		first, _ := utf8.DecodeRuneInString(name)
		if name == "" || first == utf8.RuneError {
			continue
		}
		first = unicode.ToLower(first)
		if alphabet != "" && !strings.ContainsRune(alphabet, first) {
			continue
		}
		buckets[first] = append(buckets[first], name)
	}

	var order []rune
	if alphabet != "" {
		seen := make(map[rune]bool)
		for _, r := range alphabet {
			if !seen[r] {
				seen[r] = true
				order = append(order, r)
			}
		}
	} else {
		for r := range buckets {
			order = append(order, r)
		}
		slices.Sort(order)
	}

	groups := make([]Group, 0, len(buckets))
	for _, r := range order {
		if names, ok := buckets[r]; ok {
			groups = append(groups, Group{Letter: string(r), Names: names})
		}
	}
	return groups
}

// Filter returns the names bucketed under letter, or nil.
func Filter(groups []Group, letter rune) []string {
	want := string(unicode.ToLower(letter))
	for _, g := range groups {
		if g.Letter == want {
			return g.Names
		}
	}
	return nil
}

// ParseLetter reads a filter letter from user input. Only the first
// character counts and it is lower-cased.
func ParseLetter(input string) (rune, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrEmptyLetter
	}
	first, _ := utf8.DecodeRuneInString(input)
	if unicode.IsDigit(first) {
		return 0, ErrDigitLetter
	}
	return unicode.ToLower(first), nil
}
