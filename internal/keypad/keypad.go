// Package keypad expands phone keypad digits into the words their letters
// can spell.
package keypad

import (
	"errors"
	"fmt"
)

// MaxDigits caps the input so the result stays at most 4^8 words.
const MaxDigits = 8

var (
	ErrNoDigits      = errors.New("at least one digit is required")
	ErrInvalidDigit  = errors.New("only digits 2-9 carry letters")
	ErrTooManyDigits = fmt.Errorf("at most %d digits are allowed", MaxDigits)
)

var keys = map[rune]string{
	'2': "abc",
	'3': "def",
	'4': "ghi",
	'5': "jkl",
	'6': "mno",
	'7': "pqrs",
	'8': "tuv",
	'9': "wxyz",
}

// Letters returns the letters printed on key d.
func Letters(d rune) (string, bool) {
	letters, ok := keys[d]
	return letters, ok
}

// Combinations returns every word formed by taking one letter per digit, in
// keypad order: "23" gives ad, ae, af, bd, ... cf. Digits may repeat.
func Combinations(digits string) ([]string, error) {
	if digits == "" {
		return nil, ErrNoDigits
	}

	var sets []string
	for i, d := range digits {
		letters, ok := keys[d]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, d, i)
		}
		sets = append(sets, letters)
	}
	if len(sets) > MaxDigits {
		return nil, ErrTooManyDigits
	}

	words := []string{""}
	for _, letters := range sets {
		next := make([]string, 0, len(words)*len(letters))
		for _, prefix := range words {
			for _, letter := range letters {
				next = append(next, prefix+string(letter))
			}
		}
		words = next
	}
	return words, nil
}

// Count returns how many words Combinations would produce, without building
// them.
func Count(digits string) (int, error) {
	if digits == "" {
		return 0, ErrNoDigits
	}

	total := 1
	for i, d := range digits {
		letters, ok := keys[d]
		if !ok {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, d, i)
		}
		total *= len(letters)
	}
	return total, nil
}
