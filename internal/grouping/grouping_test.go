package grouping

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestByFirstLetter(t *testing.T) {
	testCases := []struct {
		name     string
		names    []string
		alphabet string
		expected []Group
	}{
		{
			name:     "sorted within and across buckets",
			names:    []string{"bob", "alice", "Alex", "charlie", "amy"},
			alphabet: "abcdefghijklmnopqrstuvwxyz",
			expected: []Group{
				{Letter: "a", Names: []string{"Alex", "alice", "amy"}},
				{Letter: "b", Names: []string{"bob"}},
				{Letter: "c", Names: []string{"charlie"}},
			},
		},
		{
			name:     "alphabet decides bucket order",
			names:    []string{"alice", "zed", "mia"},
			alphabet: "zma",
			expected: []Group{
				{Letter: "z", Names: []string{"zed"}},
				{Letter: "m", Names: []string{"mia"}},
				{Letter: "a", Names: []string{"alice"}},
			},
		},
		{
			name:     "names outside the alphabet are dropped",
			names:    []string{"alice", "9lives", "_x", ""},
			alphabet: "ab",
			expected: []Group{{Letter: "a", Names: []string{"alice"}}},
		},
		{
			name:     "empty alphabet takes every letter",
			names:    []string{"Örjan", "bo", "ada"},
			alphabet: "",
			expected: []Group{
				{Letter: "a", Names: []string{"ada"}},
				{Letter: "b", Names: []string{"bo"}},
				{Letter: "ö", Names: []string{"Örjan"}},
			},
		},
		{
			name:     "no names",
			names:    nil,
			alphabet: "abc",
			expected: []Group{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ByFirstLetter(tc.names, tc.alphabet)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ByFirstLetter() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestByFirstLetter_LeavesInputUntouched(t *testing.T) {
	names := []string{"bob", "alice"}
	ByFirstLetter(names, "ab")
	if !slices.Equal(names, []string{"bob", "alice"}) {
		t.Errorf("input was reordered: %v", names)
	}
}

func TestFilter(t *testing.T) {
	groups := ByFirstLetter([]string{"alice", "bob", "Bea"}, "ab")

	if got := Filter(groups, 'B'); !slices.Equal(got, []string{"Bea", "bob"}) {
		t.Errorf("Filter(B) = %v", got)
	}
	if got := Filter(groups, 'z'); got != nil {
		t.Errorf("Filter(z) = %v, want nil", got)
	}
}

func TestParseLetter(t *testing.T) {
	testCases := []struct {
		input   string
		want    rune
		wantErr error
	}{
		{input: "a", want: 'a'},
		{input: "Bob", want: 'b'},
		{input: "  c ", want: 'c'},
		{input: "", wantErr: ErrEmptyLetter},
		{input: "   ", wantErr: ErrEmptyLetter},
		{input: "7up", wantErr: ErrDigitLetter},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLetter(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseLetter(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLetter(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
