package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keys returns the colour key of every word, -1 for uncoloured ones
func keys(items []Colored[string]) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = -1
		if key, ok := item.Color(); ok {
			out[i] = int(key)
		}
	}
	return out
}

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"shared without repetition", "abc abc", []int{-1, -1}},
		{"shared good pattern", "egg add", []int{0, 0}},
		{"unique pattern in between", "abb cde fgg", []int{0, -1, 0}},
		{"empty input", "", []int{-1}},
		{"different letters same pattern", "aa bb", []int{0, 0}},
		{"unique good word", "egg abc", []int{-1, -1}},
		{"two classes", "xyz xyz aa bb egg add", []int{-1, -1, 0, 0, 1, 1}},
		{"interleaved classes", "egg aa add bb", []int{0, 1, 0, 1}},
		{"empty words", "a  b  aa", []int{-1, -1, -1, -1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyWords(strings.Split(tt.input, " "))
			assert.Equal(t, tt.want, keys(result.Items))
		})
	}
}

func TestClassifyPreservesOrderAndValues(t *testing.T) {
	words := []string{"egg", "abc", "add", "", "see"}
	result := ClassifyWords(words)
	require.Len(t, result.Items, len(words))
	for i, item := range result.Items {
		assert.Equal(t, words[i], item.Value)
	}
	assert.Equal(t, []int{0, -1, 0, -1, 0}, keys(result.Items))
}

func TestClassifyKeyOrderFollowsFirstOccurrence(t *testing.T) {
	forward := ClassifyWords([]string{"aa", "bb", "egg", "add"})
	reverse := ClassifyWords([]string{"egg", "add", "aa", "bb"})

	assert.Equal(t, []int{0, 0, 1, 1}, keys(forward.Items))
	assert.Equal(t, []int{0, 0, 1, 1}, keys(reverse.Items))
	// Same membership, but "egg" gets key 1 in one run and key 0 in the other
	assert.Equal(t, 1, keys(forward.Items)[2])
	assert.Equal(t, 0, keys(reverse.Items)[0])
}

func TestClassifyIsIdempotent(t *testing.T) {
	words := strings.Split("the cat sees a dodo and a kiwi that sees noon peep", " ")
	first := ClassifyWords(words)
	second := ClassifyWords(words)
	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.Classes, second.Classes)
}

func TestClassifyClassTable(t *testing.T) {
	result := ClassifyWords([]string{"abb", "cde", "fgg", "hii", "cde"})
	require.Len(t, result.Classes, 2)

	good := result.Classes[0]
	assert.Equal(t, Signature{0, 1, 1}, good.Signature)
	assert.Equal(t, []int{0, 2, 3}, good.Members)
	assert.True(t, good.Good)
	assert.True(t, good.Colored)
	assert.Equal(t, ColorKey(0), good.Key)
	assert.Equal(t, good.Signature.Hash(), good.Hash)

	plain := result.Classes[1]
	assert.Equal(t, []int{1, 4}, plain.Members)
	assert.False(t, plain.Good)
	assert.False(t, plain.Colored)

	assert.Equal(t, Stats{
		Words:          5,
		Classes:        2,
		ColoredClasses: 1,
		ColoredWords:   3,
		SkippedNotGood: 1,
	}, result.Stats)
}

func TestClassifyNeverColorsUniqueOrNotGood(t *testing.T) {
	words := strings.Split("level noon abc xyz moon egg sass hello abc", " ")
	result := ClassifyWords(words)

	counts := make(map[string]int)
	for _, w := range words {
		counts[SignatureOfWord(w).Key()]++
	}
	for _, item := range result.Items {
		sig := SignatureOfWord(item.Value)
		_, colored := item.Color()
		assert.Equal(t, counts[sig.Key()] >= 2 && sig.Good(), colored, "word %q", item.Value)
	}
}

func TestClassifyEmpty(t *testing.T) {
	result := ClassifyWords(nil)
	assert.Empty(t, result.Items)
	assert.Empty(t, result.Classes)
	assert.Equal(t, Stats{}, result.Stats)
}

func TestClassifyGenericItems(t *testing.T) {
	type reading struct {
		sensor string
		values []int
	}
	items := []reading{
		{"a", []int{1, 2, 2}},
		{"b", []int{5}},
		{"c", []int{9, 4, 4}},
	}
	result := Classify(items, func(r reading) []int { return r.values })

	require.Len(t, result.Items, 3)
	assert.Equal(t, "a", result.Items[0].Value.sensor)
	_, colored := result.Items[1].Color()
	assert.False(t, colored)
	k0, ok0 := result.Items[0].Color()
	k2, ok2 := result.Items[2].Color()
	assert.True(t, ok0)
	assert.True(t, ok2)
	assert.Equal(t, k0, k2)
}

func TestColorWords(t *testing.T) {
	assert.Equal(t, []int{0, 0}, keys(ColorWords([]string{"egg", "add"})))
}

func TestColorKey(t *testing.T) {
	assert.Equal(t, ColorKey(1), ColorKey(0).Next())
	assert.Equal(t, 2, ColorKey(9).Reify(7))
	assert.Equal(t, 9, ColorKey(9).Reify(0))
}
