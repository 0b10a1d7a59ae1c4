package main

// Result is the outcome of one classification run
type Result[R any] struct {
	Items   []Colored[R]
	Classes []Class // in first-seen order
	Stats   Stats
}

// Classify groups items by the signature of their units and assigns a colour
// key to every class that qualifies (see qualifies). Output order mirrors
// input order. Classify never touches a palette; keys are reified at render time.
func Classify[R any, T comparable](items []R, units func(R) []T) Result[R] {
	// Pass 1: signature per item, classes in first-seen order
	classIndex := make(map[string]int)
	var classes []Class
	itemClass := make([]int, len(items))

	for i, item := range items {
		sig := SignatureOf(units(item))
		key := sig.Key()
		ci, ok := classIndex[key]
		if !ok {
			ci = len(classes)
			classIndex[key] = ci
			classes = append(classes, Class{
				Signature: sig,
				Hash:      sig.Hash(),
				Good:      sig.Good(),
			})
		}
		classes[ci].Members = append(classes[ci].Members, i)
		itemClass[i] = ci
	}

	// Pass 2: allocate keys to qualifying classes in first-seen item order.
	// Classes were created in that order, but walking items keeps the contract explicit.
	var next ColorKey
	result := Result[R]{
		Items: make([]Colored[R], len(items)),
	}
	for i, item := range items {
		c := &classes[itemClass[i]]
		if qualifies(c) && !c.Colored {
			c.Key = next
			c.Colored = true
			next = next.Next()
		}
		result.Items[i] = Colored[R]{Value: item, Key: c.Key, Colored: c.Colored}
	}

	result.Classes = classes
	result.Stats = collectStats(classes, len(items))
	return result
}

// ClassifyWords classifies words rune by rune
func ClassifyWords(words []string) Result[string] {
	return Classify(words, func(w string) []rune { return []rune(w) })
}

// ColorWords returns each word with its optional colour key, in input order
func ColorWords(words []string) []Colored[string] {
	return ClassifyWords(words).Items
}
