package main

// ColorKey identifies the colour assigned to an equivalence class.
// Keys are handed out 0, 1, 2, ... in the order qualifying classes are first seen.
type ColorKey int

// Next returns the key allocated after k
func (k ColorKey) Next() ColorKey { return k + 1 }

// Reify maps the key onto a table of the given size. A size <= 0 means the
// source is unbounded and the key is used as is.
func (k ColorKey) Reify(size int) int {
	if size <= 0 {
		return int(k)
	}
	return int(k) % size
}

// Class is an equivalence class: every input item sharing one signature
type Class struct {
	Signature Signature
	Hash      uint64
	Good      bool
	Members   []int    // indices into the classified items, in input order
	Key       ColorKey // valid only when Colored is true
	Colored   bool
}

// Stats summarises one classification run
type Stats struct {
	Words          int
	Classes        int
	ColoredClasses int
	ColoredWords   int
	SkippedUnique  int // classes with a single member
	SkippedNotGood int // shared classes whose signature has no repetition
}

// JSON output structures

type JSONWord struct {
	Word string    `json:"word"`
	Key  *ColorKey `json:"key,omitempty"`
}

type JSONClass struct {
	Hash      string    `json:"hash"`
	Signature []int     `json:"signature"`
	Good      bool      `json:"good"`
	Members   []string  `json:"members"`
	Key       *ColorKey `json:"key,omitempty"`
	Color     string    `json:"color,omitempty"` // escape prefix, empty when uncoloured
}

type JSONOutput struct {
	Palette        string      `json:"palette"`
	TotalWords     int         `json:"total_words"`
	TotalClasses   int         `json:"total_classes"`
	ColoredClasses int         `json:"colored_classes"`
	Words          []JSONWord  `json:"words"`
	Classes        []JSONClass `json:"classes"`
}
