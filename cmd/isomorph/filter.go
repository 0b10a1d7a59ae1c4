package main

// minMembers is the class size from which a repeating pattern is worth colouring
const minMembers = 2

// qualifies reports whether a class gets a colour: it must be shared by at
// least two items and its signature must contain a repetition.
func qualifies(c *Class) bool {
	return len(c.Members) >= minMembers && c.Good
}

// collectStats counts what was coloured and why the rest was not
func collectStats(classes []Class, words int) Stats {
	stats := Stats{
		Words:   words,
		Classes: len(classes),
	}
	for i := range classes {
		c := &classes[i]
		switch {
		case c.Colored:
			stats.ColoredClasses++
			stats.ColoredWords += len(c.Members)
		case len(c.Members) < minMembers:
			stats.SkippedUnique++
		default:
			stats.SkippedNotGood++
		}
	}
	return stats
}
