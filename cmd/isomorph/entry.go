package main

// Colored is one classified item: the original value plus its optional colour key
type Colored[R any] struct {
	Value   R
	Key     ColorKey
	Colored bool
}

// Color returns the item's key and whether it has one
func (c Colored[R]) Color() (ColorKey, bool) {
	return c.Key, c.Colored
}
