package entity

// Field describes one column of the backing store.
type Field struct {
	Name string
	Type string
}
