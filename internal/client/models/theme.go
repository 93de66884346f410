package models

// Theme is a read-only colour palette supplied by the app context.
type Theme struct {
	Name       string
	Primary    string
	Background string
	Text       string
	Secondary  string
}
