package models

// Category is a user-defined label with a color, used for grouping and
// filtering habits.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}
