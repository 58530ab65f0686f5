package models

// UpdateField pairs a column name with the value to write. Each entity's
// update struct renders its present fields into a slice of UpdateField in a
// fixed allow-list order; column names come from the struct, never from the
// request body, so clients cannot touch columns outside the allow-list.
type UpdateField struct {
	Column string
	Value  any
}
