package domain

// Choice is one selectable entry of a dependent prompt: what the user sees
// and the id it stands for. A Null choice stands for "no value".
type Choice struct {
	Label string
	ID    int64
	Null  bool
}

// NullableID returns nil for a Null choice.
func (c Choice) NullableID() *int64 {
	if c.Null {
		return nil
	}
	id := c.ID
	return &id
}
