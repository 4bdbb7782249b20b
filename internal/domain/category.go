package domain

// FieldRef points at a field of a category by its id.
type FieldRef struct {
	ID string
}

// Category is a content model: a user-defined partition of the repository.
// A category is fetched once per aggregation run and never mutated.
type Category struct {
	ID     string
	Name   string
	APIKey string

	// TitleField is the field designated as the record title, if any.
	TitleField *FieldRef
	// PresentationTitleField is used when TitleField is absent.
	PresentationTitleField *FieldRef
}

// TitleFieldRef returns the field holding the display title of the
// category's records, or nil when the category designates none.
func (c Category) TitleFieldRef() *FieldRef {
	if c.TitleField != nil && c.TitleField.ID != "" {
		return c.TitleField
	}
	if c.PresentationTitleField != nil && c.PresentationTitleField.ID != "" {
		return c.PresentationTitleField
	}
	return nil
}

// Field is one field definition of a category's schema.
type Field struct {
	ID        string
	APIKey    string
	Label     string
	FieldType string
}
