package draft

// FieldErrors maps a form field to its validation messages. Local field
// errors and backend validation errors share this shape.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// First returns a single user-facing notice: the first message of any field.
func (fe FieldErrors) First() string {
	for _, messages := range fe {
		if len(messages) > 0 {
			return messages[0]
		}
	}
	return ""
}
