package field

import "fmt"

// NotFoundError signals that the requested field is absent.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Field with ID %s not found", e.ID)
}

// DuplicateNameError signals that a field with the same name already exists
// in the complex.
type DuplicateNameError struct {
	Name      string
	ComplexID string
}

func (e *DuplicateNameError) Error() string {
	return "field with this name already exists in this complex"
}
