package models

// FieldQuery enumerates the supported filters for listing fields.
type FieldQuery struct {
	Page            int
	Limit           int
	SortedBy        string
	SortedDirection string

	ComplexID string
	Status    string
	Type      string
	Search    string // case-insensitive match on name or description
}

// Normalize clamps pagination and sort parameters.
func (q *FieldQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	switch q.SortedBy {
	case "id", "name", "type", "price", "status", "created_at", "updated_at":
	default:
		q.SortedBy = "created_at"
	}
	if q.SortedDirection != SortAsc && q.SortedDirection != SortDesc {
		q.SortedDirection = SortDesc
	}
}
