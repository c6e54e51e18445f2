package models

// Member represents a person in an expense-sharing group.
// Member identity is the join key for all monetary calculations.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Name is the display name of the member.
	Name string `json:"name"`
}

// Group represents an expense-sharing group.
//
// Members and Expenses keep insertion order; the order is meaningful because
// balance results are reported in member order and greedy settlement
// tie-breaking is stable with respect to it.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Bangkok Trip").
	Name string `json:"name"`

	// Members is the ordered list of people in this group.
	Members []Member `json:"members"`

	// Expenses is the ordered list of expenses recorded in this group.
	Expenses []Expense `json:"expenses"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"created_at"`
}

// MemberByID returns the member with the given ID, or nil if absent.
func (g *Group) MemberByID(id string) *Member {
	for i := range g.Members {
		if g.Members[i].ID == id {
			return &g.Members[i]
		}
	}
	return nil
}
