package models

// Expense represents a single payment made by one member on behalf of a set
// of participants. The amount is split equally among the participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Description is a human-readable label (e.g., "Dinner at Thai restaurant").
	// Display-only; calculations ignore it.
	Description string `json:"description"`

	// Amount is the full expense amount, positive and rounded to 2 decimals
	// at creation time.
	Amount float64 `json:"amount"`

	// PayerID is the member who paid the full amount.
	// Must reference a member of the owning group; the payer need not be
	// among the participants.
	PayerID string `json:"payer_id"`

	// ParticipantIDs are the members splitting this expense, in the order
	// they were submitted. Non-empty; duplicates would double-count a share,
	// so uniqueness is enforced at creation.
	ParticipantIDs []string `json:"participant_ids"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"created_at"`
}
