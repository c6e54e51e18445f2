package models

// Balance represents one member's position within a group.
// Computed fresh on every calculation; never cached or persisted.
type Balance struct {
	// MemberID is the member this balance belongs to.
	MemberID string `json:"member_id"`

	// MemberName is the member's display name.
	MemberName string `json:"member_name"`

	// TotalPaid is the sum of expense amounts this member paid.
	TotalPaid float64 `json:"total_paid"`

	// TotalOwed is this member's summed share of expenses they participated in.
	TotalOwed float64 `json:"total_owed"`

	// NetBalance is TotalPaid - TotalOwed, computed from the already-rounded
	// figures. Positive = others owe this member, negative = this member owes.
	NetBalance float64 `json:"net_balance"`
}

// Settlement represents a single directed payment between two members.
type Settlement struct {
	// FromMemberID is the debtor making the payment.
	FromMemberID string `json:"from_member_id"`

	// FromMemberName is the debtor's display name.
	FromMemberName string `json:"from_member_name"`

	// ToMemberID is the creditor receiving the payment.
	ToMemberID string `json:"to_member_id"`

	// ToMemberName is the creditor's display name.
	ToMemberName string `json:"to_member_name"`

	// Amount is the payment amount, positive and rounded to 2 decimals.
	Amount float64 `json:"amount"`
}

// SettlementPlan is the ordered list of payments that zeroes every member's
// net balance in a group.
type SettlementPlan struct {
	// GroupID is the group this plan was computed for.
	GroupID string `json:"group_id"`

	// GroupName is the group's display name.
	GroupName string `json:"group_name"`

	// Settlements are the payments in emission order.
	Settlements []Settlement `json:"settlements"`

	// TotalTransactions is len(Settlements).
	TotalTransactions int `json:"total_transactions"`
}
