// Package calculator implements the pure balance and settlement math.
//
// Both entry points take an immutable group snapshot and return freshly
// computed results; they hold no state, perform no I/O, and never mutate
// their input. Callers are responsible for presenting a consistent snapshot.
package calculator

import (
	"math"

	"github.com/shreesh-mishra-24/expense-splitter/internal/models"
)

// CalculateBalances computes each member's total paid, total owed, and net
// balance across all expenses in the group. Results are in group member
// order; an empty group yields an empty slice.
//
// Algorithm:
//   - For each expense: the payer's paid total increases by the full amount,
//     and each participant's owed total increases by amount/len(participants).
//   - Unknown payer or participant IDs are silently skipped so one malformed
//     expense cannot corrupt the rest of the calculation.
//   - Paid and owed are rounded to 2 decimals first, then net = round(paid-owed).
//
// For any group the net balances sum to zero (within floating-point
// tolerance): every amount paid is fully distributed as owed shares.
func CalculateBalances(group *models.Group) []models.Balance {
	if len(group.Members) == 0 {
		return []models.Balance{}
	}

	totalPaid := make(map[string]float64, len(group.Members))
	totalOwed := make(map[string]float64, len(group.Members))
	for _, member := range group.Members {
		totalPaid[member.ID] = 0
		totalOwed[member.ID] = 0
	}

	for i := range group.Expenses {
		processExpense(&group.Expenses[i], totalPaid, totalOwed)
	}

	balances := make([]models.Balance, 0, len(group.Members))
	for _, member := range group.Members {
		paid := round2(totalPaid[member.ID])
		owed := round2(totalOwed[member.ID])

		balances = append(balances, models.Balance{
			MemberID:   member.ID,
			MemberName: member.Name,
			TotalPaid:  paid,
			TotalOwed:  owed,
			NetBalance: round2(paid - owed),
		})
	}

	return balances
}

// processExpense updates the running totals for a single expense.
// Only known member IDs are credited or debited.
func processExpense(expense *models.Expense, totalPaid, totalOwed map[string]float64) {
	if _, ok := totalPaid[expense.PayerID]; ok {
		totalPaid[expense.PayerID] += expense.Amount
	}

	if len(expense.ParticipantIDs) == 0 {
		return
	}
	share := expense.Amount / float64(len(expense.ParticipantIDs))

	for _, participantID := range expense.ParticipantIDs {
		if _, ok := totalOwed[participantID]; ok {
			totalOwed[participantID] += share
		}
	}
}

// NetBalances returns just the net balance per member ID.
// Convenience projection over CalculateBalances for debt simplification.
func NetBalances(group *models.Group) map[string]float64 {
	balances := CalculateBalances(group)
	nets := make(map[string]float64, len(balances))
	for _, balance := range balances {
		nets[balance.MemberID] = balance.NetBalance
	}
	return nets
}

// round2 rounds to 2 decimal places (monetary precision).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
