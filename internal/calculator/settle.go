package calculator

import "github.com/shreesh-mishra-24/expense-splitter/internal/models"

// epsilon is the floating-point noise tolerance for monetary amounts.
// Balances within it of zero participate in no settlement.
const epsilon = 0.01

// party is one side of the settlement matching: a member together with the
// amount they still owe (debtor) or are still owed (creditor).
type party struct {
	member    models.Member
	remaining float64
}

// SimplifyDebts computes the settlement plan that zeroes every member's net
// balance using greedy largest-creditor/largest-debtor matching. Pairing the
// extremes first fully clears at least one side per iteration, so the plan
// holds at most one fewer transaction than there are nonzero balances.
//
// A group with no members or no expenses short-circuits to an empty plan.
//
// Ties between equally-large creditors or debtors break stably by group
// member order.
func SimplifyDebts(group *models.Group) models.SettlementPlan {
	plan := models.SettlementPlan{
		GroupID:     group.ID,
		GroupName:   group.Name,
		Settlements: []models.Settlement{},
	}
	if len(group.Members) == 0 || len(group.Expenses) == 0 {
		return plan
	}

	nets := NetBalances(group)

	// Partition in member order so the max scans below are deterministic.
	var creditors, debtors []party
	for _, member := range group.Members {
		net := nets[member.ID]
		switch {
		case net > epsilon:
			creditors = append(creditors, party{member: member, remaining: net})
		case net < -epsilon:
			debtors = append(debtors, party{member: member, remaining: -net})
		}
	}

	for len(creditors) > 0 && len(debtors) > 0 {
		creditor := largest(creditors)
		debtor := largest(debtors)

		amount := round2(min(creditor.remaining, debtor.remaining))
		if amount > epsilon {
			plan.Settlements = append(plan.Settlements, models.Settlement{
				FromMemberID:   debtor.member.ID,
				FromMemberName: debtor.member.Name,
				ToMemberID:     creditor.member.ID,
				ToMemberName:   creditor.member.Name,
				Amount:         amount,
			})
		}

		creditor.remaining -= amount
		debtor.remaining -= amount

		creditors = dropSettled(creditors)
		debtors = dropSettled(debtors)
	}

	plan.TotalTransactions = len(plan.Settlements)
	return plan
}

// largest returns the party with the greatest remaining amount.
// The first maximum wins, keeping tie-breaking stable by member order.
func largest(parties []party) *party {
	best := &parties[0]
	for i := 1; i < len(parties); i++ {
		if parties[i].remaining > best.remaining {
			best = &parties[i]
		}
	}
	return best
}

// dropSettled removes parties whose remaining amount is within epsilon of zero.
func dropSettled(parties []party) []party {
	kept := parties[:0]
	for _, p := range parties {
		if p.remaining > epsilon {
			kept = append(kept, p)
		}
	}
	return kept
}
