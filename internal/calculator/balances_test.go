package calculator

import (
	"math"
	"testing"

	"github.com/shreesh-mishra-24/expense-splitter/internal/models"
)

func newTestGroup(memberNames []string, expenses []models.Expense) *models.Group {
	group := &models.Group{
		ID:       "group-1",
		Name:     "Test Group",
		Expenses: expenses,
	}
	for _, name := range memberNames {
		group.Members = append(group.Members, models.Member{ID: "id-" + name, Name: name})
	}
	return group
}

func expense(amount float64, payer string, participants ...string) models.Expense {
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = "id-" + p
	}
	return models.Expense{
		Description:    "test expense",
		Amount:         amount,
		PayerID:        "id-" + payer,
		ParticipantIDs: ids,
	}
}

func TestCalculateBalances(t *testing.T) {
	tests := []struct {
		name     string
		members  []string
		expenses []models.Expense
		want     map[string][3]float64 // name -> paid, owed, net
	}{
		{
			name:     "one payer two participants",
			members:  []string{"A", "B"},
			expenses: []models.Expense{expense(100, "A", "A", "B")},
			want: map[string][3]float64{
				"A": {100, 50, 50},
				"B": {0, 50, -50},
			},
		},
		{
			name:    "three member cycle",
			members: []string{"A", "B", "C"},
			expenses: []models.Expense{
				expense(40, "A", "B"),
				expense(40, "B", "C"),
				expense(10, "C", "A"),
			},
			want: map[string][3]float64{
				"A": {40, 10, 30},
				"B": {40, 40, 0},
				"C": {10, 40, -30},
			},
		},
		{
			name:     "three way equal split",
			members:  []string{"Alice", "Bob", "Charlie"},
			expenses: []models.Expense{expense(90, "Alice", "Alice", "Bob", "Charlie")},
			want: map[string][3]float64{
				"Alice":   {90, 30, 60},
				"Bob":     {0, 30, -30},
				"Charlie": {0, 30, -30},
			},
		},
		{
			name:    "mutually cancelling expenses",
			members: []string{"Alice", "Bob"},
			expenses: []models.Expense{
				expense(50, "Alice", "Alice", "Bob"),
				expense(50, "Bob", "Alice", "Bob"),
			},
			want: map[string][3]float64{
				"Alice": {50, 50, 0},
				"Bob":   {50, 50, 0},
			},
		},
		{
			name:     "no expenses gives zero balances",
			members:  []string{"A", "B"},
			expenses: nil,
			want: map[string][3]float64{
				"A": {0, 0, 0},
				"B": {0, 0, 0},
			},
		},
		{
			name:     "payer not a participant",
			members:  []string{"A", "B"},
			expenses: []models.Expense{expense(60, "A", "B")},
			want: map[string][3]float64{
				"A": {60, 0, 60},
				"B": {0, 60, -60},
			},
		},
		{
			name:    "unknown payer is ignored but shares still distribute",
			members: []string{"A", "B"},
			expenses: []models.Expense{
				{Amount: 20, PayerID: "id-ghost", ParticipantIDs: []string{"id-A", "id-B"}},
			},
			want: map[string][3]float64{
				"A": {0, 10, -10},
				"B": {0, 10, -10},
			},
		},
		{
			name:    "unknown participant share is dropped",
			members: []string{"A", "B"},
			expenses: []models.Expense{
				{Amount: 30, PayerID: "id-A", ParticipantIDs: []string{"id-A", "id-B", "id-ghost"}},
			},
			want: map[string][3]float64{
				"A": {30, 10, 20},
				"B": {0, 10, -10},
			},
		},
		{
			name:    "empty participant list skips owed distribution",
			members: []string{"A", "B"},
			expenses: []models.Expense{
				{Amount: 25, PayerID: "id-A", ParticipantIDs: nil},
			},
			want: map[string][3]float64{
				"A": {25, 0, 25},
				"B": {0, 0, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := newTestGroup(tt.members, tt.expenses)
			balances := CalculateBalances(group)

			if len(balances) != len(tt.members) {
				t.Fatalf("got %d balances, want %d", len(balances), len(tt.members))
			}

			for i, balance := range balances {
				// Order must match the group's member order.
				if balance.MemberName != tt.members[i] {
					t.Errorf("balance %d is for %s, want %s", i, balance.MemberName, tt.members[i])
				}

				want, ok := tt.want[balance.MemberName]
				if !ok {
					t.Fatalf("unexpected member %s", balance.MemberName)
				}
				if math.Abs(balance.TotalPaid-want[0]) > 0.001 {
					t.Errorf("%s paid = %v, want %v", balance.MemberName, balance.TotalPaid, want[0])
				}
				if math.Abs(balance.TotalOwed-want[1]) > 0.001 {
					t.Errorf("%s owed = %v, want %v", balance.MemberName, balance.TotalOwed, want[1])
				}
				if math.Abs(balance.NetBalance-want[2]) > 0.001 {
					t.Errorf("%s net = %v, want %v", balance.MemberName, balance.NetBalance, want[2])
				}
			}
		})
	}
}

func TestCalculateBalancesEmptyGroup(t *testing.T) {
	group := &models.Group{ID: "empty", Name: "Empty"}
	balances := CalculateBalances(group)
	if len(balances) != 0 {
		t.Errorf("expected empty balance list, got %d entries", len(balances))
	}
}

func TestCalculateBalancesRoundsTotalsNotShares(t *testing.T) {
	// Two expenses of 10.01 split three ways give a raw owed total of
	// 6.6733..., which rounds to 6.67. Rounding each share first would
	// give 3.34 + 3.34 = 6.68 instead.
	group := newTestGroup([]string{"A", "B", "C", "D"}, []models.Expense{
		expense(10.01, "A", "B", "C", "D"),
		expense(10.01, "A", "B", "C", "D"),
	})

	balances := CalculateBalances(group)
	for _, balance := range balances[1:] {
		if balance.TotalOwed != 6.67 {
			t.Errorf("%s owed = %v, want 6.67", balance.MemberName, balance.TotalOwed)
		}
	}

	// Net is computed from the rounded figures: 20.02 - 0 for the payer.
	if balances[0].NetBalance != 20.02 {
		t.Errorf("payer net = %v, want 20.02", balances[0].NetBalance)
	}
}

func TestCalculateBalancesConservation(t *testing.T) {
	// Net balances always sum to ~zero: money is neither created nor destroyed.
	groups := []*models.Group{
		newTestGroup([]string{"A", "B", "C"}, []models.Expense{
			expense(100, "A", "A", "B", "C"),
			expense(33.33, "B", "A", "C"),
			expense(7.5, "C", "B"),
		}),
		newTestGroup([]string{"A", "B", "C", "D", "E"}, []models.Expense{
			expense(99.99, "A", "B", "C", "D"),
			expense(0.03, "E", "A", "B", "E"),
			expense(250, "C", "A", "B", "C", "D", "E"),
			expense(12.34, "D", "D"),
		}),
	}

	for _, group := range groups {
		var sum float64
		for _, balance := range CalculateBalances(group) {
			sum += balance.NetBalance
		}
		if math.Abs(sum) > 0.01 {
			t.Errorf("net balances sum to %v, want ~0", sum)
		}
	}
}

func TestCalculateBalancesIsPure(t *testing.T) {
	group := newTestGroup([]string{"A", "B", "C"}, []models.Expense{
		expense(100, "A", "A", "B", "C"),
		expense(45.5, "B", "A", "B"),
	})

	first := CalculateBalances(group)
	second := CalculateBalances(group)

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("balance %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestNetBalances(t *testing.T) {
	group := newTestGroup([]string{"A", "B"}, []models.Expense{
		expense(100, "A", "A", "B"),
	})

	nets := NetBalances(group)
	if len(nets) != 2 {
		t.Fatalf("got %d net balances, want 2", len(nets))
	}
	if math.Abs(nets["id-A"]-50) > 0.001 {
		t.Errorf("A net = %v, want 50", nets["id-A"])
	}
	if math.Abs(nets["id-B"]+50) > 0.001 {
		t.Errorf("B net = %v, want -50", nets["id-B"])
	}
}
