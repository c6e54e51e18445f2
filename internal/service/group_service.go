// Package service implements group management on top of a storage.Store,
// enforcing the business rules the calculator assumes: expenses only ever
// reference existing members, amounts are positive and rounded to 2 decimals,
// and members with recorded expenses cannot be removed.
package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/shreesh-mishra-24/expense-splitter/internal/calculator"
	"github.com/shreesh-mishra-24/expense-splitter/internal/models"
	"github.com/shreesh-mishra-24/expense-splitter/internal/storage"
)

// GroupService manages groups, members, and expenses and exposes the derived
// balance and settlement views.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group with the given name.
func (s *GroupService) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	group := &models.Group{
		Name:     name,
		Members:  []models.Member{},
		Expenses: []models.Expense{},
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "name", group.Name)
	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.store.ListGroups(ctx)
}

// DeleteGroup removes a group and all associated data.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID string) error {
	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		return err
	}
	slog.Info("Group deleted", "group_id", groupID)
	return nil
}

// AddMember adds a member to a group.
func (s *GroupService) AddMember(ctx context.Context, groupID, name string) (*models.Member, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	member := &models.Member{Name: name}
	if err := s.store.AddMember(ctx, groupID, member); err != nil {
		return nil, err
	}

	slog.Info("Member added", "group_id", groupID, "member_id", member.ID)
	return member, nil
}

// GetMember retrieves a member from a group.
func (s *GroupService) GetMember(ctx context.Context, groupID, memberID string) (*models.Member, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	member := group.MemberByID(memberID)
	if member == nil {
		return nil, storage.ErrMemberNotFound
	}
	return member, nil
}

// RemoveMember removes a member from a group. A member who paid for or
// participated in any expense cannot be removed; delete those expenses first.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, memberID string) error {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}

	for i := range group.Expenses {
		expense := &group.Expenses[i]
		if expense.PayerID == memberID {
			return ErrMemberHasExpenses
		}
		for _, participantID := range expense.ParticipantIDs {
			if participantID == memberID {
				return ErrMemberHasExpenses
			}
		}
	}

	if err := s.store.RemoveMember(ctx, groupID, memberID); err != nil {
		return err
	}

	slog.Info("Member removed", "group_id", groupID, "member_id", memberID)
	return nil
}

// AddExpense records an expense in a group. The payer and every participant
// must be existing group members, the amount must be positive, and the
// participant list must be non-empty and free of duplicates. The amount is
// rounded to 2 decimals at creation.
func (s *GroupService) AddExpense(ctx context.Context, groupID string, expense *models.Expense) (*models.Expense, error) {
	if expense.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(expense.ParticipantIDs) == 0 {
		return nil, ErrNoParticipants
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if group.MemberByID(expense.PayerID) == nil {
		return nil, ErrUnknownMember
	}
	seen := make(map[string]bool, len(expense.ParticipantIDs))
	for _, participantID := range expense.ParticipantIDs {
		if group.MemberByID(participantID) == nil {
			return nil, ErrUnknownMember
		}
		// A duplicate would double-count that participant's share.
		if seen[participantID] {
			return nil, ErrDuplicateParticipant
		}
		seen[participantID] = true
	}

	expense.Amount = math.Round(expense.Amount*100) / 100

	if err := s.store.AddExpense(ctx, groupID, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense added",
		"group_id", groupID,
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"participants", len(expense.ParticipantIDs),
	)
	return expense, nil
}

// GetExpense retrieves an expense from a group.
func (s *GroupService) GetExpense(ctx context.Context, groupID, expenseID string) (*models.Expense, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	for i := range group.Expenses {
		if group.Expenses[i].ID == expenseID {
			return &group.Expenses[i], nil
		}
	}
	return nil, storage.ErrExpenseNotFound
}

// DeleteExpense removes an expense from a group.
func (s *GroupService) DeleteExpense(ctx context.Context, groupID, expenseID string) error {
	if err := s.store.DeleteExpense(ctx, groupID, expenseID); err != nil {
		return err
	}
	slog.Info("Expense deleted", "group_id", groupID, "expense_id", expenseID)
	return nil
}

// GetBalances computes the balance for every member of a group.
func (s *GroupService) GetBalances(ctx context.Context, groupID string) ([]models.Balance, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return calculator.CalculateBalances(group), nil
}

// GetSettlements computes the settlement plan for a group.
func (s *GroupService) GetSettlements(ctx context.Context, groupID string) (*models.SettlementPlan, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	plan := calculator.SimplifyDebts(group)
	return &plan, nil
}
