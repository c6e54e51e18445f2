// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/shreesh-mishra-24/expense-splitter/internal/models"
)

// Store defines the interface for group storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer, and gives tests an isolated store
// instead of a process-wide singleton.
//
// Not-found conditions are reported through the sentinel errors in this
// package so callers can tell "missing" apart from other failures.
type Store interface {
	// CreateGroup persists a new group. The group's ID and CreatedAt fields
	// are populated by the store if unset.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID with its members and expenses fully
	// materialized, in insertion order. Returns ErrGroupNotFound if absent.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups, fully materialized.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// DeleteGroup removes a group and all of its members and expenses.
	// Returns ErrGroupNotFound if absent.
	DeleteGroup(ctx context.Context, groupID string) error

	// AddMember appends a member to a group. The member's ID is populated
	// by the store if unset. Returns ErrGroupNotFound if the group is absent.
	AddMember(ctx context.Context, groupID string, member *models.Member) error

	// RemoveMember removes a member from a group. Returns ErrGroupNotFound
	// or ErrMemberNotFound as appropriate. Business rules (a member with
	// expenses cannot be removed) live in the service layer, not here.
	RemoveMember(ctx context.Context, groupID, memberID string) error

	// AddExpense appends an expense to a group. The expense's ID and
	// CreatedAt fields are populated by the store if unset.
	// Returns ErrGroupNotFound if the group is absent.
	AddExpense(ctx context.Context, groupID string, expense *models.Expense) error

	// DeleteExpense removes an expense from a group. Returns
	// ErrGroupNotFound or ErrExpenseNotFound as appropriate.
	DeleteExpense(ctx context.Context, groupID, expenseID string) error

	// Close releases any resources held by the store.
	Close() error
}
