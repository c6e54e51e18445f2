package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shreesh-mishra-24/expense-splitter/internal/models"
	"github.com/shreesh-mishra-24/expense-splitter/internal/storage"
)

// AddExpense appends an expense and its participant list to a group.
func (s *SQLiteStore) AddExpense(ctx context.Context, groupID string, expense *models.Expense) error {
	if err := s.groupExists(ctx, groupID); err != nil {
		return err
	}

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses (id, group_id, description, amount, payer_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		expense.ID, groupID, expense.Description, expense.Amount, expense.PayerID, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, participantID := range expense.ParticipantIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, member_id) VALUES (?, ?)",
			expense.ID, participantID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteExpense removes an expense from a group; participants cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, groupID, expenseID string) error {
	if err := s.groupExists(ctx, groupID); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND group_id = ?",
		expenseID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrExpenseNotFound
	}

	return nil
}

// loadExpenses populates group.Expenses in insertion order, each with its
// participant list in insertion order.
func (s *SQLiteStore) loadExpenses(ctx context.Context, group *models.Group) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, description, amount, payer_id, created_at FROM expenses WHERE group_id = ? ORDER BY rowid",
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expenses: %w", err)
	}
	defer rows.Close()

	group.Expenses = []models.Expense{}
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.Description, &expense.Amount,
			&expense.PayerID, &expense.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan expense: %w", err)
		}
		group.Expenses = append(group.Expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range group.Expenses {
		expense := &group.Expenses[i]

		participantRows, err := s.db.QueryContext(ctx,
			"SELECT member_id FROM expense_participants WHERE expense_id = ? ORDER BY rowid",
			expense.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to get expense participants: %w", err)
		}

		for participantRows.Next() {
			var memberID string
			if err := participantRows.Scan(&memberID); err != nil {
				participantRows.Close()
				return fmt.Errorf("failed to scan expense participant: %w", err)
			}
			expense.ParticipantIDs = append(expense.ParticipantIDs, memberID)
		}
		if err := participantRows.Err(); err != nil {
			participantRows.Close()
			return fmt.Errorf("failed to iterate expense participants: %w", err)
		}
		participantRows.Close()
	}

	return nil
}
