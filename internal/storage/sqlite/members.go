package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shreesh-mishra-24/expense-splitter/internal/models"
	"github.com/shreesh-mishra-24/expense-splitter/internal/storage"
)

// AddMember appends a member to a group.
func (s *SQLiteStore) AddMember(ctx context.Context, groupID string, member *models.Member) error {
	if err := s.groupExists(ctx, groupID); err != nil {
		return err
	}

	if member.ID == "" {
		member.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members (id, group_id, name) VALUES (?, ?, ?)",
		member.ID, groupID, member.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

// RemoveMember removes a member from a group.
func (s *SQLiteStore) RemoveMember(ctx context.Context, groupID, memberID string) error {
	if err := s.groupExists(ctx, groupID); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM members WHERE id = ? AND group_id = ?",
		memberID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrMemberNotFound
	}

	return nil
}
