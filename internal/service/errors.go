package service

import "errors"

// Validation errors. These are distinct from the not-found sentinels in the
// storage package so callers can map them to different failure modes
// (bad request vs missing resource) without re-querying.
var (
	ErrEmptyName            = errors.New("name must not be empty")
	ErrInvalidAmount        = errors.New("expense amount must be positive")
	ErrNoParticipants       = errors.New("expense must have at least one participant")
	ErrDuplicateParticipant = errors.New("expense participants must be unique")
	ErrUnknownMember        = errors.New("payer and participants must be group members")
	ErrMemberHasExpenses    = errors.New("member has associated expenses and cannot be removed")
)
