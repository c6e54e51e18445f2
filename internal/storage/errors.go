package storage

import "errors"

var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrExpenseNotFound = errors.New("expense not found")
)
