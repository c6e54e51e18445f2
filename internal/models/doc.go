// Package models defines the core domain models for the expense splitter.
//
// # Stored Models
//
// These are owned and mutated by the group service and its storage backend:
//   - Group: An expense-sharing group with ordered members and expenses
//   - Member: A person in a group, identified by a UUID string
//   - Expense: A single payment by one member, split among participants
//
// # Derived Models
//
// These are computed fresh on every calculation and never persisted:
//   - Balance: One member's total paid, total owed, and net position
//   - Settlement: A single directed payment that clears part of a debt
//   - SettlementPlan: The full ordered settlement list for a group
//
// # Design Principles
//
// 1. **Read-only snapshots**: The calculator package treats Group as an
// immutable snapshot; only the service layer mutates stored models.
//
// 2. **Avoid circular references**: Expenses reference members by ID string
// rather than by pointer.
//
// 3. **Wire-ready**: JSON tags match the public API field names, so the
// server layer serializes these structs directly with no DTO mapping.
package models
