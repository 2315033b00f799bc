package models

import "time"

// TodoList is a shared list. Members and roles reference it by ID.
type TodoList struct {
	ID        string
	Title     string
	CreatedBy string
	CreatedAt time.Time
}

// TodoListMember links a user to a list. A nil RoleID means read-only access.
type TodoListMember struct {
	UserID     string
	TodoListID string
	RoleID     *string
}

// TodoListRole is a named permission set scoped to a single list.
type TodoListRole struct {
	ID          string
	TodoListID  string
	Name        string
	Permissions RolePermissions
}

// InvitationLink lets whoever holds Value join the list with RoleID until
// ValidTo. Links are consumed on redemption.
type InvitationLink struct {
	ID         string
	TodoListID string
	Value      string
	RoleID     *string
	ValidTo    time.Time
}

// Expired reports whether the link can no longer be redeemed at now.
func (l *InvitationLink) Expired(now time.Time) bool {
	return !l.ValidTo.After(now)
}
