// Package dto holds the response shapes sent to clients. Every constructor
// runs its strings through Sanitize, so no response carries surrounding
// whitespace or a null where a string is expected.
package dto

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/server/models"
)

// Sanitize trims surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(s)
}

// SanitizePtr trims *s and maps nil to the empty string.
func SanitizePtr(s *string) string {
	if s == nil {
		return ""
	}
	return Sanitize(*s)
}

type User struct {
	ID        string    `json:"id"`
	UserName  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(u *models.User) User {
	return User{
		ID:        Sanitize(u.ID),
		UserName:  Sanitize(u.UserName),
		Email:     Sanitize(u.Email),
		FirstName: Sanitize(u.FirstName),
		LastName:  Sanitize(u.LastName),
		CreatedAt: u.CreatedAt,
	}
}

type List struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func NewList(l *models.TodoList) List {
	return List{
		ID:        Sanitize(l.ID),
		Title:     Sanitize(l.Title),
		CreatedBy: Sanitize(l.CreatedBy),
		CreatedAt: l.CreatedAt,
	}
}

type Role struct {
	ID          string                 `json:"id"`
	ListID      string                 `json:"list_id"`
	Name        string                 `json:"name"`
	Permissions models.RolePermissions `json:"permissions"`
}

func NewRole(r *models.TodoListRole) Role {
	return Role{
		ID:          Sanitize(r.ID),
		ListID:      Sanitize(r.TodoListID),
		Name:        Sanitize(r.Name),
		Permissions: r.Permissions,
	}
}

// Member reports a read-only membership with an empty RoleID.
type Member struct {
	ListID string `json:"list_id"`
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

func NewMember(m *models.TodoListMember) Member {
	return Member{
		ListID: Sanitize(m.TodoListID),
		UserID: Sanitize(m.UserID),
		RoleID: SanitizePtr(m.RoleID),
	}
}

type InvitationLink struct {
	ID      string    `json:"id"`
	ListID  string    `json:"list_id"`
	Value   string    `json:"value"`
	RoleID  string    `json:"role_id"`
	ValidTo time.Time `json:"valid_to"`
}

func NewInvitationLink(l *models.InvitationLink) InvitationLink {
	return InvitationLink{
		ID:      Sanitize(l.ID),
		ListID:  Sanitize(l.TodoListID),
		Value:   Sanitize(l.Value),
		RoleID:  SanitizePtr(l.RoleID),
		ValidTo: l.ValidTo,
	}
}

// Access is the outcome of a permission check.
type Access struct {
	Member      bool                   `json:"member"`
	ReadOnly    bool                   `json:"read_only"`
	Allowed     bool                   `json:"allowed"`
	Permissions models.RolePermissions `json:"permissions"`
}

// NewAccess describes a and whether it grants perm.
func NewAccess(a models.Access, perm models.Permission) Access {
	return Access{
		Member:      a.IsMember(),
		ReadOnly:    a.Kind == models.AccessReadOnly,
		Allowed:     a.Allows(perm),
		Permissions: a.Permissions,
	}
}
