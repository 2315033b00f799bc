package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a b", Sanitize("  a b\t\n"))
	assert.Equal(t, "", SanitizePtr(nil))
	s := " x "
	assert.Equal(t, "x", SanitizePtr(&s))
}

func TestNewUser_TrimsFields(t *testing.T) {
	u := NewUser(&models.User{ID: "u1", UserName: " alice ", Email: "a@x.io ", FirstName: "\tAlice"})
	assert.Equal(t, User{ID: "u1", UserName: "alice", Email: "a@x.io", FirstName: "Alice"}, u)
}

func TestNewMember_NilRoleIsEmpty(t *testing.T) {
	m := NewMember(&models.TodoListMember{UserID: "u1", TodoListID: "L1"})
	assert.Equal(t, "", m.RoleID)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"list_id":"L1","user_id":"u1","role_id":""}`, string(b))
}

func TestNewInvitationLink(t *testing.T) {
	role := "r1"
	validTo := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewInvitationLink(&models.InvitationLink{ID: "i1", TodoListID: "L1", Value: "abc", RoleID: &role, ValidTo: validTo})
	assert.Equal(t, InvitationLink{ID: "i1", ListID: "L1", Value: "abc", RoleID: "r1", ValidTo: validTo}, l)
}

func TestNewAccess(t *testing.T) {
	tests := []struct {
		name   string
		access models.Access
		perm   models.Permission
		want   Access
	}{
		{"none", models.Access{Kind: models.AccessNone}, models.PermAddItems, Access{}},
		{"read only", models.Access{Kind: models.AccessReadOnly}, models.PermAddItems, Access{Member: true, ReadOnly: true}},
		{
			"granted",
			models.Access{Kind: models.AccessGranted, Permissions: models.RolePermissions{AddItems: true}},
			models.PermAddItems,
			Access{Member: true, Allowed: true, Permissions: models.RolePermissions{AddItems: true}},
		},
		{
			"granted without flag",
			models.Access{Kind: models.AccessGranted, Permissions: models.RolePermissions{AddItems: true}},
			models.PermRemoveMembers,
			Access{Member: true, Permissions: models.RolePermissions{AddItems: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAccess(tt.access, tt.perm))
		})
	}
}
