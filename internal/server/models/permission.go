package models

import "fmt"

// RolePermissions are the ten capabilities a list role may grant.
type RolePermissions struct {
	SetItemState          bool `json:"set_item_state"`
	AddItems              bool `json:"add_items"`
	EditItems             bool `json:"edit_items"`
	DeleteItems           bool `json:"delete_items"`
	AddMembers            bool `json:"add_members"`
	RemoveMembers         bool `json:"remove_members"`
	AssignRoles           bool `json:"assign_roles"`
	EditRoles             bool `json:"edit_roles"`
	EditCategories        bool `json:"edit_categories"`
	ManageInvitationLinks bool `json:"manage_invitation_links"`
}

// AllPermissions is the owner role's permission set.
func AllPermissions() RolePermissions {
	return RolePermissions{
		SetItemState:          true,
		AddItems:              true,
		EditItems:             true,
		DeleteItems:           true,
		AddMembers:            true,
		RemoveMembers:         true,
		AssignRoles:           true,
		EditRoles:             true,
		EditCategories:        true,
		ManageInvitationLinks: true,
	}
}

// Permission names one flag of RolePermissions.
type Permission int

const (
	PermSetItemState Permission = iota + 1
	PermAddItems
	PermEditItems
	PermDeleteItems
	PermAddMembers
	PermRemoveMembers
	PermAssignRoles
	PermEditRoles
	PermEditCategories
	PermManageInvitationLinks
)

var permissionNames = map[Permission]string{
	PermSetItemState:          "set_item_state",
	PermAddItems:              "add_items",
	PermEditItems:             "edit_items",
	PermDeleteItems:           "delete_items",
	PermAddMembers:            "add_members",
	PermRemoveMembers:         "remove_members",
	PermAssignRoles:           "assign_roles",
	PermEditRoles:             "edit_roles",
	PermEditCategories:        "edit_categories",
	PermManageInvitationLinks: "manage_invitation_links",
}

func (p Permission) String() string {
	if n, ok := permissionNames[p]; ok {
		return n
	}
	return fmt.Sprintf("permission(%d)", int(p))
}

// ParsePermission maps a wire name such as "remove_members" to a Permission.
func ParsePermission(name string) (Permission, bool) {
	for p, n := range permissionNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

// Has reports whether the set grants p. Unknown permissions are never granted.
func (rp RolePermissions) Has(p Permission) bool {
	if f := rp.flag(p); f != nil {
		return *f
	}
	return false
}

// Set grants or withdraws p. It reports false for an unknown permission.
func (rp *RolePermissions) Set(p Permission, granted bool) bool {
	f := rp.flag(p)
	if f == nil {
		return false
	}
	*f = granted
	return true
}

func (rp *RolePermissions) flag(p Permission) *bool {
	switch p {
	case PermSetItemState:
		return &rp.SetItemState
	case PermAddItems:
		return &rp.AddItems
	case PermEditItems:
		return &rp.EditItems
	case PermDeleteItems:
		return &rp.DeleteItems
	case PermAddMembers:
		return &rp.AddMembers
	case PermRemoveMembers:
		return &rp.RemoveMembers
	case PermAssignRoles:
		return &rp.AssignRoles
	case PermEditRoles:
		return &rp.EditRoles
	case PermEditCategories:
		return &rp.EditCategories
	case PermManageInvitationLinks:
		return &rp.ManageInvitationLinks
	}
	return nil
}

// AccessKind is the outcome of resolving a user's standing on a list.
type AccessKind int

const (
	// AccessNone: the user is not a member.
	AccessNone AccessKind = iota
	// AccessReadOnly: member without a role. Every flag is false.
	AccessReadOnly
	// AccessGranted: member whose role grants Permissions.
	AccessGranted
)

// Access is a resolved membership.
type Access struct {
	Kind        AccessKind
	Permissions RolePermissions
}

// IsMember reports whether the user belongs to the list at all.
func (a Access) IsMember() bool {
	return a.Kind != AccessNone
}

// Allows reports whether the access grants p.
func (a Access) Allows(p Permission) bool {
	return a.Kind == AccessGranted && a.Permissions.Has(p)
}
