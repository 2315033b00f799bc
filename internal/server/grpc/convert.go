package grpc

import (
	pb "github.com/dmitrijs2005/sharedlists/internal/proto"
	"github.com/dmitrijs2005/sharedlists/internal/server/dto"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// optionalID maps the wire's empty role_id to "no role".
func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func permissionsFromPB(p *pb.RolePermissions) models.RolePermissions {
	return models.RolePermissions{
		SetItemState:          p.GetSetItemState(),
		AddItems:              p.GetAddItems(),
		EditItems:             p.GetEditItems(),
		DeleteItems:           p.GetDeleteItems(),
		AddMembers:            p.GetAddMembers(),
		RemoveMembers:         p.GetRemoveMembers(),
		AssignRoles:           p.GetAssignRoles(),
		EditRoles:             p.GetEditRoles(),
		EditCategories:        p.GetEditCategories(),
		ManageInvitationLinks: p.GetManageInvitationLinks(),
	}
}

func permissionsToPB(p models.RolePermissions) *pb.RolePermissions {
	return &pb.RolePermissions{
		SetItemState:          p.SetItemState,
		AddItems:              p.AddItems,
		EditItems:             p.EditItems,
		DeleteItems:           p.DeleteItems,
		AddMembers:            p.AddMembers,
		RemoveMembers:         p.RemoveMembers,
		AssignRoles:           p.AssignRoles,
		EditRoles:             p.EditRoles,
		EditCategories:        p.EditCategories,
		ManageInvitationLinks: p.ManageInvitationLinks,
	}
}

func userToPB(u dto.User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		Username:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: timestamppb.New(u.CreatedAt),
	}
}

func listToPB(l dto.List) *pb.TodoList {
	return &pb.TodoList{
		Id:        l.ID,
		Title:     l.Title,
		CreatedBy: l.CreatedBy,
		CreatedAt: timestamppb.New(l.CreatedAt),
	}
}

func roleToPB(r dto.Role) *pb.Role {
	return &pb.Role{
		Id:          r.ID,
		ListId:      r.ListID,
		Name:        r.Name,
		Permissions: permissionsToPB(r.Permissions),
	}
}

func memberToPB(m dto.Member) *pb.Member {
	return &pb.Member{
		ListId: m.ListID,
		UserId: m.UserID,
		RoleId: m.RoleID,
	}
}

func invitationLinkToPB(l dto.InvitationLink) *pb.InvitationLink {
	return &pb.InvitationLink{
		Id:      l.ID,
		ListId:  l.ListID,
		Value:   l.Value,
		RoleId:  l.RoleID,
		ValidTo: timestamppb.New(l.ValidTo),
	}
}

func accessToPB(a dto.Access) *pb.Access {
	return &pb.Access{
		Member:      a.Member,
		ReadOnly:    a.ReadOnly,
		Allowed:     a.Allowed,
		Permissions: permissionsToPB(a.Permissions),
	}
}
