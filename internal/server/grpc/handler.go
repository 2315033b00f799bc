package grpc

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/sharedlists/internal/proto"
	"github.com/dmitrijs2005/sharedlists/internal/server/dto"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/dmitrijs2005/sharedlists/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fail logs err when it is not a client mistake and returns its status.
func (s *GRPCServer) fail(ctx context.Context, method string, err error) error {
	st := toStatus(err)
	switch status.Code(st) {
	case codes.Internal, codes.Unavailable:
		s.logger.Error(ctx, method+" failed", "error", err)
	}
	return st
}

func (s *GRPCServer) caller(ctx context.Context) (string, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return id, nil
}

func tokenResponse(p *services.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{
		AccessToken:  p.AccessToken,
		TokenType:    "Bearer",
		ExpiresIn:    p.ExpirationSeconds,
		RefreshToken: p.RefreshToken,
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	user, err := s.users.Register(ctx, services.RegisterRequest{
		UserName:  req.GetUsername(),
		Email:     req.GetEmail(),
		Password:  req.GetPassword(),
		FirstName: req.GetFirstName(),
		LastName:  req.GetLastName(),
	})
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.RegisterResponse{User: userToPB(dto.NewUser(user))}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {
	pair, err := s.users.Login(ctx, req.GetLogin(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	return tokenResponse(pair), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {
	pair, err := s.users.Refresh(ctx, req.GetAccessToken(), req.GetRefreshToken())
	if err != nil {
		return nil, s.fail(ctx, "refresh", err)
	}
	return tokenResponse(pair), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.Empty, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, userID, req.GetRefreshToken()); err != nil {
		return nil, s.fail(ctx, "logout", err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) CreateList(ctx context.Context, req *pb.CreateListRequest) (*pb.ListResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.lists.CreateList(ctx, userID, req.GetTitle())
	if err != nil {
		return nil, s.fail(ctx, "create list", err)
	}
	return &pb.ListResponse{List: listToPB(dto.NewList(list))}, nil
}

func (s *GRPCServer) CreateRole(ctx context.Context, req *pb.CreateRoleRequest) (*pb.RoleResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	role, err := s.lists.CreateRole(ctx, userID, req.GetListId(), req.GetName(), permissionsFromPB(req.GetPermissions()))
	if err != nil {
		return nil, s.fail(ctx, "create role", err)
	}
	return &pb.RoleResponse{Role: roleToPB(dto.NewRole(role))}, nil
}

func (s *GRPCServer) UpdateRole(ctx context.Context, req *pb.UpdateRoleRequest) (*pb.RoleResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	role, err := s.lists.UpdateRole(ctx, userID, req.GetListId(), req.GetRoleId(), req.GetName(), permissionsFromPB(req.GetPermissions()))
	if err != nil {
		return nil, s.fail(ctx, "update role", err)
	}
	return &pb.RoleResponse{Role: roleToPB(dto.NewRole(role))}, nil
}

func (s *GRPCServer) AddMember(ctx context.Context, req *pb.AddMemberRequest) (*pb.Empty, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.lists.AddMember(ctx, userID, req.GetListId(), req.GetUserId(), optionalID(req.GetRoleId())); err != nil {
		return nil, s.fail(ctx, "add member", err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RemoveMember(ctx context.Context, req *pb.RemoveMemberRequest) (*pb.Empty, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.lists.RemoveMember(ctx, userID, req.GetListId(), req.GetUserId()); err != nil {
		return nil, s.fail(ctx, "remove member", err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) AssignRole(ctx context.Context, req *pb.AssignRoleRequest) (*pb.Empty, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.lists.AssignRole(ctx, userID, req.GetListId(), req.GetUserId(), optionalID(req.GetRoleId())); err != nil {
		return nil, s.fail(ctx, "assign role", err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) CreateInvitationLink(ctx context.Context, req *pb.CreateInvitationLinkRequest) (*pb.InvitationLinkResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	validFor := time.Duration(req.GetValidForSeconds()) * time.Second
	link, err := s.lists.CreateInvitationLink(ctx, userID, req.GetListId(), optionalID(req.GetRoleId()), validFor)
	if err != nil {
		return nil, s.fail(ctx, "create invitation link", err)
	}
	return &pb.InvitationLinkResponse{Link: invitationLinkToPB(dto.NewInvitationLink(link))}, nil
}

func (s *GRPCServer) RedeemInvitationLink(ctx context.Context, req *pb.RedeemInvitationLinkRequest) (*pb.MemberResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	member, err := s.lists.RedeemInvitationLink(ctx, userID, req.GetValue())
	if err != nil {
		return nil, s.fail(ctx, "redeem invitation link", err)
	}
	return &pb.MemberResponse{Member: memberToPB(dto.NewMember(member))}, nil
}

// CheckPermission reports the caller's access to a list. It answers rather
// than rejects, so a missing permission is not an error here.
func (s *GRPCServer) CheckPermission(ctx context.Context, req *pb.CheckPermissionRequest) (*pb.CheckPermissionResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	perm, ok := models.ParsePermission(req.GetPermission())
	if !ok {
		return nil, toStatus(validationError("permission"))
	}
	access, err := s.lists.Access(ctx, req.GetListId(), userID)
	if err != nil {
		return nil, s.fail(ctx, "check permission", err)
	}
	return &pb.CheckPermissionResponse{Access: accessToPB(dto.NewAccess(access, perm))}, nil
}
