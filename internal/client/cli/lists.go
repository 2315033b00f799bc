package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/sharedlists/internal/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// optionalArg returns args[i], or "" (no role) when it is absent.
func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

// parsePermissions reads a comma separated list of permission names. The
// names are the RolePermissions field names, e.g. "remove_members".
func parsePermissions(s string) (*pb.RolePermissions, error) {
	rp := &pb.RolePermissions{}
	m := rp.ProtoReflect()
	fields := m.Descriptor().Fields()
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fd := fields.ByName(protoreflect.Name(name))
		if fd == nil || fd.Kind() != protoreflect.BoolKind {
			return nil, fmt.Errorf("unknown permission %q", name)
		}
		m.Set(fd, protoreflect.ValueOfBool(true))
	}
	return rp, nil
}

// NewList creates a list titled by the joined args.
// Usage: newlist <title...>
func (a *App) NewList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("newlist <title>")
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.backend.CreateList(ctx, &pb.CreateListRequest{Title: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "List %q created: %s\n", resp.GetList().GetTitle(), resp.GetList().GetId())
	return nil
}

// NewRole creates a role on a list.
// Usage: newrole <list> <name> [perm,perm,...]
func (a *App) NewRole(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError("newrole <list> <name> [perm,perm,...]")
	}

	perms := &pb.RolePermissions{}
	if len(args) == 3 {
		var err error
		if perms, err = parsePermissions(args[2]); err != nil {
			return err
		}
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.backend.CreateRole(ctx, &pb.CreateRoleRequest{ListId: args[0], Name: args[1], Permissions: perms})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Role %q created: %s\n", resp.GetRole().GetName(), resp.GetRole().GetId())
	return nil
}

// Usage: addmember <list> <user> [role]
func (a *App) AddMember(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError("addmember <list> <user> [role]")
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	_, err := a.backend.AddMember(ctx, &pb.AddMemberRequest{ListId: args[0], UserId: args[1], RoleId: optionalArg(args, 2)})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Member added")
	return nil
}

// Usage: rmmember <list> <user>
func (a *App) RemoveMember(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("rmmember <list> <user>")
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if _, err := a.backend.RemoveMember(ctx, &pb.RemoveMemberRequest{ListId: args[0], UserId: args[1]}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Member removed")
	return nil
}

// AssignRole changes a member's role. Without a role the member becomes
// read-only.
// Usage: assign <list> <user> [role]
func (a *App) AssignRole(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError("assign <list> <user> [role]")
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	_, err := a.backend.AssignRole(ctx, &pb.AssignRoleRequest{ListId: args[0], UserId: args[1], RoleId: optionalArg(args, 2)})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Role assigned")
	return nil
}

// Invite creates an invitation link and prints its value.
// Usage: invite <list> <hours> [role]
func (a *App) Invite(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError("invite <list> <hours> [role]")
	}
	hours, err := strconv.Atoi(args[1])
	if err != nil || hours <= 0 {
		return fmt.Errorf("invalid hours %q", args[1])
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.backend.CreateInvitationLink(ctx, &pb.CreateInvitationLinkRequest{
		ListId:          args[0],
		RoleId:          optionalArg(args, 2),
		ValidForSeconds: int64(time.Duration(hours) * time.Hour / time.Second),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Invitation %s valid until %s\n", resp.GetLink().GetValue(), resp.GetLink().GetValidTo().AsTime().Format(time.RFC3339))
	return nil
}

// Join redeems an invitation link.
// Usage: join <value>
func (a *App) Join(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("join <value>")
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.backend.RedeemInvitationLink(ctx, &pb.RedeemInvitationLinkRequest{Value: args[0]})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Joined list %s\n", resp.GetMember().GetListId())
	return nil
}

// Check asks whether the caller holds a permission on a list.
// Usage: check <list> <permission>
func (a *App) Check(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("check <list> <permission>")
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.backend.CheckPermission(ctx, &pb.CheckPermissionRequest{ListId: args[0], Permission: args[1]})
	if err != nil {
		return err
	}

	acc := resp.GetAccess()
	switch {
	case !acc.GetMember():
		fmt.Fprintln(a.out, "Not a member")
	case acc.GetAllowed():
		fmt.Fprintf(a.out, "Allowed: %s\n", args[1])
	case acc.GetReadOnly():
		fmt.Fprintf(a.out, "Denied: %s (read-only member)\n", args[1])
	default:
		fmt.Fprintf(a.out, "Denied: %s\n", args[1])
	}
	return nil
}
