package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/dbx"
	"github.com/dmitrijs2005/sharedlists/internal/logging"
	"github.com/dmitrijs2005/sharedlists/internal/server/events"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sharedlists/internal/server/validation"
	"github.com/dmitrijs2005/sharedlists/internal/timex"
	"github.com/google/uuid"
)

const (
	// OwnerRoleName is the role every list creator receives.
	OwnerRoleName = "Owner"

	// MaxInvitationValidity bounds how long an invitation link may live.
	MaxInvitationValidity = 30 * 24 * time.Hour

	invitationTokenSize = 24
)

// ListService manages lists, their roles and their members. Every mutation
// checks the actor's permission inside the transaction that performs it.
type ListService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resolver    *PermissionResolver
	publisher   events.Publisher
	logger      logging.Logger
	now         timex.Clock
}

func NewListService(db *sql.DB, m repomanager.RepositoryManager, publisher events.Publisher, logger logging.Logger, now timex.Clock) *ListService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	if now == nil {
		now = timex.SystemClock
	}
	return &ListService{
		db:          db,
		repomanager: m,
		resolver:    NewPermissionResolver(db, m),
		publisher:   publisher,
		logger:      logger.With("module", "services.lists"),
		now:         now,
	}
}

// Access resolves userID's standing on listID.
func (s *ListService) Access(ctx context.Context, listID, userID string) (models.Access, error) {
	return s.resolver.Resolve(ctx, listID, userID)
}

// CreateList creates a list owned by userID together with its Owner role.
func (s *ListService) CreateList(ctx context.Context, userID, title string) (*models.TodoList, error) {
	title = strings.TrimSpace(title)
	v := validation.New()
	if v.Required("title", title) {
		v.Length("title", title, 1, 200)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	list := &models.TodoList{ID: uuid.NewString(), Title: title, CreatedBy: userID}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Lists(tx).Create(ctx, list); err != nil {
			return fmt.Errorf("error creating list: %w", err)
		}

		owner := &models.TodoListRole{
			ID:          uuid.NewString(),
			TodoListID:  list.ID,
			Name:        OwnerRoleName,
			Permissions: models.AllPermissions(),
		}
		if err := s.repomanager.Roles(tx).Create(ctx, owner); err != nil {
			return fmt.Errorf("error creating owner role: %w", err)
		}

		member := &models.TodoListMember{UserID: userID, TodoListID: list.ID, RoleID: &owner.ID}
		if err := s.repomanager.Members(tx).Add(ctx, member); err != nil {
			return fmt.Errorf("error adding owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.ListCreated, events.ListPayload{ListID: list.ID, Title: list.Title, CreatedBy: userID})
	return list, nil
}

// CreateRole adds a named permission set to the list.
func (s *ListService) CreateRole(ctx context.Context, actorID, listID, name string, perms models.RolePermissions) (*models.TodoListRole, error) {
	name, err := validateRoleName(name)
	if err != nil {
		return nil, err
	}

	role := &models.TodoListRole{ID: uuid.NewString(), TodoListID: listID, Name: name, Permissions: perms}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.resolver.WithDB(tx).Check(ctx, listID, actorID, models.PermEditRoles); err != nil {
			return err
		}
		if err := s.repomanager.Roles(tx).Create(ctx, role); err != nil {
			return fmt.Errorf("error creating role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// UpdateRole renames the role and replaces its permissions. The role must
// belong to listID.
func (s *ListService) UpdateRole(ctx context.Context, actorID, listID, roleID, name string, perms models.RolePermissions) (*models.TodoListRole, error) {
	name, err := validateRoleName(name)
	if err != nil {
		return nil, err
	}

	role := &models.TodoListRole{ID: roleID, TodoListID: listID, Name: name, Permissions: perms}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.resolver.WithDB(tx).Check(ctx, listID, actorID, models.PermEditRoles); err != nil {
			return err
		}
		if err := s.repomanager.Roles(tx).Update(ctx, role); err != nil {
			return fmt.Errorf("error updating role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// AddMember adds userID to the list. Giving the new member a role also
// requires AssignRoles.
func (s *ListService) AddMember(ctx context.Context, actorID, listID, userID string, roleID *string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		resolver := s.resolver.WithDB(tx)
		if err := resolver.Check(ctx, listID, actorID, models.PermAddMembers); err != nil {
			return err
		}
		if roleID != nil {
			if err := resolver.Check(ctx, listID, actorID, models.PermAssignRoles); err != nil {
				return err
			}
			if err := s.checkRole(ctx, tx, listID, *roleID); err != nil {
				return err
			}
		}

		ok, err := s.repomanager.Users(tx).Exists(ctx, userID)
		if err != nil {
			return fmt.Errorf("error checking user: %w", err)
		}
		if !ok {
			return common.ErrUserNotFound
		}

		member := &models.TodoListMember{UserID: userID, TodoListID: listID, RoleID: roleID}
		if err := s.repomanager.Members(tx).Add(ctx, member); err != nil {
			return fmt.Errorf("error adding member: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.ListMemberJoined, events.MemberPayload{ListID: listID, UserID: userID, RoleID: roleID, By: actorID})
	return nil
}

// RemoveMember removes userID from the list.
func (s *ListService) RemoveMember(ctx context.Context, actorID, listID, userID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.resolver.WithDB(tx).Check(ctx, listID, actorID, models.PermRemoveMembers); err != nil {
			return err
		}
		ok, err := s.repomanager.Members(tx).Delete(ctx, listID, userID)
		if err != nil {
			return fmt.Errorf("error removing member: %w", err)
		}
		if !ok {
			return common.ErrorNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.ListMemberRemoved, events.MemberPayload{ListID: listID, UserID: userID, By: actorID})
	return nil
}

// AssignRole sets the member's role; nil makes the member read-only.
func (s *ListService) AssignRole(ctx context.Context, actorID, listID, userID string, roleID *string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.resolver.WithDB(tx).Check(ctx, listID, actorID, models.PermAssignRoles); err != nil {
			return err
		}
		if roleID != nil {
			if err := s.checkRole(ctx, tx, listID, *roleID); err != nil {
				return err
			}
		}
		ok, err := s.repomanager.Members(tx).UpdateRole(ctx, listID, userID, roleID)
		if err != nil {
			return fmt.Errorf("error assigning role: %w", err)
		}
		if !ok {
			return common.ErrorNotFound
		}
		return nil
	})
}

// CreateInvitationLink creates a single-use link granting roleID on the list.
// The returned link carries the plain value; only its digest is stored.
func (s *ListService) CreateInvitationLink(ctx context.Context, actorID, listID string, roleID *string, validFor time.Duration) (*models.InvitationLink, error) {
	if validFor <= 0 || validFor > MaxInvitationValidity {
		return nil, validation.Single("valid_for", validation.CodeOutOfRange, nil)
	}

	value, err := common.MakeRandHexString(invitationTokenSize)
	if err != nil {
		return nil, fmt.Errorf("error generating invitation link: %w", err)
	}

	link := &models.InvitationLink{
		ID:         uuid.NewString(),
		TodoListID: listID,
		Value:      common.HashToken(value),
		RoleID:     roleID,
		ValidTo:    s.now().Add(validFor),
	}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.resolver.WithDB(tx).Check(ctx, listID, actorID, models.PermManageInvitationLinks); err != nil {
			return err
		}
		if roleID != nil {
			if err := s.checkRole(ctx, tx, listID, *roleID); err != nil {
				return err
			}
		}
		if err := s.repomanager.Invitations(tx).Create(ctx, link); err != nil {
			return fmt.Errorf("error creating invitation link: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := *link
	out.Value = value
	return &out, nil
}

// RedeemInvitationLink consumes the link and makes userID a member with the
// link's role. Expired or unknown links yield common.ErrorNotFound; a user
// who already belongs to the list gets common.ErrAlreadyMember and the link
// stays usable.
func (s *ListService) RedeemInvitationLink(ctx context.Context, userID, value string) (*models.TodoListMember, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, common.ErrorNotFound
	}

	var member *models.TodoListMember
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		link, err := s.repomanager.Invitations(tx).Take(ctx, common.HashToken(value))
		if err != nil {
			return err
		}
		if link.Expired(s.now()) {
			return common.ErrorNotFound
		}

		member = &models.TodoListMember{UserID: userID, TodoListID: link.TodoListID, RoleID: link.RoleID}
		if err := s.repomanager.Members(tx).Add(ctx, member); err != nil {
			if errors.Is(err, common.ErrAlreadyMember) {
				return err
			}
			return fmt.Errorf("error adding member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.ListMemberJoined, events.MemberPayload{ListID: member.TodoListID, UserID: userID, RoleID: member.RoleID})
	return member, nil
}

func (s *ListService) checkRole(ctx context.Context, tx dbx.DBTX, listID, roleID string) error {
	role, err := s.repomanager.Roles(tx).Get(ctx, roleID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return validation.Single("role_id", validation.CodeInvalidForeignKey, nil)
		}
		return fmt.Errorf("error loading role: %w", err)
	}
	if role.TodoListID != listID {
		return validation.Single("role_id", validation.CodeInvalidForeignKey, nil)
	}
	return nil
}

func validateRoleName(name string) (string, error) {
	name = strings.TrimSpace(name)
	v := validation.New()
	if v.Required("name", name) {
		v.Length("name", name, 1, 100)
	}
	return name, v.Err()
}

func (s *ListService) publish(ctx context.Context, key string, payload any) {
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		s.logger.Warn(ctx, "event publish failed", "event", key, "error", err)
	}
}
