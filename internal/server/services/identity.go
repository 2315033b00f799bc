package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/cryptox"
	"github.com/dmitrijs2005/sharedlists/internal/server/models"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sharedlists/internal/server/validation"
	"github.com/google/uuid"
)

// RegisterRequest carries the fields of a new account.
type RegisterRequest struct {
	UserName  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Identity is the user-account collaborator of the auth flow.
type Identity interface {
	// Authenticate returns the user whose username or email is login and
	// whose password matches, or common.ErrInvalidCredentials.
	Authenticate(ctx context.Context, login, password string) (*models.User, error)
	// Register validates req and creates the account. Field problems come
	// back as *validation.Errors.
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	// GetUser returns the user or common.ErrUserNotFound.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// IdentityService implements Identity over the users repository and argon2id.
type IdentityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *cryptox.PasswordHasher
}

func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, hasher *cryptox.PasswordHasher) *IdentityService {
	return &IdentityService{db: db, repomanager: m, hasher: hasher}
}

// dummyHash is verified against when the login is unknown so both paths
// cost one argon2 run.
var dummyHash = "$argon2id$v=19$m=65536,t=1,p=4$c29tZXNhbHRzb21lc2FsdA$2Q4zgq1QvuhHv2k0lJm8pC4c9sZ8QF8J9H2jzq2n8Ys"

func (s *IdentityService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, common.ErrInvalidCredentials
	}

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(password, dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

func (s *IdentityService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	v := validation.New()
	// Logins resolve by username or email, so a username may not look
	// like an email.
	if v.Required("username", req.UserName) && v.Length("username", req.UserName, 3, 64) {
		if strings.Contains(req.UserName, "@") {
			v.Add("username", validation.CodeInvalidFormat)
		}
	}
	if v.Required("email", req.Email) {
		v.Email("email", req.Email)
	}
	if v.Required("password", req.Password) {
		v.Length("password", req.Password, 8, 128)
	}
	v.Length("first_name", req.FirstName, 0, 100)
	v.Length("last_name", req.LastName, 0, 100)
	if err := v.Err(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	taken, err := repo.ExistsByUserName(ctx, req.UserName)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		v.AddErr("username", validation.CodeDuplicate, common.ErrDuplicateUserName)
	}
	taken, err = repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		v.AddErr("email", validation.CodeDuplicate, common.ErrDuplicateEmail)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{
		ID:           uuid.NewString(),
		UserName:     req.UserName,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	})
	if err != nil {
		// lost a race with a concurrent registration
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			return nil, validation.Single("email", validation.CodeDuplicate, err)
		case errors.Is(err, common.ErrDuplicateUserName):
			return nil, validation.Single("username", validation.CodeDuplicate, err)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

func (s *IdentityService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}
