package services

import (
	"context"
	"errors"
	"time"

	"DentalDesk/domain"
	"DentalDesk/models"
	"DentalDesk/repositories"
	"DentalDesk/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ErrLoginThrottled rejects a login attempt when the bounded attempt budget
// is exhausted. Distinct from NotAuthenticated so the UI can show a
// try-again-later message without leaking credential validity.
var ErrLoginThrottled = errors.New("too many login attempts, try again later")

// Session is the result of a successful login: the account plus the token
// the UI shell presents for role-gated navigation.
type Session struct {
	Account *domain.Account
	Token   string
}

// UserService is the account store's caller-facing contract.
type UserService interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	VerifySession(token string, requiredRoles ...domain.Role) (*utils.SessionClaims, error)
	ChangePassword(ctx context.Context, username, newPassword string) error
	UpdateRole(ctx context.Context, username string, role domain.Role) error
	Deactivate(ctx context.Context, username string) error
	Remove(ctx context.Context, username string) error
	GetAll(ctx context.Context) ([]*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetDentists(ctx context.Context) ([]*domain.Account, error)
}

type userService struct {
	userRepo repositories.UserRepository
	limiter  *rate.Limiter
	log      zerolog.Logger
}

func NewUserService(userRepo repositories.UserRepository, log zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		// One attempt per second sustained, short bursts allowed.
		limiter: rate.NewLimiter(rate.Limit(1), 5),
		log:     log.With().Str("service", "users").Logger(),
	}
}

// Register creates a new identity with a one-way-hashed credential.
// Duplicate usernames surface as a uniqueness ConstraintViolation from the
// store itself, never from a racy pre-check.
func (s *userService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.Account, error) {
	if violations := validateCredentials(username, password); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        username + "@clinic.local",
		Role:         string(domain.ParseRole(string(role))),
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Str("role", user.Role).Msg("registered user")
	return accountFromModel(user), nil
}

// Authenticate verifies a credential against the stored hash. An unknown
// username and a wrong password both return ErrNotAuthenticated; the two
// are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}
	if !user.IsActive || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrNotAuthenticated
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds; the stamp is best-effort bookkeeping.
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record last login")
	}
	user.LastLogin = &now
	return accountFromModel(user), nil
}

// Login authenticates under the attempt limiter and issues a session token.
func (s *userService) Login(ctx context.Context, username, password string) (*Session, error) {
	if !s.limiter.Allow() {
		s.log.Warn().Str("username", username).Msg("login attempt throttled")
		return nil, ErrLoginThrottled
	}
	account, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateSessionToken(account.Username, string(account.Role))
	if err != nil {
		return nil, err
	}
	return &Session{Account: account, Token: token}, nil
}

func (s *userService) VerifySession(token string, requiredRoles ...domain.Role) (*utils.SessionClaims, error) {
	roles := make([]string, len(requiredRoles))
	for i, role := range requiredRoles {
		roles[i] = string(role)
	}
	return utils.ValidateSessionToken(token, roles...)
}

func (s *userService) ChangePassword(ctx context.Context, username, newPassword string) error {
	if len(newPassword) < 8 {
		return &domain.ValidationError{Violations: []string{"password must be at least 8 characters long"}}
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, username, hashed)
}

func (s *userService) UpdateRole(ctx context.Context, username string, role domain.Role) error {
	return s.userRepo.UpdateRole(ctx, username, string(domain.ParseRole(string(role))))
}

func (s *userService) Deactivate(ctx context.Context, username string) error {
	return s.userRepo.SetActive(ctx, username, false)
}

func (s *userService) Remove(ctx context.Context, username string) error {
	return s.userRepo.Delete(ctx, username)
}

func (s *userService) GetAll(ctx context.Context) ([]*domain.Account, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return accountsFromModels(users), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return accountFromModel(user), nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return accountFromModel(user), nil
}

func (s *userService) GetDentists(ctx context.Context) ([]*domain.Account, error) {
	users, err := s.userRepo.GetDentists(ctx)
	if err != nil {
		return nil, err
	}
	return accountsFromModels(users), nil
}

func validateCredentials(username, password string) []string {
	var violations []string
	if err := validation.Validate(username, validation.Required, validation.Length(3, 50), is.Alphanumeric); err != nil {
		violations = append(violations, "username must be 3-50 alphanumeric characters")
	}
	if len(password) < 8 {
		violations = append(violations, "password must be at least 8 characters long")
	}
	return violations
}

func accountFromModel(user *models.User) *domain.Account {
	account := &domain.Account{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      domain.ParseRole(user.Role),
		Active:    user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.LastLogin != nil {
		account.LastLogin = user.LastLogin.Format(time.RFC3339)
	}
	return account
}

func accountsFromModels(users []models.User) []*domain.Account {
	accounts := make([]*domain.Account, 0, len(users))
	for i := range users {
		accounts = append(accounts, accountFromModel(&users[i]))
	}
	return accounts
}
