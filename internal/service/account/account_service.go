package account

import (
	"context"
	"errors"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/Domenick1991/airticket/internal/metrics"
	"github.com/Domenick1991/airticket/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	MsgUserExists         = "User already exists"
	MsgRegisterFailed     = "Error during registration"
	MsgInvalidCredentials = "Invalid credentials"
	MsgLoginFailed        = "Error during login"
)

// errInvalidCredentials is the single cause reported for both an unknown
// username and a wrong password.
var errInvalidCredentials = errors.New("invalid username or password")

type AccountUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*UserSummary, error)
	Login(ctx context.Context, username, password string) (*Session, error)
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type UserSummary struct {
	Username string `json:"username"`
}

type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type AccountService struct {
	users     repository.UserRepository
	cost      int
	dummyHash []byte
}

type AccountServiceOption func(*AccountService)

func WithBcryptCost(cost int) AccountServiceOption {
	return func(s *AccountService) {
		s.cost = cost
	}
}

func NewAccountService(users repository.UserRepository, opts ...AccountServiceOption) *AccountService {
	s := &AccountService{users: users, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	// Compared against on unknown usernames so that path costs one bcrypt
	// comparison at the same cost as a real user.
	dummy, err := bcrypt.GenerateFromPassword([]byte("airticket-placeholder"), s.cost)
	if err != nil {
		log.Warn().Err(err).Int("cost", s.cost).Msg("invalid bcrypt cost, using default")
		s.cost = bcrypt.DefaultCost
		dummy, _ = bcrypt.GenerateFromPassword([]byte("airticket-placeholder"), s.cost)
	}
	s.dummyHash = dummy
	return s
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*UserSummary, error) {
	_, err := s.users.GetByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return nil, domain.Errorf(domain.KindConflict, MsgUserExists, nil)
	case !errors.Is(err, repository.ErrNotFound):
		log.Ctx(ctx).Error().Err(err).Msg("lookup username")
		return nil, domain.Errorf(domain.KindInternal, MsgRegisterFailed, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, domain.Errorf(domain.KindInternal, MsgRegisterFailed, err)
	}

	user := &domain.User{
		ID:           domain.NewID(),
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Errorf(domain.KindConflict, MsgUserExists, nil)
		}
		log.Ctx(ctx).Error().Err(err).Msg("create user")
		return nil, domain.Errorf(domain.KindInternal, MsgRegisterFailed, err)
	}

	return &UserSummary{Username: user.Username}, nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (session *Session, err error) {
	defer func() { metrics.RecordLogin(err) }()

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Ctx(ctx).Error().Err(err).Msg("lookup username")
			return nil, domain.Errorf(domain.KindInternal, MsgLoginFailed, err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, domain.Errorf(domain.KindUnauthorized, MsgInvalidCredentials, errInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.Errorf(domain.KindUnauthorized, MsgInvalidCredentials, errInvalidCredentials)
	}

	return &Session{UserID: user.ID, Username: user.Username}, nil
}

var _ AccountUseCase = (*AccountService)(nil)
