package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/pkg/identity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/repository/specification"
	"vibe-notes-be/internal/repository/unitofwork"
	"vibe-notes-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenIssuer is satisfied by *identity.JWTProvider.
type TokenIssuer interface {
	Issue(ctx context.Context, user *entity.User) (string, time.Time, error)
}

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	UpdatePassword(ctx context.Context, token string, req *dto.UpdatePasswordRequest) *dto.CommandResult
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	issuer         TokenIssuer
	identity       identity.Provider
	callers        callerResolver
	eventPublisher EventPublisher
	logger         logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, issuer TokenIssuer, identityProvider identity.Provider, eventPublisher EventPublisher, loginPath string, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		issuer:         issuer,
		identity:       identityProvider,
		callers:        callerResolver{identity: identityProvider, loginPath: loginPath, logger: log},
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		Id:        user.Id,
		FullName:  entity.NullableText(req.FullName),
		CreatedAt: now,
	}

	// User and profile are created together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("AuthService", "user registered", map[string]interface{}{"user_id": user.Id})

	s.publishEvent(ctx, events.UserRegistered, map[string]interface{}{"user_id": user.Id, "email": user.Email})

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issuer.Issue(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.UserDTO{Id: user.Id, Email: user.Email},
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.identity.EndSession(ctx, token)
}

// UpdatePassword replaces the caller's password. The current session stays valid.
func (s *authService) UpdatePassword(ctx context.Context, token string, req *dto.UpdatePasswordRequest) *dto.CommandResult {
	caller, res := s.callers.resolve(ctx, token)
	if res != nil {
		return res
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.FailedResult(err.Error())
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	affected, err := uow.UserRepository().UpdatePasswordHash(ctx, caller.Id, string(hash))
	if err != nil {
		s.logger.Error("AuthService", "failed to update password", map[string]interface{}{"error": err, "user_id": caller.Id})
		return dto.FailedResult(err.Error())
	}
	if affected == 0 {
		s.logger.Debug("AuthService", "password update matched no rows", map[string]interface{}{"user_id": caller.Id})
		return dto.OkResult()
	}

	s.logger.Info("AuthService", "password updated", map[string]interface{}{"user_id": caller.Id})
	s.publishEvent(ctx, events.PasswordChanged, map[string]interface{}{"user_id": caller.Id})
	return dto.OkResult()
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("AuthService", "failed to publish event", map[string]interface{}{"error": err.Error(), "type": evt.Type})
	}
}
