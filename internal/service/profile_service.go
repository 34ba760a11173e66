package service

import (
	"context"

	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/pkg/identity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/repository/specification"
	"vibe-notes-be/internal/repository/unitofwork"
)

type IProfileService interface {
	Get(ctx context.Context, token string) (*dto.ProfileResponse, *dto.CommandResult)
	Update(ctx context.Context, token string, req *dto.UpdateProfileRequest) *dto.CommandResult
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
	callers    callerResolver
	logger     logger.ILogger
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, identityProvider identity.Provider, loginPath string, log logger.ILogger) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
		callers:    callerResolver{identity: identityProvider, loginPath: loginPath, logger: log},
		logger:     log,
	}
}

func (s *profileService) Get(ctx context.Context, token string) (*dto.ProfileResponse, *dto.CommandResult) {
	caller, res := s.callers.resolve(ctx, token)
	if res != nil {
		return nil, res
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: caller.Id})
	if err != nil {
		s.logger.Error("ProfileService", "failed to load profile", map[string]interface{}{"error": err, "user_id": caller.Id})
		return nil, dto.FailedResult(err.Error())
	}

	resp := &dto.ProfileResponse{Id: caller.Id, Email: caller.Email}
	if profile != nil {
		resp.FullName = profile.FullName
		resp.AvatarURL = profile.AvatarURL
		resp.CreatedAt = profile.CreatedAt
		resp.UpdatedAt = profile.UpdatedAt
	}
	return resp, dto.OkResult()
}

func (s *profileService) Update(ctx context.Context, token string, req *dto.UpdateProfileRequest) *dto.CommandResult {
	caller, res := s.callers.resolve(ctx, token)
	if res != nil {
		return res
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile := entity.Profile{
		Id:        caller.Id,
		FullName:  entity.NullableText(req.FullName),
		AvatarURL: entity.NullableText(req.AvatarURL),
	}

	affected, err := uow.ProfileRepository().UpdateOwned(ctx, &profile)
	if err != nil {
		s.logger.Error("ProfileService", "failed to update profile", map[string]interface{}{"error": err, "user_id": caller.Id})
		return dto.FailedResult(err.Error())
	}
	if affected == 0 {
		s.logger.Debug("ProfileService", "update matched no rows", map[string]interface{}{"user_id": caller.Id})
	}
	return dto.OkResult()
}
