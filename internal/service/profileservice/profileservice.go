package profileservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
)

//go:generate mockgen -source=profileservice.go -destination=mock_profileservice.go -package=profileservice

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Profile, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrProfileNotFound = fmt.Errorf("profile not found: %w", domain.ErrNotFound)

func (s *Service) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't fetch profile", zap.Int("profileID", id), zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
