package jobservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
)

//go:generate mockgen -source=jobservice.go -destination=mock_jobservice.go -package=jobservice

type Repo interface {
	FindUnpaidByParty(ctx context.Context, profileID int, status domain.ContractStatus) ([]domain.Job, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// ListUnpaidJobs returns unpaid jobs of in-progress contracts the caller is a party to.
func (s *Service) ListUnpaidJobs(ctx context.Context, callerID int) ([]domain.Job, error) {
	jobs, err := s.repo.FindUnpaidByParty(ctx, callerID, domain.ContractInProgress)
	if err != nil {
		zap.L().Error("can't list unpaid jobs", zap.Int("profileID", callerID), zap.Error(err))
		return nil, err
	}
	return jobs, nil
}
