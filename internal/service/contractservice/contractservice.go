package contractservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
)

//go:generate mockgen -source=contractservice.go -destination=mock_contractservice.go -package=contractservice

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Contract, error)
	Find(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrContractNotFound = fmt.Errorf("contract not found: %w", domain.ErrNotFound)
	ErrNotContractParty = fmt.Errorf("profile is not a party to the contract: %w", domain.ErrForbidden)
)

func (s *Service) GetContract(ctx context.Context, id, callerID int) (*domain.Contract, error) {
	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't fetch contract", zap.Int("contractID", id), zap.Error(err))
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	if !contract.IsParty(callerID) {
		zap.L().Info("contract requested by a stranger", zap.Int("contractID", id), zap.Int("profileID", callerID))
		return nil, ErrNotContractParty
	}
	return contract, nil
}

// ListContracts returns the caller's contracts that are not terminated.
func (s *Service) ListContracts(ctx context.Context, callerID int) ([]domain.Contract, error) {
	contracts, err := s.repo.Find(ctx, domain.ContractFilter{
		PartyID:   callerID,
		StatusNot: domain.ContractTerminated,
	})
	if err != nil {
		zap.L().Error("can't list contracts", zap.Int("profileID", callerID), zap.Error(err))
		return nil, err
	}
	return contracts, nil
}
