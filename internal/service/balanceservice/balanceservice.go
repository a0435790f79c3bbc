package balanceservice

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/pg"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type ProfileRepo interface {
	LockForUpdate(ctx context.Context, ids []int) ([]domain.Profile, error)
	Credit(ctx context.Context, id int, amount float64) (*domain.Profile, error)
}

type JobRepo interface {
	SumUnpaidObligation(ctx context.Context, clientID int) (float64, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByProfile(ctx context.Context, profileID int) ([]domain.LedgerEntry, error)
}

// DepositCapRatio is the share of the outstanding obligation a client may deposit at once.
const DepositCapRatio = 0.25

var (
	ErrInvalidAmount      = fmt.Errorf("amount must be a positive number with at most two decimal places: %w", domain.ErrBadRequest)
	ErrProfileNotFound    = fmt.Errorf("profile not found: %w", domain.ErrNotFound)
	ErrDepositCapExceeded = fmt.Errorf("deposit exceeds 25%% of unpaid jobs total: %w", domain.ErrConflict)
)

type Service struct {
	txManager   pg.TXManager
	profileRepo ProfileRepo
	jobRepo     JobRepo
	ledgerRepo  LedgerRepo
	timeout     time.Duration
}

func New(txManager pg.TXManager, profileRepo ProfileRepo, jobRepo JobRepo, ledgerRepo LedgerRepo, timeout time.Duration) *Service {
	return &Service{
		txManager:   txManager,
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		ledgerRepo:  ledgerRepo,
		timeout:     timeout,
	}
}

func validAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return false
	}
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// Deposit tops up the client balance by at most a quarter of what the client
// still owes on in-progress contracts.
func (s *Service) Deposit(ctx context.Context, clientID int, amount float64) (*domain.Profile, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var updated *domain.Profile
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.profileRepo.LockForUpdate(ctx, []int{clientID})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return ErrProfileNotFound
		}

		obligation, err := s.jobRepo.SumUnpaidObligation(ctx, clientID)
		if err != nil {
			return err
		}
		if amount > DepositCapRatio*obligation {
			return ErrDepositCapExceeded
		}

		profile, err := s.profileRepo.Credit(ctx, clientID, amount)
		if err != nil {
			return err
		}
		if profile == nil {
			return ErrProfileNotFound
		}

		_, err = s.ledgerRepo.Create(ctx, &domain.LedgerEntry{
			Kind:        domain.LedgerDeposit,
			ToProfileID: clientID,
			Amount:      amount,
		})
		if err != nil {
			return err
		}

		updated = profile
		return nil
	})
	if err != nil {
		err = domain.Classify(ctx, fmt.Sprintf("deposit to profile %d", clientID), err)
		if domain.IsExpected(err) {
			zap.L().Info("deposit rejected", zap.Int("clientID", clientID), zap.Float64("amount", amount), zap.Error(err))
		} else {
			zap.L().Error("deposit aborted", zap.Int("clientID", clientID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("deposit accepted", zap.Int("clientID", clientID), zap.Float64("amount", amount))
	return updated, nil
}

func (s *Service) GetTransactions(ctx context.Context, profileID int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByProfile(ctx, profileID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
