package paymentservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/pg"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

type JobRepo interface {
	GetForSettlement(ctx context.Context, jobID int) (*domain.JobContract, error)
	MarkPaid(ctx context.Context, jobID int, paidAt time.Time) (*domain.Job, error)
}

type ProfileRepo interface {
	LockForUpdate(ctx context.Context, ids []int) ([]domain.Profile, error)
	Debit(ctx context.Context, id int, amount float64) (*domain.Profile, error)
	Credit(ctx context.Context, id int, amount float64) (*domain.Profile, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

var (
	ErrJobNotFound       = fmt.Errorf("job not found: %w", domain.ErrNotFound)
	ErrNotJobClient      = fmt.Errorf("only the client of the contract can pay for the job: %w", domain.ErrForbidden)
	ErrAlreadyPaid       = fmt.Errorf("job is already paid: %w", domain.ErrConflict)
	ErrInsufficientFunds = fmt.Errorf("insufficient funds: %w", domain.ErrConflict)
)

type Service struct {
	txManager   pg.TXManager
	jobRepo     JobRepo
	profileRepo ProfileRepo
	ledgerRepo  LedgerRepo
	timeout     time.Duration
	now         func() time.Time
}

func New(txManager pg.TXManager, jobRepo JobRepo, profileRepo ProfileRepo, ledgerRepo LedgerRepo, timeout time.Duration) *Service {
	return &Service{
		txManager:   txManager,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		ledgerRepo:  ledgerRepo,
		timeout:     timeout,
		now:         time.Now,
	}
}

// SettleJobPayment moves the job price from the client to the contractor and
// marks the job paid. Either all of it commits or none of it does.
func (s *Service) SettleJobPayment(ctx context.Context, jobID, callerID int) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var settled *domain.Job
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		jc, err := s.jobRepo.GetForSettlement(ctx, jobID)
		if err != nil {
			return err
		}
		if jc == nil {
			return ErrJobNotFound
		}
		if jc.ClientID != callerID {
			return ErrNotJobClient
		}
		if jc.Job.Paid {
			return ErrAlreadyPaid
		}

		price := jc.Job.Price
		profiles, err := s.profileRepo.LockForUpdate(ctx, []int{jc.ClientID, jc.ContractorID})
		if err != nil {
			return err
		}
		client := findProfile(profiles, jc.ClientID)
		if client == nil || findProfile(profiles, jc.ContractorID) == nil {
			return fmt.Errorf("contract parties %d/%d of job %d are missing", jc.ClientID, jc.ContractorID, jobID)
		}
		if client.Balance < price {
			return ErrInsufficientFunds
		}

		debited, err := s.profileRepo.Debit(ctx, jc.ClientID, price)
		if err != nil {
			return err
		}
		if debited == nil {
			return ErrInsufficientFunds
		}
		credited, err := s.profileRepo.Credit(ctx, jc.ContractorID, price)
		if err != nil {
			return err
		}
		if credited == nil {
			return fmt.Errorf("contractor %d vanished during settlement", jc.ContractorID)
		}

		job, err := s.jobRepo.MarkPaid(ctx, jobID, s.now())
		if err != nil {
			return err
		}
		if job == nil {
			return ErrAlreadyPaid
		}

		_, err = s.ledgerRepo.Create(ctx, &domain.LedgerEntry{
			Kind:          domain.LedgerSettlement,
			JobID:         &job.ID,
			FromProfileID: &jc.ClientID,
			ToProfileID:   jc.ContractorID,
			Amount:        price,
		})
		if err != nil {
			return err
		}

		settled = job
		return nil
	})
	if err != nil {
		err = domain.Classify(ctx, fmt.Sprintf("settle job %d", jobID), err)
		if domain.IsExpected(err) {
			zap.L().Info("job payment rejected", zap.Int("jobID", jobID), zap.Int("callerID", callerID), zap.Error(err))
		} else {
			zap.L().Error("job payment aborted", zap.Int("jobID", jobID), zap.Int("callerID", callerID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("job paid", zap.Int("jobID", jobID), zap.Float64("price", settled.Price))
	return settled, nil
}

func findProfile(profiles []domain.Profile, id int) *domain.Profile {
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i]
		}
	}
	return nil
}
