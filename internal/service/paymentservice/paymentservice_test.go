package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/pg"
)

type mocks struct {
	tx      *pg.MockTXManager
	jobs    *MockJobRepo
	profile *MockProfileRepo
	ledger  *MockLedgerRepo
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		tx:      pg.NewMockTXManager(ctrl),
		jobs:    NewMockJobRepo(ctrl),
		profile: NewMockProfileRepo(ctrl),
		ledger:  NewMockLedgerRepo(ctrl),
	}
	service := New(m.tx, m.jobs, m.profile, m.ledger, time.Second)
	return service, m
}

func runInTx(m mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestSettleJobPayment(t *testing.T) {
	paidAt := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)
	unpaid := func(price float64) *domain.JobContract {
		return &domain.JobContract{
			Job:            domain.Job{ID: 2, Price: price, ContractID: 2},
			ClientID:       1,
			ContractorID:   6,
			ContractStatus: domain.ContractInProgress,
		}
	}
	parties := func(clientBalance float64) []domain.Profile {
		return []domain.Profile{
			{ID: 1, Balance: clientBalance, Role: domain.RoleClient},
			{ID: 6, Balance: 1214, Role: domain.RoleContractor},
		}
	}
	paidJob := &domain.Job{ID: 2, Price: 100, Paid: true, PaymentDate: &paidAt, ContractID: 2}

	tests := []struct {
		name          string
		callerID      int
		prepareMock   func(m mocks)
		expectedJob   *domain.Job
		expectedError error
	}{
		{
			name:     "Client pays for the job",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(unpaid(100), nil)
				m.profile.EXPECT().LockForUpdate(gomock.Any(), []int{1, 6}).Return(parties(150), nil)
				m.profile.EXPECT().Debit(gomock.Any(), 1, 100.0).Return(&domain.Profile{ID: 1, Balance: 50}, nil)
				m.profile.EXPECT().Credit(gomock.Any(), 6, 100.0).Return(&domain.Profile{ID: 6, Balance: 1314}, nil)
				m.jobs.EXPECT().MarkPaid(gomock.Any(), 2, paidAt).Return(paidJob, nil)
				m.ledger.EXPECT().Create(gomock.Any(), &domain.LedgerEntry{
					Kind:          domain.LedgerSettlement,
					JobID:         &paidJob.ID,
					FromProfileID: intPtr(1),
					ToProfileID:   6,
					Amount:        100,
				}).Return(&domain.LedgerEntry{}, nil)
			},
			expectedJob: paidJob,
		},
		{
			name:     "Job does not exist",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:     "Contractor cannot pay",
			callerID: 6,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(unpaid(100), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:     "Job already paid",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				jc := unpaid(100)
				jc.Job.Paid = true
				jc.Job.PaymentDate = &paidAt
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(jc, nil)
			},
			expectedError: ErrAlreadyPaid,
		},
		{
			name:     "Insufficient funds",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(unpaid(100), nil)
				m.profile.EXPECT().LockForUpdate(gomock.Any(), []int{1, 6}).Return(parties(50), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:     "Guarded debit refuses",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(unpaid(100), nil)
				m.profile.EXPECT().LockForUpdate(gomock.Any(), []int{1, 6}).Return(parties(150), nil)
				m.profile.EXPECT().Debit(gomock.Any(), 1, 100.0).Return(nil, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:     "Paid flag already flipped",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(unpaid(100), nil)
				m.profile.EXPECT().LockForUpdate(gomock.Any(), []int{1, 6}).Return(parties(150), nil)
				m.profile.EXPECT().Debit(gomock.Any(), 1, 100.0).Return(&domain.Profile{ID: 1, Balance: 50}, nil)
				m.profile.EXPECT().Credit(gomock.Any(), 6, 100.0).Return(&domain.Profile{ID: 6, Balance: 1314}, nil)
				m.jobs.EXPECT().MarkPaid(gomock.Any(), 2, paidAt).Return(nil, nil)
			},
			expectedError: ErrAlreadyPaid,
		},
		{
			name:     "Missing contract party is internal",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(unpaid(100), nil)
				m.profile.EXPECT().LockForUpdate(gomock.Any(), []int{1, 6}).Return(parties(150)[:1], nil)
			},
			expectedError: domain.ErrInternal,
		},
		{
			name:     "Store failure is internal",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(unpaid(100), nil)
				m.profile.EXPECT().LockForUpdate(gomock.Any(), []int{1, 6}).Return(parties(150), nil)
				m.profile.EXPECT().Debit(gomock.Any(), 1, 100.0).Return(&domain.Profile{ID: 1, Balance: 50}, nil)
				m.profile.EXPECT().Credit(gomock.Any(), 6, 100.0).Return(&domain.Profile{ID: 6, Balance: 1314}, nil)
				m.jobs.EXPECT().MarkPaid(gomock.Any(), 2, paidAt).Return(paidJob, nil)
				m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: domain.ErrInternal,
		},
		{
			name:     "Commit failure is internal",
			callerID: 1,
			prepareMock: func(m mocks) {
				m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("can't commit transaction"))
			},
			expectedError: domain.ErrInternal,
		},
		{
			name:     "Deadline exceeded is retryable",
			callerID: 1,
			prepareMock: func(m mocks) {
				runInTx(m)
				m.jobs.EXPECT().GetForSettlement(gomock.Any(), 2).Return(nil, context.DeadlineExceeded)
			},
			expectedError: domain.ErrTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			service.now = func() time.Time { return paidAt }
			tt.prepareMock(m)

			job, err := service.SettleJobPayment(context.Background(), 2, tt.callerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, job)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedJob, job)
			}
		})
	}
}

func TestSettleJobPayment_BoundsTheUnit(t *testing.T) {
	service, m := NewMock(t)
	service.timeout = 50 * time.Millisecond

	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
		<-ctx.Done()
		return ctx.Err()
	})

	job, err := service.SettleJobPayment(context.Background(), 2, 1)

	assert.Nil(t, job)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func intPtr(v int) *int { return &v }
