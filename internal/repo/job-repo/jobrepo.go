package jobrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/pg"
)

const jobColumns = `j.id, j.description, j.price, j.paid, j.payment_date, j.contract_id, j.created_at, j.updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func jobFields(j *domain.Job) []any {
	return []any{&j.ID, &j.Description, &j.Price, &j.Paid, &j.PaymentDate, &j.ContractID, &j.CreatedAt, &j.UpdatedAt}
}

// GetForSettlement loads the job with its contract parties and row-locks the
// job until the surrounding transaction ends.
func (r *Repository) GetForSettlement(ctx context.Context, jobID int) (*domain.JobContract, error) {
	query := `
        SELECT ` + jobColumns + `, c.client_id, c.contractor_id, c.status
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        WHERE j.id = $1
        FOR UPDATE OF j
    `
	var jc domain.JobContract
	dest := append(jobFields(&jc.Job), &jc.ClientID, &jc.ContractorID, &jc.ContractStatus)
	err := r.db.QueryRow(ctx, query, jobID).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't load job for settlement", zap.Int("jobID", jobID), zap.Error(err))
		return nil, err
	}
	return &jc, nil
}

// MarkPaid flips the job from unpaid to paid. It returns nil without error
// when the job is already paid, so a job never transitions twice.
func (r *Repository) MarkPaid(ctx context.Context, jobID int, paidAt time.Time) (*domain.Job, error) {
	query := `
        UPDATE jobs j
        SET paid = true, payment_date = $2, updated_at = $2
        WHERE j.id = $1 AND j.paid = false
        RETURNING ` + jobColumns
	var job domain.Job
	err := r.db.QueryRow(ctx, query, jobID, paidAt).Scan(jobFields(&job)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to mark job paid", zap.Int("jobID", jobID), zap.Error(err))
		return nil, err
	}
	return &job, nil
}

// FindUnpaidByParty lists unpaid jobs on contracts in the given status where
// the profile is either the client or the contractor.
func (r *Repository) FindUnpaidByParty(ctx context.Context, profileID int, status domain.ContractStatus) ([]domain.Job, error) {
	query := `
        SELECT ` + jobColumns + `
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        WHERE j.paid = false AND c.status = $2 AND (c.client_id = $1 OR c.contractor_id = $1)
        ORDER BY j.id
    `
	rows, err := r.db.Query(ctx, query, profileID, string(status))
	if err != nil {
		zap.L().Error("can't get unpaid jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(jobFields(&job)...); err != nil {
			zap.L().Error("can't scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate jobs", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}

// SumUnpaidObligation is the total price of unpaid jobs on the client's
// in-progress contracts, zero when there are none.
func (r *Repository) SumUnpaidObligation(ctx context.Context, clientID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(j.price), 0)
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        WHERE j.paid = false AND c.status = $2 AND c.client_id = $1
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, clientID, string(domain.ContractInProgress)).Scan(&total); err != nil {
		zap.L().Error("can't sum unpaid obligation", zap.Int("clientID", clientID), zap.Error(err))
		return 0, err
	}
	return total, nil
}
