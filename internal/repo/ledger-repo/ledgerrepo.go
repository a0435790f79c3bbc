package ledgerrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (id, kind, job_id, from_profile_id, to_profile_id, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	err := r.db.QueryRow(ctx, query, entry.ID, string(entry.Kind), entry.JobID, entry.FromProfileID, entry.ToProfileID, entry.Amount).
		Scan(&entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.String("kind", string(entry.Kind)), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListByProfile(ctx context.Context, profileID int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, kind, job_id, from_profile_id, to_profile_id, amount, created_at
        FROM ledger_entries
        WHERE from_profile_id = $1 OR to_profile_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.Kind, &e.JobID, &e.FromProfileID, &e.ToProfileID, &e.Amount, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate ledger entries", zap.Error(err))
		return nil, err
	}

	return entries, nil
}
