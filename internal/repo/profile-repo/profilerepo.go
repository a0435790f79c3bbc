package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/pg"
)

const profileColumns = `id, first_name, last_name, profession, balance, role, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Profession, &p.Balance, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Profile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE id = $1
    `
	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// LockForUpdate row-locks the given profiles until the surrounding transaction ends.
// Rows are locked in ascending id order so concurrent units never deadlock on each other.
func (r *Repository) LockForUpdate(ctx context.Context, ids []int) ([]domain.Profile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE id = ANY($1)
        ORDER BY id
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("failed to lock profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			zap.L().Error("failed to scan profile row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate profiles", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

// Debit atomically takes amount from the balance. It returns nil without error
// when the profile is missing or the balance would become negative.
func (r *Repository) Debit(ctx context.Context, id int, amount float64) (*domain.Profile, error) {
	query := `
        UPDATE profiles
        SET balance = balance - $1, updated_at = now()
        WHERE id = $2 AND balance >= $1
        RETURNING ` + profileColumns
	profile, err := scanProfile(r.db.QueryRow(ctx, query, amount, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to debit profile", zap.Int("profileID", id), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// Credit atomically adds amount to the balance. It returns nil without error
// when the profile is missing.
func (r *Repository) Credit(ctx context.Context, id int, amount float64) (*domain.Profile, error) {
	query := `
        UPDATE profiles
        SET balance = balance + $1, updated_at = now()
        WHERE id = $2
        RETURNING ` + profileColumns
	profile, err := scanProfile(r.db.QueryRow(ctx, query, amount, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to credit profile", zap.Int("profileID", id), zap.Error(err))
		return nil, err
	}
	return profile, nil
}
