package reportrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/pg"
)

// Reports are single statements, so each one reads a consistent snapshot of
// the paid jobs without taking locks.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// TopProfession returns the contractor profession that earned the most from
// jobs paid within [start, end], or nil when nothing was paid in the window.
func (r *Repository) TopProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarning, error) {
	query := `
        SELECT p.profession, SUM(j.price) AS earned
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        JOIN profiles p ON p.id = c.contractor_id
        WHERE j.paid = true AND j.payment_date BETWEEN $1 AND $2
        GROUP BY p.profession
        ORDER BY earned DESC
        LIMIT 1
    `
	var earning domain.ProfessionEarning
	err := r.db.QueryRow(ctx, query, start, end).Scan(&earning.Profession, &earning.MoneyEarned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't aggregate earnings by profession", zap.Error(err))
		return nil, err
	}
	return &earning, nil
}

// TopClients ranks clients by the total they paid for jobs within [start, end].
func (r *Repository) TopClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayment, error) {
	query := `
        SELECT p.id, p.first_name, p.last_name, SUM(j.price) AS paid
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        JOIN profiles p ON p.id = c.client_id
        WHERE j.paid = true AND j.payment_date BETWEEN $1 AND $2
        GROUP BY p.id, p.first_name, p.last_name
        ORDER BY paid DESC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, start, end, limit)
	if err != nil {
		zap.L().Error("can't aggregate payments by client", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.ClientPayment, 0, limit)
	for rows.Next() {
		var (
			client              domain.ClientPayment
			firstName, lastName string
		)
		if err := rows.Scan(&client.ID, &firstName, &lastName, &client.Paid); err != nil {
			zap.L().Error("can't scan client payment row", zap.Error(err))
			return nil, err
		}
		client.FullName = domain.Profile{FirstName: firstName, LastName: lastName}.FullName()
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate client payments", zap.Error(err))
		return nil, err
	}
	return clients, nil
}
