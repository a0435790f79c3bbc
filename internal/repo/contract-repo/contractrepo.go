package contractrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/pg"
)

const contractColumns = `id, terms, status, client_id, contractor_id, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(&c.ID, &c.Terms, &c.Status, &c.ClientID, &c.ContractorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Contract, error) {
	query := `
        SELECT ` + contractColumns + `
        FROM contracts
        WHERE id = $1
    `
	contract, err := scanContract(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find contract", zap.Error(err))
		return nil, err
	}
	return contract, nil
}

func (r *Repository) Find(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	where, args := buildFilter(filter)
	query := `SELECT ` + contractColumns + ` FROM contracts` + where + ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get contracts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	contracts := make([]domain.Contract, 0)
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			zap.L().Error("can't scan contract row", zap.Error(err))
			return nil, err
		}
		contracts = append(contracts, *contract)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate contracts", zap.Error(err))
		return nil, err
	}
	return contracts, nil
}

func buildFilter(filter domain.ContractFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.PartyID != 0 {
		args = append(args, filter.PartyID)
		conds = append(conds, fmt.Sprintf("(client_id = $%d OR contractor_id = $%d)", len(args), len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.StatusNot != "" {
		args = append(args, string(filter.StatusNot))
		conds = append(conds, fmt.Sprintf("status <> $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
