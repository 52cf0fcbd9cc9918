package historyrepo

import (
	"context"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error) {
	query := `
		INSERT INTO history (user_id, type, amount, tx_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Type, entry.Amount.StringFixed(7), entry.TxHash).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save history entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID, limit, offset int, entryType string) ([]domain.HistoryEntry, error) {
	query := `
        SELECT id, user_id, type, amount::text, tx_hash, created_at
        FROM history
        WHERE user_id = $1 AND ($2 = '' OR type = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, userID, entryType, limit, offset)
	if err != nil {
		zap.L().Error("can't get history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var amount string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &amount, &e.TxHash, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan history row", zap.Error(err))
			return nil, err
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) CountByUserID(ctx context.Context, userID int, entryType string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT count(*) FROM history WHERE user_id = $1 AND ($2 = '' OR type = $2)", userID, entryType).
		Scan(&count)
	if err != nil {
		zap.L().Error("can't count history", zap.Error(err))
		return 0, err
	}
	return count, nil
}
