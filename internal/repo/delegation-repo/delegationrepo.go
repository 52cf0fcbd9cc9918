package delegationrepo

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

// FindActiveWithAddresses returns every active delegation joined with the
// owner's address, the working set of a snapshot run.
func (r *Repository) FindActiveWithAddresses(ctx context.Context) ([]domain.ActiveDelegation, error) {
	query := `
        SELECT d.user_id, u.stellar_address, d.amount::text
        FROM delegations d
        JOIN users u ON u.id = d.user_id
        WHERE d.status = $1
        ORDER BY d.user_id
    `
	rows, err := r.db.Query(ctx, query, domain.DelegationActive)
	if err != nil {
		zap.L().Error("can't get active delegations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var delegations []domain.ActiveDelegation
	for rows.Next() {
		var d domain.ActiveDelegation
		var amount string
		if err := rows.Scan(&d.UserID, &d.StellarAddress, &amount); err != nil {
			zap.L().Error("can't scan delegation row", zap.Error(err))
			return nil, err
		}
		if d.Amount, err = decimal.NewFromString(amount); err != nil {
			zap.L().Error("invalid delegation amount", zap.String("amount", amount), zap.Error(err))
			return nil, err
		}
		delegations = append(delegations, d)
	}
	return delegations, rows.Err()
}

func (r *Repository) FindActiveByUserID(ctx context.Context, userID int) ([]domain.Delegation, error) {
	query := `
        SELECT id, user_id, amount::text, tx_hash, status, created_at
        FROM delegations
        WHERE user_id = $1 AND status = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, domain.DelegationActive)
	if err != nil {
		zap.L().Error("can't get user delegations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var delegations []domain.Delegation
	for rows.Next() {
		var d domain.Delegation
		var amount string
		if err := rows.Scan(&d.ID, &d.UserID, &amount, &d.TxHash, &d.Status, &d.CreatedAt); err != nil {
			zap.L().Error("can't scan delegation row", zap.Error(err))
			return nil, err
		}
		if d.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		delegations = append(delegations, d)
	}
	return delegations, rows.Err()
}

func (r *Repository) Create(ctx context.Context, delegation *domain.Delegation) (*domain.Delegation, error) {
	query := `
		INSERT INTO delegations (user_id, amount, tx_hash, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		delegation.UserID, delegation.Amount.String(), delegation.TxHash, delegation.Status).
		Scan(&delegation.ID, &delegation.CreatedAt)
	if err != nil {
		zap.L().Error("can't save delegation", zap.Error(err))
		return nil, err
	}
	return delegation, nil
}

// DeactivateByUserID flips all of a user's active delegations to inactive
// and reports how many rows changed. Rows are never deleted.
func (r *Repository) DeactivateByUserID(ctx context.Context, userID int) (int64, error) {
	query := `
		UPDATE delegations
		SET status = $1
		WHERE user_id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, domain.DelegationInactive, userID, domain.DelegationActive)
	if err != nil {
		zap.L().Error("can't deactivate delegations", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
