package rewardrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// InsertBatch writes all pending rewards of one run in a single statement.
// Duplicate accruals for the same user and day are dropped by the unique
// index. Returns the number of inserted rows.
func (r *Repository) InsertBatch(ctx context.Context, rewards []domain.Reward) (int, error) {
	if len(rewards) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO rewards (user_id, amount, snapshot_id, status, created_at) VALUES ")
	args := make([]any, 0, len(rewards)*5)
	for i, rw := range rewards {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", i*5+1, i*5+2, i*5+3, i*5+4, i*5+5)
		args = append(args, rw.UserID, rw.Amount.StringFixed(7), rw.SnapshotID, rw.Status, rw.CreatedAt)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	tag, err := r.db.Exec(ctx, sb.String(), args...)
	if err != nil {
		zap.L().Error("can't insert rewards", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) FindByUserIDAndStatus(ctx context.Context, userID int, status string) ([]domain.Reward, error) {
	query := `
        SELECT id, user_id, amount::text, snapshot_id, status, created_at, claimed_at, tx_hash
        FROM rewards
        WHERE user_id = $1 AND status = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		zap.L().Error("can't get rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var rw domain.Reward
		var amount string
		if err := rows.Scan(&rw.ID, &rw.UserID, &amount, &rw.SnapshotID, &rw.Status, &rw.CreatedAt, &rw.ClaimedAt, &rw.TxHash); err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		if rw.Amount, err = decimal.NewFromString(amount); err != nil {
			zap.L().Error("invalid reward amount", zap.String("amount", amount), zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}

// MarkClaimed transitions the given reward rows to claimed in one update,
// stamping them with a shared claim time and transaction reference.
func (r *Repository) MarkClaimed(ctx context.Context, ids []int, txHash string, claimedAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `
		UPDATE rewards
		SET status = $1, claimed_at = $2, tx_hash = $3
		WHERE id = ANY($4) AND status = $5
	`
	var affected int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.RewardClaimed, claimedAt, txHash, ids, domain.RewardPending)
		if err != nil {
			zap.L().Error("can't mark rewards claimed", zap.Error(err))
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
