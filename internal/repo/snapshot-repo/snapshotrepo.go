package snapshotrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
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

// InsertBatch writes all snapshots of one run in a single statement.
// Conflicts with the per-user-per-day uniqueness are dropped silently, so a
// duplicate run cannot double-write. Returns the number of inserted rows.
func (r *Repository) InsertBatch(ctx context.Context, snapshots []domain.Snapshot) (int, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO snapshots (user_id, delegated_amount, actual_balance, created_at) VALUES ")
	args := make([]any, 0, len(snapshots)*4)
	for i, s := range snapshots {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, s.UserID, s.DelegatedAmount.String(), s.ActualBalance.String(), s.CreatedAt)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	tag, err := r.db.Exec(ctx, sb.String(), args...)
	if err != nil {
		zap.L().Error("can't insert snapshots", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) FindHistory(ctx context.Context, limit, offset int) ([]domain.SnapshotEntry, error) {
	query := `
        SELECT s.id, s.user_id, s.delegated_amount::text, s.actual_balance::text, s.created_at, u.stellar_address
        FROM snapshots s
        JOIN users u ON u.id = s.user_id
        ORDER BY s.created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't get snapshot history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.SnapshotEntry
	for rows.Next() {
		var e domain.SnapshotEntry
		var delegated, actual string
		if err := rows.Scan(&e.ID, &e.UserID, &delegated, &actual, &e.CreatedAt, &e.StellarAddress); err != nil {
			zap.L().Error("can't scan snapshot row", zap.Error(err))
			return nil, err
		}
		if e.DelegatedAmount, err = decimal.NewFromString(delegated); err != nil {
			return nil, err
		}
		if e.ActualBalance, err = decimal.NewFromString(actual); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM snapshots").Scan(&count)
	if err != nil {
		zap.L().Error("can't count snapshots", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindLatestDate returns the timestamp of the most recent snapshot, or nil
// when none has been taken yet.
func (r *Repository) FindLatestDate(ctx context.Context) (*time.Time, error) {
	var createdAt time.Time
	err := r.db.QueryRow(ctx, "SELECT created_at FROM snapshots ORDER BY created_at DESC LIMIT 1").Scan(&createdAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get latest snapshot", zap.Error(err))
		return nil, err
	}
	return &createdAt, nil
}

func (r *Repository) FindLatestByUserID(ctx context.Context, userID int) (*domain.Snapshot, error) {
	query := `
        SELECT id, user_id, delegated_amount::text, actual_balance::text, created_at
        FROM snapshots
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT 1
    `
	var s domain.Snapshot
	var delegated, actual string
	err := r.db.QueryRow(ctx, query, userID).Scan(&s.ID, &s.UserID, &delegated, &actual, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get user snapshot", zap.Error(err))
		return nil, err
	}
	if s.DelegatedAmount, err = decimal.NewFromString(delegated); err != nil {
		return nil, err
	}
	if s.ActualBalance, err = decimal.NewFromString(actual); err != nil {
		return nil, err
	}
	return &s, nil
}
