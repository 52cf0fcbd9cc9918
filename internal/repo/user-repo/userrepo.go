package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/pg"
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

func (r *Repository) FindByAddress(ctx context.Context, address string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, "SELECT id, stellar_address, created_at FROM users WHERE stellar_address = $1", address).
		Scan(&user.ID, &user.StellarAddress, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (stellar_address)
		VALUES ($1)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.StellarAddress).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
