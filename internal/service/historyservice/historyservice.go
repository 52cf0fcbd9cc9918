package historyservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
)

type UserRepo interface {
	FindByAddress(ctx context.Context, address string) (*domain.User, error)
}
type HistoryRepo interface {
	FindByUserID(ctx context.Context, userID, limit, offset int, entryType string) ([]domain.HistoryEntry, error)
	CountByUserID(ctx context.Context, userID int, entryType string) (int, error)
}

var ErrUserNotFound = errors.New("user not found")

type Service struct {
	userRepo    UserRepo
	historyRepo HistoryRepo
}

func New(userRepo UserRepo, historyRepo HistoryRepo) *Service {
	return &Service{
		userRepo:    userRepo,
		historyRepo: historyRepo,
	}
}

type Page struct {
	Entries []domain.HistoryEntry
	Total   int
}

// GetHistory returns a page of the address's activity, newest first.
// An empty entryType means every kind of entry.
func (s *Service) GetHistory(ctx context.Context, address string, limit, offset int, entryType string) (*Page, error) {
	user, err := s.userRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("failed to find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	entries, err := s.historyRepo.FindByUserID(ctx, user.ID, limit, offset, entryType)
	if err != nil {
		zap.L().Error("failed to fetch history", zap.Error(err))
		return nil, err
	}

	total, err := s.historyRepo.CountByUserID(ctx, user.ID, entryType)
	if err != nil {
		zap.L().Error("failed to count history", zap.Error(err))
		return nil, err
	}

	return &Page{Entries: entries, Total: total}, nil
}
