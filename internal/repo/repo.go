package repo

import (
	"github.com/nsdBRoficial/stellar-stake-house/internal/pg"
	delegationrepo "github.com/nsdBRoficial/stellar-stake-house/internal/repo/delegation-repo"
	historyrepo "github.com/nsdBRoficial/stellar-stake-house/internal/repo/history-repo"
	rewardrepo "github.com/nsdBRoficial/stellar-stake-house/internal/repo/reward-repo"
	snapshotrepo "github.com/nsdBRoficial/stellar-stake-house/internal/repo/snapshot-repo"
	userrepo "github.com/nsdBRoficial/stellar-stake-house/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	DelegationRepo *delegationrepo.Repository
	SnapshotRepo   *snapshotrepo.Repository
	RewardRepo     *rewardrepo.Repository
	HistoryRepo    *historyrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		DelegationRepo: delegationrepo.New(conn),
		SnapshotRepo:   snapshotrepo.New(conn),
		RewardRepo:     rewardrepo.New(conn, txManager),
		HistoryRepo:    historyrepo.New(conn),
	}
}
