package repo

import (
	"github.com/pallnetwork/pallmine/internal/pg"
	commissionrepo "github.com/pallnetwork/pallmine/internal/repo/commission-repo"
	miningrepo "github.com/pallnetwork/pallmine/internal/repo/mining-repo"
	referralrepo "github.com/pallnetwork/pallmine/internal/repo/referral-repo"
	upgraderepo "github.com/pallnetwork/pallmine/internal/repo/upgrade-repo"
	userrepo "github.com/pallnetwork/pallmine/internal/repo/user-repo"
	walletrepo "github.com/pallnetwork/pallmine/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	MiningRepo     *miningrepo.Repository
	WalletRepo     *walletrepo.Repository
	UpgradeRepo    *upgraderepo.Repository
	ReferralRepo   *referralrepo.Repository
	CommissionRepo *commissionrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		MiningRepo:     miningrepo.New(conn),
		WalletRepo:     walletrepo.New(conn),
		UpgradeRepo:    upgraderepo.New(conn),
		ReferralRepo:   referralrepo.New(conn),
		CommissionRepo: commissionrepo.New(conn),
	}
}
