package service

import (
	"github.com/pallnetwork/pallmine/internal/handlers/auth"
	"github.com/pallnetwork/pallmine/internal/handlers/commissions"
	"github.com/pallnetwork/pallmine/internal/handlers/mining"
	"github.com/pallnetwork/pallmine/internal/handlers/referrals"
	"github.com/pallnetwork/pallmine/internal/handlers/upgrades"
	"github.com/pallnetwork/pallmine/internal/handlers/wallet"

	"github.com/pallnetwork/pallmine/internal/pg"
	"github.com/pallnetwork/pallmine/internal/repo"
	commissionservice "github.com/pallnetwork/pallmine/internal/service/commissionservice"
	miningservice "github.com/pallnetwork/pallmine/internal/service/miningservice"
	referralservice "github.com/pallnetwork/pallmine/internal/service/referralservice"
	upgradeservice "github.com/pallnetwork/pallmine/internal/service/upgradeservice"
	userservice "github.com/pallnetwork/pallmine/internal/service/userservice"
	walletservice "github.com/pallnetwork/pallmine/internal/service/walletservice"
)

type Services struct {
	UserService       auth.Service
	MiningService     mining.Service
	UpgradeService    upgrades.Service
	ReferralService   referrals.Service
	CommissionService commissions.Service
	WalletService     wallet.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.MiningRepo)
	upgradeService := upgradeservice.New(txManager, repo.UpgradeRepo, repo.MiningRepo)
	miningService := miningservice.New(txManager, repo.MiningRepo, upgradeService, walletService)
	referralService := referralservice.New(txManager, repo.UserRepo, repo.ReferralRepo, repo.MiningRepo, repo.CommissionRepo, walletService)
	commissionService := commissionservice.New(txManager, repo.UserRepo, repo.CommissionRepo, repo.WalletRepo)
	userService := userservice.New(txManager, repo.UserRepo, repo.MiningRepo, repo.WalletRepo, upgradeService)

	return &Services{
		UserService:       userService,
		MiningService:     miningService,
		UpgradeService:    upgradeService,
		ReferralService:   referralService,
		CommissionService: commissionService,
		WalletService:     walletService,
	}
}
