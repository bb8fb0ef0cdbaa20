package wallet

import (
	"context"
	"errors"
	"net/http"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/dto"
	walletservice "github.com/pallnetwork/pallmine/internal/service/walletservice"
	"github.com/pallnetwork/pallmine/pkg/auth"
	"github.com/pallnetwork/pallmine/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet
//	@Description	Reconciled PALL balance and accumulated USDT commissions for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Wallet not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Wallet not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		PallBalance:     wallet.PallBalance,
		UsdtCommissions: wallet.UsdtCommissions,
	})
}
