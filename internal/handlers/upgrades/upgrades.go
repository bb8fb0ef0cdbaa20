package upgrades

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/dto"
	upgradeservice "github.com/pallnetwork/pallmine/internal/service/upgradeservice"
	"github.com/pallnetwork/pallmine/pkg/auth"
	"github.com/pallnetwork/pallmine/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, userID, packageID, paymentRef string) (*domain.Upgrade, error)
	GetHistory(ctx context.Context, userID string) ([]domain.Upgrade, error)
}

type UpgradeHandler struct {
	upgradeService Service
}

func New(upgradeService Service) *UpgradeHandler {
	return &UpgradeHandler{
		upgradeService: upgradeService,
	}
}

// Purchase godoc
//
//	@Summary		Purchase a speed-boost package
//	@Description	Record a verified package purchase and apply its speed multiplier. The payment itself is confirmed upstream.
//	@Tags			Upgrades
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseUpgradeRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.UpgradeDTO					"Created upgrade"
//	@Failure		400		{object}	utils.Response					"Unknown package"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		409		{object}	utils.Response					"An active upgrade already exists"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/upgrades [post]
func (h *UpgradeHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.PurchaseUpgradeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upgrade, err := h.upgradeService.Purchase(r.Context(), userID, req.PackageID, req.PaymentRef)
	if err != nil {
		switch {
		case errors.Is(err, upgradeservice.ErrUnknownPackage):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, upgradeservice.ErrUpgradeAlreadyActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toDTO(*upgrade))
}

// GetHistory godoc
//
//	@Summary		Get upgrade history
//	@Description	All package purchases of the authenticated user, newest first.
//	@Tags			Upgrades
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UpgradeDTO	"Upgrade history"
//	@Success		204	{object}	utils.Response	"No upgrades found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/upgrades [get]
func (h *UpgradeHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	upgrades, err := h.upgradeService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch upgrades")
		return
	}

	if len(upgrades) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Upgrades not found")
		return
	}

	response := make([]dto.UpgradeDTO, len(upgrades))
	for i, upgrade := range upgrades {
		response[i] = toDTO(upgrade)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toDTO(upgrade domain.Upgrade) dto.UpgradeDTO {
	return dto.UpgradeDTO{
		ID:              upgrade.ID,
		PackageID:       upgrade.PackageID,
		SpeedMultiplier: upgrade.SpeedMultiplier,
		PriceCents:      upgrade.PriceCents,
		PurchasedAt:     upgrade.PurchasedAt,
		ExpiresAt:       upgrade.ExpiresAt,
		IsActive:        upgrade.IsActive,
	}
}
