package commissions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/dto"
	commissionservice "github.com/pallnetwork/pallmine/internal/service/commissionservice"
	"github.com/pallnetwork/pallmine/pkg/utils"
)

type Service interface {
	CreditPurchase(ctx context.Context, buyerID, packageType string, valueUSD int, paymentRef string) ([]domain.Commission, error)
}

type CommissionHandler struct {
	commissionService Service
}

func New(commissionService Service) *CommissionHandler {
	return &CommissionHandler{
		commissionService: commissionService,
	}
}

// Credit godoc
//
//	@Summary		Credit purchase commissions
//	@Description	Pay out F1/F2 referral commissions for a confirmed package purchase. A buyer without a referrer is a no-op.
//	@Tags			Commissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditCommissionRequestDTO	true	"Purchase event payload"
//	@Success		200		{object}	dto.CreditCommissionResponseDTO	"Credited commissions or noop"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		404		{object}	utils.Response					"Buyer not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/commissions [post]
func (h *CommissionHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditCommissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	commissions, err := h.commissionService.CreditPurchase(r.Context(), req.BuyerID, req.PackageType, req.PackageValueUsd, req.PaymentRef)
	if err != nil {
		if errors.Is(err, commissionservice.ErrBuyerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(commissions) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, dto.CreditCommissionResponseDTO{Noop: true})
		return
	}

	response := dto.CreditCommissionResponseDTO{
		Commissions: make([]dto.CommissionDTO, len(commissions)),
	}
	for i, commission := range commissions {
		response.Commissions[i] = dto.CommissionDTO{
			ID:          commission.ID,
			Beneficiary: commission.BeneficiaryID,
			Tier:        commission.Tier,
			AmountCents: commission.AmountCents,
			CreatedAt:   commission.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
