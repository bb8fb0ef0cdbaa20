package referrals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/dto"
	referralservice "github.com/pallnetwork/pallmine/internal/service/referralservice"
	"github.com/pallnetwork/pallmine/pkg/auth"
	"github.com/pallnetwork/pallmine/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, referrerUsername, newUserID, newUsername string) (*domain.Referral, error)
	GetTeam(ctx context.Context, userID string) (*referralservice.TeamReport, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// Register godoc
//
//	@Summary		Register a referral
//	@Description	Link a newly signed-up user to the referrer behind the invitation code and grant the signup bonus.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterReferralRequestDTO	true	"Referral payload"
//	@Success		200		{object}	dto.ReferralDTO					"Created referral"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		404		{object}	utils.Response					"Referrer not found"
//	@Failure		409		{object}	utils.Response					"User already referred"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/referrals [post]
func (h *ReferralHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterReferralRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	referral, err := h.referralService.Register(r.Context(), req.ReferrerUsername, req.NewUserID, req.NewUsername)
	if err != nil {
		switch {
		case errors.Is(err, referralservice.ErrReferrerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, referralservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, referralservice.ErrSelfReferral):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if referral == nil {
		utils.RespondWithError(w, http.StatusConflict, "User already referred")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toDTO(*referral))
}

// GetTeam godoc
//
//	@Summary		Get referral team
//	@Description	Aggregated referral and commission history of the authenticated user.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TeamResponseDTO	"Team report"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/team [get]
func (h *ReferralHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	report, err := h.referralService.GetTeam(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch team")
		return
	}

	response := dto.TeamResponseDTO{
		TotalReferrals:       report.TotalReferrals,
		TotalCommissionCents: report.TotalCommissionCents,
		Referrals:            make([]dto.ReferralDTO, len(report.Referrals)),
		Commissions:          make([]dto.CommissionDTO, len(report.Commissions)),
	}
	for i, referral := range report.Referrals {
		response.Referrals[i] = toDTO(referral)
	}
	for i, commission := range report.Commissions {
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

func toDTO(referral domain.Referral) dto.ReferralDTO {
	return dto.ReferralDTO{
		ID:                referral.ID,
		ReferrerUsername:  referral.ReferrerUsername,
		ReferredUsername:  referral.ReferredUsername,
		Tier:              referral.Tier,
		SignupRewardGiven: referral.SignupRewardGiven,
		CreatedAt:         referral.CreatedAt,
	}
}
