package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/dto"
	userservice "github.com/pallnetwork/pallmine/internal/service/userservice"
	pkgauth "github.com/pallnetwork/pallmine/pkg/auth"
	"github.com/pallnetwork/pallmine/pkg/utils"
)

type Service interface {
	Sync(ctx context.Context, input userservice.SyncInput) (*domain.User, bool, error)
	GetProfile(ctx context.Context, userID string) (*userservice.Profile, error)
}

type ReferralService interface {
	Register(ctx context.Context, referrerUsername, newUserID, newUsername string) (*domain.Referral, error)
}

type AuthHandler struct {
	userService     Service
	referralService ReferralService
}

func New(userService Service, referralService ReferralService) *AuthHandler {
	return &AuthHandler{
		userService:     userService,
		referralService: referralService,
	}
}

// Sync godoc
//
//	@Summary		Sync a verified sign-in
//	@Description	Upsert the user record for a verified identity. First sign-in creates the mining account and wallet; a referral code on a new user registers the referral.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SyncRequestDTO	true	"Verified identity payload"
//	@Success		200		{object}	dto.SyncResponseDTO	"Synced user"
//	@Failure		400		{object}	utils.Response		"Missing required fields"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/auth/sync [post]
func (h *AuthHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req dto.SyncRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UID == "" || req.Email == "" || req.DisplayName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, created, err := h.userService.Sync(r.Context(), userservice.SyncInput{
		UID:            req.UID,
		Email:          req.Email,
		DisplayName:    req.DisplayName,
		ProfilePicture: req.ProfilePicture,
		Provider:       req.Provider,
		Username:       req.Username,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// An invalid invitation code must not block sign-in; the referral is
	// simply skipped.
	if created && req.ReferralCode != "" {
		newUsername := ""
		if req.Username != nil {
			newUsername = *req.Username
		}
		if _, err := h.referralService.Register(r.Context(), req.ReferralCode, user.ID, newUsername); err != nil {
			zap.L().Warn("referral registration skipped",
				zap.String("uid", user.ID),
				zap.String("code", req.ReferralCode),
				zap.Error(err),
			)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{
		Success: true,
		User:    toUserDTO(user),
	})
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Description	User record together with mining state and the active upgrade, if any.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(string)

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.ProfileResponseDTO{
		User: toUserDTO(profile.User),
	}
	if profile.MiningAccount != nil {
		response.MiningData = &dto.MiningStateDTO{
			TotalCoins:      profile.MiningAccount.TotalCoins,
			LastMineTime:    profile.MiningAccount.LastMineTime,
			MiningStreak:    profile.MiningAccount.MiningStreak,
			SpeedMultiplier: profile.MiningAccount.SpeedMultiplier,
		}
	}
	if profile.ActiveUpgrade != nil {
		response.ActiveUpgrade = &dto.UpgradeDTO{
			ID:              profile.ActiveUpgrade.ID,
			PackageID:       profile.ActiveUpgrade.PackageID,
			SpeedMultiplier: profile.ActiveUpgrade.SpeedMultiplier,
			PriceCents:      profile.ActiveUpgrade.PriceCents,
			PurchasedAt:     profile.ActiveUpgrade.PurchasedAt,
			ExpiresAt:       profile.ActiveUpgrade.ExpiresAt,
			IsActive:        profile.ActiveUpgrade.IsActive,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toUserDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:                   user.ID,
		Email:                user.Email,
		DisplayName:          user.DisplayName,
		ProfilePicture:       user.ProfilePicture,
		Provider:             user.Provider,
		Username:             user.Username,
		ReferredBy:           user.ReferredBy,
		TotalReferralRewards: user.TotalReferralRewards,
		CreatedAt:            user.CreatedAt,
	}
}
