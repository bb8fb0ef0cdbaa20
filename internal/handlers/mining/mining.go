package mining

import (
	"context"
	"errors"
	"net/http"

	"github.com/pallnetwork/pallmine/internal/dto"
	miningservice "github.com/pallnetwork/pallmine/internal/service/miningservice"
	"github.com/pallnetwork/pallmine/pkg/auth"
	"github.com/pallnetwork/pallmine/pkg/utils"
)

type Service interface {
	Mine(ctx context.Context, userID string) (*miningservice.MineResult, error)
	GetState(ctx context.Context, userID string) (*miningservice.State, error)
}

type MiningHandler struct {
	miningService Service
}

func New(miningService Service) *MiningHandler {
	return &MiningHandler{
		miningService: miningService,
	}
}

// Mine godoc
//
//	@Summary		Claim the daily mining reward
//	@Description	Award base rate times the current speed multiplier, once per 24 hours.
//	@Tags			Mining
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MineResponseDTO		"Coins awarded"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Mining account not found"
//	@Failure		409	{object}	dto.CooldownResponseDTO	"Cooldown active"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/mining/mine [post]
func (h *MiningHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	result, err := h.miningService.Mine(r.Context(), userID)
	if err != nil {
		var cooldownErr *miningservice.CooldownError
		switch {
		case errors.As(err, &cooldownErr):
			utils.RespondWithJSON(w, http.StatusConflict, dto.CooldownResponseDTO{
				Message:     "Mining cooldown active",
				RemainingMs: cooldownErr.Remaining.Milliseconds(),
			})
		case errors.Is(err, miningservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Mining account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MineResponseDTO{
		TotalCoins:  result.TotalCoins,
		CoinsEarned: result.CoinsEarned,
	})
}

// GetState godoc
//
//	@Summary		Get mining state
//	@Description	Current coin total, last mine time, streak and speed multiplier for the authenticated user.
//	@Tags			Mining
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MiningStateDTO	"Mining state"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	utils.Response		"Mining account not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/mining [get]
func (h *MiningHandler) GetState(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	state, err := h.miningService.GetState(r.Context(), userID)
	if err != nil {
		if errors.Is(err, miningservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Mining account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MiningStateDTO{
		TotalCoins:      state.TotalCoins,
		LastMineTime:    state.LastMineTime,
		MiningStreak:    state.MiningStreak,
		SpeedMultiplier: state.SpeedMultiplier,
	})
}
