package slot

import (
	"errors"
	"net/http"

	dto "slot_game/internal/api/dto/slot"
	"slot_game/internal/converter"
	"slot_game/internal/model"
	"slot_game/internal/service"
	slotServ "slot_game/internal/service/slot"
	"slot_game/pkg/logger"
	"slot_game/pkg/req"
	"slot_game/pkg/resp"

	"go.uber.org/zap"
)

const msgAlreadyPlayed = "You have already played."

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin - единственная игра пользователя, повторная получает 403 с результатом played
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil && !errors.Is(err, req.ErrEmptyBody) {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.serv.Spin(r.Context(), payload.UserID)
	switch {
	case err == nil:
		resp.WriteJSONResponse(w, http.StatusOK, dto.SpinResponse{Result: converter.ToSpinResult(*result)})
	case errors.Is(err, slotServ.ErrEmptyUserID):
		resp.WriteError(w, http.StatusBadRequest, "User ID is required")
	case errors.Is(err, slotServ.ErrUserNotFound):
		resp.WriteError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, slotServ.ErrAlreadyPlayed):
		resp.WriteJSONResponse(w, http.StatusForbidden, playedResponse())
	default:
		logger.Error("spin failed", zap.String("user_id", payload.UserID), zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "spin failed")
	}
}

func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.VerifyCodeRequest](r.Body)
	if err != nil && !errors.Is(err, req.ErrEmptyBody) {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.serv.VerifyCode(r.Context(), payload.Code)
	if err != nil {
		if errors.Is(err, slotServ.ErrEmptyCode) {
			resp.WriteError(w, http.StatusBadRequest, "Code is required")
			return
		}
		logger.Error("verify code failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "verification failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToVerifyCodeResponse(*result))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		logger.Error("stats failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "stats failed")
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotStatsResponse(stats))
}

func (h *Handler) WinHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.serv.WinHistory(r.Context())
	if err != nil {
		logger.Error("win history failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "win history failed")
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWinHistoryResponse(history))
}

func playedResponse() dto.SpinResponse {
	return dto.SpinResponse{
		Message: msgAlreadyPlayed,
		Result: converter.ToSpinResult(model.RoundResult{
			Message: "ゲームは終了しました。",
			Type:    model.OutcomePlayed,
		}),
	}
}
