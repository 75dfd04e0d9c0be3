package game

import (
	"errors"
	"net/http"

	dto "slot_game/internal/api/dto/game"
	"slot_game/internal/converter"
	"slot_game/internal/middleware"
	"slot_game/internal/service"
	gameServ "slot_game/internal/service/game"
	"slot_game/pkg/logger"
	"slot_game/pkg/req"
	"slot_game/pkg/resp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func playerID(r *http.Request) string {
	return chi.URLParam(r, "player_id")
}

func (h *Handler) Symbols(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.SymbolsResponse{Symbols: converter.ToGameSymbols(h.serv.Symbols())})
}

// Spin только выбирает символы, результат считает Check
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	symbols, err := h.serv.DrawSymbols(r.Context(), playerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.SymbolsResponse{Symbols: converter.ToGameSymbols(symbols)})
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CheckRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.serv.Check(r.Context(), playerID(r), payload.Symbols)
	if err != nil {
		writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*result))
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.VerifyRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.VerifyResponse{
		Code:  payload.Code,
		Valid: h.serv.VerifyCode(payload.Code),
	})
}

func (h *Handler) Probabilities(w http.ResponseWriter, r *http.Request) {
	p, err := h.serv.Probabilities(r.Context(), playerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProbabilitiesDTO(p))
}

// UpdateProbabilities доступен только администратору
func (h *Handler) UpdateProbabilities(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateProbabilitiesRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := converter.ToProbabilityConfig(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err = h.serv.UpdateProbabilities(r.Context(), playerID(r), p); err != nil {
		writeError(w, err)
		return
	}

	if claims, ok := middleware.AdminFromContext(r.Context()); ok {
		logger.Info("admin updated probabilities", zap.String("admin", claims.Subject), zap.String("player_id", playerID(r)))
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProbabilitiesDTO(p))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context(), playerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStatsResponse(stats))
}

func (h *Handler) ResetStats(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ResetStats(r.Context(), playerID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.serv.CodeHistory(r.Context(), playerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(history))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gameServ.ErrUnknownSymbol),
		errors.Is(err, gameServ.ErrSymbolCount),
		errors.Is(err, gameServ.ErrInvalidProbabilities),
		errors.Is(err, gameServ.ErrEmptyPlayerID):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("game request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
