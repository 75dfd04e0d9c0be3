package user

import (
	"errors"
	"net/http"

	dto "slot_game/internal/api/dto/user"
	"slot_game/internal/converter"
	"slot_game/internal/model"
	"slot_game/internal/service"
	userServ "slot_game/internal/service/user"
	"slot_game/pkg/logger"
	"slot_game/pkg/req"
	"slot_game/pkg/resp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgUserIDRequired  = "User ID is required"
	msgInvalidSlotType = "Invalid slot type. Must be A or B"
	msgUserNotFound    = "User not found"
)

type HandlerDeps struct {
	Serv service.UserService
}

type Handler struct {
	serv service.UserService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create - 201 для нового пользователя, 200 если он уже есть
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateUserRequest](r.Body)
	if err != nil && !errors.Is(err, req.ErrEmptyBody) {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, created, err := h.serv.Create(r.Context(), payload.UserID, model.SlotType(payload.SlotType))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if !created {
		resp.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{
			Message: "User already exists",
			User:    converter.ToUserDTO(*user),
		})
		return
	}
	resp.WriteJSONResponse(w, http.StatusCreated, dto.UserResponse{
		Message: "User created successfully",
		User:    converter.ToUserDTO(*user),
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.serv.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUsersResponse(users))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.serv.Get(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{User: converter.ToUserDTO(*user)})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateUserRequest](r.Body)
	if err != nil && !errors.Is(err, req.ErrEmptyBody) {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd, err := converter.ToUserUpdate(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.serv.Update(r.Context(), chi.URLParam(r, "user_id"), upd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{
		Message: "User updated successfully",
		User:    converter.ToUserDTO(*user),
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Delete(r.Context(), chi.URLParam(r, "user_id")); err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userServ.ErrEmptyUserID):
		resp.WriteError(w, http.StatusBadRequest, msgUserIDRequired)
	case errors.Is(err, userServ.ErrInvalidSlotType):
		resp.WriteError(w, http.StatusBadRequest, msgInvalidSlotType)
	case errors.Is(err, userServ.ErrUserNotFound):
		resp.WriteError(w, http.StatusNotFound, msgUserNotFound)
	default:
		logger.Error("user request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
