package webhook

import (
	"io"
	"net/http"

	"slot_game/internal/line"
	"slot_game/internal/service"
	"slot_game/pkg/logger"
	"slot_game/pkg/resp"

	"go.uber.org/zap"
)

// Ограничение размера тела вебхука
const maxBodyBytes = 1 << 20

type HandlerDeps struct {
	Bot     service.BotService
	Replier line.Replier
	// Secret - пустой секрет отключает проверку подписи
	Secret string
}

type Handler struct {
	bot     service.BotService
	replier line.Replier
	secret  string
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		bot:     deps.Bot,
		replier: deps.Replier,
		secret:  deps.Secret,
	}
}

// Webhook отвечает на текстовые сообщения; ошибки отправки только логируются
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	if h.secret != "" && !line.ValidateSignature(h.secret, body, r.Header.Get(line.SignatureHeader)) {
		logger.Warn("webhook: invalid signature")
		resp.WriteError(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	payload, err := line.ParseWebhook(body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid webhook payload")
		return
	}

	for _, event := range payload.Events {
		if !event.IsText() {
			continue
		}
		reply := h.bot.ReplyFor(r.Context(), event.Source.UserID, event.Message.Text)
		if err := h.replier.Reply(r.Context(), event.ReplyToken, reply); err != nil {
			logger.Error("webhook: reply failed",
				zap.String("user_id", event.Source.UserID),
				zap.Error(err),
			)
		}
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
