package bot

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"slot_game/internal/service"
	"slot_game/pkg/logger"
	"slot_game/pkg/redeem"

	"go.uber.org/zap"
)

const (
	replyValidCode   = "おめでとうございます！%sの特典コードが確認できました。\n景品をお渡しします！"
	replyInvalidCode = "申し訳ありません、その特典コードは無効です。"
	replyVerifyError = "コードの検証中にエラーが発生しました。"
	replyGameLink    = "スロットゲームで運試し！\n%s\n\n特典コードを送信すると景品がもらえます！"
)

// Сообщения с такими префиксами считаются кодами выигрыша
var codePrefixes = []string{
	redeem.PrefixJackpot + "-",
	redeem.PrefixBigWin + "-",
	redeem.PrefixSmallWin + "-",
}

type serv struct {
	slotServ service.SlotService
	baseURL  string
}

// NewBotService - baseURL адрес страницы игры, к нему добавляется ?user_id=
func NewBotService(slotServ service.SlotService, baseURL string) service.BotService {
	return &serv{
		slotServ: slotServ,
		baseURL:  baseURL,
	}
}

func (s *serv) ReplyFor(ctx context.Context, userID, text string) string {
	if !looksLikeCode(text) {
		return fmt.Sprintf(replyGameLink, s.gameURL(userID))
	}

	res, err := s.slotServ.VerifyCode(ctx, text)
	if err != nil {
		logger.Error("bot: verify code", zap.String("user_id", userID), zap.Error(err))
		return replyVerifyError
	}
	if !res.Valid {
		return replyInvalidCode
	}
	return fmt.Sprintf(replyValidCode, res.WinType)
}

func (s *serv) gameURL(userID string) string {
	return s.baseURL + "/?user_id=" + url.QueryEscape(userID)
}

func looksLikeCode(text string) bool {
	for _, p := range codePrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}
