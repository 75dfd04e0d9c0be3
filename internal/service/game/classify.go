package game

import (
	"slot_game/internal/model"
)

var messages = map[model.Outcome]string{
	model.OutcomeJackpot:  "🎉 ジャックポット！ 🎉",
	model.OutcomeBigWin:   "✨ ビッグウィン！ ✨",
	model.OutcomeSmallWin: "🍒 スモールウィン！ 🍒",
	model.OutcomeLose:     "残念！ハズレ",
	model.OutcomePlayed:   "ゲームは終了しました。",
}

// Classify определяет исход по трём символам. Порядок проверок важен:
// три одинаковых, любая пара, вишня, иначе проигрыш.
func Classify(s1, s2, s3 string) model.Outcome {
	switch {
	case s1 == s2 && s2 == s3:
		return model.OutcomeJackpot
	case s1 == s2 || s2 == s3 || s1 == s3:
		return model.OutcomeBigWin
	case s1 == model.SymbolCherry || s2 == model.SymbolCherry || s3 == model.SymbolCherry:
		return model.OutcomeSmallWin
	default:
		return model.OutcomeLose
	}
}

// Message - текст для игрока
func Message(o model.Outcome) string {
	return messages[o]
}
