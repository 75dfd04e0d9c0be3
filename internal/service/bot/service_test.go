package bot

import (
	"context"
	"errors"
	"testing"

	"slot_game/internal/model"

	"github.com/stretchr/testify/assert"
)

type stubSlot struct {
	verdict *model.CodeVerification
	err     error
	calls   int
}

func (s *stubSlot) Spin(context.Context, string) (*model.RoundResult, error) { return nil, nil }
func (s *stubSlot) Stats(context.Context) (model.Stats, error)               { return model.Stats{}, nil }
func (s *stubSlot) WinHistory(context.Context) ([]model.WinRecord, error)    { return nil, nil }

func (s *stubSlot) VerifyCode(context.Context, string) (*model.CodeVerification, error) {
	s.calls++
	return s.verdict, s.err
}

func TestReplyFor(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		slot      *stubSlot
		want      string
		wantCalls int
	}{
		{
			name:      "valid code",
			text:      "JP-20240101000000-ABCDEF-12",
			slot:      &stubSlot{verdict: &model.CodeVerification{Valid: true, WinType: model.OutcomeJackpot}},
			want:      "おめでとうございます！jackpotの特典コードが確認できました。\n景品をお渡しします！",
			wantCalls: 1,
		},
		{
			name:      "invalid code",
			text:      "SW-1",
			slot:      &stubSlot{verdict: &model.CodeVerification{Message: "Invalid code format"}},
			want:      "申し訳ありません、その特典コードは無効です。",
			wantCalls: 1,
		},
		{
			name:      "verification error",
			text:      "BW-X-Y-00",
			slot:      &stubSlot{err: errors.New("db down")},
			want:      "コードの検証中にエラーが発生しました。",
			wantCalls: 1,
		},
		{
			name: "other text gets game link",
			text: "hello",
			slot: &stubSlot{},
			want: "スロットゲームで運試し！\nhttps://slot.example.com/?user_id=U+1\n\n特典コードを送信すると景品がもらえます！",
		},
		{
			name: "lowercase prefix is not a code",
			text: "jp-abc",
			slot: &stubSlot{},
			want: "スロットゲームで運試し！\nhttps://slot.example.com/?user_id=U+1\n\n特典コードを送信すると景品がもらえます！",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBotService(tt.slot, "https://slot.example.com")
			assert.Equal(t, tt.want, s.ReplyFor(context.Background(), "U 1", tt.text))
			assert.Equal(t, tt.wantCalls, tt.slot.calls)
		})
	}
}
