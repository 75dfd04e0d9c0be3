package game

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "slot_game/internal/api/dto/game"
	"slot_game/internal/middleware"
	"slot_game/internal/model"
	"slot_game/internal/repository/config_repo"
	gameServ "slot_game/internal/service/game"
	"slot_game/pkg/token"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("admin-secret")

func newRouter() chi.Router {
	h := NewHandler(HandlerDeps{
		Serv: gameServ.NewGameService(config_repo.NewMemoryStore(model.DefaultProbabilities())),
	})
	r := chi.NewRouter()
	r.Route("/api/game/{player_id}", func(rr chi.Router) {
		rr.Get("/symbols", h.Symbols)
		rr.Post("/spin", h.Spin)
		rr.Post("/check", h.Check)
		rr.Post("/verify", h.Verify)
		rr.Get("/probabilities", h.Probabilities)
		rr.Get("/stats", h.Stats)
		rr.Get("/history", h.History)
		rr.Group(func(admin chi.Router) {
			admin.Use(middleware.AdminOnly(secret))
			admin.Put("/probabilities", h.UpdateProbabilities)
			admin.Post("/stats/reset", h.ResetStats)
		})
	})
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func adminHeader(t *testing.T) []string {
	t.Helper()
	tok, err := token.GenerateAdminToken("ops", secret, time.Hour)
	require.NoError(t, err)
	return []string{"Authorization", "Bearer " + tok}
}

func TestSymbols(t *testing.T) {
	rec := do(t, newRouter(), http.MethodGet, "/api/game/p1/symbols", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[dto.SymbolsResponse](t, rec)
	require.Len(t, out.Symbols, 7)
	assert.Equal(t, "cherry", out.Symbols[0].Name)
}

func TestSpinThenCheck(t *testing.T) {
	r := newRouter()

	rec := do(t, r, http.MethodPost, "/api/game/p1/spin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	drawn := decode[dto.SymbolsResponse](t, rec)
	require.Len(t, drawn.Symbols, 3)

	rec = do(t, r, http.MethodPost, "/api/game/p1/check", `{"symbols":["seven","seven","seven"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	round := decode[dto.RoundResponse](t, rec)
	assert.Equal(t, "jackpot", round.Type)
	require.NotNil(t, round.Code)

	rec = do(t, r, http.MethodPost, "/api/game/p1/verify", `{"code":"`+*round.Code+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[dto.VerifyResponse](t, rec).Valid)

	rec = do(t, r, http.MethodGet, "/api/game/p1/stats", "")
	stats := decode[dto.StatsResponse](t, rec)
	assert.Equal(t, 1, stats.TotalPlays)
	assert.Equal(t, 1, stats.JackpotCount)
	assert.InDelta(t, 100.0, stats.WinRate, 1e-9)

	rec = do(t, r, http.MethodGet, "/api/game/p1/history", "")
	history := decode[dto.HistoryResponse](t, rec)
	require.Len(t, history.History, 1)
	assert.Equal(t, *round.Code, history.History[0].Code)
}

func TestCheck_BadInput(t *testing.T) {
	r := newRouter()

	rec := do(t, r, http.MethodPost, "/api/game/p1/check", `{"symbols":["seven","banana","seven"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/game/p1/check", `{"symbols":["seven"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/game/p1/check", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerify_Malformed(t *testing.T) {
	rec := do(t, newRouter(), http.MethodPost, "/api/game/p1/verify", `{"code":"bad"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[dto.VerifyResponse](t, rec).Valid)
}

func TestProbabilities_AdminOnly(t *testing.T) {
	r := newRouter()
	body := `{"jackpot":2,"bigWin":4,"smallWin":8,"lose":86}`

	rec := do(t, r, http.MethodPut, "/api/game/p1/probabilities", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, r, http.MethodPut, "/api/game/p1/probabilities", body, adminHeader(t)...)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/game/p1/probabilities", "")
	assert.Equal(t, dto.Probabilities{Jackpot: 2, BigWin: 4, SmallWin: 8, Lose: 86}, decode[dto.Probabilities](t, rec))

	rec = do(t, r, http.MethodPut, "/api/game/p1/probabilities", `{"jackpot":1}`, adminHeader(t)...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPut, "/api/game/p1/probabilities", `{"jackpot":-1,"bigWin":0,"smallWin":0,"lose":0}`, adminHeader(t)...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetStats(t *testing.T) {
	r := newRouter()
	do(t, r, http.MethodPost, "/api/game/p1/spin", "")

	rec := do(t, r, http.MethodPost, "/api/game/p1/stats/reset", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/game/p1/stats/reset", "", adminHeader(t)...)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/game/p1/stats", "")
	assert.Equal(t, dto.StatsResponse{}, decode[dto.StatsResponse](t, rec))
}
