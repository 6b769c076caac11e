package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/fploracle/fpl-analytics/internal/domain/fixture"
	"github.com/fploracle/fpl-analytics/internal/domain/player"
	"github.com/fploracle/fpl-analytics/internal/domain/rawdata"
	"github.com/fploracle/fpl-analytics/internal/domain/snapshot"
	"github.com/fploracle/fpl-analytics/internal/domain/team"
	"github.com/fploracle/fpl-analytics/internal/platform/cache"
	"github.com/fploracle/fpl-analytics/internal/usecase"
)

type stubSnapshotProvider struct {
	snap snapshot.Snapshot
}

func (s *stubSnapshotProvider) Current(context.Context) (snapshot.Snapshot, error) {
	return s.snap, nil
}

type stubRawSource struct {
	calls int
}

func (s *stubRawSource) FetchSnapshot(context.Context) (rawdata.Snapshot, error) {
	s.calls++
	return rawdata.Snapshot{
		Teams: []rawdata.Record{
			{"id": float64(1), "name": "Arsenal", "short_name": "ARS"},
		},
	}, nil
}

func apiSnapshot() snapshot.Snapshot {
	teams := []team.Team{
		{ID: 1, Name: "Arsenal", ShortName: "ARS",
			StrengthAttackHome: 1100, StrengthAttackAway: 1150,
			StrengthDefenceHome: 1200, StrengthDefenceAway: 1180},
		{ID: 2, Name: "Brentford", ShortName: "BRE",
			StrengthAttackHome: 1050, StrengthAttackAway: 1300,
			StrengthDefenceHome: 1100, StrengthDefenceAway: 1000},
	}
	players := []player.Player{
		{ID: 12, Name: "Saka", TeamID: 1, TeamName: "Arsenal", PositionID: 3, PositionName: player.PositionMidfielder,
			Cost: 100, Price: 10.0, TotalPoints: 180, ValueScore: 18.0, Ownership: 45.0},
		{ID: 21, Name: "Mbeumo", TeamID: 2, TeamName: "Brentford", PositionID: 3, PositionName: player.PositionMidfielder,
			Cost: 72, Price: 7.2, TotalPoints: 150, ValueScore: 20.8, Ownership: 30.2},
	}
	kickoff := time.Date(2025, 8, 16, 14, 0, 0, 0, time.UTC)
	fixtures := []fixture.Fixture{
		{ID: 1, Gameweek: 1, HomeTeamID: 1, AwayTeamID: 2, HomeTeamName: "Arsenal", AwayTeamName: "Brentford",
			HomeDifficulty: 2, AwayDifficulty: 4, KickoffAt: kickoff},
		{ID: 2, Gameweek: 2, HomeTeamID: 2, AwayTeamID: 1, HomeTeamName: "Brentford", AwayTeamName: "Arsenal",
			HomeDifficulty: 4, AwayDifficulty: 2, KickoffAt: kickoff.AddDate(0, 0, 7)},
	}
	positions := []player.Position{
		{ID: 3, SingularName: player.PositionMidfielder},
	}
	return snapshot.New(kickoff.Add(-time.Hour), players, teams, positions, fixtures)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	provider := &stubSnapshotProvider{snap: apiSnapshot()}
	snapshotService := usecase.NewSnapshotService(&stubRawSource{}, cache.NewStore(time.Minute))
	handler := NewHandler(
		usecase.NewPlayerService(provider),
		usecase.NewTeamStatsService(provider),
		usecase.NewFixtureService(provider),
		usecase.NewDifficultyService(provider),
		snapshotService,
		slog.Default(),
	)
	return NewRouter(handler, slog.Default(), nil)
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body["data"]
}

func TestListPlayers_ReturnsAllPlayers(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	items, ok := decodeData(t, rec).([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", decodeData(t, rec))
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 players, got %d", len(items))
	}
}

func TestListPlayers_FilterByTeam(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players?team=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	items := decodeData(t, rec).([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 player, got %d", len(items))
	}
	row := items[0].(map[string]any)
	if got, _ := row["name"].(string); got != "Mbeumo" {
		t.Fatalf("expected Mbeumo, got %v", row["name"])
	}
}

func TestListPlayers_InvalidTeamParam(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players?team=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestListTopPerformers_OrdersByMetric(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players/top?metric=value_score&limit=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	items := decodeData(t, rec).([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 player, got %d", len(items))
	}
	row := items[0].(map[string]any)
	if got, _ := row["name"].(string); got != "Mbeumo" {
		t.Fatalf("expected best value_score player Mbeumo, got %v", row["name"])
	}
}

func TestListTopPerformers_RejectsUnknownMetric(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players/top?metric=chaos", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestGetTeamDifficultyTimeline(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/1/difficulty?window=2&source=provider", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec).(map[string]any)
	if got, _ := data["source"].(string); got != "provider" {
		t.Fatalf("expected source=provider, got %v", data["source"])
	}
	entries := data["entries"].([]any)
	if len(entries) != 2 {
		t.Fatalf("expected 2 timeline entries, got %d", len(entries))
	}
}

func TestGetTeamDifficultyTimeline_UnknownTeam(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/77/difficulty", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestListFixtures_FilterByGameweek(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/fixtures?gameweek=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	items := decodeData(t, rec).([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(items))
	}
	row := items[0].(map[string]any)
	if got, _ := row["homeTeam"].(string); got != "Brentford" {
		t.Fatalf("expected Brentford home, got %v", row["homeTeam"])
	}
}

func TestCompareTeamSchedules_RequiresTeams(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/fixtures/compare", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCompareTeamSchedules(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/fixtures/compare?teams=1,2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	items := decodeData(t, rec).([]any)
	if len(items) != 4 {
		t.Fatalf("expected 4 comparison rows (2 teams x 2 fixtures), got %d", len(items))
	}
}

func TestListTeamStats(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	items := decodeData(t, rec).([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 team rollups, got %d", len(items))
	}
}

func TestRefreshSnapshot(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/refresh", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec).(map[string]any)
	if got, _ := data["teams"].(float64); got != 1 {
		t.Fatalf("expected 1 team in refreshed snapshot, got %v", data["teams"])
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
