package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/top", handler.ListTopPerformers)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/stats", handler.ListTeamStats)
	mux.HandleFunc("GET /v1/teams/{teamID}/difficulty", handler.GetTeamDifficultyTimeline)
	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/fixtures/compare", handler.CompareTeamSchedules)
	mux.HandleFunc("POST /v1/refresh", handler.RefreshSnapshot)
}
