package usecase

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/fploracle/fpl-analytics/internal/domain/player"
	"github.com/fploracle/fpl-analytics/internal/domain/team"
	"github.com/panjf2000/ants/v2"
)

type TeamStatsService struct {
	snapshots SnapshotProvider
}

func NewTeamStatsService(snapshots SnapshotProvider) *TeamStatsService {
	return &TeamStatsService{snapshots: snapshots}
}

// ListTeams returns the snapshot's team set with strength ratings.
func (s *TeamStatsService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.ListTeams")
	defer span.End()

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	out := make([]team.Team, len(snap.Teams))
	copy(out, snap.Teams)
	return out, nil
}

// TeamStats groups the filtered player set by team and aggregates each
// group. Teams left with zero players after filtering are omitted. Each
// team aggregates independently, so the rollups run on a worker pool and
// are sorted by team id afterwards for a deterministic result.
func (s *TeamStatsService) TeamStats(ctx context.Context, filter PlayerFilter) ([]team.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.TeamStats")
	defer span.End()

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	players := filter.Apply(snap.Players)
	byTeam := make(map[int][]player.Player, len(snap.Teams))
	for _, p := range players {
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
	}

	workerCount := runtime.GOMAXPROCS(0)
	if workerCount > len(snap.Teams) && len(snap.Teams) > 0 {
		workerCount = len(snap.Teams)
	}
	if workerCount < 1 {
		workerCount = 1
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan team.Stats, len(snap.Teams))
	var workers sync.WaitGroup
	for _, t := range snap.Teams {
		teamPlayers := byTeam[t.ID]
		if len(teamPlayers) == 0 {
			continue
		}

		t := t
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- rollupTeam(t, teamPlayers)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit rollup to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]team.Stats, 0, len(snap.Teams))
	for stats := range results {
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

// rollupTeam aggregates one team's players. Ties for top scorer and most
// expensive resolve to the first player in input order.
func rollupTeam(t team.Team, players []player.Player) team.Stats {
	stats := team.Stats{
		TeamID:              t.ID,
		TeamName:            t.Name,
		PlayerCount:         len(players),
		StrengthOverallHome: t.StrengthOverallHome,
		StrengthOverallAway: t.StrengthOverallAway,
		StrengthAttackHome:  t.StrengthAttackHome,
		StrengthAttackAway:  t.StrengthAttackAway,
		StrengthDefenceHome: t.StrengthDefenceHome,
		StrengthDefenceAway: t.StrengthDefenceAway,
		Positions:           make(map[string]team.PositionBreakdown, 4),
	}

	ownershipSum := 0.0
	formSum := 0.0
	positionPoints := make(map[string]int, 4)

	for idx, p := range players {
		stats.TotalPoints += p.TotalPoints
		stats.TotalGoals += p.Goals
		stats.TotalAssists += p.Assists
		stats.TotalCleanSheets += p.CleanSheets
		stats.TotalValue += p.Price
		stats.TotalMinutes += p.Minutes
		ownershipSum += p.Ownership
		formSum += p.Form

		breakdown := stats.Positions[p.PositionName]
		breakdown.Count++
		stats.Positions[p.PositionName] = breakdown
		positionPoints[p.PositionName] += p.TotalPoints

		if idx == 0 || float64(p.TotalPoints) > stats.TopScorer.Value {
			stats.TopScorer = team.TopPlayer{PlayerID: p.ID, Name: p.Name, Value: float64(p.TotalPoints)}
		}
		if idx == 0 || p.Price > stats.MostExpensive.Value {
			stats.MostExpensive = team.TopPlayer{PlayerID: p.ID, Name: p.Name, Value: p.Price}
		}
	}

	count := float64(len(players))
	stats.AvgPointsPerPlayer = float64(stats.TotalPoints) / count
	stats.AvgOwnership = ownershipSum / count
	stats.AvgForm = formSum / count

	for name, breakdown := range stats.Positions {
		breakdown.AvgPoints = float64(positionPoints[name]) / float64(breakdown.Count)
		stats.Positions[name] = breakdown
	}

	return stats
}
