package stats

import (
	"context"
	"log"

	"github.com/ddiazp/LuckySevens/internal/apperrors"
	"github.com/ddiazp/LuckySevens/internal/player"
)

type RankingEntry struct {
	PlayerID    uint    `json:"player_id"`
	Name        string  `json:"name"`
	SuccessRate float64 `json:"success_rate"`
}

type StatsService struct {
	players player.PlayerRepository
	board   Leaderboard
}

func NewStatsService(players player.PlayerRepository, board Leaderboard) *StatsService {
	return &StatsService{players: players, board: board}
}

// RecordRate pushes a fresh success rate to the leaderboard mirror. The
// table was already updated; a mirror failure only costs cache freshness,
// so it is logged and not propagated.
func (s *StatsService) RecordRate(playerID uint, rate float64) {
	if err := s.board.UpdateRate(context.Background(), playerID, rate); err != nil {
		log.Println("Error updating leaderboard:", err)
	}
}

// Ranking returns every player sorted descending by success rate. Served
// from the redis mirror when it covers all players, otherwise from the
// table, rebuilding the mirror on the way.
func (s *StatsService) Ranking(ctx context.Context) ([]RankingEntry, error) {
	players, err := s.players.FindAllByRateDesc()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing players", err)
	}
	if len(players) == 0 {
		return nil, apperrors.NotFound("No players found.")
	}

	scores, err := s.board.Snapshot(ctx)
	if err != nil || len(scores) != len(players) {
		if rebuildErr := s.board.Rebuild(ctx, players); rebuildErr != nil {
			log.Println("Error rebuilding leaderboard:", rebuildErr)
		}
		return entriesFromPlayers(players), nil
	}

	names := make(map[uint]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	entries := make([]RankingEntry, 0, len(scores))
	for _, rp := range scores {
		name, ok := names[rp.PlayerID]
		if !ok {
			// Stale member; serve the authoritative order instead.
			if rebuildErr := s.board.Rebuild(ctx, players); rebuildErr != nil {
				log.Println("Error rebuilding leaderboard:", rebuildErr)
			}
			return entriesFromPlayers(players), nil
		}
		entries = append(entries, RankingEntry{PlayerID: rp.PlayerID, Name: name, SuccessRate: rp.Rate})
	}
	return entries, nil
}

func (s *StatsService) BestPlayer() (*player.Player, error) {
	players, err := s.players.FindAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing players", err)
	}
	if len(players) == 0 {
		return nil, apperrors.NotFound("No user found.")
	}
	return BestOf(players), nil
}

func (s *StatsService) WorstPlayer() (*player.Player, error) {
	players, err := s.players.FindAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing players", err)
	}
	if len(players) == 0 {
		return nil, apperrors.NotFound("No user found.")
	}
	return WorstOf(players), nil
}

// BestOf picks the player with the highest success rate; ties go to the
// lowest id. A player with zero games holds a real rate of 0 and competes
// like any other.
func BestOf(players []player.Player) *player.Player {
	best := &players[0]
	for i := range players[1:] {
		p := &players[i+1]
		if p.SuccessRate > best.SuccessRate ||
			(p.SuccessRate == best.SuccessRate && p.ID < best.ID) {
			best = p
		}
	}
	return best
}

// WorstOf picks the player with the lowest success rate; ties go to the
// lowest id.
func WorstOf(players []player.Player) *player.Player {
	worst := &players[0]
	for i := range players[1:] {
		p := &players[i+1]
		if p.SuccessRate < worst.SuccessRate ||
			(p.SuccessRate == worst.SuccessRate && p.ID < worst.ID) {
			worst = p
		}
	}
	return worst
}

func entriesFromPlayers(players []player.Player) []RankingEntry {
	entries := make([]RankingEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, RankingEntry{PlayerID: p.ID, Name: p.Name, SuccessRate: p.SuccessRate})
	}
	return entries
}
