package stats

import (
	"context"
	"strconv"

	"github.com/ddiazp/LuckySevens/internal/player"
	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:success_rate"

// RatedPlayer is one leaderboard entry, highest rate first.
type RatedPlayer struct {
	PlayerID uint
	Rate     float64
}

// Leaderboard mirrors the denormalized success rates in a sorted set so
// ranking reads avoid a table scan. The players table stays authoritative;
// the mirror is rebuilt from it whenever it drifts.
type Leaderboard interface {
	UpdateRate(ctx context.Context, playerID uint, rate float64) error
	Snapshot(ctx context.Context) ([]RatedPlayer, error)
	Rebuild(ctx context.Context, players []player.Player) error
}

type RedisLeaderboard struct {
	rdb *redis.Client
}

func NewRedisLeaderboard(rdb *redis.Client) *RedisLeaderboard {
	return &RedisLeaderboard{rdb: rdb}
}

func (l *RedisLeaderboard) UpdateRate(ctx context.Context, playerID uint, rate float64) error {
	member := strconv.FormatUint(uint64(playerID), 10)
	return l.rdb.ZAdd(ctx, leaderboardKey, redis.Z{Score: rate, Member: member}).Err()
}

func (l *RedisLeaderboard) Snapshot(ctx context.Context) ([]RatedPlayer, error) {
	scores, err := l.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]RatedPlayer, 0, len(scores))
	for _, z := range scores {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(member, 10, 32)
		if err != nil {
			continue
		}
		entries = append(entries, RatedPlayer{PlayerID: uint(id), Rate: z.Score})
	}
	return entries, nil
}

func (l *RedisLeaderboard) Rebuild(ctx context.Context, players []player.Player) error {
	members := make([]redis.Z, 0, len(players))
	for _, p := range players {
		members = append(members, redis.Z{
			Score:  p.SuccessRate,
			Member: strconv.FormatUint(uint64(p.ID), 10),
		})
	}

	pipe := l.rdb.TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, leaderboardKey, members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
