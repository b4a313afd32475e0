package stats

import (
	"context"

	"github.com/ddiazp/LuckySevens/internal/player"
	"github.com/stretchr/testify/mock"
)

type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) UpdateRate(ctx context.Context, playerID uint, rate float64) error {
	args := m.Called(ctx, playerID, rate)
	return args.Error(0)
}

func (m *MockLeaderboard) Snapshot(ctx context.Context) ([]RatedPlayer, error) {
	args := m.Called(ctx)
	var entries []RatedPlayer
	if args.Get(0) != nil {
		entries = args.Get(0).([]RatedPlayer)
	}
	return entries, args.Error(1)
}

func (m *MockLeaderboard) Rebuild(ctx context.Context, players []player.Player) error {
	args := m.Called(ctx, players)
	return args.Error(0)
}
