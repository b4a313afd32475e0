package game

import (
	"github.com/stretchr/testify/mock"
)

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) CreateForPlayer(g *Game) (float64, error) {
	args := m.Called(g)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockGameRepository) DeleteForPlayer(playerID uint) error {
	args := m.Called(playerID)
	return args.Error(0)
}

func (m *MockGameRepository) FindByPlayer(playerID uint) ([]Game, error) {
	args := m.Called(playerID)
	var games []Game
	if args.Get(0) != nil {
		games = args.Get(0).([]Game)
	}
	return games, args.Error(1)
}

type MockRateSink struct {
	mock.Mock
}

func (m *MockRateSink) PublishRate(playerID uint, rate float64) {
	m.Called(playerID, rate)
}

// ScriptedRoller replays a fixed sequence of draws.
type ScriptedRoller struct {
	Rolls [][2]int
	next  int
}

func (r *ScriptedRoller) Roll() (int, int) {
	roll := r.Rolls[r.next%len(r.Rolls)]
	r.next++
	return roll[0], roll[1]
}
