package player

import (
	"github.com/stretchr/testify/mock"
)

type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) Create(p *Player) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPlayerRepository) Save(p *Player) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPlayerRepository) FindByID(id uint) (*Player, error) {
	args := m.Called(id)
	var p *Player
	if args.Get(0) != nil {
		p = args.Get(0).(*Player)
	}
	return p, args.Error(1)
}

func (m *MockPlayerRepository) FindByEmail(email string) (*Player, error) {
	args := m.Called(email)
	var p *Player
	if args.Get(0) != nil {
		p = args.Get(0).(*Player)
	}
	return p, args.Error(1)
}

func (m *MockPlayerRepository) FindByName(name string) (*Player, error) {
	args := m.Called(name)
	var p *Player
	if args.Get(0) != nil {
		p = args.Get(0).(*Player)
	}
	return p, args.Error(1)
}

func (m *MockPlayerRepository) FindAll() ([]Player, error) {
	args := m.Called()
	var players []Player
	if args.Get(0) != nil {
		players = args.Get(0).([]Player)
	}
	return players, args.Error(1)
}

func (m *MockPlayerRepository) FindAllByRateDesc() ([]Player, error) {
	args := m.Called()
	var players []Player
	if args.Get(0) != nil {
		players = args.Get(0).([]Player)
	}
	return players, args.Error(1)
}
