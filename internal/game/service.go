package game

import (
	"github.com/ddiazp/LuckySevens/internal/apperrors"
	"github.com/ddiazp/LuckySevens/internal/player"
)

// RateSink receives a player's success rate after every change, so the
// leaderboard mirror and the live feed stay in step with the table.
type RateSink interface {
	PublishRate(playerID uint, rate float64)
}

type GameService struct {
	games   GameRepository
	players player.PlayerRepository
	roller  Roller
	sink    RateSink
}

func NewGameService(games GameRepository, players player.PlayerRepository, roller Roller, sink RateSink) *GameService {
	return &GameService{
		games:   games,
		players: players,
		roller:  roller,
		sink:    sink,
	}
}

// RollDice draws two dice for the player, records the outcome and
// refreshes the player's cached success rate.
func (s *GameService) RollDice(playerID, callerID uint) (*Game, error) {
	if _, err := player.Authorize(s.players, playerID, callerID); err != nil {
		return nil, err
	}

	diceOne, diceTwo := s.roller.Roll()
	g := &Game{
		PlayerID: playerID,
		DiceOne:  diceOne,
		DiceTwo:  diceTwo,
		Win:      IsWin(diceOne, diceTwo),
	}

	rate, err := s.games.CreateForPlayer(g)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error saving game", err)
	}

	if s.sink != nil {
		s.sink.PublishRate(playerID, rate)
	}
	return g, nil
}

func (s *GameService) DeleteGames(playerID, callerID uint) error {
	if _, err := player.Authorize(s.players, playerID, callerID); err != nil {
		return err
	}

	if err := s.games.DeleteForPlayer(playerID); err != nil {
		return apperrors.NewAppError(500, "error deleting games", err)
	}

	if s.sink != nil {
		s.sink.PublishRate(playerID, 0)
	}
	return nil
}

func (s *GameService) ListGames(playerID, callerID uint) ([]Game, error) {
	if _, err := player.Authorize(s.players, playerID, callerID); err != nil {
		return nil, err
	}

	games, err := s.games.FindByPlayer(playerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing games", err)
	}
	if len(games) == 0 {
		return nil, apperrors.NotFound("No games found for this user")
	}
	return games, nil
}
