package player

import (
	"net/mail"

	"github.com/ddiazp/LuckySevens/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 14

type PlayerService struct {
	repo PlayerRepository
}

func NewPlayerService(repo PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

// Authorize resolves the target player and checks that the caller owns it.
// Every player-scoped operation (roll, delete, list games, rename) goes
// through this single gate.
func Authorize(repo PlayerRepository, playerID, callerID uint) (*Player, error) {
	p, err := repo.FindByID(playerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching user", err)
	}
	if p == nil {
		return nil, apperrors.NotFound("User not found")
	}
	if playerID != callerID {
		return nil, apperrors.Forbidden("You cannot act on another player's resources")
	}
	return p, nil
}

func (s *PlayerService) Register(req RegisterRequest) (*Player, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperrors.Validation("a valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}

	existing, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error checking email", err)
	}
	if existing != nil {
		return nil, apperrors.Validation("email already in use")
	}

	name := req.Name
	if name == "" {
		name = AnonymousName
	}
	if name != AnonymousName {
		taken, err := s.repo.FindByName(name)
		if err != nil {
			return nil, apperrors.NewAppError(500, "error checking name", err)
		}
		if taken != nil {
			return nil, apperrors.Validation("name already in use")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error hashing password", err)
	}

	newPlayer := Player{
		Name:     name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     RolePlayer,
	}
	if err := s.repo.Create(&newPlayer); err != nil {
		return nil, apperrors.NewAppError(500, "error creating user", err)
	}

	return &newPlayer, nil
}

func (s *PlayerService) Login(req LoginRequest) (string, *Player, error) {
	p, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return "", nil, apperrors.NewAppError(500, "error fetching user", err)
	}
	if p == nil {
		return "", nil, apperrors.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(req.Password)); err != nil {
		return "", nil, apperrors.Unauthorized("Invalid credentials")
	}

	token, err := GenerateJWT(p.ID, p.Role)
	if err != nil {
		return "", nil, apperrors.NewAppError(500, "error creating jwt token", err)
	}
	return token, p, nil
}

// UpdateName renames a player. An empty name falls back to the anonymous
// placeholder; any other name must not belong to a different player.
func (s *PlayerService) UpdateName(playerID, callerID uint, name string) error {
	p, err := Authorize(s.repo, playerID, callerID)
	if err != nil {
		return err
	}

	newName := name
	if newName == "" {
		newName = AnonymousName
	}
	if newName != AnonymousName {
		existing, err := s.repo.FindByName(newName)
		if err != nil {
			return apperrors.NewAppError(500, "error checking name", err)
		}
		if existing != nil && existing.ID != p.ID {
			return apperrors.Conflict("The name is already in use. Please choose another one.")
		}
	}

	p.Name = newName
	if err := s.repo.Save(p); err != nil {
		return apperrors.NewAppError(500, "error updating user", err)
	}
	return nil
}

func (s *PlayerService) ListPlayers() ([]Player, error) {
	players, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing players", err)
	}
	return players, nil
}
