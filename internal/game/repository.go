package game

import (
	"github.com/ddiazp/LuckySevens/internal/player"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository interface {
	// CreateForPlayer inserts the game and recomputes the player's
	// success rate over the updated game set, both in one transaction.
	// Returns the new rate.
	CreateForPlayer(g *Game) (float64, error)
	// DeleteForPlayer removes every game of the player and resets the
	// rate to 0 in one transaction. Deleting zero games still succeeds.
	DeleteForPlayer(playerID uint) error
	FindByPlayer(playerID uint) ([]Game, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) CreateForPlayer(g *Game) (float64, error) {
	var rate float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Lock the player row so two concurrent rolls cannot interleave
		// their count-then-write sequences and lose an update.
		var p player.Player
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, g.PlayerID).Error; err != nil {
			return err
		}

		if err := tx.Create(g).Error; err != nil {
			return err
		}

		var total, wins int64
		if err := tx.Model(&Game{}).Where("player_id = ?", g.PlayerID).Count(&total).Error; err != nil {
			return err
		}
		if err := tx.Model(&Game{}).Where("player_id = ? AND win = ?", g.PlayerID, true).Count(&wins).Error; err != nil {
			return err
		}

		rate = SuccessRate(wins, total)
		return tx.Model(&p).Update("success_rate", rate).Error
	})
	if err != nil {
		return 0, err
	}
	return rate, nil
}

func (r *GormGameRepository) DeleteForPlayer(playerID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var p player.Player
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, playerID).Error; err != nil {
			return err
		}

		if err := tx.Where("player_id = ?", playerID).Delete(&Game{}).Error; err != nil {
			return err
		}

		// Zero games means zero rate by definition, no recomputation.
		return tx.Model(&p).Update("success_rate", float64(0)).Error
	})
}

func (r *GormGameRepository) FindByPlayer(playerID uint) ([]Game, error) {
	var games []Game
	if err := r.db.Where("player_id = ?", playerID).Order("id ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
