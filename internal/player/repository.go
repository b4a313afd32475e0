package player

import (
	"errors"

	"gorm.io/gorm"
)

type PlayerRepository interface {
	Create(p *Player) error
	Save(p *Player) error
	FindByID(id uint) (*Player, error)
	FindByEmail(email string) (*Player, error)
	FindByName(name string) (*Player, error)
	FindAll() ([]Player, error)
	FindAllByRateDesc() ([]Player, error)
}

type GormPlayerRepository struct {
	db *gorm.DB
}

func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

func (r *GormPlayerRepository) Create(p *Player) error {
	return r.db.Create(p).Error
}

func (r *GormPlayerRepository) Save(p *Player) error {
	return r.db.Save(p).Error
}

func (r *GormPlayerRepository) FindByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPlayerRepository) FindByEmail(email string) (*Player, error) {
	var p Player
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPlayerRepository) FindByName(name string) (*Player, error) {
	var p Player
	if err := r.db.Where("name = ?", name).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPlayerRepository) FindAll() ([]Player, error) {
	var players []Player
	if err := r.db.Order("id ASC").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *GormPlayerRepository) FindAllByRateDesc() ([]Player, error) {
	var players []Player
	if err := r.db.Order("success_rate DESC, id ASC").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
