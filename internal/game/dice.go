package game

import (
	"math/rand"
	"sync"
	"time"
)

const diceSides = 6

// Roller is the source of dice draws. The engine takes it as a
// dependency so tests can script exact sequences.
type Roller interface {
	Roll() (int, int)
}

type RandRoller struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandRoller() *RandRoller {
	return &RandRoller{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *RandRoller) Roll() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(diceSides) + 1, r.rnd.Intn(diceSides) + 1
}

// IsWin reports whether a two-dice draw wins. A roll wins iff the dice
// sum to seven, a 6/36 chance.
func IsWin(diceOne, diceTwo int) bool {
	return diceOne+diceTwo == 7
}

// SuccessRate is the percentage of won games, 0 when none were played.
func SuccessRate(wins, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}
