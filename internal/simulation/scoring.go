package simulation

import (
	"fmt"
	"math"
)

// ScoreInput - данные завершенной волны для подсчета очков
type ScoreInput struct {
	Ticks           int
	Width           int
	Height          int
	Killed          int
	TotalHeroes     int
	DamageDealt     int
	TotalHeroHP     int
	TreasureReached bool
}

// ComputeScore считает очки волны. Нулевые знаменатели дают 0 вместо деления.
func ComputeScore(in ScoreInput) int {
	var timeScore, killScore, damageScore float64
	if area := in.Width * in.Height; area > 0 {
		timeScore = float64(in.Ticks) / float64(area)
	}
	if in.TotalHeroes > 0 {
		killScore = float64(in.Killed) / float64(in.TotalHeroes)
	}
	if in.TotalHeroHP > 0 {
		damageScore = float64(in.DamageDealt) / float64(in.TotalHeroHP)
	}
	penalty := 0.0
	if in.TreasureReached {
		penalty = 1
	}

	raw := 10000 * (0.30*timeScore + 0.45*killScore + 0.25*damageScore) * (1 - 0.9*penalty)
	return int(math.Round(raw))
}

// WaveResult - итог волны
type WaveResult struct {
	HeroesKilled     int
	HeroesSurvived   int
	ConstructionCost int
	Score            int
	Turns            int
	TreasureReached  bool
}

// Won - оборона выиграла, если не выжил ни один герой
func (r WaveResult) Won() bool {
	return r.HeroesSurvived == 0
}

func (r WaveResult) String() string {
	return fmt.Sprintf("WaveResult(killed=%d, survived=%d, cost=%d, score=%d, turns=%d)",
		r.HeroesKilled, r.HeroesSurvived, r.ConstructionCost, r.Score, r.Turns)
}
