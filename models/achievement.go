package models

import (
	"time"
)

const (
	AchievementGuessMaster = "guess_master"
	AchievementPartyLegend = "party_legend"
)

// Achievement: awarded instance. The composite key makes re-awarding a
// natural no-op (reveal may fire twice after a restart).
type Achievement struct {
	PlayerID  string    `json:"player_id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"primaryKey"`
	AwardedAt time.Time `json:"awarded_at" gorm:"autoCreateTime"`
}

// AchievementTrigger: static score threshold config.
type AchievementTrigger struct {
	Code     string
	MinScore int
}

// Predefined achievement triggers, checked at reveal time.
var AchievementTriggers = []AchievementTrigger{
	{Code: AchievementGuessMaster, MinScore: 5},
	{Code: AchievementPartyLegend, MinScore: 10},
}
