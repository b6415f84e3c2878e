// Package converter projects planning results into the JSON shapes the CLI
// and any downstream consumers emit.
package converter

import (
	"github.com/napolitain/quest-solver/internal/models"
	"github.com/napolitain/quest-solver/internal/solver/quests"
)

// QuestDTO is the wire shape of a quest reference
type QuestDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ActionDTO is the wire shape of a single planned action. Player is the
// snapshot the action is bound to, so consumers can render stats over time.
type ActionDTO struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Quest   QuestDTO  `json:"quest"`
	Player  PlayerDTO `json:"player"`
	Future  bool      `json:"future"`
	Skills  []string  `json:"skills,omitempty"`
	XP      float64   `json:"xp,omitempty"`
}

// PathStatsDTO is the wire shape of path summary statistics
type PathStatsDTO struct {
	PercentComplete float64 `json:"percent_complete"`
}

// PathDTO is the wire shape of a full path
type PathDTO struct {
	ID      string       `json:"id"`
	Actions []ActionDTO  `json:"actions"`
	Stats   PathStatsDTO `json:"stats"`
}

// PlayerDTO is the wire shape of a player snapshot
type PlayerDTO struct {
	Name        string         `json:"name"`
	Levels      map[string]int `json:"levels"`
	TotalLevel  int            `json:"total_level"`
	CombatLevel float64        `json:"combat_level"`
	QuestPoints int            `json:"quest_points"`
}

// ActionToDTO converts a planned action
func ActionToDTO(a quests.Action) ActionDTO {
	dto := ActionDTO{
		Type:    a.Type().String(),
		Message: a.Message(),
		Quest:   QuestDTO{ID: a.Quest().ID, Name: a.Quest().Name()},
		Player:  PlayerToDTO(a.Player()),
		Future:  a.Future(),
	}

	switch v := a.(type) {
	case *quests.TrainAction:
		dto.Skills = []string{v.Skill.String()}
		dto.XP = v.EndXP - v.StartXP
	case *quests.LampAction:
		for _, s := range v.Skills.Skills() {
			dto.Skills = append(dto.Skills, s.String())
		}
		dto.XP = v.XP
	}

	return dto
}

// PathToDTO converts a full path
func PathToDTO(p *quests.Path) PathDTO {
	dto := PathDTO{
		ID:      p.ID.String(),
		Actions: make([]ActionDTO, 0, len(p.Actions)),
		Stats:   PathStatsDTO{PercentComplete: p.Stats.PercentComplete},
	}
	for _, a := range p.Actions {
		dto.Actions = append(dto.Actions, ActionToDTO(a))
	}
	return dto
}

// PlayerToDTO converts a player snapshot
func PlayerToDTO(p *models.Player) PlayerDTO {
	levels := make(map[string]int, models.NumSkills)
	for _, s := range models.AllSkills() {
		levels[s.String()] = p.Level(s)
	}
	return PlayerDTO{
		Name:        p.Name,
		Levels:      levels,
		TotalLevel:  p.TotalLevel(),
		CombatLevel: p.CombatLevel(),
		QuestPoints: p.QuestPoints(),
	}
}
