// Package quests implements the greedy quest-path planning engine: it takes
// a simulated player owning a set of quest entries and produces the ordered
// action sequence (train, quest, lamp) that completes every quest.
package quests

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/napolitain/quest-solver/internal/models"
)

// ActionType tags the kind of a planned action
type ActionType int

const (
	ActionTrain ActionType = iota
	ActionQuest
	ActionLamp
)

func (t ActionType) String() string {
	switch t {
	case ActionTrain:
		return "TRAIN"
	case ActionQuest:
		return "QUEST"
	case ActionLamp:
		return "LAMP"
	default:
		return "UNKNOWN"
	}
}

// Action is a single planned step. Applying an action mutates the player it
// is given; copying binds it to another player without re-applying anything.
type Action interface {
	Type() ActionType
	Message() string
	Future() bool
	MeetsRequirements(p *models.Player) bool
	Apply(p *models.Player)
	CopyForPlayer(p *models.Player) Action
	Quest() *models.Quest
	Player() *models.Player
}

// formatXP renders experience amounts the way messages expect:
// 500 -> "500", 1000 -> "1k", 5185 -> "5.185k", 187.5 -> "187.5"
func formatXP(xp float64) string {
	if xp >= 1000 {
		return trimZeros(strconv.FormatFloat(xp/1000, 'f', 3, 64)) + "k"
	}
	return trimZeros(strconv.FormatFloat(xp, 'f', 3, 64))
}

func trimZeros(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// TrainAction trains one skill from the player's current experience up to
// the experience required by a quest skill requirement
type TrainAction struct {
	player  *models.Player
	entry   *models.QuestEntry
	Skill   models.Skill
	StartXP float64
	EndXP   float64
}

func (a *TrainAction) Type() ActionType { return ActionTrain }

func (a *TrainAction) Message() string {
	return fmt.Sprintf("Train %s to level %d, requiring %s xp",
		a.Skill, a.Skill.LevelAt(a.EndXP), formatXP(a.EndXP-a.StartXP))
}

func (a *TrainAction) Future() bool { return false }

func (a *TrainAction) MeetsRequirements(p *models.Player) bool { return true }

func (a *TrainAction) Apply(p *models.Player) {
	p.AddXP(a.Skill, a.EndXP-a.StartXP)
}

func (a *TrainAction) CopyForPlayer(p *models.Player) Action {
	copied := *a
	copied.player = p
	return &copied
}

func (a *TrainAction) Quest() *models.Quest   { return a.entry.Quest }
func (a *TrainAction) Player() *models.Player { return a.player }

// QuestAction completes a quest: applies its direct rewards and marks the
// entry completed. Quest points follow from the completed status.
type QuestAction struct {
	player *models.Player
	entry  *models.QuestEntry
}

func (a *QuestAction) Type() ActionType { return ActionQuest }

func (a *QuestAction) Message() string { return a.entry.Quest.Name() }

func (a *QuestAction) Future() bool { return false }

func (a *QuestAction) MeetsRequirements(p *models.Player) bool {
	return a.entry.Quest.MeetsAllRequirements(p)
}

func (a *QuestAction) Apply(p *models.Player) {
	for _, reward := range a.entry.Quest.Rewards.XP {
		p.AddXP(reward.Skill, reward.XP)
	}
	a.entry.Status = models.Completed
}

func (a *QuestAction) CopyForPlayer(p *models.Player) Action {
	copied := *a
	copied.player = p
	return &copied
}

func (a *QuestAction) Quest() *models.Quest   { return a.entry.Quest }
func (a *QuestAction) Player() *models.Player { return a.player }

// LampAction applies a lamp reward to a resolved skill-combination. A future
// lamp action carries no combination and no effect until the queue resolves
// it into a concrete one.
type LampAction struct {
	player *models.Player
	entry  *models.QuestEntry
	Lamp   models.LampReward
	Skills models.SkillSet
	XP     float64 // resolved grant per chosen skill, 0 while future
	future bool
}

func (a *LampAction) Type() ActionType { return ActionLamp }

func (a *LampAction) Message() string {
	title := a.entry.Quest.Name()
	if a.future {
		// Tiered grants depend on the eventual skill choice, so no amount
		// can be quoted while the action is deferred.
		if a.Lamp.Type != models.LampXP {
			return fmt.Sprintf("%s: Use %s (when requirements are met)",
				title, a.Lamp.Type)
		}
		return fmt.Sprintf("%s: Use %s to gain %s xp (when requirements are met)",
			title, a.Lamp.Type, formatXP(a.Lamp.XP))
	}
	return fmt.Sprintf("%s: Use %s on %s to gain %s xp",
		title, a.Lamp.Type, a.Skills, formatXP(a.XP))
}

func (a *LampAction) Future() bool { return a.future }

func (a *LampAction) MeetsRequirements(p *models.Player) bool {
	return a.Lamp.MeetsRequirements(p)
}

func (a *LampAction) Apply(p *models.Player) {
	if a.future {
		return
	}
	for _, s := range a.Skills.Skills() {
		p.AddXP(s, a.XP)
	}
}

func (a *LampAction) CopyForPlayer(p *models.Player) Action {
	copied := *a
	copied.player = p
	return &copied
}

func (a *LampAction) Quest() *models.Quest      { return a.entry.Quest }
func (a *LampAction) Player() *models.Player    { return a.player }
func (a *LampAction) Entry() *models.QuestEntry { return a.entry }
