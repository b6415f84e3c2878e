package quests

import (
	"fmt"

	"github.com/napolitain/quest-solver/internal/models"
)

// CompleteQuest expands one quest entry into the action sequence that
// completes it: a train action per unmet skill requirement, the quest
// itself, then one lamp action per lamp reward in catalog order. The
// player is not mutated; callers apply the actions.
func CompleteQuest(p *models.Player, entry *models.QuestEntry) ([]Action, error) {
	q := entry.Quest
	if p.IsQuestCompleted(q.ID) {
		return nil, fmt.Errorf("quest %d already completed", q.ID)
	}
	if !q.MeetsCombatRequirement(p) || !q.MeetsQuestPointRequirement(p) || !q.MeetsQuestRequirements(p) {
		return nil, fmt.Errorf("quest %d requirements not met", q.ID)
	}

	var actions []Action
	for _, r := range q.RemainingSkillRequirements(p, false) {
		actions = append(actions, &TrainAction{
			player:  p,
			entry:   entry,
			Skill:   r.Skill,
			StartXP: p.XP(r.Skill),
			EndXP:   r.XP(),
		})
	}

	actions = append(actions, &QuestAction{player: p, entry: entry})

	for _, lamp := range q.Rewards.Lamps {
		action, err := CreateLampAction(p, entry, lamp)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}

	return actions, nil
}
