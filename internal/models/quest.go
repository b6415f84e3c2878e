package models

import "sort"

// SkillRequirement is a minimum level requirement in a single skill
type SkillRequirement struct {
	Skill Skill
	Level int
}

// XP returns the experience needed to satisfy this requirement from zero
func (r SkillRequirement) XP() float64 {
	return r.Skill.XPAt(r.Level)
}

// MergeSkillRequirements combines two requirement sets keeping the highest
// level per skill, in catalog skill order
func MergeSkillRequirements(a, b []SkillRequirement) []SkillRequirement {
	var levels [NumSkills]int
	for _, r := range a {
		if r.Level > levels[r.Skill] {
			levels[r.Skill] = r.Level
		}
	}
	for _, r := range b {
		if r.Level > levels[r.Skill] {
			levels[r.Skill] = r.Level
		}
	}

	var merged []SkillRequirement
	for i := 0; i < NumSkills; i++ {
		if levels[i] > 0 {
			merged = append(merged, SkillRequirement{Skill: Skill(i), Level: levels[i]})
		}
	}
	return merged
}

// QuestRequirements is everything a quest demands before completion
type QuestRequirements struct {
	CombatLevel int // 0 = no combat requirement
	QuestPoints int
	QuestIDs    []int // prerequisite quests, sorted ascending
	Skills      []SkillRequirement
}

// SkillXPReward is a direct experience reward in a single skill
type SkillXPReward struct {
	Skill Skill
	XP    float64
}

// QuestRewards is everything a quest grants on completion
type QuestRewards struct {
	QuestPoints int
	XP          []SkillXPReward // stable catalog order
	Lamps       []LampReward    // applied in this order
}

// Quest is an immutable catalog entry, completable once per player
type Quest struct {
	ID           int
	Title        string
	DisplayName  string
	Placeholder  bool
	Requirements QuestRequirements
	Rewards      QuestRewards
}

// Name returns the display name, falling back to the title
func (q *Quest) Name() string {
	if q.DisplayName != "" {
		return q.DisplayName
	}
	return q.Title
}

// MeetsCombatRequirement reports whether the player's combat level is high enough
func (q *Quest) MeetsCombatRequirement(p *Player) bool {
	return q.Requirements.CombatLevel == 0 || p.CombatLevel() >= float64(q.Requirements.CombatLevel)
}

// MeetsQuestPointRequirement reports whether the player has enough quest points
func (q *Quest) MeetsQuestPointRequirement(p *Player) bool {
	return p.QuestPoints() >= q.Requirements.QuestPoints
}

// MeetsQuestRequirements reports whether all prerequisite quests are completed
func (q *Quest) MeetsQuestRequirements(p *Player) bool {
	for _, id := range q.Requirements.QuestIDs {
		if !p.IsQuestCompleted(id) {
			return false
		}
	}
	return true
}

// MeetsSkillRequirements reports whether all skill requirements are satisfied
func (q *Quest) MeetsSkillRequirements(p *Player) bool {
	for _, r := range q.Requirements.Skills {
		if p.Level(r.Skill) < r.Level {
			return false
		}
	}
	return true
}

// MeetsAllRequirements reports whether every requirement is satisfied
func (q *Quest) MeetsAllRequirements(p *Player) bool {
	return q.MeetsCombatRequirement(p) && q.MeetsQuestPointRequirement(p) &&
		q.MeetsQuestRequirements(p) && q.MeetsSkillRequirements(p)
}

// RemainingSkillRequirements returns the skill requirements still standing
// for the player, in the quest's declared order. With all=true every
// requirement is returned regardless of whether it is already satisfied.
func (q *Quest) RemainingSkillRequirements(p *Player, all bool) []SkillRequirement {
	var remaining []SkillRequirement
	for _, r := range q.Requirements.Skills {
		if all || p.Level(r.Skill) < r.Level {
			remaining = append(remaining, r)
		}
	}
	return remaining
}

// TotalRemainingSkillRequirements returns the remaining requirement count,
// the scalar used for selection tie-breaking
func (q *Quest) TotalRemainingSkillRequirements(p *Player, all bool) int {
	return len(q.RemainingSkillRequirements(p, all))
}

// SortQuestsByID sorts a quest slice in ascending ID order
func SortQuestsByID(quests []*Quest) {
	sort.Slice(quests, func(i, j int) bool {
		return quests[i].ID < quests[j].ID
	})
}
