package quests

import "github.com/napolitain/quest-solver/internal/models"

// BestQuest picks the next entry to complete from the given incomplete set.
//
// Entries whose combat, quest-point or prerequisite-quest requirements are
// unmet are filtered out (skill requirements deliberately are not: they can
// be trained). The survivors are reduced pairwise: if both meet their skill
// requirements the higher priority wins, a reward-score breaking ties; if
// exactly one is ready it wins outright; if neither is ready the one with
// the fewest total skill requirements ("nearest to trainable") wins. The
// running winner is only ever replaced on a strict win, so selection is
// stable over the quest-ID order of the input.
//
// Returns nil for an empty input. A nil result from a non-empty input is a
// fatal planning failure reported as a NoBestQuestError.
func BestQuest(p *models.Player, entries []*models.QuestEntry) (*models.QuestEntry, error) {
	var candidates []*models.QuestEntry
	for _, e := range entries {
		q := e.Quest
		if q.MeetsCombatRequirement(p) && q.MeetsQuestPointRequirement(p) && q.MeetsQuestRequirements(p) {
			candidates = append(candidates, e)
		}
	}

	if len(candidates) == 0 {
		if len(entries) == 0 {
			return nil, nil
		}
		ids := make([]int, len(entries))
		for i, e := range entries {
			ids[i] = e.Quest.ID
		}
		return nil, &NoBestQuestError{QuestIDs: ids}
	}

	best := candidates[0]
	for _, e := range candidates[1:] {
		best = betterQuest(p, best, e)
	}
	return best, nil
}

// betterQuest compares the running winner against a challenger
func betterQuest(p *models.Player, first, second *models.QuestEntry) *models.QuestEntry {
	firstReady := first.Quest.MeetsSkillRequirements(p)
	secondReady := second.Quest.MeetsSkillRequirements(p)

	switch {
	case firstReady && secondReady:
		return compareByPriority(p, first, second)
	case firstReady:
		return first
	case secondReady:
		return second
	default:
		return compareBySkillRequirements(p, first, second)
	}
}

func compareByPriority(p *models.Player, first, second *models.QuestEntry) *models.QuestEntry {
	if first.Priority != second.Priority {
		if first.Priority > second.Priority {
			return first
		}
		return second
	}
	if questScore(p, second.Quest) > questScore(p, first.Quest) {
		return second
	}
	return first
}

// compareBySkillRequirements returns the entry nearest to trainable,
// measured over all skill requirements, not just unmet ones
func compareBySkillRequirements(p *models.Player, first, second *models.QuestEntry) *models.QuestEntry {
	if second.Quest.TotalRemainingSkillRequirements(p, true) < first.Quest.TotalRemainingSkillRequirements(p, true) {
		return second
	}
	return first
}

// questScore estimates a quest's value: total achievable reward experience
// divided by 100, minus the count of its skill requirements
func questScore(p *models.Player, q *models.Quest) float64 {
	requirements := q.TotalRemainingSkillRequirements(p, true)
	rewards := totalQuestRewards(p, q) / 100
	return rewards - float64(requirements)
}

// totalQuestRewards sums the direct experience rewards plus every lamp whose
// own requirement the player currently meets. Lamp combinations are chosen
// against a scratch used-set so the estimate mirrors an actual allocation
// sequence without touching the entry. Lamps with no resolvable combination
// contribute nothing to the estimate; allocation proper reports those as
// fatal.
func totalQuestRewards(p *models.Player, q *models.Quest) float64 {
	total := 0.0
	for _, reward := range q.Rewards.XP {
		total += reward.XP
	}

	previous := make(map[models.SkillSet]bool)
	for _, lamp := range q.Rewards.Lamps {
		if !lamp.MeetsRequirements(p) {
			continue
		}
		skills, err := bestLampSkills(p, lamp, func(set models.SkillSet) bool { return previous[set] })
		if err != nil {
			continue
		}
		previous[skills] = true
		total += lamp.XPForSkills(p, skills)
	}

	return total
}
