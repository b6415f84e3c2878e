package quests

import "github.com/napolitain/quest-solver/internal/models"

// CreateLampAction resolves a lamp reward attached to a quest entry into an
// action. If the lamp's own requirement is not yet satisfied the action is
// deferred ("future") and carries no skill selection. Otherwise the winning
// combination is recorded against the entry so it cannot be reused by a
// later lamp on the same quest.
func CreateLampAction(p *models.Player, entry *models.QuestEntry, lamp models.LampReward) (*LampAction, error) {
	if !lamp.MeetsRequirements(p) {
		return &LampAction{
			player: p,
			entry:  entry,
			Lamp:   lamp,
			future: true,
		}, nil
	}

	skills, err := bestLampSkills(p, lamp, entry.LampSkillsUsed)
	if err != nil {
		return nil, &NoLampChoiceError{
			QuestID: entry.Quest.ID,
			Lamp:    lamp,
			Used:    entry.UsedLampSkills(),
		}
	}

	entry.MarkLampSkillsUsed(skills)

	return &LampAction{
		player: p,
		entry:  entry,
		Lamp:   lamp,
		Skills: skills,
		XP:     lamp.XPForSkills(p, skills),
	}, nil
}

// errNoChoice is only used as an internal signal; callers wrap it with the
// lamp identity and prior allocations.
type errNoChoice struct{}

func (errNoChoice) Error() string { return "no lamp skill choice" }

// bestLampSkills picks the combination a lamp should be applied to.
//
// The player's ordered skill preference list wins first: the first
// combination containing a preferred skill is taken. Failing that, the
// combination with the largest summed outstanding-experience gap across the
// player's incomplete quests wins, first-wins on ties over the stable
// choice order.
func bestLampSkills(p *models.Player, lamp models.LampReward, used func(models.SkillSet) bool) (models.SkillSet, error) {
	choices := lamp.Choices(p, used)
	if len(choices) == 0 {
		return 0, errNoChoice{}
	}

	for _, pref := range p.LampSkills {
		for _, c := range choices {
			if c.Has(pref) {
				return c, nil
			}
		}
	}

	gaps := remainingXPRequirements(p)

	best := choices[0]
	bestGap := combinationGap(choices[0], gaps)
	for _, c := range choices[1:] {
		if gap := combinationGap(c, gaps); gap > bestGap {
			best = c
			bestGap = gap
		}
	}
	return best, nil
}

// remainingXPRequirements computes, per skill, the experience gap between
// the player's current experience and the highest level any incomplete
// quest still requires in that skill
func remainingXPRequirements(p *models.Player) [models.NumSkills]float64 {
	var max []models.SkillRequirement
	for _, e := range p.IncompleteQuests() {
		max = models.MergeSkillRequirements(max, e.Quest.RemainingSkillRequirements(p, false))
	}

	var gaps [models.NumSkills]float64
	for _, r := range max {
		gaps[r.Skill] = r.XP() - p.XP(r.Skill)
	}
	return gaps
}

func combinationGap(set models.SkillSet, gaps [models.NumSkills]float64) float64 {
	total := 0.0
	for _, s := range set.Skills() {
		total += gaps[s]
	}
	return total
}
