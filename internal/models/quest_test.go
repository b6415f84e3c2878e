package models

import "testing"

func testQuest(id int, reqs QuestRequirements, rewards QuestRewards) *Quest {
	return &Quest{
		ID:           id,
		Title:        "quest",
		Requirements: reqs,
		Rewards:      rewards,
	}
}

func freshPlayer(entries ...*QuestEntry) *Player {
	return NewPlayer("test", entries, nil, false, false)
}

func TestQuestName(t *testing.T) {
	q := &Quest{Title: "cooks_assistant", DisplayName: "Cook's Assistant"}
	if q.Name() != "Cook's Assistant" {
		t.Errorf("Name() = %q", q.Name())
	}
	q.DisplayName = ""
	if q.Name() != "cooks_assistant" {
		t.Errorf("Name() = %q", q.Name())
	}
}

func TestMeetsCombatRequirement(t *testing.T) {
	p := freshPlayer()
	q := testQuest(1, QuestRequirements{CombatLevel: 4}, QuestRewards{})

	// Fresh player combat level is 3.4
	if q.MeetsCombatRequirement(p) {
		t.Error("fresh player should not meet combat 4")
	}

	p.SetXP(Attack, Attack.XPAt(40))
	p.SetXP(Strength, Strength.XPAt(40))
	if !q.MeetsCombatRequirement(p) {
		t.Errorf("combat %v should meet requirement 4", p.CombatLevel())
	}

	if !testQuest(2, QuestRequirements{}, QuestRewards{}).MeetsCombatRequirement(p) {
		t.Error("zero combat requirement must always pass")
	}
}

func TestMeetsQuestRequirements(t *testing.T) {
	prereq := testQuest(1, QuestRequirements{}, QuestRewards{QuestPoints: 1})
	gated := testQuest(2, QuestRequirements{QuestIDs: []int{1}, QuestPoints: 1}, QuestRewards{})

	e1 := NewQuestEntry(prereq, NotStarted, PriorityNormal)
	e2 := NewQuestEntry(gated, NotStarted, PriorityNormal)
	p := freshPlayer(e1, e2)

	if gated.MeetsQuestRequirements(p) {
		t.Error("prerequisite incomplete, requirement should fail")
	}
	if gated.MeetsQuestPointRequirement(p) {
		t.Error("no quest points yet, requirement should fail")
	}

	e1.Status = Completed

	if !gated.MeetsQuestRequirements(p) {
		t.Error("prerequisite completed, requirement should pass")
	}
	if !gated.MeetsQuestPointRequirement(p) {
		t.Errorf("quest points = %d, requirement should pass", p.QuestPoints())
	}
}

func TestRemainingSkillRequirements(t *testing.T) {
	q := testQuest(1, QuestRequirements{Skills: []SkillRequirement{
		{Skill: Cooking, Level: 40},
		{Skill: Agility, Level: 10},
	}}, QuestRewards{})

	p := freshPlayer()
	p.SetXP(Agility, Agility.XPAt(10))

	remaining := q.RemainingSkillRequirements(p, false)
	if len(remaining) != 1 || remaining[0].Skill != Cooking {
		t.Errorf("RemainingSkillRequirements(false) = %v", remaining)
	}

	if got := q.TotalRemainingSkillRequirements(p, true); got != 2 {
		t.Errorf("TotalRemainingSkillRequirements(true) = %d, want 2", got)
	}
	if got := q.TotalRemainingSkillRequirements(p, false); got != 1 {
		t.Errorf("TotalRemainingSkillRequirements(false) = %d, want 1", got)
	}
}

func TestMergeSkillRequirements(t *testing.T) {
	a := []SkillRequirement{{Skill: Cooking, Level: 40}, {Skill: Attack, Level: 10}}
	b := []SkillRequirement{{Skill: Cooking, Level: 30}, {Skill: Agility, Level: 25}}

	merged := MergeSkillRequirements(a, b)

	want := []SkillRequirement{
		{Skill: Attack, Level: 10},
		{Skill: Cooking, Level: 40},
		{Skill: Agility, Level: 25},
	}
	if len(merged) != len(want) {
		t.Fatalf("merged = %v", merged)
	}
	for i, r := range want {
		if merged[i] != r {
			t.Errorf("merged[%d] = %v, want %v", i, merged[i], r)
		}
	}
}

func TestSkillRequirementXP(t *testing.T) {
	r := SkillRequirement{Skill: Cooking, Level: 50}
	if r.XP() != 101333 {
		t.Errorf("XP() = %v, want 101333", r.XP())
	}
}

func TestSortQuestsByID(t *testing.T) {
	quests := []*Quest{{ID: 3}, {ID: 1}, {ID: 2}}
	SortQuestsByID(quests)
	for i, q := range quests {
		if q.ID != i+1 {
			t.Errorf("quests[%d].ID = %d", i, q.ID)
		}
	}
}
