package quests

import (
	"testing"

	"github.com/napolitain/quest-solver/internal/models"
)

func TestCompleteQuestOrdering(t *testing.T) {
	q := &models.Quest{
		ID:    1,
		Title: "Title",
		Requirements: models.QuestRequirements{
			Skills: []models.SkillRequirement{
				{Skill: models.Cooking, Level: 10},
				{Skill: models.Agility, Level: 10},
			},
		},
		Rewards: models.QuestRewards{
			XP:    []models.SkillXPReward{{Skill: models.Attack, XP: 100}},
			Lamps: []models.LampReward{{Type: models.LampXP, XP: 500}},
		},
	}
	entry := testEntry(q)
	p := testPlayer(entry)

	actions, err := CompleteQuest(p, entry)
	if err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}

	// Train per unmet requirement, then the quest, then each lamp
	want := []ActionType{ActionTrain, ActionTrain, ActionQuest, ActionLamp}
	if len(actions) != len(want) {
		t.Fatalf("got %d actions, want %d", len(actions), len(want))
	}
	for i, a := range actions {
		if a.Type() != want[i] {
			t.Errorf("actions[%d] = %v, want %v", i, a.Type(), want[i])
		}
	}

	train := actions[0].(*TrainAction)
	if train.Skill != models.Cooking || train.EndXP != models.Cooking.XPAt(10) {
		t.Errorf("first train = %v to %v", train.Skill, train.EndXP)
	}
}

func TestCompleteQuestSkipsMetRequirements(t *testing.T) {
	q := &models.Quest{
		ID:    1,
		Title: "Title",
		Requirements: models.QuestRequirements{
			Skills: []models.SkillRequirement{{Skill: models.Cooking, Level: 10}},
		},
	}
	entry := testEntry(q)
	p := testPlayer(entry)
	p.SetXP(models.Cooking, models.Cooking.XPAt(10))

	actions, err := CompleteQuest(p, entry)
	if err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}
	if len(actions) != 1 || actions[0].Type() != ActionQuest {
		t.Errorf("actions = %v, want a single quest action", actions)
	}
}

func TestCompleteQuestRejectsCompleted(t *testing.T) {
	q := &models.Quest{ID: 1, Title: "Title"}
	entry := models.NewQuestEntry(q, models.Completed, models.PriorityNormal)
	p := testPlayer(entry)

	if _, err := CompleteQuest(p, entry); err == nil {
		t.Error("completed quest must be rejected")
	}
}

func TestCompleteQuestRejectsUnmetHardRequirements(t *testing.T) {
	q := &models.Quest{ID: 1, Title: "Title", Requirements: models.QuestRequirements{CombatLevel: 100}}
	entry := testEntry(q)
	p := testPlayer(entry)

	if _, err := CompleteQuest(p, entry); err == nil {
		t.Error("unmet combat requirement must be rejected")
	}
}

func TestCompleteQuestDefersGatedLamp(t *testing.T) {
	q := &models.Quest{
		ID:    1,
		Title: "Title",
		Rewards: models.QuestRewards{
			Lamps: []models.LampReward{{
				Type: models.LampXP,
				XP:   1000,
				Requirements: []models.SkillRequirement{
					{Skill: models.Cooking, Level: 50},
				},
			}},
		},
	}
	entry := testEntry(q)
	p := testPlayer(entry)

	actions, err := CompleteQuest(p, entry)
	if err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}
	lamp := actions[len(actions)-1].(*LampAction)
	if !lamp.Future() {
		t.Error("gated lamp should be deferred")
	}
}
