package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/quest-solver/internal/models"
)

// questYAML represents the YAML structure for a quest
type questYAML struct {
	ID           int    `yaml:"id"`
	Title        string `yaml:"title"`
	DisplayName  string `yaml:"display_name"`
	Placeholder  bool   `yaml:"placeholder"`
	Requirements struct {
		Combat      int   `yaml:"combat"`
		QuestPoints int   `yaml:"quest_points"`
		Quests      []int `yaml:"quests"`
		Skills      []struct {
			Skill string `yaml:"skill"`
			Level int    `yaml:"level"`
		} `yaml:"skills"`
	} `yaml:"requirements"`
	Rewards struct {
		QuestPoints int `yaml:"quest_points"`
		XP          []struct {
			Skill string  `yaml:"skill"`
			XP    float64 `yaml:"xp"`
		} `yaml:"xp"`
		Lamps []lampYAML `yaml:"lamps"`
	} `yaml:"rewards"`
}

// lampYAML represents the YAML structure for a lamp reward
type lampYAML struct {
	Type         string  `yaml:"type"`
	XP           float64 `yaml:"xp"`
	Multiplier   float64 `yaml:"multiplier"`
	Combined     bool    `yaml:"combined"`
	Requirements []struct {
		Skill string `yaml:"skill"`
		Level int    `yaml:"level"`
	} `yaml:"requirements"`
}

type catalogYAML struct {
	Quests []questYAML `yaml:"quests"`
}

// LoadQuests loads the quest catalog from a YAML file
func LoadQuests(path string) ([]*models.Quest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quest catalog: %w", err)
	}

	var raw catalogYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quest catalog: %w", err)
	}

	quests := make([]*models.Quest, 0, len(raw.Quests))
	ids := make(map[int]bool, len(raw.Quests))
	for _, rq := range raw.Quests {
		if ids[rq.ID] {
			return nil, fmt.Errorf("duplicate quest id %d", rq.ID)
		}
		ids[rq.ID] = true

		q, err := buildQuest(rq)
		if err != nil {
			return nil, fmt.Errorf("quest %d: %w", rq.ID, err)
		}
		quests = append(quests, q)
	}

	// Prerequisite quest ids must resolve within the catalog
	for _, q := range quests {
		for _, dep := range q.Requirements.QuestIDs {
			if !ids[dep] {
				return nil, fmt.Errorf("quest %d requires unknown quest %d", q.ID, dep)
			}
		}
	}

	return quests, nil
}

func buildQuest(raw questYAML) (*models.Quest, error) {
	q := &models.Quest{
		ID:          raw.ID,
		Title:       raw.Title,
		DisplayName: raw.DisplayName,
		Placeholder: raw.Placeholder,
	}

	q.Requirements.CombatLevel = raw.Requirements.Combat
	q.Requirements.QuestPoints = raw.Requirements.QuestPoints
	q.Requirements.QuestIDs = raw.Requirements.Quests
	for _, sr := range raw.Requirements.Skills {
		skill, err := models.ParseSkill(sr.Skill)
		if err != nil {
			return nil, err
		}
		if sr.Level < 1 || sr.Level > skill.MaxLevel() {
			return nil, fmt.Errorf("invalid %s requirement level %d", skill, sr.Level)
		}
		q.Requirements.Skills = append(q.Requirements.Skills, models.SkillRequirement{
			Skill: skill,
			Level: sr.Level,
		})
	}

	q.Rewards.QuestPoints = raw.Rewards.QuestPoints
	for _, xr := range raw.Rewards.XP {
		skill, err := models.ParseSkill(xr.Skill)
		if err != nil {
			return nil, err
		}
		q.Rewards.XP = append(q.Rewards.XP, models.SkillXPReward{Skill: skill, XP: xr.XP})
	}
	for _, lr := range raw.Rewards.Lamps {
		lamp, err := buildLamp(lr)
		if err != nil {
			return nil, err
		}
		q.Rewards.Lamps = append(q.Rewards.Lamps, lamp)
	}

	return q, nil
}

func buildLamp(raw lampYAML) (models.LampReward, error) {
	lampType, err := models.ParseLampType(raw.Type)
	if err != nil {
		return models.LampReward{}, err
	}

	lamp := models.LampReward{
		Type:       lampType,
		XP:         raw.XP,
		Multiplier: raw.Multiplier,
		Combined:   raw.Combined,
	}
	for _, sr := range raw.Requirements {
		skill, err := models.ParseSkill(sr.Skill)
		if err != nil {
			return models.LampReward{}, err
		}
		lamp.Requirements = append(lamp.Requirements, models.SkillRequirement{
			Skill: skill,
			Level: sr.Level,
		})
	}
	return lamp, nil
}

// CreateQuestEntries wraps quests into open entries, applying per-quest
// priority overrides
func CreateQuestEntries(quests []*models.Quest, priorities map[int]models.QuestPriority) []*models.QuestEntry {
	entries := make([]*models.QuestEntry, 0, len(quests))
	for _, q := range quests {
		priority := models.PriorityNormal
		if p, ok := priorities[q.ID]; ok {
			priority = p
		}
		entries = append(entries, models.NewQuestEntry(q, models.NotStarted, priority))
	}
	return entries
}
