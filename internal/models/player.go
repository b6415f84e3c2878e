package models

import (
	"math"
	"sort"
)

// Player is the simulated player a planning run mutates. One run owns its
// player exclusively; independent runs must construct independent players.
type Player struct {
	Name        string
	LampSkills  []Skill // ordered preference for lamp allocation
	Ironman     bool
	Recommended bool

	xps     [NumSkills]float64
	entries []*QuestEntry // sorted by quest ID
}

// NewPlayer creates a player with default experience (level 1 everywhere,
// Constitution level 10) owning the given quest entries
func NewPlayer(name string, entries []*QuestEntry, lampSkills []Skill, ironman, recommended bool) *Player {
	sorted := make([]*QuestEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Quest.ID < sorted[j].Quest.ID
	})

	return &Player{
		Name:        name,
		LampSkills:  lampSkills,
		Ironman:     ironman,
		Recommended: recommended,
		xps:         InitialXPs(),
		entries:     sorted,
	}
}

// XP returns the player's experience in a skill
func (p *Player) XP(s Skill) float64 {
	return p.xps[s]
}

// SetXP overwrites the player's experience in a skill, clamped at zero
func (p *Player) SetXP(s Skill, xp float64) {
	p.xps[s] = math.Max(0, xp)
}

// AddXP adds experience to a skill. Additions that would make the total
// negative are ignored.
func (p *Player) AddXP(s Skill, xp float64) {
	if newXP := p.xps[s] + xp; newXP >= 0 {
		p.xps[s] = newXP
	}
}

// Level returns the player's level in a skill
func (p *Player) Level(s Skill) int {
	return s.LevelAt(p.xps[s])
}

// Levels returns all skill levels indexed by skill
func (p *Player) Levels() [NumSkills]int {
	var levels [NumSkills]int
	for i := 0; i < NumSkills; i++ {
		levels[i] = Skill(i).LevelAt(p.xps[i])
	}
	return levels
}

// TotalLevel returns the sum of all skill levels
func (p *Player) TotalLevel() int {
	total := 0
	for _, lvl := range p.Levels() {
		total += lvl
	}
	return total
}

// CombatLevel computes the player's combat level
func (p *Player) CombatLevel() float64 {
	attack := float64(p.Level(Attack))
	constitution := float64(p.Level(Constitution))
	defence := float64(p.Level(Defence))
	magic := float64(p.Level(Magic))
	prayer := float64(p.Level(Prayer))
	ranged := float64(p.Level(Ranged))
	strength := float64(p.Level(Strength))
	summoning := float64(p.Level(Summoning))

	max := math.Max(attack+strength, math.Max(2*magic, 2*ranged))
	max *= 13.0 / 10.0

	return (max + defence + constitution + math.Floor(prayer/2) + math.Floor(summoning/2)) / 4
}

// QuestPoints returns the points earned from completed quests
func (p *Player) QuestPoints() int {
	points := 0
	for _, e := range p.entries {
		if e.Status == Completed {
			points += e.Quest.Rewards.QuestPoints
		}
	}
	return points
}

// Quests returns all entries in quest-ID order
func (p *Player) Quests() []*QuestEntry {
	return p.entries
}

// IncompleteQuests returns the entries not yet completed, in quest-ID order
func (p *Player) IncompleteQuests() []*QuestEntry {
	var incomplete []*QuestEntry
	for _, e := range p.entries {
		if e.Status != Completed {
			incomplete = append(incomplete, e)
		}
	}
	return incomplete
}

// CompletedQuests returns the completed entries in quest-ID order
func (p *Player) CompletedQuests() []*QuestEntry {
	var completed []*QuestEntry
	for _, e := range p.entries {
		if e.Status == Completed {
			completed = append(completed, e)
		}
	}
	return completed
}

// Entry returns the entry for a quest ID, or nil
func (p *Player) Entry(questID int) *QuestEntry {
	for _, e := range p.entries {
		if e.Quest.ID == questID {
			return e
		}
	}
	return nil
}

// IsQuestCompleted reports whether the quest is completed
func (p *Player) IsQuestCompleted(questID int) bool {
	e := p.Entry(questID)
	return e != nil && e.Status == Completed
}

// Copy returns a deep copy owning its own entries and experience
func (p *Player) Copy() *Player {
	entries := make([]*QuestEntry, len(p.entries))
	for i, e := range p.entries {
		entries[i] = e.Copy()
	}

	lampSkills := make([]Skill, len(p.LampSkills))
	copy(lampSkills, p.LampSkills)

	copied := NewPlayer(p.Name, entries, lampSkills, p.Ironman, p.Recommended)
	copied.xps = p.xps
	return copied
}
