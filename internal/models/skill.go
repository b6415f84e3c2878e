package models

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// Skill represents a trainable skill category
type Skill int

const (
	Attack Skill = iota
	Defence
	Strength
	Constitution
	Ranged
	Prayer
	Magic
	Cooking
	Woodcutting
	Fletching
	Fishing
	Firemaking
	Crafting
	Smithing
	Mining
	Herblore
	Agility
	Thieving
	Slayer
	Farming
	Runecrafting
	Hunter
	Construction
	Summoning
	Dungeoneering
	Divination
)

// NumSkills is the number of skill categories
const NumSkills = int(Divination) + 1

var skillNames = [NumSkills]string{
	"Attack", "Defence", "Strength", "Constitution", "Ranged", "Prayer",
	"Magic", "Cooking", "Woodcutting", "Fletching", "Fishing", "Firemaking",
	"Crafting", "Smithing", "Mining", "Herblore", "Agility", "Thieving",
	"Slayer", "Farming", "Runecrafting", "Hunter", "Construction",
	"Summoning", "Dungeoneering", "Divination",
}

// AllSkills returns all skills in deterministic catalog order
func AllSkills() []Skill {
	skills := make([]Skill, NumSkills)
	for i := range skills {
		skills[i] = Skill(i)
	}
	return skills
}

func (s Skill) String() string {
	if s < 0 || int(s) >= NumSkills {
		return fmt.Sprintf("Skill(%d)", int(s))
	}
	return skillNames[s]
}

// ParseSkill converts a skill name to a Skill (case-insensitive)
func ParseSkill(name string) (Skill, error) {
	for i, n := range skillNames {
		if strings.EqualFold(n, name) {
			return Skill(i), nil
		}
	}
	return 0, fmt.Errorf("unknown skill: %q", name)
}

// MaxLevel returns the maximum attainable level for this skill
func (s Skill) MaxLevel() int {
	if s == Dungeoneering {
		return 120
	}
	return 99
}

// xpTable[l] is the experience required for level l, built once from the
// standard curve
var xpTable [128]float64

func init() {
	points := 0.0
	for lvl := 2; lvl < len(xpTable); lvl++ {
		points += math.Floor(float64(lvl-1) + 300*math.Pow(2, float64(lvl-1)/7))
		xpTable[lvl] = math.Floor(points / 4)
	}
}

// XPAt returns the experience required to reach the given level
func (s Skill) XPAt(level int) float64 {
	if level < 1 {
		level = 1
	}
	if max := s.MaxLevel(); level > max {
		level = max
	}
	return xpTable[level]
}

// LevelAt returns the level reached with the given experience
func (s Skill) LevelAt(xp float64) int {
	for lvl := s.MaxLevel(); lvl > 1; lvl-- {
		if xp >= xpTable[lvl] {
			return lvl
		}
	}
	return 1
}

// InitialXPs returns the default starting experience for a fresh player.
// Everything starts at level 1 except Constitution which starts at level 10.
func InitialXPs() [NumSkills]float64 {
	var xps [NumSkills]float64
	xps[Constitution] = Constitution.XPAt(10)
	return xps
}

// SkillSet is a set of skills encoded as a bitmask. It is the canonical
// representation of a lamp skill-combination: comparable, usable as a map
// key and iterated in a stable skill order.
type SkillSet uint32

// NewSkillSet builds a set from the given skills
func NewSkillSet(skills ...Skill) SkillSet {
	var set SkillSet
	for _, s := range skills {
		set = set.Add(s)
	}
	return set
}

// Add returns the set with the skill included
func (set SkillSet) Add(s Skill) SkillSet {
	return set | 1<<uint(s)
}

// Has reports whether the skill is in the set
func (set SkillSet) Has(s Skill) bool {
	return set&(1<<uint(s)) != 0
}

// Len returns the number of skills in the set
func (set SkillSet) Len() int {
	return bits.OnesCount32(uint32(set))
}

// Empty reports whether the set contains no skills
func (set SkillSet) Empty() bool {
	return set == 0
}

// Skills returns the members in catalog order
func (set SkillSet) Skills() []Skill {
	var skills []Skill
	for i := 0; i < NumSkills; i++ {
		if set.Has(Skill(i)) {
			skills = append(skills, Skill(i))
		}
	}
	return skills
}

// String renders the set as a comma-separated list in catalog order
func (set SkillSet) String() string {
	names := make([]string, 0, set.Len())
	for _, s := range set.Skills() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
