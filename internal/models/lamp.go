package models

import (
	"fmt"
	"math"
)

// LampType determines the experience formula of a lamp reward
type LampType int

const (
	LampXP LampType = iota // fixed amount
	LampSmallXP
	LampMediumXP
	LampLargeXP
	LampHugeXP
	LampDragonkin
)

// String returns the user-facing lamp name
func (t LampType) String() string {
	switch t {
	case LampXP:
		return "XP Lamp"
	case LampSmallXP:
		return "Small XP Lamp"
	case LampMediumXP:
		return "Medium XP Lamp"
	case LampLargeXP:
		return "Large XP Lamp"
	case LampHugeXP:
		return "Huge XP Lamp"
	case LampDragonkin:
		return "Dragonkin Lamp"
	default:
		return "Unknown Lamp"
	}
}

// ParseLampType converts a catalog tag to a LampType
func ParseLampType(tag string) (LampType, error) {
	switch tag {
	case "xp":
		return LampXP, nil
	case "small_xp":
		return LampSmallXP, nil
	case "medium_xp":
		return LampMediumXP, nil
	case "large_xp":
		return LampLargeXP, nil
	case "huge_xp":
		return LampHugeXP, nil
	case "dragonkin":
		return LampDragonkin, nil
	default:
		return 0, fmt.Errorf("unknown lamp type: %q", tag)
	}
}

// tierAnchor pins a tier's growth curve to a known in-game grant at one
// level, so that grant reproduces exactly.
type tierAnchor struct {
	xp    float64
	level int
}

// tierGrowth is the per-level growth rate of the tiered curves, fitted to
// the spacing between the anchors.
const tierGrowth = 1.0436

func (t LampType) anchor() tierAnchor {
	switch t {
	case LampSmallXP:
		return tierAnchor{xp: 784, level: 41}
	case LampMediumXP:
		return tierAnchor{xp: 5185, level: 69}
	case LampLargeXP:
		return tierAnchor{xp: 11786, level: 72}
	case LampHugeXP:
		return tierAnchor{xp: 47380, level: 88}
	default:
		return tierAnchor{}
	}
}

// tierXP returns the grant of a tiered lamp at the given player level.
// Dragonkin lamps follow a cubic curve; the other tiers grow geometrically
// from their anchor. Both operate on level-1.
func (t LampType) tierXP(level int) float64 {
	n := float64(level - 1)
	if t == LampDragonkin {
		return math.Floor((n*n*n - 2*n*n + 100*n) / 20)
	}
	a := t.anchor()
	return math.Floor(a.xp * math.Pow(tierGrowth, n-float64(a.level)))
}

// LampReward is a discretionary experience grant attached to a quest.
//
// Requirements lists the applicable skills and the minimum level needed in
// each. With Combined=false the lamp is applied to one skill chosen from the
// list (or any skill at all when the list is empty); with Combined=true the
// whole list is granted together as a single combination.
type LampReward struct {
	Type         LampType
	XP           float64 // fixed amount, LampXP only
	Multiplier   float64 // 0 means 1
	Requirements []SkillRequirement
	Combined     bool
}

// MeetsRequirements reports whether the lamp itself can be used by the player
func (l LampReward) MeetsRequirements(p *Player) bool {
	if len(l.Requirements) == 0 {
		return true
	}
	if l.Combined {
		for _, r := range l.Requirements {
			if p.Level(r.Skill) < r.Level {
				return false
			}
		}
		return true
	}
	for _, r := range l.Requirements {
		if p.Level(r.Skill) >= r.Level {
			return true
		}
	}
	return false
}

// Choices returns the valid skill-combinations for the player, in a stable
// order, excluding combinations for which used returns true
func (l LampReward) Choices(p *Player, used func(SkillSet) bool) []SkillSet {
	var choices []SkillSet

	add := func(set SkillSet) {
		if used == nil || !used(set) {
			choices = append(choices, set)
		}
	}

	switch {
	case len(l.Requirements) == 0:
		for _, s := range AllSkills() {
			add(NewSkillSet(s))
		}
	case l.Combined:
		set := SkillSet(0)
		for _, r := range l.Requirements {
			if p.Level(r.Skill) < r.Level {
				return nil
			}
			set = set.Add(r.Skill)
		}
		add(set)
	default:
		for _, r := range l.Requirements {
			if p.Level(r.Skill) >= r.Level {
				add(NewSkillSet(r.Skill))
			}
		}
	}

	return choices
}

// XPForSkills returns the experience the lamp grants to each skill of the
// chosen combination, given the player's current state
func (l LampReward) XPForSkills(p *Player, skills SkillSet) float64 {
	var xp float64

	if l.Type == LampXP {
		xp = l.XP
	} else {
		// Tiered lamps scale with the lowest level among the chosen skills
		level := 0
		for _, s := range skills.Skills() {
			if lvl := p.Level(s); level == 0 || lvl < level {
				level = lvl
			}
		}
		if level == 0 {
			return 0
		}
		xp = l.Type.tierXP(level)
	}

	if l.Multiplier != 0 {
		xp *= l.Multiplier
	}
	return xp
}
