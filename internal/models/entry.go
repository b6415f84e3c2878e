package models

import (
	"fmt"
	"sort"
	"strings"
)

// QuestStatus is the per-player progress of a quest.
// It only ever transitions forward to Completed.
type QuestStatus int

const (
	NotStarted QuestStatus = iota
	InProgress
	Completed
)

func (s QuestStatus) String() string {
	switch s {
	case NotStarted:
		return "NOT_STARTED"
	case InProgress:
		return "IN_PROGRESS"
	case Completed:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// QuestPriority is a player-assignable weight used during quest selection
type QuestPriority int

const (
	PriorityLow QuestPriority = iota
	PriorityNormal
	PriorityHigh
)

func (p QuestPriority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityNormal:
		return "NORMAL"
	case PriorityHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// ParseQuestPriority converts a priority name to a QuestPriority
func ParseQuestPriority(name string) (QuestPriority, error) {
	switch strings.ToUpper(name) {
	case "LOW":
		return PriorityLow, nil
	case "NORMAL":
		return PriorityNormal, nil
	case "HIGH":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("unknown quest priority: %q", name)
	}
}

// QuestEntry pairs a catalog quest with one player's mutable progress
type QuestEntry struct {
	Quest    *Quest
	Status   QuestStatus
	Priority QuestPriority

	// Skill-combinations already consumed by lamps on this entry.
	// A combination is never allocated twice for the same entry.
	usedLampSkills map[SkillSet]bool
}

// NewQuestEntry creates an entry for one player's view of a quest
func NewQuestEntry(q *Quest, status QuestStatus, priority QuestPriority) *QuestEntry {
	return &QuestEntry{
		Quest:          q,
		Status:         status,
		Priority:       priority,
		usedLampSkills: make(map[SkillSet]bool),
	}
}

// LampSkillsUsed reports whether the combination was already consumed here
func (e *QuestEntry) LampSkillsUsed(set SkillSet) bool {
	return e.usedLampSkills[set]
}

// MarkLampSkillsUsed records a combination so it cannot be allocated again
func (e *QuestEntry) MarkLampSkillsUsed(set SkillSet) {
	e.usedLampSkills[set] = true
}

// UsedLampSkills returns the consumed combinations in a stable order
func (e *QuestEntry) UsedLampSkills() []SkillSet {
	sets := make([]SkillSet, 0, len(e.usedLampSkills))
	for set := range e.usedLampSkills {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i] < sets[j] })
	return sets
}

// Copy returns an independent entry sharing the immutable quest
func (e *QuestEntry) Copy() *QuestEntry {
	copied := NewQuestEntry(e.Quest, e.Status, e.Priority)
	for set := range e.usedLampSkills {
		copied.usedLampSkills[set] = true
	}
	return copied
}
