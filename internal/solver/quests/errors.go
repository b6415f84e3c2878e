package quests

import (
	"fmt"

	"github.com/napolitain/quest-solver/internal/models"
)

// NoBestQuestError is the fatal planning failure raised when no quest can be
// selected from a non-empty incomplete set: either the catalog holds an
// unsatisfiable requirement cycle or it is malformed.
type NoBestQuestError struct {
	QuestIDs []int // the stuck quests, ascending
}

func (e *NoBestQuestError) Error() string {
	return fmt.Sprintf("no completable quest among remaining entries: %v", e.QuestIDs)
}

// NoLampChoiceError is the fatal configuration failure raised when a lamp has
// no valid skill-combination left to allocate.
type NoLampChoiceError struct {
	QuestID int
	Lamp    models.LampReward
	Used    []models.SkillSet // combinations already consumed on the entry
}

func (e *NoLampChoiceError) Error() string {
	return fmt.Sprintf("no valid skill combination for %s on quest %d (used: %v)",
		e.Lamp.Type, e.QuestID, e.Used)
}
