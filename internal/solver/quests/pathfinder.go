package quests

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/napolitain/quest-solver/internal/models"
)

// PathStats summarises a computed path
type PathStats struct {
	PercentComplete float64
}

// Path is the full ordered action plan for a player
type Path struct {
	ID      uuid.UUID
	Actions []Action
	Stats   PathStats
}

// PathFinder runs the greedy planning loop
type PathFinder struct {
	log *slog.Logger
}

func NewPathFinder(log *slog.Logger) *PathFinder {
	if log == nil {
		log = slog.Default()
	}
	return &PathFinder{log: log}
}

// Find computes the action path that completes every incomplete quest the
// player holds. The input player is not mutated; planning runs on a copy.
//
// Placeholder entries (pseudo-quests modelling already-banked rewards) are
// completed silently first. The main loop then repeatedly picks the best
// next quest, expands it, applies the resulting actions and re-resolves the
// future-lamp queue, until no incomplete quest remains. Leftover future
// lamps are drained onto the end of the path.
func (pf *PathFinder) Find(player *models.Player) (*Path, error) {
	p := player.Copy()
	total := len(p.Quests())

	var futures FutureActions
	if err := pf.completePlaceholders(p); err != nil {
		return nil, err
	}

	var path []Action
	for {
		incomplete := p.IncompleteQuests()
		if len(incomplete) == 0 {
			break
		}

		best, err := BestQuest(p, incomplete)
		if err != nil {
			return nil, err
		}

		pf.log.Debug("selected quest", "quest", best.Quest.Name(), "id", best.Quest.ID)

		actions, err := CompleteQuest(p, best)
		if err != nil {
			return nil, err
		}
		for _, a := range actions {
			if lamp, ok := a.(*LampAction); ok && lamp.Future() {
				futures.Add(lamp)
				continue
			}
			a.Apply(p)
			path = append(path, a.CopyForPlayer(p))
		}

		resolved, err := futures.Resolve(p)
		if err != nil {
			return nil, err
		}
		path = append(path, resolved...)
	}

	drained, err := futures.Flush(p)
	if err != nil {
		return nil, err
	}
	path = append(path, drained...)

	stats := PathStats{}
	if total > 0 {
		stats.PercentComplete = float64(len(p.CompletedQuests())) / float64(total) * 100
	}

	return &Path{ID: uuid.New(), Actions: path, Stats: stats}, nil
}

// completePlaceholders applies placeholder entries without emitting actions.
// A placeholder's deferred lamp is dropped, never queued: nothing from a
// placeholder may surface in the visible path.
func (pf *PathFinder) completePlaceholders(p *models.Player) error {
	for _, e := range p.IncompleteQuests() {
		if !e.Quest.Placeholder {
			continue
		}
		actions, err := CompleteQuest(p, e)
		if err != nil {
			return err
		}
		for _, a := range actions {
			a.Apply(p)
		}
	}
	return nil
}
