package quests

import "github.com/napolitain/quest-solver/internal/models"

// FutureActions queues lamp actions whose requirements were unmet when
// their quest completed. After each quest the queue is re-resolved against
// the advanced player; each action is granted at most once.
type FutureActions struct {
	pending []*LampAction
}

func (f *FutureActions) Add(a *LampAction) {
	f.pending = append(f.pending, a)
}

func (f *FutureActions) Len() int { return len(f.pending) }

// Resolve re-allocates every queued lamp whose requirements the player now
// meets, applies it, and returns the concrete actions in queue order.
// Unresolvable allocations are fatal, as they are at quest completion.
func (f *FutureActions) Resolve(p *models.Player) ([]Action, error) {
	var done []Action
	remaining := f.pending[:0]
	for _, a := range f.pending {
		if !a.MeetsRequirements(p) {
			remaining = append(remaining, a)
			continue
		}
		resolved, err := CreateLampAction(p, a.Entry(), a.Lamp)
		if err != nil {
			return nil, err
		}
		resolved.Apply(p)
		done = append(done, resolved.CopyForPlayer(p))
	}
	f.pending = remaining
	return done, nil
}

// Flush resolves what it can, then drains the rest as-is: still-future
// actions appended to the path unapplied, for quests whose lamps can never
// be used with the given catalog.
func (f *FutureActions) Flush(p *models.Player) ([]Action, error) {
	done, err := f.Resolve(p)
	if err != nil {
		return nil, err
	}
	for _, a := range f.pending {
		done = append(done, a.CopyForPlayer(p))
	}
	f.pending = nil
	return done, nil
}
