package loader

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/napolitain/quest-solver/internal/models"
)

// Hiscores rows come back as rank,level,xp. The first row is the overall
// total; skill rows follow in skill order.
const hiscoresSkillOffset = 1

// ProfileLoader fetches a player's live skill experience and quest statuses.
// Lookup failures are not fatal: a fresh player profile is assumed for
// whatever could not be fetched, so offline planning still works.
type ProfileLoader struct {
	client      *http.Client
	cache       Cache
	log         *slog.Logger
	hiscoresURL string
	questsURL   string
}

func NewProfileLoader(hiscoresURL, questsURL string, cache Cache, log *slog.Logger) *ProfileLoader {
	if log == nil {
		log = slog.Default()
	}
	return &ProfileLoader{
		client:      &http.Client{Timeout: 10 * time.Second},
		cache:       cache,
		log:         log,
		hiscoresURL: hiscoresURL,
		questsURL:   questsURL,
	}
}

// Load builds a player from live data, layered over the given quest
// entries. Entries are mutated in place with fetched statuses.
func (l *ProfileLoader) Load(ctx context.Context, name string, entries []*models.QuestEntry, lampSkills []models.Skill, ironman, recommended bool) *models.Player {
	player := models.NewPlayer(name, entries, lampSkills, ironman, recommended)
	if name == "" {
		return player
	}

	if xps, err := l.loadSkills(ctx, name); err != nil {
		l.log.Warn("hiscores lookup failed, assuming fresh skills", "player", name, "error", err)
	} else {
		for skill, xp := range xps {
			player.SetXP(models.Skill(skill), xp)
		}
	}

	if statuses, err := l.loadQuestStatuses(ctx, name); err != nil {
		l.log.Warn("quest status lookup failed, assuming no progress", "player", name, "error", err)
	} else {
		l.applyQuestStatuses(player, statuses)
	}

	return player
}

// applyQuestStatuses matches each reported quest against the catalog by
// title or display name, case-insensitively. Reported quests with no
// catalog entry are logged and skipped.
func (l *ProfileLoader) applyQuestStatuses(player *models.Player, statuses map[string]models.QuestStatus) {
	byName := make(map[string]*models.QuestEntry)
	for _, e := range player.Quests() {
		byName[strings.ToLower(e.Quest.Title)] = e
		if e.Quest.DisplayName != "" {
			byName[strings.ToLower(e.Quest.DisplayName)] = e
		}
	}

	for name, status := range statuses {
		entry, ok := byName[name]
		if !ok {
			l.log.Warn("no catalog entry for reported quest", "quest", name)
			continue
		}
		entry.Status = status
	}
}

func (l *ProfileLoader) loadSkills(ctx context.Context, name string) ([models.NumSkills]float64, error) {
	var xps [models.NumSkills]float64

	body, err := l.fetch(ctx, "hiscores:"+name,
		l.hiscoresURL+"?player="+url.QueryEscape(name))
	if err != nil {
		return xps, err
	}

	reader := csv.NewReader(strings.NewReader(string(body)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return xps, fmt.Errorf("malformed hiscores response: %w", err)
	}
	if len(records) < hiscoresSkillOffset+models.NumSkills {
		return xps, fmt.Errorf("hiscores response too short: %d rows", len(records))
	}

	for i := 0; i < models.NumSkills; i++ {
		row := records[hiscoresSkillOffset+i]
		if len(row) < 3 {
			return xps, fmt.Errorf("hiscores row %d too short", i)
		}
		xp, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return xps, fmt.Errorf("hiscores row %d: %w", i, err)
		}
		if xp < 0 {
			xp = 0
		}
		xps[i] = xp
	}

	return xps, nil
}

// questStatusJSON represents one quest in the RuneMetrics response
type questStatusJSON struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

func (l *ProfileLoader) loadQuestStatuses(ctx context.Context, name string) (map[string]models.QuestStatus, error) {
	body, err := l.fetch(ctx, "quests:"+name,
		l.questsURL+"?user="+url.QueryEscape(name))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Quests []questStatusJSON `json:"quests"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed quest response: %w", err)
	}

	statuses := make(map[string]models.QuestStatus, len(payload.Quests))
	for _, q := range payload.Quests {
		switch strings.ToUpper(q.Status) {
		case "COMPLETED":
			statuses[strings.ToLower(q.Title)] = models.Completed
		case "STARTED":
			statuses[strings.ToLower(q.Title)] = models.InProgress
		default:
			statuses[strings.ToLower(q.Title)] = models.NotStarted
		}
	}
	return statuses, nil
}

// fetch serves from cache when possible, hitting the remote on a miss and
// caching the response. Cache failures degrade to a plain fetch.
func (l *ProfileLoader) fetch(ctx context.Context, key, rawURL string) ([]byte, error) {
	if l.cache != nil {
		if body, err := l.cache.Get(ctx, key); err == nil {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, key, body); err != nil {
			l.log.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return body, nil
}
