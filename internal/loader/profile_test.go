package loader

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/quest-solver/internal/models"
)

func hiscoresBody(xps map[models.Skill]int) string {
	var b strings.Builder
	b.WriteString("1,35,1154\n") // overall row
	for _, s := range models.AllSkills() {
		fmt.Fprintf(&b, "1,1,%d\n", xps[s])
	}
	return b.String()
}

func profileEntries() []*models.QuestEntry {
	return []*models.QuestEntry{
		models.NewQuestEntry(&models.Quest{ID: 1, Title: "cooks_assistant", DisplayName: "Cook's Assistant"}, models.NotStarted, models.PriorityNormal),
		models.NewQuestEntry(&models.Quest{ID: 2, Title: "Waterfall Quest"}, models.NotStarted, models.PriorityNormal),
	}
}

func TestProfileLoaderLoad(t *testing.T) {
	hiscores := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tester", r.URL.Query().Get("player"))
		fmt.Fprint(w, hiscoresBody(map[models.Skill]int{
			models.Cooking: 101333,
			models.Attack:  5000,
		}))
	}))
	defer hiscores.Close()

	quests := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tester", r.URL.Query().Get("user"))
		fmt.Fprint(w, `{"quests":[
			{"title":"Cook's Assistant","status":"COMPLETED"},
			{"title":"Waterfall Quest","status":"STARTED"}
		]}`)
	}))
	defer quests.Close()

	l := NewProfileLoader(hiscores.URL, quests.URL, nil, nil)
	p := l.Load(context.Background(), "tester", profileEntries(), nil, false, false)

	assert.Equal(t, 101333.0, p.XP(models.Cooking))
	assert.Equal(t, 50, p.Level(models.Cooking))
	assert.Equal(t, 5000.0, p.XP(models.Attack))
	assert.True(t, p.IsQuestCompleted(1))
	assert.Equal(t, models.InProgress, p.Entry(2).Status)
}

func TestApplyQuestStatusesMatchesTitleOrDisplayName(t *testing.T) {
	entries := profileEntries()
	p := models.NewPlayer("tester", entries, nil, false, false)

	l := NewProfileLoader("", "", nil, nil)
	l.applyQuestStatuses(p, map[string]models.QuestStatus{
		"cook's assistant":   models.Completed,  // display name, not title
		"waterfall quest":    models.InProgress, // title
		"some members quest": models.Completed,  // not in catalog, skipped
	})

	assert.True(t, p.IsQuestCompleted(1))
	assert.Equal(t, models.InProgress, p.Entry(2).Status)
}

func TestProfileLoaderFailuresAreNotFatal(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	l := NewProfileLoader(down.URL, down.URL, nil, nil)
	p := l.Load(context.Background(), "tester", profileEntries(), nil, false, false)

	// Defaults survive a failed lookup
	require.NotNil(t, p)
	assert.Equal(t, 0.0, p.XP(models.Attack))
	assert.Equal(t, models.NotStarted, p.Entry(1).Status)
}

func TestProfileLoaderEmptyNameSkipsLookup(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	l := NewProfileLoader(srv.URL, srv.URL, nil, nil)
	p := l.Load(context.Background(), "", profileEntries(), nil, true, false)

	assert.False(t, called)
	assert.True(t, p.Ironman)
}

func TestProfileLoaderShortHiscores(t *testing.T) {
	short := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "1,35,1154\n1,1,0\n")
	}))
	defer short.Close()

	quests := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quests":[]}`)
	}))
	defer quests.Close()

	l := NewProfileLoader(short.URL, quests.URL, nil, nil)
	p := l.Load(context.Background(), "tester", profileEntries(), nil, false, false)

	// Truncated response is discarded wholesale
	assert.Equal(t, 0.0, p.XP(models.Attack))
}
