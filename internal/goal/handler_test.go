package goal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brunohenrs/northstar/internal/goal"
	"github.com/brunohenrs/northstar/internal/storage"
)

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	store := storage.NewProvider(storage.Target{}, &goal.Goal{})
	t.Cleanup(func() { store.Close() })
	return goal.Routes(goal.NewContainer(store).Handler)
}

func postGoal(t *testing.T, api http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func listGoals(t *testing.T, api http.Handler) []goal.Goal {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, body %s", rec.Code, rec.Body.String())
	}
	var goals []goal.Goal
	if err := json.Unmarshal(rec.Body.Bytes(), &goals); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	return goals
}

func TestCreateGoal(t *testing.T) {
	t.Run("RoundTripWithDefaults", func(t *testing.T) {
		api := newAPI(t)

		rec := postGoal(t, api, `{"title": "run a marathon"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}

		var created goal.CreateGoalResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if created.ID == 0 {
			t.Error("response is missing the generated id")
		}

		goals := listGoals(t, api)
		if len(goals) != 1 {
			t.Fatalf("listed %d goals, want 1", len(goals))
		}
		g := goals[0]
		if g.ID != created.ID {
			t.Errorf("listed id = %d, want %d", g.ID, created.ID)
		}
		if g.Title != "run a marathon" {
			t.Errorf("title = %q", g.Title)
		}
		if string(g.Priority) != "medium" {
			t.Errorf("default priority = %q, want medium", g.Priority)
		}
		if g.Progress != 0 {
			t.Errorf("default progress = %d, want 0", g.Progress)
		}
	})

	t.Run("ExplicitFieldsAreKept", func(t *testing.T) {
		api := newAPI(t)

		rec := postGoal(t, api, `{"title": "ship v1", "description": "first release",
			"category": "work", "priority": "high", "target_date": "2026-12-01"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}

		g := listGoals(t, api)[0]
		if g.Description != "first release" {
			t.Errorf("description = %q", g.Description)
		}
		if g.Category == nil || *g.Category != "work" {
			t.Errorf("category = %v", g.Category)
		}
		if string(g.Priority) != "high" {
			t.Errorf("priority = %q", g.Priority)
		}
		if g.TargetDate == nil || g.TargetDate.Format("2006-01-02") != "2026-12-01" {
			t.Errorf("target_date = %v", g.TargetDate)
		}
	})

	t.Run("MissingTitleIsRejected", func(t *testing.T) {
		api := newAPI(t)

		for _, body := range []string{`{}`, `{"title": ""}`, `{"title": "   "}`} {
			if rec := postGoal(t, api, body); rec.Code != http.StatusBadRequest {
				t.Errorf("body %s: status = %d, want 400", body, rec.Code)
			}
		}
		if goals := listGoals(t, api); len(goals) != 0 {
			t.Errorf("invalid payloads created %d goals", len(goals))
		}
	})

	t.Run("MalformedJSONIsRejected", func(t *testing.T) {
		api := newAPI(t)
		if rec := postGoal(t, api, `{not json`); rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestListGoalsOrdering(t *testing.T) {
	api := newAPI(t)

	for _, body := range []string{
		`{"title": "low goal", "priority": "low"}`,
		`{"title": "first high", "priority": "high"}`,
		`{"title": "medium goal"}`,
		`{"title": "second high", "priority": "high"}`,
	} {
		if rec := postGoal(t, api, body); rec.Code != http.StatusCreated {
			t.Fatalf("seeding failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	goals := listGoals(t, api)
	got := make([]string, 0, len(goals))
	for _, g := range goals {
		got = append(got, g.Title)
	}

	// Priority rank first; within equal rank the newest goal comes first.
	want := []string{"second high", "first high", "medium goal", "low goal"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
