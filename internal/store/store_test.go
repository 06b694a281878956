// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeranaias/ganttview/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func dateP(y int, m time.Month, d int) *time.Time {
	dt := model.DateOf(y, m, d)
	return &dt
}

func samplePlan() *Plan {
	return &Plan{
		Name:         "Rollout",
		ProjectStart: dateP(2025, 1, 6),
		ProjectEnd:   dateP(2025, 3, 28),
		Users: []model.User{
			{ID: "u1", DisplayName: "Dana"},
		},
		Tasks: []model.Task{
			{ID: "t1", Title: "Plan", Status: model.StatusCompleted, Priority: model.PriorityHigh,
				ProgressPercentage: 100, StartDate: dateP(2025, 1, 6), DueDate: dateP(2025, 1, 10),
				AssigneeIDs: []string{"u1"}},
			{ID: "t2", Title: "Build", Status: model.StatusInProgress, Priority: model.PriorityMedium,
				StartDate: dateP(2025, 1, 13), DueDate: dateP(2025, 2, 7),
				DependencyIDs: []string{"t1"}, EstimatedHours: 80},
			{ID: "t3", Title: "Someday", Status: model.StatusTodo, Priority: model.PriorityLow},
		},
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveSnapshot(samplePlan()); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.Name != "Rollout" {
		t.Errorf("Name = %q", loaded.Name)
	}
	if loaded.ProjectStart == nil || !loaded.ProjectStart.Equal(model.DateOf(2025, 1, 6)) {
		t.Errorf("ProjectStart = %v", loaded.ProjectStart)
	}
	if len(loaded.Users) != 1 || loaded.Users[0].Name() != "Dana" {
		t.Errorf("users = %+v", loaded.Users)
	}
	if len(loaded.Tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(loaded.Tasks))
	}

	// Import order survives the round trip.
	for i, want := range []string{"t1", "t2", "t3"} {
		if loaded.Tasks[i].ID != want {
			t.Errorf("task[%d] = %s, want %s", i, loaded.Tasks[i].ID, want)
		}
	}

	t2 := loaded.Tasks[1]
	if t2.Status != model.StatusInProgress {
		t.Errorf("t2 status = %v", t2.Status)
	}
	if len(t2.DependencyIDs) != 1 || t2.DependencyIDs[0] != "t1" {
		t.Errorf("t2 deps = %v", t2.DependencyIDs)
	}
	if t2.EstimatedHours != 80 {
		t.Errorf("t2 estimated hours = %v", t2.EstimatedHours)
	}

	// The dateless task stays dateless.
	if loaded.Tasks[2].StartDate != nil || loaded.Tasks[2].DueDate != nil {
		t.Errorf("t3 dates = %v/%v, want nil", loaded.Tasks[2].StartDate, loaded.Tasks[2].DueDate)
	}
}

func TestSaveSnapshot_Replaces(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveSnapshot(samplePlan()); err != nil {
		t.Fatal(err)
	}

	small := &Plan{Tasks: []model.Task{{ID: "only", Title: "Only", Status: model.StatusTodo, Priority: model.PriorityMedium}}}
	if err := s.SaveSnapshot(small); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].ID != "only" {
		t.Errorf("re-import did not replace snapshot: %+v", loaded.Tasks)
	}
	if len(loaded.Users) != 0 {
		t.Errorf("old users survived re-import: %+v", loaded.Users)
	}
}

func TestUpdateTaskDates(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveSnapshot(samplePlan()); err != nil {
		t.Fatal(err)
	}

	change := model.DateChange{
		StartDate: dateP(2025, 1, 20),
		DueDate:   dateP(2025, 2, 14),
	}
	if err := s.UpdateTaskDates("t2", change); err != nil {
		t.Fatalf("UpdateTaskDates failed: %v", err)
	}

	loaded, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	t2 := loaded.Tasks[1]
	if !t2.StartDate.Equal(model.DateOf(2025, 1, 20)) || !t2.DueDate.Equal(model.DateOf(2025, 2, 14)) {
		t.Errorf("t2 dates = %v/%v", t2.StartDate, t2.DueDate)
	}

	// Only the targeted task changes.
	if !loaded.Tasks[0].StartDate.Equal(model.DateOf(2025, 1, 6)) {
		t.Errorf("t1 start moved: %v", loaded.Tasks[0].StartDate)
	}
}

func TestUpdateTaskDates_UnknownTask(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveSnapshot(samplePlan()); err != nil {
		t.Fatal(err)
	}

	err := s.UpdateTaskDates("nope", model.DateChange{StartDate: dateP(2025, 1, 1)})
	if err == nil {
		t.Error("expected error for unknown task id")
	}
}

func TestHasSnapshot(t *testing.T) {
	s := openTestStore(t)

	has, err := s.HasSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Error("fresh store should report no snapshot")
	}

	if err := s.SaveSnapshot(samplePlan()); err != nil {
		t.Fatal(err)
	}
	has, err = s.HasSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Error("store should report a snapshot after import")
	}
}

func TestLoadSnapshot_EmptyStore(t *testing.T) {
	s := openTestStore(t)

	plan, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("empty store should load an empty plan: %v", err)
	}
	if len(plan.Tasks) != 0 || len(plan.Users) != 0 {
		t.Errorf("empty store yielded %d tasks, %d users", len(plan.Tasks), len(plan.Users))
	}
	if plan.ProjectStart != nil || plan.ProjectEnd != nil {
		t.Error("empty store should have no project bounds")
	}
}

func TestWatchPlan_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	if err := os.WriteFile(path, []byte("[project]\nname = \"a\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	pw, err := WatchPlan(path, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchPlan failed: %v", err)
	}
	defer pw.Close()

	if err := os.WriteFile(path, []byte("[project]\nname = \"b\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire after plan write")
	}
}

func TestWatchPlan_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	pw, err := WatchPlan(path, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer pw.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
