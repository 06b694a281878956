// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store supplies the chart's data sources.
package store

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jeranaias/ganttview/internal/model"
	"github.com/jeranaias/ganttview/internal/render"
)

// =============================================================================
// PLAN
// =============================================================================

// Plan is one decoded project plan: the project bounds plus the task and
// user lists in file order.
type Plan struct {
	Name         string
	ProjectStart *time.Time
	ProjectEnd   *time.Time
	Tasks        []model.Task
	Users        []model.User
}

// Snapshot converts the plan into the render pipeline's input form.
func (p *Plan) Snapshot() render.Snapshot {
	return render.Snapshot{
		Tasks:        p.Tasks,
		Users:        p.Users,
		ProjectStart: p.ProjectStart,
		ProjectEnd:   p.ProjectEnd,
	}
}

// =============================================================================
// TOML DECODE STRUCTURES
// =============================================================================

type planFile struct {
	Project planProject `toml:"project"`
	Users   []planUser  `toml:"users"`
	Tasks   []planTask  `toml:"tasks"`
}

type planProject struct {
	Name      string `toml:"name"`
	StartDate string `toml:"start_date"`
	EndDate   string `toml:"end_date"`
}

type planUser struct {
	ID          string `toml:"id"`
	FirstName   string `toml:"first_name"`
	LastName    string `toml:"last_name"`
	DisplayName string `toml:"display_name"`
	AvatarRef   string `toml:"avatar"`
}

type planTask struct {
	ID             string   `toml:"id"`
	Title          string   `toml:"title"`
	Description    string   `toml:"description"`
	Status         string   `toml:"status"`
	Priority       string   `toml:"priority"`
	Progress       int      `toml:"progress"`
	StartDate      string   `toml:"start_date"`
	DueDate        string   `toml:"due_date"`
	Assignees      []string `toml:"assignees"`
	DependsOn      []string `toml:"depends_on"`
	EstimatedHours float64  `toml:"estimated_hours"`
	ActualHours    float64  `toml:"actual_hours"`
}

// =============================================================================
// PLAN LOADING
// =============================================================================

// LoadPlan decodes a TOML plan file. Field-level problems (bad dates,
// unknown status strings) degrade to defaults and are logged; only a file
// that cannot be read or parsed at all is an error.
func LoadPlan(path string) (*Plan, error) {
	var pf planFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", path, err)
	}

	plan := &Plan{
		Name:         pf.Project.Name,
		ProjectStart: parseDate(pf.Project.StartDate, "project.start_date"),
		ProjectEnd:   parseDate(pf.Project.EndDate, "project.end_date"),
	}

	for _, u := range pf.Users {
		if u.ID == "" {
			u.ID = uuid.New().String()
		}
		plan.Users = append(plan.Users, model.User{
			ID:          u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			DisplayName: u.DisplayName,
			AvatarRef:   u.AvatarRef,
		})
	}

	for _, t := range pf.Tasks {
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		plan.Tasks = append(plan.Tasks, model.Task{
			ID:                 t.ID,
			Title:              t.Title,
			Description:        t.Description,
			StartDate:          parseDate(t.StartDate, t.ID+".start_date"),
			DueDate:            parseDate(t.DueDate, t.ID+".due_date"),
			ProgressPercentage: t.Progress,
			Status:             model.ParseStatus(t.Status),
			Priority:           model.ParsePriority(t.Priority),
			AssigneeIDs:        t.Assignees,
			DependencyIDs:      t.DependsOn,
			EstimatedHours:     t.EstimatedHours,
			ActualHours:        t.ActualHours,
		})
	}

	return plan, nil
}

// parseDate decodes a "2006-01-02" date string. Empty means unscheduled;
// anything unparseable is treated the same way so one bad date never sinks
// the whole plan.
func parseDate(s, field string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		logrus.WithField("field", field).WithError(err).Warn("ignoring malformed date")
		return nil
	}
	d := model.Day(t)
	return &d
}
