// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/monitoring"
	"github.com/l3montree-dev/casedesk/pkg/casedesk"
	"github.com/l3montree-dev/casedesk/reporting"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/transformer"
	"github.com/l3montree-dev/casedesk/utils"
	"github.com/pkg/errors"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidProjectRange = errors.New("project has no valid date range")
	ErrTaskOutsideProject  = errors.New("task lies outside of the project's date range")
	ErrTaskEndBeforeStart  = errors.New("task ends before it starts")
)

type GanttBar struct {
	Task         dtos.GanttTaskDTO `json:"task"`
	LeftPercent  float64           `json:"leftPercent"`
	WidthPercent float64           `json:"widthPercent"`
	// set if the task was cut to the project's range
	Clamped bool `json:"clamped"`
}

type GanttMarker struct {
	Label       string  `json:"label"`
	Date        string  `json:"date"`
	LeftPercent float64 `json:"leftPercent"`
}

type GanttLayout struct {
	ProjectID    int           `json:"projectId"`
	Start        string        `json:"start"`
	End          string        `json:"end"`
	TotalDays    int           `json:"totalDays"`
	Bars         []GanttBar    `json:"bars"`
	Months       []GanttMarker `json:"months"`
	TodayPercent *float64      `json:"todayPercent"`
}

func projectRange(project dtos.ProjectDTO) (reporting.DateRange, error) {
	r, err := reporting.ParseDateRange(project.StartDate, project.EndDate)
	if err != nil {
		return reporting.DateRange{}, errors.Wrap(ErrInvalidProjectRange, err.Error())
	}
	return r, nil
}

// Layout positions every task as a percentage of the project's range. A
// day is the smallest unit: a task of one day on a ten day project is 10%
// wide. Tasks are clamped to the range, tasks entirely outside of it and
// tasks with unparseable dates are left out.
func Layout(project dtos.ProjectDTO, tasks []dtos.GanttTaskDTO, now time.Time) (GanttLayout, error) {
	r, err := projectRange(project)
	if err != nil {
		return GanttLayout{}, err
	}
	total := float64(r.Len())
	percent := func(days int) float64 {
		return float64(days) / total * 100
	}

	layout := GanttLayout{
		ProjectID: project.ID,
		Start:     r.Start.Format(time.DateOnly),
		End:       r.End.Format(time.DateOnly),
		TotalDays: int(total),
		Bars:      make([]GanttBar, 0, len(tasks)),
		Months:    monthMarkers(r, percent),
	}

	for _, task := range tasks {
		start, okStart := reporting.ParseDate(task.StartDate)
		end, okEnd := reporting.ParseDate(task.EndDate)
		if !okStart || !okEnd || end.Before(start) {
			slog.Debug("skipping gantt task with invalid dates", "task", task.ID, "start", task.StartDate, "end", task.EndDate)
			continue
		}

		clamped := false
		if start.Before(r.Start) {
			start, clamped = r.Start, true
		}
		if end.After(r.End) {
			end, clamped = r.End, true
		}
		if end.Before(start) {
			continue
		}

		layout.Bars = append(layout.Bars, GanttBar{
			Task:         task,
			LeftPercent:  percent(reporting.DaysBetween(r.Start, start)),
			WidthPercent: percent(reporting.DaysBetween(start, end) + 1),
			Clamped:      clamped,
		})
	}

	if r.Contains(now) {
		layout.TodayPercent = utils.Ptr(percent(reporting.DaysBetween(r.Start, now)))
	}
	return layout, nil
}

// monthMarkers labels the range start and every first of a month after it.
func monthMarkers(r reporting.DateRange, percent func(int) float64) []GanttMarker {
	markers := []GanttMarker{{
		Label:       r.Start.Format("Jan 2006"),
		Date:        r.Start.Format(time.DateOnly),
		LeftPercent: 0,
	}}
	first := time.Date(r.Start.Year(), r.Start.Month()+1, 1, 0, 0, 0, 0, time.Local)
	for d := first; !d.After(r.End); d = d.AddDate(0, 1, 0) {
		markers = append(markers, GanttMarker{
			Label:       d.Format("Jan 2006"),
			Date:        d.Format(time.DateOnly),
			LeftPercent: percent(reporting.DaysBetween(r.Start, d)),
		})
	}
	return markers
}

// ValidateTask checks that the task lies within the project's range.
func ValidateTask(project dtos.ProjectDTO, task dtos.GanttTaskDTO) error {
	r, err := projectRange(project)
	if err != nil {
		return err
	}

	var fields []string
	start, ok := reporting.ParseDate(task.StartDate)
	if !ok {
		fields = append(fields, "startDate")
	}
	end, ok := reporting.ParseDate(task.EndDate)
	if !ok {
		fields = append(fields, "endDate")
	}
	if len(fields) > 0 {
		return &FormError{Fields: fields}
	}

	if end.Before(start) {
		return ErrTaskEndBeforeStart
	}
	if start.Before(r.Start) || end.After(r.End) {
		return ErrTaskOutsideProject
	}
	return nil
}

type GanttService struct {
	projects shared.ProjectAPI
	gantt    shared.GanttAPI
	now      func() time.Time
}

func NewGanttService(projects shared.ProjectAPI, gantt shared.GanttAPI) *GanttService {
	return &GanttService{
		projects: projects,
		gantt:    gantt,
		now:      time.Now,
	}
}

func (s *GanttService) project(ctx context.Context, projectID int) (dtos.ProjectDTO, error) {
	record, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if casedesk.IsNotFound(err) {
			return dtos.ProjectDTO{}, errors.Wrapf(ErrProjectNotFound, "project %d", projectID)
		}
		return dtos.ProjectDTO{}, errors.Wrapf(err, "could not fetch project %d", projectID)
	}
	if record == nil {
		return dtos.ProjectDTO{}, errors.Wrapf(ErrProjectNotFound, "project %d", projectID)
	}
	return transformer.ProjectToView(*record), nil
}

// ProjectLayout loads the project with its tasks and lays them out.
func (s *GanttService) ProjectLayout(ctx context.Context, projectID int) (GanttLayout, error) {
	project, err := s.project(ctx, projectID)
	if err != nil {
		return GanttLayout{}, err
	}

	records, err := s.gantt.ListGanttTasks(ctx, projectID)
	if err != nil {
		return GanttLayout{}, errors.Wrapf(err, "could not fetch tasks of project %d", projectID)
	}
	return Layout(project, transformer.GanttTasksToView(records), s.now())
}

// CreateTask validates the task against its project before posting it.
func (s *GanttService) CreateTask(ctx context.Context, projectID int, task dtos.GanttTaskDTO) (dtos.GanttTaskDTO, error) {
	task.ProjectID = projectID
	if err := ValidateForm(task); err != nil {
		return dtos.GanttTaskDTO{}, err
	}

	project, err := s.project(ctx, projectID)
	if err != nil {
		return dtos.GanttTaskDTO{}, err
	}
	if err := ValidateTask(project, task); err != nil {
		return dtos.GanttTaskDTO{}, err
	}

	record := transformer.GanttTaskToBackend(task)
	created, err := s.gantt.CreateGanttTask(ctx, record)
	if err != nil {
		return dtos.GanttTaskDTO{}, errors.Wrap(err, "could not create gantt task")
	}
	monitoring.GanttTaskCreatedAmount.Inc()
	if created == nil {
		return transformer.GanttTaskToView(record), nil
	}
	return transformer.GanttTaskToView(*created), nil
}
