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

package transformer

import (
	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/utils"
)

func ProjectsToView(records []dtos.ProjectRecord) []dtos.ProjectDTO {
	return utils.Map(records, ProjectToView)
}

func ProjectToView(r dtos.ProjectRecord) dtos.ProjectDTO {
	members := r.TeamMemberIDs
	if members == nil {
		members = []int{}
	}
	return dtos.ProjectDTO{
		ID:            r.ID,
		Name:          r.Name,
		ClientID:      r.ClientID,
		Type:          r.ProjectType,
		Status:        r.Status,
		Priority:      r.Priority,
		StartDate:     utils.DateOnly(utils.SafeDereference(r.StartDate)),
		EndDate:       utils.DateOnly(utils.SafeDereference(r.EndDate)),
		Description:   utils.SafeDereference(r.Description),
		TeamMemberIDs: members,
	}
}

func ProjectToBackend(p dtos.ProjectDTO) dtos.ProjectRecord {
	members := p.TeamMemberIDs
	if members == nil {
		members = []int{}
	}
	return dtos.ProjectRecord{
		ID:            p.ID,
		Name:          p.Name,
		ClientID:      p.ClientID,
		ProjectType:   p.Type,
		Status:        p.Status,
		Priority:      p.Priority,
		StartDate:     utils.EmptyThenNil(p.StartDate),
		EndDate:       utils.EmptyThenNil(p.EndDate),
		Description:   utils.EmptyThenNil(p.Description),
		TeamMemberIDs: members,
	}
}

func GanttTasksToView(records []dtos.GanttTaskRecord) []dtos.GanttTaskDTO {
	return utils.Map(records, GanttTaskToView)
}

func GanttTaskToView(r dtos.GanttTaskRecord) dtos.GanttTaskDTO {
	return dtos.GanttTaskDTO{
		ID:         r.ID,
		ProjectID:  r.ProjectID,
		Name:       r.Name,
		StartDate:  utils.DateOnly(r.StartDate),
		EndDate:    utils.DateOnly(r.EndDate),
		Progress:   utils.OrDefault(r.Progress, 0),
		AssigneeID: r.AssigneeID,
	}
}

func GanttTaskToBackend(t dtos.GanttTaskDTO) dtos.GanttTaskRecord {
	return dtos.GanttTaskRecord{
		ID:         t.ID,
		ProjectID:  t.ProjectID,
		Name:       t.Name,
		StartDate:  t.StartDate,
		EndDate:    t.EndDate,
		Progress:   utils.Ptr(t.Progress),
		AssigneeID: t.AssigneeID,
	}
}
