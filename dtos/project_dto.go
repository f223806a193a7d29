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

package dtos

type ProjectRecord struct {
	ID            int     `json:"id,omitempty"`
	Name          string  `json:"name"`
	ClientID      int     `json:"client_id"`
	ProjectType   string  `json:"project_type"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Description   *string `json:"description"`
	TeamMemberIDs []int   `json:"team_member_ids"`
}

type ProjectDTO struct {
	ID            int    `json:"id"`
	Name          string `json:"name" validate:"required"`
	ClientID      int    `json:"clientId" validate:"required"`
	Type          string `json:"type" validate:"required"`
	Status        string `json:"status" validate:"required"`
	Priority      string `json:"priority"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	Description   string `json:"description"`
	TeamMemberIDs []int  `json:"teamMemberIds"`
}

type GanttTaskRecord struct {
	ID         int    `json:"id,omitempty"`
	ProjectID  int    `json:"project_id"`
	Name       string `json:"name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Progress   *int   `json:"progress"`
	AssigneeID *int   `json:"assignee_id"`
}

type GanttTaskDTO struct {
	ID         int    `json:"id"`
	ProjectID  int    `json:"projectId"`
	Name       string `json:"name" validate:"required"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
	Progress   int    `json:"progress" validate:"min=0,max=100"`
	AssigneeID *int   `json:"assigneeId"`
}
