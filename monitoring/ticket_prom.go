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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TicketCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "casedesk_ticket_created_amount",
	Help: "The total number of tickets created",
})

var TicketMessageCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "casedesk_ticket_message_created_amount",
	Help: "The total number of ticket messages created",
})

var GanttTaskCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "casedesk_gantt_task_created_amount",
	Help: "The total number of gantt tasks created",
})
