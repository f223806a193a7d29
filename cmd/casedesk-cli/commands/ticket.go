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

package commands

import (
	"context"
	"fmt"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/spf13/cobra"
)

func newTicketCommand() *cobra.Command {
	ticket := &cobra.Command{
		Use:   "ticket",
		Short: "Work with remediation tickets",
	}
	ticket.AddCommand(newTicketCreateCommand())
	return ticket
}

func newTicketCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a ticket for one or more vulnerabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend(cmd)
			if err != nil {
				return err
			}
			ticketService := services.NewTicketService(b.tickets, b.messages, b.store, nil)

			form := dtos.TicketCreateRequest{ClientID: clientFlag(cmd)}
			form.Title, _ = cmd.Flags().GetString("title")
			form.Description, _ = cmd.Flags().GetString("description")
			form.Priority, _ = cmd.Flags().GetString("priority")
			form.DueDate, _ = cmd.Flags().GetString("due")
			form.VulnerabilityIDs, _ = cmd.Flags().GetIntSlice("vuln")
			if cmd.Flags().Changed("assignee") {
				id, _ := cmd.Flags().GetInt("assignee")
				form.AssigneeID = &id
			}

			var modal services.Modal
			modal.Open()
			var created dtos.TicketDTO
			err = modal.Submit(cmd.Context(), func(ctx context.Context) error {
				created, err = ticketService.Create(ctx, form)
				return err
			})
			if err != nil {
				return fmt.Errorf("could not create ticket: %s", modal.Alert())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created ticket %d: %s\n", created.ID, created.Title)
			return nil
		},
	}
	cmd.Flags().String("title", "", "Ticket title")
	cmd.Flags().String("description", "", "Ticket description")
	cmd.Flags().String("priority", "Medium", "Critical, High, Medium or Low")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Int("client", 0, "Client id")
	cmd.Flags().Int("assignee", 0, "Assigned worker id")
	cmd.Flags().IntSlice("vuln", nil, "Vulnerability ids, comma separated")
	return cmd
}
