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

package casedesk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for every non 2xx response of the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type validationDetail struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// newAPIError builds the message from the status and the response body.
// The backend answers with {"detail": string} or, on 422, with
// {"detail": [{"loc": [...], "msg": "..."}]}.
func newAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, Message: errorMessage(status, body)}
}

func errorMessage(status int, body []byte) string {
	prefix := fmt.Sprintf("HTTP %d", status)

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(parsed.Detail, &detail); err == nil && detail != "" {
			return prefix + ": " + detail
		}

		var details []validationDetail
		if err := json.Unmarshal(parsed.Detail, &details); err == nil && len(details) > 0 {
			msgs := make([]string, 0, len(details))
			for _, d := range details {
				field := fieldName(d.Loc)
				if field == "" {
					msgs = append(msgs, d.Msg)
					continue
				}
				msgs = append(msgs, field+": "+d.Msg)
			}
			if status == http.StatusUnprocessableEntity {
				return "Validation failed: " + strings.Join(msgs, "; ")
			}
			return prefix + ": " + strings.Join(msgs, "; ")
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return prefix + ": " + text
	}
	return prefix + ": " + http.StatusText(status)
}

func fieldName(loc []any) string {
	parts := make([]string, 0, len(loc))
	for i, l := range loc {
		s := fmt.Sprint(l)
		if i == 0 && s == "body" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}
