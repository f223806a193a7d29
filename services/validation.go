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
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/l3montree-dev/casedesk/shared"
)

// FormError lists the form fields which are missing or invalid. It is
// returned before any request reaches the backend.
type FormError struct {
	Fields []string
}

func (e *FormError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// ValidateForm runs the validate tags of form.
func ValidateForm(form any) error {
	err := shared.V.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldPath(fe.Namespace()))
	}
	return &FormError{Fields: fields}
}

// fieldPath strips the struct name from a validator namespace,
// "ClientDTO.additionalContacts[0].email" becomes "additionalContacts[0].email".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
