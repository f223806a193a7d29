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
	"errors"
	"sync"
)

var ErrModalClosed = errors.New("modal is not open")

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

// Modal drives a create/edit form. A successful submit closes it, a failed
// submit keeps it open with an alert until the alert is dismissed or the
// next submit succeeds.
type Modal struct {
	mu    sync.Mutex
	state ModalState
	alert string
}

func (m *Modal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = ModalOpen
	m.alert = ""
}

func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = ModalClosed
	m.alert = ""
}

func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Modal) Alert() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alert
}

func (m *Modal) DismissAlert() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alert = ""
}

func (m *Modal) Submit(ctx context.Context, submit func(ctx context.Context) error) error {
	m.mu.Lock()
	if m.state != ModalOpen {
		m.mu.Unlock()
		return ErrModalClosed
	}
	m.mu.Unlock()

	err := submit(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.alert = err.Error()
		return err
	}
	m.state = ModalClosed
	m.alert = ""
	return nil
}
