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

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/casedesk/database"
	"github.com/l3montree-dev/casedesk/integrationtestutil"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgreSQLBroker(t *testing.T) {
	if testing.Short() {
		t.Skip("needs a postgres container")
	}
	db, pool, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	ctx := context.Background()
	sender := database.NewPostgreSQLBroker(pool)
	receiver := database.NewPostgreSQLBroker(pool)

	ch, err := receiver.Subscribe(shared.CaseInvalidation)
	require.NoError(t, err)
	assert.Contains(t, receiver.GetActiveTopics(), shared.CaseInvalidation)
	assert.True(t, receiver.IsHealthy(ctx))

	require.NoError(t, sender.Publish(ctx, shared.NewInvalidationMessage("tickets")))

	select {
	case payload := <-ch:
		assert.Equal(t, "tickets", payload["collection"])
	case <-time.After(5 * time.Second):
		t.Fatal("no invalidation received")
	}

	version, dirty, err := database.GetMigrationVersionWithDB(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
	assert.False(t, dirty)
}
