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
	"log/slog"

	"github.com/l3montree-dev/casedesk/database"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/pkg/errors"
)

// openDatabase connects with the POSTGRES_* settings and brings the schema
// up to date. The returned func closes the pool.
func openDatabase() (shared.DB, func(), error) {
	pool, err := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		pool.Close()
		return nil, nil, errors.Wrap(err, "could not open database")
	}
	if err := database.RunMigrationsWithDB(db); err != nil {
		pool.Close()
		return nil, nil, errors.Wrap(err, "could not run migrations")
	}
	slog.Debug("database ready")
	return db, pool.Close, nil
}
