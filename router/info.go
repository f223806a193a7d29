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

package router

// Filled at build time via -ldflags.
var (
	Version   = "dev"
	Commit    string
	BuildDate string
)

// InfoResponse is the typed response returned by the /api/v1/info/ endpoint.
type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Process  ProcessInfo  `json:"process"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Database DatabaseInfo `json:"database"`
	Broker   BrokerInfo   `json:"broker"`
}

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion,omitempty"`
	NumGoroutines int    `json:"numGoroutines,omitempty"`
	HeapAlloc     uint64 `json:"heapAlloc"`
}

// PoolInfo holds pgxpool statistics. Credentials are never included.
type PoolInfo struct {
	DBName        string `json:"dbName,omitempty"`
	TotalConns    int    `json:"totalConns"`
	IdleConns     int    `json:"idleConns"`
	AcquiredConns int    `json:"acquiredConns"`
	MaxConns      int    `json:"maxConns"`
}

type DatabaseInfo struct {
	Status           string    `json:"status"`
	Error            *string   `json:"error,omitempty"`
	MigrationVersion *uint     `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool     `json:"migrationDirty,omitempty"`
	Pool             *PoolInfo `json:"pool,omitempty"`
}

type BrokerInfo struct {
	Healthy      bool     `json:"healthy"`
	ActiveTopics []string `json:"activeTopics"`
}
