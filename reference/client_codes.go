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

package reference

import (
	"slices"
	"strings"

	"github.com/gosimple/slug"
)

// ClientCodes maps known client names to their short codes.
var ClientCodes = map[string]string{
	"Acme Corporation":        "ACME",
	"Globex Industries":       "GLBX",
	"Initech":                 "INIT",
	"Umbrella Health":         "UMBH",
	"Stark Logistics":         "STRK",
	"Wayne Financial Group":   "WFG",
	"Cyberdyne Systems":       "CYDS",
	"Soylent Foods":           "SOYL",
	"Tyrell Manufacturing":    "TYRL",
	"Oceanic Airlines":        "OCNA",
	"Hooli":                   "HOOL",
	"Vandelay Import Export":  "VIE",
	"Massive Dynamic":         "MSDY",
	"Wonka Confectionery":     "WNKA",
	"Aperture Science":        "APSC",
	"Black Mesa Research":     "BMR",
	"Gringotts Banking Group": "GBG",
}

const maxCodeLength = 10

// ClientCode returns the known short code of a client or derives one from
// the name: the initials of a multi-word name, the first four letters of a
// single word. Unknown empty names yield "".
func ClientCode(name string) string {
	if code, ok := ClientCodes[strings.TrimSpace(name)]; ok {
		return code
	}

	words := slices.DeleteFunc(strings.Split(slug.Make(name), "-"), func(w string) bool {
		return w == ""
	})
	switch len(words) {
	case 0:
		return ""
	case 1:
		w := words[0]
		if len(w) > 4 {
			w = w[:4]
		}
		return strings.ToUpper(w)
	}

	var b strings.Builder
	for _, w := range words {
		if b.Len() == maxCodeLength {
			break
		}
		b.WriteByte(w[0])
	}
	return strings.ToUpper(b.String())
}

