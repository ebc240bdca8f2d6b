// This file is part of tt06-dj8.
//
// tt06-dj8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tt06-dj8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tt06-dj8.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview offers runtime statistics of the bench over HTTP. Long
// capture phases allocate heavily and the graphs are useful for watching the
// heap while a plan runs.
//
// The server is only compiled into the program when the statsview build tag
// is given:
//
//	go build -tags statsview .
//
// Without the tag Launch() prints a message and Available() returns false.
// With the tag the graphs are served at:
//
//	localhost:12606/debug/statsview
//
// and the standard pprof pages at:
//
//	localhost:12606/debug/pprof/
package statsview

// Address of the statsview server.
const Address = "localhost:12606"

const url = "/debug/statsview"
