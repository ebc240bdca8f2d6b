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

// Package pins describes the lines between the test bench and the device
// under test.
//
// The device drives two 8-bit lines every cycle. The first (UO) carries the
// write strobe in bit 7 and address bits 14:8 in bits 6:0. The second (UIO)
// is bidirectional and carries address bits 7:0 while the device is reading
// and the data byte while a write is being committed.
//
// The bench drives the 8-bit input line (UI), the clock and the active-low
// reset line. The input line carries read data during normal execution and
// mode select bits at the moment reset is released.
package pins
