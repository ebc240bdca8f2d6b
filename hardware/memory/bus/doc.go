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

// Package bus reconstructs memory transactions from the pin level
// observations of the device.
//
// Reads are simple. Every time the bus is sampled the address on the lines is
// passed to a Reader and the result is driven onto the input line of the
// device, ready for the next active clock edge.
//
// Writes are spread over two edges of the write strobe. When the strobe falls
// the working store index is latched. When the strobe rises again the byte on
// the bidirectional line is committed to the latched index. The Latch type is
// the state machine for this handshake. A rising strobe without a preceding
// falling strobe is ignored.
//
// What happens to a committed byte is decided by the Committer. The working
// store in the memory package is one implementation and the capture sink is
// another.
//
// Decode() is a pure function combining the read path and the latch. The
// Emulator type owns a Latch and threads it through successive calls to
// Decode().
package bus
