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

// Package memory implements the memory seen by the device when it runs in
// external mode. The memorymap and bus sub-packages help with this.
//
// Memory is made up of two areas. The Image is the read-only program image
// and the WorkingStore is 64 bytes of read/write memory. How an address from
// the device is decoded into one of the areas is decided by the Policy
// attached to the Map, defined in the memorymap package. Addresses that do not
// decode to an area read as the sentinel value 0x66.
//
// The following ASCII diagram shows how the parts of the bench are connected.
// The bus emulator samples the output lines of the device. Reads are served by
// the Map and completed writes are committed to the WorkingStore.
//
//
//	    DEVICE ---- output lines ---- bus emulator ---- Map ---- Image
//	                                                      |
//	      ^                                 |             |
//	      |                                 |              ---- WorkingStore
//	       ------- input line <---- data ---                          ^
//	                                        |                         |
//	                                         ---- write latch ---- commit
//
//
// Writes only ever reach the WorkingStore. The Image cannot be written to by
// the device.
package memory
