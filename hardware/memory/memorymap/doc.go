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

// Package memorymap decides which backing store serves an address presented
// by the device.
//
// The device has two address apertures. When it executes a program supplied
// by the bench (the external policy) the working store occupies every address
// with bit 14 clear and the program image is visible from 0x4000, masked to
// 14 bits. When it executes from its internally embedded image (the mirrored
// policy) the image is visible from address zero without masking and the
// working store is visible from 0x4000 onwards.
//
// The two policies are not interchangeable. The Resolve() function of each
// policy returns the Area and the index into that area's backing store. The
// memory package uses the result to read from the image or the working store.
package memorymap
