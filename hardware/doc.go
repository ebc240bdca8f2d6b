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

// Package hardware is the base package for the test bench. Its sub-packages
// contain everything the bench presents to the device under test.
//
// The dut package defines the pin level interface to the device. The memory
// package and its bus sub-package serve reads and latch writes on the device's
// behalf. The capture package collects the output sequence of the bytebeat
// mode. The pins package names the lines and bit fields shared by all of
// them.
package hardware
