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

// Package sequencer drives the device under test through a list of phases.
//
// Every phase begins with a reset. Reset is asserted for a hold period, the
// mode select value is placed on the input line, reset is released and the
// sequencer waits for a settle period. The phase then runs a number of
// segments, each a count of clock cycles shaped by the phase's Waveform.
//
// A Waveform is a list of steps. Each step sets the clock level, waits and
// optionally samples the bus. Sampling invokes the bus emulator which drives
// read data onto the input line and commits completed writes. What a commit
// does depends on the kind of phase:
//
//	External: commits go to the working store
//	Capture: commits are appended to the capture sink. Reads are not served
//	Indicator: no bus emulation. The indicator bits of the UO line are watched
//
// At the end of a phase the working store and the capture sink are compared
// with the expected values of the phase. A mismatch ends the run with an
// error carrying the observed bytes.
//
// Time is simulated. Waiting is no more than advancing a counter and telling
// the device how much time has passed. There is no concurrency.
package sequencer
