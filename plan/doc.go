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

// Package plan reads sequencer phases from a Lua script. The script must set
// a global table called phases. Each entry of the table describes a single
// sequencer.Phase:
//
//	phases = {
//		{
//			name = "external memory",
//			kind = "external",
//			policy = "external",
//			reset = { hold_ns = 10000, select = pins.external, settle_ns = 10000 },
//			waveform = { preset = "asymmetric", ns = 1000 },
//			segments = { { select = pins.external, cycles = 2000 } },
//			expect_store = "DJ8!",
//		},
//	}
//
// The waveform can also be given as a list of steps, with each step in the
// form { clock = 1, ns = 35, sample = true }.
//
// The policy field is only allowed for external phases. Without it an
// external phase uses the external policy.
//
// The expect_store and expect_output fields accept either a string or a list
// of byte values. The indicator_mask and min_toggles fields are optional.
//
// The pins table is predefined and holds the mode select values: external,
// indicator, internal and capture.
//
// Scripts run without the io and os libraries.
package plan
