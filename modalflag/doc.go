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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which has its own set of flags.
//
// Arguments are given to NewArgs() and parsed by Parse(). Flags added before
// a call to Parse() belong to the current mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MAP", "VERSION")
//	res, err := md.Parse()
//
// The first non-flag argument is compared against the list of sub-modes. If
// it matches, that sub-mode is selected and the argument consumed. Otherwise
// the first sub-mode in the list is the default. Sub-mode names are case
// insensitive.
//
// Once a mode has been selected, NewMode() prepares for the flags of that
// mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		wav := md.AddString("wav", "", "write captured output to WAV file")
//		res, err = md.Parse()
//	}
//
// Path() returns the list of modes selected so far, separated by a slash.
//
// The -help flag is handled by Parse(), which prints the flags and sub-modes
// of the current mode to the Output writer and returns ParseHelp.
package modalflag
