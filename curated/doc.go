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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The pattern string
// given to Errorf() identifies the error and can be tested for with the Is()
// and Has() functions:
//
//	e := curated.Errorf(sequencer.StoreMismatch, "external", have, want)
//
//	if curated.Is(e, sequencer.StoreMismatch) {
//		fmt.Println("true")
//	}
//
// Has() checks the entire chain, including errors that have been wrapped with
// the github.com/pkg/errors package.
//
// The Error() function normalises the chain by removing duplicate adjacent
// parts. Parts are separated by the sub-string ": ". For example, a chain
// built like this:
//
//	a := curated.Errorf("fixtures: %v", err)
//	b := curated.Errorf("fixtures: %v", a)
//
// prints as "fixtures: <err>" and not "fixtures: fixtures: <err>".
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that creates the error.
package curated
