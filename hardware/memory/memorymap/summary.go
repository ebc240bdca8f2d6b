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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory
// for the policy and image length. Useful for reference.
func Summary(policy Policy, imageLen int) string {
	var area, current Area
	var a, sa uint16

	s := strings.Builder{}

	current, _ = policy.Resolve(0, imageLen)

	for a = 1; a <= Memtop; a++ {
		area, _ = policy.Resolve(a, imageLen)
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current))
			current = area
			sa = a
		}
	}

	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, Memtop, current))

	return s.String()
}
