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

package memory

// Image is the fixed program image. It is never modified after it has been
// created.
type Image struct {
	data []uint8
}

// NewImage is the preferred method of initialisation for the Image type. The
// data is copied so later changes to the argument do not affect the image.
func NewImage(data []uint8) *Image {
	img := &Image{data: make([]uint8, len(data))}
	copy(img.data, data)
	return img
}

// Len returns the number of bytes in the image.
func (img *Image) Len() int {
	if img == nil {
		return 0
	}
	return len(img.data)
}

// Read returns the byte at index i. Callers must check the index against
// Len() first.
func (img *Image) Read(i int) uint8 {
	return img.data[i]
}
