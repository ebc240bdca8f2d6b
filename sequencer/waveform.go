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

package sequencer

import (
	"fmt"
	"strings"
	"time"
)

// Step is a single part of a clock cycle. The clock is set to the Clock
// level, the sequencer waits for the Wait duration and then, if Sample is
// true, the bus is sampled.
type Step struct {
	Clock  bool
	Wait   time.Duration
	Sample bool
}

func (s Step) String() string {
	clk := "0"
	if s.Clock {
		clk = "1"
	}
	if s.Sample {
		return fmt.Sprintf("%s/%v/S", clk, s.Wait)
	}
	return fmt.Sprintf("%s/%v", clk, s.Wait)
}

// Waveform is the list of steps for one clock cycle.
type Waveform []Step

func (w Waveform) String() string {
	s := make([]string, len(w))
	for i := range w {
		s[i] = w[i].String()
	}
	return strings.Join(s, " ")
}

// Period returns the duration of one clock cycle.
func (w Waveform) Period() time.Duration {
	var p time.Duration
	for _, s := range w {
		p += s.Wait
	}
	return p
}

// Samples returns the number of times the bus is sampled in one clock cycle.
func (w Waveform) Samples() int {
	var n int
	for _, s := range w {
		if s.Sample {
			n++
		}
	}
	return n
}

// Asymmetric is the waveform for the external memory phase. Each half of the
// cycle has a short setup, a long hold and another short period. The bus is
// sampled after every wait so that changes in the middle of either half are
// seen.
func Asymmetric(short time.Duration, long time.Duration) Waveform {
	return Waveform{
		{Clock: false, Wait: short, Sample: true},
		{Clock: false, Wait: long, Sample: true},
		{Clock: false, Wait: short, Sample: true},
		{Clock: true, Wait: short, Sample: true},
		{Clock: true, Wait: long, Sample: true},
		{Clock: true, Wait: short, Sample: true},
	}
}

// Symmetric is a square wave with no sampling.
func Symmetric(half time.Duration) Waveform {
	return Waveform{
		{Clock: true, Wait: half},
		{Clock: false, Wait: half},
	}
}

// Sampled is a square wave with the bus sampled at the end of each half.
func Sampled(half time.Duration) Waveform {
	return Waveform{
		{Clock: true, Wait: half, Sample: true},
		{Clock: false, Wait: half, Sample: true},
	}
}

// WaveformByName returns one of the preset waveforms. The duration argument
// is the half period for the symmetric presets and the short period for the
// asymmetric preset, where the long period is eight times the short.
func WaveformByName(name string, d time.Duration) (Waveform, error) {
	switch strings.ToLower(name) {
	case "asymmetric":
		return Asymmetric(d, 8*d), nil
	case "symmetric":
		return Symmetric(d), nil
	case "sampled":
		return Sampled(d), nil
	}
	return nil, fmt.Errorf("sequencer: unknown waveform (%s)", name)
}
