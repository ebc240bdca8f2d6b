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

package plan

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/dvxf/tt06-dj8/curated"
	"github.com/dvxf/tt06-dj8/hardware/memory/memorymap"
	"github.com/dvxf/tt06-dj8/hardware/pins"
	"github.com/dvxf/tt06-dj8/logger"
	"github.com/dvxf/tt06-dj8/sequencer"
)

// Patterns for errors returned by Parse() and Load().
const (
	ScriptError  = "plan: %v"
	InvalidEntry = "plan: phase %d: %v"
)

// Load reads the Lua script in the named file and returns the phases it
// describes.
func Load(filename string) ([]sequencer.Phase, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "plan")
	}

	phases, err := Parse(string(src))
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}

	logger.Logf(logger.Allow, "plan", "%d phases loaded from %s", len(phases), filename)

	return phases, nil
}

// Parse evaluates the Lua source and returns the phases it describes. Every
// phase is validated.
func Parse(src string) ([]sequencer.Phase, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return nil, curated.Errorf(ScriptError, err)
		}
	}

	sel := L.NewTable()
	sel.RawSetString("external", lua.LNumber(pins.SelectExternal))
	sel.RawSetString("indicator", lua.LNumber(pins.SelectIndicatorAlt))
	sel.RawSetString("internal", lua.LNumber(pins.SelectInternal))
	sel.RawSetString("capture", lua.LNumber(pins.SelectCapture))
	L.SetGlobal("pins", sel)

	if err := L.DoString(src); err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}

	tbl, ok := L.GetGlobal("phases").(*lua.LTable)
	if !ok {
		return nil, curated.Errorf(ScriptError, "no phases table")
	}

	var phases []sequencer.Phase
	for i := 1; i <= tbl.Len(); i++ {
		ent, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, curated.Errorf(InvalidEntry, i, "not a table")
		}

		ph, err := phase(ent)
		if err != nil {
			return nil, curated.Errorf(InvalidEntry, i, err)
		}
		if err := ph.Validate(); err != nil {
			return nil, curated.Errorf(InvalidEntry, i, err)
		}

		phases = append(phases, ph)
	}

	if len(phases) == 0 {
		return nil, curated.Errorf(ScriptError, "phases table is empty")
	}

	return phases, nil
}

func phase(ent *lua.LTable) (sequencer.Phase, error) {
	var ph sequencer.Phase
	var err error

	ph.Name, err = str(ent, "name", "")
	if err != nil {
		return ph, err
	}

	s, err := str(ent, "kind", "external")
	if err != nil {
		return ph, err
	}
	ph.Kind, err = sequencer.KindByName(s)
	if err != nil {
		return ph, err
	}

	s, err = str(ent, "policy", "")
	if err != nil {
		return ph, err
	}
	if s != "" {
		ph.Policy, err = memorymap.PolicyByName(s)
		if err != nil {
			return ph, err
		}
	}

	if t, ok := ent.RawGetString("reset").(*lua.LTable); ok {
		ph.Reset.Hold, err = nanoseconds(t, "hold_ns")
		if err != nil {
			return ph, err
		}
		ph.Reset.Select, err = byt(t, "select")
		if err != nil {
			return ph, err
		}
		ph.Reset.Settle, err = nanoseconds(t, "settle_ns")
		if err != nil {
			return ph, err
		}
	} else {
		return ph, fmt.Errorf("reset table missing")
	}

	t, ok := ent.RawGetString("waveform").(*lua.LTable)
	if !ok {
		return ph, fmt.Errorf("waveform table missing")
	}
	ph.Waveform, err = waveform(t)
	if err != nil {
		return ph, err
	}

	t, ok = ent.RawGetString("segments").(*lua.LTable)
	if !ok {
		return ph, fmt.Errorf("segments table missing")
	}
	for i := 1; i <= t.Len(); i++ {
		st, ok := t.RawGetInt(i).(*lua.LTable)
		if !ok {
			return ph, fmt.Errorf("segment %d is not a table", i)
		}
		var seg sequencer.Segment
		seg.Select, err = byt(st, "select")
		if err != nil {
			return ph, err
		}
		seg.Cycles, err = integer(st, "cycles")
		if err != nil {
			return ph, err
		}
		ph.Segments = append(ph.Segments, seg)
	}

	ph.ExpectStore, err = bytes(ent, "expect_store")
	if err != nil {
		return ph, err
	}
	ph.ExpectOutput, err = bytes(ent, "expect_output")
	if err != nil {
		return ph, err
	}
	ph.IndicatorMask, err = byt(ent, "indicator_mask")
	if err != nil {
		return ph, err
	}
	ph.MinToggles, err = integer(ent, "min_toggles")
	if err != nil {
		return ph, err
	}

	return ph, nil
}

func waveform(t *lua.LTable) (sequencer.Waveform, error) {
	if p := t.RawGetString("preset"); p != lua.LNil {
		name, ok := p.(lua.LString)
		if !ok {
			return nil, fmt.Errorf("waveform preset is not a string")
		}
		d, err := nanoseconds(t, "ns")
		if err != nil {
			return nil, err
		}
		return sequencer.WaveformByName(string(name), d)
	}

	var w sequencer.Waveform
	for i := 1; i <= t.Len(); i++ {
		st, ok := t.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("waveform step %d is not a table", i)
		}
		clk, err := integer(st, "clock")
		if err != nil {
			return nil, err
		}
		d, err := nanoseconds(st, "ns")
		if err != nil {
			return nil, err
		}
		w = append(w, sequencer.Step{
			Clock:  clk != 0,
			Wait:   d,
			Sample: lua.LVAsBool(st.RawGetString("sample")),
		})
	}
	return w, nil
}

func str(t *lua.LTable, field string, def string) (string, error) {
	switch v := t.RawGetString(field).(type) {
	case *lua.LNilType:
		return def, nil
	case lua.LString:
		return string(v), nil
	}
	return "", fmt.Errorf("%s is not a string", field)
}

func integer(t *lua.LTable, field string) (int, error) {
	switch v := t.RawGetString(field).(type) {
	case *lua.LNilType:
		return 0, nil
	case lua.LNumber:
		if float64(v) != float64(int(v)) {
			return 0, fmt.Errorf("%s is not an integer", field)
		}
		return int(v), nil
	}
	return 0, fmt.Errorf("%s is not a number", field)
}

func byt(t *lua.LTable, field string) (uint8, error) {
	n, err := integer(t, field)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 0xff {
		return 0, fmt.Errorf("%s is out of range (%d)", field, n)
	}
	return uint8(n), nil
}

func nanoseconds(t *lua.LTable, field string) (time.Duration, error) {
	n, err := integer(t, field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%s is negative", field)
	}
	return time.Duration(n) * time.Nanosecond, nil
}

func bytes(t *lua.LTable, field string) ([]uint8, error) {
	switch v := t.RawGetString(field).(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LString:
		return []uint8(string(v)), nil
	case *lua.LTable:
		b := make([]uint8, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			n, ok := v.RawGetInt(i).(lua.LNumber)
			if !ok || n < 0 || n > 0xff || float64(n) != float64(int(n)) {
				return nil, fmt.Errorf("%s entry %d is not a byte", field, i)
			}
			b = append(b, uint8(n))
		}
		return b, nil
	}
	return nil, fmt.Errorf("%s is not a string or table", field)
}
