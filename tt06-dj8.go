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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/dvxf/tt06-dj8/curated"
	"github.com/dvxf/tt06-dj8/fixtures"
	"github.com/dvxf/tt06-dj8/hardware/dut"
	"github.com/dvxf/tt06-dj8/hardware/dut/replay"
	"github.com/dvxf/tt06-dj8/hardware/dut/scripted"
	"github.com/dvxf/tt06-dj8/hardware/memory"
	"github.com/dvxf/tt06-dj8/hardware/memory/memorymap"
	"github.com/dvxf/tt06-dj8/logger"
	"github.com/dvxf/tt06-dj8/modalflag"
	"github.com/dvxf/tt06-dj8/plan"
	"github.com/dvxf/tt06-dj8/sequencer"
	"github.com/dvxf/tt06-dj8/statsview"
	"github.com/dvxf/tt06-dj8/version"
	"github.com/dvxf/tt06-dj8/wavwriter"
)

// exit values
const (
	exitOK        = 0
	exitInterrupt = 1
	exitArgs      = 10
	exitMode      = 20
	exitFail      = 30
)

func main() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go func() {
		done <- launch(os.Args[1:], os.Stdout)
	}()

	select {
	case <-intChan:
		fmt.Println("\r")
		os.Exit(exitInterrupt)
	case v := <-done:
		os.Exit(v)
	}
}

// launch the program with the arguments. the return value is the exit value
// for the process.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "MAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	var passed bool

	switch md.Mode() {
	case "RUN":
		passed, err = run(md)
	case "MAP":
		passed, err = mapping(md)
	case "VERSION":
		passed, err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}
	if !passed {
		return exitFail
	}

	return exitOK
}

// returns the writer to use for echoing the log. the log is colorized if the
// output is a terminal.
func echoWriter(output io.Writer) io.Writer {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return logger.NewColorizer(output)
	}
	return output
}

func run(md *modalflag.Modes) (bool, error) {
	md.NewMode()

	tracefile := md.AddString("trace", "", "replay device outputs from trace file instead of the demo device")
	planfile := md.AddString("plan", "", "Lua script describing the phases to run")
	imagefile := md.AddString("image", "", "program image to serve to the device (default DJ8 program)")
	wav := md.AddString("wav", "", "write captured output sequence to WAV file")
	record := md.AddString("record", "", "record device outputs to trace file")
	dump := md.AddString("memviz", "", "write graphviz dump of the result to file")
	log := md.AddBool("log", false, "echo log to output")
	verbose := md.AddBool("verbose", false, "log every completed write")
	stats := md.AddBool("statsview", false, "run stats server")

	md.AdditionalHelp("The default plan runs the external memory, indicator and bytebeat capture phases.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return p == modalflag.ParseHelp, err
	}

	if len(md.RemainingArgs()) > 0 {
		return false, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(echoWriter(md.Output))
		defer logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	img := fixtures.DJ8Program
	if *imagefile != "" {
		img, err = fixtures.LoadImage(*imagefile)
		if err != nil {
			return false, err
		}
	}

	var dev dut.Device
	if *tracefile != "" {
		dev, err = replay.Load(*tracefile)
		if err != nil {
			return false, err
		}
	} else {
		dev = scripted.NewDemo(img)
	}

	var rec *dut.Recorder
	if *record != "" {
		rec = dut.NewRecorder(dev)
		dev = rec
	}

	phases := sequencer.DefaultPlan()
	if *planfile != "" {
		phases, err = plan.Load(*planfile)
		if err != nil {
			return false, err
		}
	}

	sq := sequencer.NewSequencer(dev, memory.NewImage(img))
	if *verbose {
		sq.Verbose = logger.Allow
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav)
		if err != nil {
			return false, err
		}
		sq.AttachTap(aw)
	}

	res, runErr := sq.Run(phases)

	for _, r := range res.Phases {
		fmt.Fprintf(md.Output, "%s\n", r)
	}
	if runErr != nil {
		fmt.Fprintf(md.Output, "* %v\n", runErr)
	}
	fmt.Fprintf(md.Output, "%d phases in %v simulated\n", len(res.Phases), res.Elapsed)

	if aw != nil {
		if err := aw.End(); err != nil {
			return false, err
		}
	}

	if rec != nil {
		if err := writeTrace(*record, rec.Trace()); err != nil {
			return false, err
		}
	}

	if *dump != "" {
		if err := writeMemviz(*dump, &res); err != nil {
			return false, err
		}
	}

	return runErr == nil && res.Passed(), nil
}

func writeTrace(filename string, tr dut.Trace) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("record: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("record: %v", err)
		}
	}()

	logger.Logf(logger.Allow, "record", "writing %d trace sections to %s", len(tr), filename)

	if err := tr.Write(f); err != nil {
		return curated.Errorf("record: %v", err)
	}

	return nil
}

func writeMemviz(filename string, res *sequencer.Result) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	memviz.Map(f, res)

	return nil
}

func mapping(md *modalflag.Modes) (bool, error) {
	md.NewMode()

	policy := md.AddString("policy", "external", "address decoding policy: external, mirrored")
	imagefile := md.AddString("image", "", "program image (default DJ8 program)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return p == modalflag.ParseHelp, err
	}

	pol, err := memorymap.PolicyByName(*policy)
	if err != nil {
		return false, err
	}

	img := fixtures.DJ8Program
	if *imagefile != "" {
		img, err = fixtures.LoadImage(*imagefile)
		if err != nil {
			return false, err
		}
	}

	fmt.Fprintf(md.Output, "%s policy, %d byte image\n", pol, len(img))
	fmt.Fprint(md.Output, memorymap.Summary(pol, len(img)))

	return true, nil
}

func showVersion(md *modalflag.Modes) (bool, error) {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return p == modalflag.ParseHelp, err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return true, nil
}
