// This file is part of Periphery.
//
// Periphery is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Periphery is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Periphery.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/periphery/environment"
	"github.com/jetsetilly/periphery/hardware"
	"github.com/jetsetilly/periphery/hardware/preferences"
	"github.com/jetsetilly/periphery/hardware/serial"
	"github.com/jetsetilly/periphery/hostscript"
	"github.com/jetsetilly/periphery/logger"
	"github.com/jetsetilly/periphery/modalflag"
	"github.com/jetsetilly/periphery/notifications"
	"github.com/jetsetilly/periphery/performance"
	"github.com/jetsetilly/periphery/prefs"
	"github.com/jetsetilly/periphery/statsview"
	"github.com/jetsetilly/periphery/tape"
	"github.com/jetsetilly/periphery/version"
)

// exit values
const (
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the value to be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "SCRIPT", "PERFORMANCE", "TAPE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	// interrupt signal cancels the context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "SCRIPT":
		err = script(ctx, md)

	case "PERFORMANCE":
		err = perform(ctx, md)

	case "TAPE":
		err = tapeConvert(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return 0
}

// flags shared by the modes that create a device.
type deviceFlags struct {
	prefs     *string
	log       *bool
	stats     *bool
	memviz    *string
	saveprefs *bool
}

func addDeviceFlags(md *modalflag.Modes) deviceFlags {
	f := deviceFlags{
		prefs:     md.AddString("prefs", "", "preferences to apply for this run. key::value; key::value"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		memviz:    md.AddString("memviz", "", "write a graph of the device state to file on exit"),
		saveprefs: md.AddBool("saveprefs", false, "save the preferences used for this run"),
	}
	if statsview.Available() {
		f.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// notices echoes notifications from the device to the log.
type notices struct{}

func (notices) Notify(notice notifications.Notice, data any) error {
	if data == nil {
		logger.Log(logger.Allow, "notice", notice)
	} else {
		logger.Logf(logger.Allow, "notice", "%s: %v", notice, data)
	}
	return nil
}

// newDevice creates the device described by the preferences. The transports
// are opened here and closed by Device.Close().
func newDevice(md *modalflag.Modes, f deviceFlags) (*hardware.Device, *environment.Environment, error) {
	if *f.log {
		logger.SetEcho(md.Output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if f.stats != nil && *f.stats {
		statsview.Launch(md.Output, statsview.DefaultInterval*time.Millisecond)
	}

	prefs.PushCommandLineStack(*f.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(md.Output, "! unused preferences: %s\n", unused)
		}
	}()

	p, err := preferences.NewPreferences("")
	if err != nil {
		return nil, nil, err
	}

	if *f.saveprefs {
		err = p.Save()
		if err != nil {
			return nil, nil, err
		}
	}

	env, err := environment.NewEnvironment(environment.MainDevice, p, notices{})
	if err != nil {
		return nil, nil, err
	}

	images, err := hardware.LoadImages(p.ROM)
	if err != nil {
		return nil, nil, err
	}

	baud := p.Serial.Baud.Get().(int)

	var transports hardware.Transports
	transports.Console, err = serial.Open(p.Serial.Console.String(), baud)
	if err != nil {
		return nil, nil, err
	}
	transports.Aux, err = serial.Open(p.Serial.Aux.String(), baud)
	if err != nil {
		_ = transports.Console.Close()
		return nil, nil, err
	}

	dev, err := hardware.NewDevice(env, transports, images)
	if err != nil {
		_ = transports.Console.Close()
		_ = transports.Aux.Close()
		return nil, nil, err
	}

	return dev, env, nil
}

// closeDevice closes the device and writes the memviz graph if requested.
func closeDevice(dev *hardware.Device, f deviceFlags) error {
	err := dev.Close()

	if *f.memviz != "" {
		w, ferr := os.Create(*f.memviz)
		if ferr != nil {
			return errors.Join(err, ferr)
		}
		memviz.Map(w, dev.Snapshot())
		err = errors.Join(err, w.Close())
	}

	return err
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("images and transports are set with the -prefs flag or the preferences file")

	f := addDeviceFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dev, _, err := newDevice(md, f)
	if err != nil {
		return err
	}

	err = dev.Run(ctx)
	return errors.Join(err, closeDevice(dev, f))
}

func script(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	f := addDeviceFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	src, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer src.Close()

	dev, env, err := newDevice(md, f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- dev.Run(ctx)
	}()

	host := hostscript.NewHost(env, dev, md.Output)
	err = host.Run(ctx, filepath.Base(md.GetArg(0)), src)

	cancel()
	err = errors.Join(err, <-done)

	return errors.Join(err, closeDevice(dev, f))
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to apply for this run. key::value; key::value")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	prefs.PushCommandLineStack(*prefsOverride)
	defer prefs.PopCommandLineStack()

	dp, err := preferences.NewPreferences("")
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainDevice, dp, notices{})
	if err != nil {
		return err
	}

	dev, err := performance.NewCheckDevice(env)
	if err != nil {
		return err
	}

	_, err = performance.Check(ctx, md.Output, dev, prf, *duration)
	return err
}

func tapeConvert(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("converts a tape recording (wav, mp3) to a binary file or with -encode a binary file to a wav recording")

	encode := md.AddBool("encode", false, "encode a binary file as a wav recording")
	rate := md.AddInt("rate", 44100, "sample rate of the encoded recording")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires an input and an output file", md)
	}
	in := md.GetArg(0)
	out := md.GetArg(1)

	if *encode {
		data, err := os.ReadFile(in)
		if err != nil {
			return err
		}

		w, err := os.Create(out)
		if err != nil {
			return err
		}

		err = tape.Encode(w, data, *rate)
		if err != nil {
			_ = w.Close()
			return err
		}
		return w.Close()
	}

	r, err := os.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()

	data, err := tape.Decode(r, filepath.Ext(in))
	if err != nil {
		return err
	}

	err = os.WriteFile(out, data, 0644)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "! %d bytes decoded from %s\n", len(data), strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)))

	return nil
}
