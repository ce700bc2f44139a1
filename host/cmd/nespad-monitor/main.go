package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/term"

	"nespad/host/config"
	"nespad/host/monitor"
	"nespad/host/serial"
	"nespad/protocol"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config, ignored for USB CDC)")
	showRaw    = flag.Bool("raw", false, "Echo every decoded frame, not just button edges")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *device != "" {
		cfg.Monitor.Device = *device
	}
	if *baud != 0 {
		cfg.Monitor.Baud = *baud
	}
	if *showRaw {
		cfg.Monitor.ShowRaw = true
	}

	portCfg := serial.DefaultConfig(cfg.Monitor.Device)
	portCfg.Baud = cfg.Monitor.Baud
	portCfg.ReadTimeout = 0 // block; a keystroke ends the program instead

	port, err := serial.Open(portCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	// Drop whatever queued on the port before we attached so the decoder
	// starts on live frames.
	if err := port.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to flush %s: %v\n", cfg.Monitor.Device, err)
		os.Exit(1)
	}

	fmt.Printf("Watching %s (press q to quit)\n", cfg.Monitor.Device)

	// Raw terminal so a single q quits without Enter. Not fatal if there is
	// no controlling terminal; the monitor then just runs until the port
	// closes.
	if tty, err := term.Open("/dev/tty", term.RawMode); err == nil {
		defer tty.Restore()
		go func() {
			buf := make([]byte, 1)
			for {
				if _, err := tty.Read(buf); err != nil {
					return
				}
				if buf[0] == 'q' || buf[0] == 3 { // q or ctrl-c
					tty.Restore()
					tty.Close()
					os.Exit(0)
				}
			}
		}()
	}

	var mon monitor.Monitor
	if cfg.Monitor.ShowRaw {
		mon.Reports = func(r protocol.Report) {
			fmt.Printf("seq=%d mask=%#02x\r\n", r.Seq, r.Mask)
		}
	}

	err = mon.Run(port, func(ev monitor.Event) {
		state := "released"
		if ev.Pressed {
			state = "pressed"
		}
		fmt.Printf("%-6s %s\r\n", ev.Button, state)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
