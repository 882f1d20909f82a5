// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command be801 runs a program on a simulated BE-801 computer.
//
//	be801 [flags] [file]
//
// The program is read from file, or from standard input, as assembly source
// by default. With -image, it is read as a raw RAM image, or as hex text when
// -hex is set.
//
// The output register is printed every time it changes. The final state of
// the computer is printed on exit.
//
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	digital "github.com/DanStevens/DigitalElectronics-sub000"
	"github.com/DanStevens/DigitalElectronics-sub000/be801"
	"github.com/DanStevens/DigitalElectronics-sub000/internal/logger"
	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/pkg/errors"
	"github.com/pkg/term"
)

const statsAddr = "localhost:12600"

type options struct {
	image   bool
	hex     bool
	clocks  int
	step    bool
	trace   bool
	memviz  string
	stats   bool
	log     bool
	listing bool
}

func main() {
	var o options
	flag.BoolVar(&o.image, "image", false, "read a RAM image instead of assembly source")
	flag.BoolVar(&o.hex, "hex", false, "RAM image is hex text")
	flag.IntVar(&o.clocks, "clocks", 1000, "maximum number of clocks")
	flag.BoolVar(&o.step, "step", false, "single step: space or enter clocks, r resets, q quits")
	flag.BoolVar(&o.trace, "trace", false, "print the computer state after every clock")
	flag.StringVar(&o.memviz, "memviz", "", "write a graphviz dot `file` of the final computer state")
	flag.BoolVar(&o.stats, "statsview", false, "serve runtime statistics at "+statsAddr+"/debug/statsview")
	flag.BoolVar(&o.log, "log", false, "echo log entries to stderr")
	flag.BoolVar(&o.listing, "l", false, "print a program listing before running")
	flag.Parse()

	if err := run(&o, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "be801: %v\n", err)
		os.Exit(1)
	}
}

func readSource(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// parseHex parses whitespace separated hex bytes. Comments start with '#' or
// ';' and run to the end of the line.
func parseHex(src string) ([]byte, error) {
	var img []byte
	for n, l := range strings.Split(src, "\n") {
		if i := strings.IndexAny(l, "#;"); i >= 0 {
			l = l[:i]
		}
		for _, f := range strings.Fields(l) {
			v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(f), "0x"), 16, 8)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", n+1)
			}
			img = append(img, byte(v))
		}
	}
	return img, nil
}

func loadProgram(o *options, name string) ([]byte, error) {
	src, err := readSource(name)
	if err != nil {
		return nil, err
	}
	switch {
	case o.image && o.hex:
		return parseHex(string(src))
	case o.image:
		return src, nil
	}
	return be801.Assemble(string(src))
}

func run(o *options, name string) error {
	if o.log {
		logger.SetEcho(os.Stderr)
	}
	if o.stats {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(statsAddr))
			statsview.New().Start()
		}()
		fmt.Fprintf(os.Stderr, "stats server available at %s/debug/statsview\n", statsAddr)
	}

	prog, err := loadProgram(o, name)
	if err != nil {
		return err
	}
	if o.listing {
		fmt.Print(be801.Listing(prog))
	}

	c := be801.New()
	if err = c.LoadRAM(prog); err != nil {
		return err
	}

	m := monitor{c: c, w: os.Stdout, trace: o.trace}
	if o.step {
		err = m.interactive(o.clocks)
	} else {
		err = m.run(o.clocks)
	}
	fmt.Printf("%d clocks\n%s", m.clocks, c.Snapshot())
	if err != nil {
		return err
	}

	if o.memviz != "" {
		f, err := os.Create(o.memviz)
		if err != nil {
			return err
		}
		s := c.Snapshot()
		memviz.Map(f, &s)
		if err = f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// monitor clocks a computer and reports changes of the output register.
type monitor struct {
	c      *be801.Computer
	w      io.Writer
	trace  bool
	clocks int
	out    digital.BitVector
	init   bool
}

func (m *monitor) clock() error {
	if err := m.c.Clock(); err != nil {
		return err
	}
	m.clocks++
	if m.trace {
		s := m.c.Snapshot()
		fmt.Fprintf(m.w, "%4d  PC=%d step=%d IR=%02X A=%d B=%d bus=%s\n", m.clocks, s.PC, s.Step, s.IR, s.A, s.B, s.Bus)
	}
	m.report()
	return nil
}

func (m *monitor) report() {
	out := m.c.ProbeOutputRegister()
	if m.init && out.Equal(m.out) {
		return
	}
	if m.init {
		fmt.Fprintf(m.w, "OUT: %s\n", out.Format(digital.UnsignedDecimal))
	}
	m.out, m.init = out, true
}

func (m *monitor) run(max int) error {
	m.report()
	for m.clocks < max && !m.c.Halted() {
		if err := m.clock(); err != nil {
			return err
		}
	}
	return nil
}

func (m *monitor) interactive(max int) error {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	defer t.Close()
	defer t.Restore()

	// raw mode: lines need an explicit carriage return.
	m.w = crlfWriter{os.Stdout}
	m.report()
	r := bufio.NewReader(t)
	for m.clocks < max {
		if m.c.Halted() {
			fmt.Fprint(m.w, "halted\n")
		}
		fmt.Fprintf(m.w, "[%d] %s > ", m.c.ProbeMicroStep(), m.c.NextControlWord())
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		fmt.Fprint(m.w, "\n")
		switch b {
		case ' ', '\r', '\n':
			if err := m.clock(); err != nil {
				fmt.Fprintf(m.w, "%v\n", err)
			}
		case 'r', 'R':
			m.c.Reset()
			m.init = false
			m.report()
		case 's', 'S':
			fmt.Fprint(m.w, m.c.Snapshot())
		case 'q', 'Q', 3:
			return nil
		}
	}
	return nil
}

type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	_, err := c.w.Write([]byte(strings.Replace(string(p), "\n", "\r\n", -1)))
	return len(p), err
}
