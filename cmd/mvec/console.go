// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/str"
	"github.com/katalvlaran/mvec/buffer"
	"github.com/katalvlaran/mvec/curve"
	"github.com/katalvlaran/mvec/diag"
	"github.com/katalvlaran/mvec/matrix"
)

const prompt = "\033[31m»\033[0m "

// errExit ends the console loop.
var errExit = errors.New("exit")

type handlerCb func(c *console, args []string) error

type handler struct {
	Usage       string
	Description string
	Cb          handlerCb
}

// console holds the state shared by command handlers.
type console struct {
	tr     *buffer.Tracker
	logger *diag.Logger
}

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"transpose": {"transpose <m> <n> <v...>", "Transpose an m×n matrix in place.", cmdTranspose},
		"dot":       {"dot <m> <n> <p> <a...> <b...>", "Multiply an m×n matrix by an n×p matrix.", cmdDot},
		"bezier":    {"bezier <axes> <t> <v...>", "Evaluate a Bezier curve at t.", cmdBezier},
		"mem":       {"mem", "Show bytes held by live buffers.", cmdMem},
		"help":      {"help", "Show this help.", cmdHelp},
		"exit":      {"exit", "Leave the console.", func(*console, []string) error { return errExit }},
	}
}

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for name := range handlers {
		items = append(items, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(items...)
}

// runConsole reads commands until exit, EOF or interrupt.
func runConsole(tr *buffer.Tracker, logger *diag.Logger, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mvec " + prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	c := &console{tr: tr, logger: logger}
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if err := c.dispatch(line); errors.Is(err, errExit) {
			return nil
		} else if err != nil {
			logger.Logf("error: %v", err)
		}
	}
}

func (c *console) dispatch(line string) error {
	args := str.SplitBy(line, " ")
	if len(args) == 0 {
		return nil
	}

	h, found := handlers[args[0]]
	if !found {
		return fmt.Errorf("unknown command %q, try help", args[0])
	}

	return h.Cb(c, args[1:])
}

func cmdHelp(c *console, _ []string) error {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.logger.Logf("%-32s %s", handlers[name].Usage, handlers[name].Description)
	}

	return nil
}

func cmdMem(c *console, _ []string) error {
	live := c.tr.Live()
	if live < 0 {
		return fmt.Errorf("tracker is negative (%d bytes)", live)
	}
	c.logger.Logf("live buffers hold %s", humanize.IBytes(uint64(live)))

	return nil
}

func cmdTranspose(c *console, args []string) error {
	dims, vals, err := parseArgs(args, 2)
	if err != nil {
		return err
	}
	m, n := dims[0], dims[1]

	b := buffer.FromRaw(c.tr, vals)
	defer func() { _ = b.Destroy() }()
	if err := matrix.Transpose(b, m, n); err != nil {
		return err
	}

	return c.show(b, m)
}

func cmdDot(c *console, args []string) error {
	dims, vals, err := parseArgs(args, 3)
	if err != nil {
		return err
	}
	m, n, p := dims[0], dims[1], dims[2]
	if err := matrix.ValidateShape(m, n, p); err != nil {
		return err
	}
	if len(vals) != m*n+n*p {
		return fmt.Errorf("expected %d values, got %d", m*n+n*p, len(vals))
	}

	a := buffer.FromRaw(c.tr, vals[:m*n])
	b := buffer.FromRaw(c.tr, vals[m*n:])
	defer func() {
		_ = a.Destroy()
		_ = b.Destroy()
	}()

	out, err := matrix.Dot(a, b, m, n, p)
	if err != nil {
		return err
	}
	defer func() { _ = out.Destroy() }()

	return c.show(out, p)
}

func cmdBezier(c *console, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: %s", handlers["bezier"].Usage)
	}
	axes, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("axes: %w", err)
	}
	t, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("t: %w", err)
	}
	vals, err := parseFloats(args[2:])
	if err != nil {
		return err
	}

	pts := buffer.FromRaw(c.tr, vals)
	defer func() { _ = pts.Destroy() }()

	p, err := curve.Bezier(pts, axes, float32(t))
	if err != nil {
		return err
	}
	defer func() { _ = p.Destroy() }()

	return c.show(p, axes)
}

// show logs b with perRow elements per line.
func (c *console) show(b *buffer.Buffer[float32], perRow int) error {
	s, err := buffer.Stringify(c.tr, b, perRow)
	if err != nil {
		return err
	}
	defer func() { _ = s.Destroy() }()
	c.logger.Logf("\n%s", s.String())

	return nil
}

// parseArgs splits args into nDims leading integers and float values.
func parseArgs(args []string, nDims int) ([]int, []float32, error) {
	if len(args) < nDims {
		return nil, nil, fmt.Errorf("expected %d dimensions", nDims)
	}
	dims := make([]int, nDims)
	for i := range dims {
		d, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		dims[i] = d
	}
	vals, err := parseFloats(args[nDims:])

	return dims, vals, err
}

func parseFloats(args []string) ([]float32, error) {
	vals := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		vals[i] = float32(v)
	}

	return vals, nil
}
