// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	qr "github.com/unixdj/qrplot"
)

var g = struct {
	cfg     qr.Config       // symbol configuration
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	fext    string          // filename suffix
	format  int             // output file format
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	alnum   bool            // alphanumeric mode
	lines   bool            // one symbol per line
}{
	cfg:    qr.DefaultConfig,
	border: 4,
	bg:     rgba{0xff, 0xff, 0xff, 0xff},
	fg:     rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Byte mode text is encoded as ISO 8859-1.  Mask
pattern 3 is always used.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.1.0
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{"text", "texti", "png", "pngi", "pbm", "pbmi"}

var encoders = [...]func(*qr.Code, io.Writer) error{
	text,
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
}

// text writes c as text, two runes per module.
func text(c *qr.Code, w io.Writer) error {
	r := strings.NewReplacer("█", "██", " ", "  ")
	_, err := r.WriteString(w, c.Text('█', ' '))
	return err
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a basic colour name; `+
		`only for types png[i]`, "RGB[A]|name")
	getopt.Flag(&g.cfg.Micro, 'M', "encode a Micro QR code")
	getopt.Flag(&g.alnum, 'a', "alphanumeric mode; "+
		"lowercase letters are converted to uppercase")
	getopt.Flag(&g.cfg.Strict, 'S', "fail if data does not fit, "+
		"instead of truncating it")
	getopt.Flag(&g.lines, 'L', `encode each input line as a separate `+
		`symbol; with -o, "-01", "-02" etc. is appended to the `+
		`filename before suffix`)
	getopt.Flag(&g.border, 'm', `quiet zone modules`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', uint64(qr.DefaultConfig.Version),
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"QR code version, 1 to 9 (1 to 4 for Micro QR)", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 12}),
		`image pixels per QR module ("pixel"); `+
			`ignored for type text[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is text, otherwise png`, "type")

	getopt.Parse()
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	g.scale = int(*scale)
	g.cfg.Version = int(*ver)
	g.cfg.Level = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if g.alnum {
		g.cfg.Mode = qr.Alphanumeric
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "text"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	e, err := qr.NewEncoder(g.cfg)
	if err != nil {
		log.Fatalln(err)
	}
	if !g.lines {
		c, err := e.Encode(s)
		if err != nil {
			log.Fatalln(err)
		}
		if err := write(-1, c); err != nil {
			log.Fatalln(err)
		}
		return
	}

	g.fext = path.Ext(g.fn)
	g.fn = g.fn[:len(g.fn)-len(g.fext)]
	lines := strings.Split(s, "\n")
	codes := make([]*qr.Code, len(lines))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, line := range lines {
		i, line := i, line
		eg.Go(func() error {
			c, err := e.Encode(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			codes[i] = c
			if g.fn != "" || g.fext != "" {
				return write(i, c)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
	if g.fn == "" && g.fext == "" {
		for i, c := range codes {
			if i > 0 {
				fmt.Println()
			}
			if err := write(i, c); err != nil {
				log.Fatalln(err)
			}
		}
	}
}

func write(i int, c *qr.Code) error {
	fn := g.fn
	open := fn != "" || g.fext != ""
	var w = os.Stdout
	if open {
		if i >= 0 {
			fn = fmt.Sprintf("%s-%02d%s", fn, i+1, g.fext)
		}
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			return err
		}
	}
	c.Scale = g.scale
	c.Palette = g.palette
	c.Reverse = g.rev
	c.Border = g.border
	if !open && g.format == 0 {
		checkWidth(c)
	}
	err := encoders[g.format](c, w)
	if open {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// checkWidth warns if text output is wider than the terminal.
func checkWidth(c *qr.Code) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if need := 2 * (c.Size + 2*c.Border); need > width {
		log.Printf("warning: code is %d columns wide, terminal %d",
			need, width)
	}
}
