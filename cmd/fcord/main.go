// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	m "github.com/aeronav/fcord"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Load input fixes
	fixes, err := loadFixes(args)
	if err != nil {
		return fmt.Errorf("failed to load fixes: %w", err)
	}
	m.PrintD(1, "loaded %d fixes\n", len(fixes))

	// Sort by 3D range from the origin
	if args.sortByRange {
		slices.SortStableFunc(fixes, func(a, b m.GPSCoord) int {
			da := args.origin.Distance(a)
			db := args.origin.Distance(b)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			default:
				return 0
			}
		})
	}

	// Prepare output file
	out, err := prepareOutput(args)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(out)

	// Print header
	if !args.noHeader {
		printHeader(out, os.Args[0], args)
	}

	// Print converted fixes
	for _, fix := range fixes {
		printFix(out, args, fix)
	}
	return nil
}

// Load input fixes from the fix file, or stdin if none was given
func loadFixes(args cmdOpt) ([]m.GPSCoord, error) {

	if len(args.fixFn) == 0 {
		return readFixes(os.Stdin)
	}

	f, err := os.Open(args.fixFn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readFixes(f)
}

// Read fixes ("lat lon alt" per line, # starts a comment line)
func readFixes(r io.Reader) ([]m.GPSCoord, error) {
	fixes := []m.GPSCoord{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		var fix m.GPSCoord
		if err := fix.Set(line); err != nil {
			return nil, fmt.Errorf("bad fix %q: %w", line, err)
		}
		fixes = append(fixes, fix)
	}
	return fixes, sc.Err()
}

// Prepare output file
func prepareOutput(args cmdOpt) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(args.outFn) == 0 {
		return &nopCloser{os.Stdout}, nil
	}

	// Create output file
	outf, err := os.Create(args.outFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return outf, nil
}

// Close output file
func closeOutput(out io.WriteCloser) {
	if out != nil {
		out.Close()
	}
}

// Print output header
func printHeader(out io.Writer, cmd string, args cmdOpt) {
	fmt.Fprintf(out, "%% program   : %s\n", filepath.Base(cmd))
	if len(args.fixFn) > 0 {
		fmt.Fprintf(out, "%% inp file  : %s\n", args.fixFn)
	}
	switch m.Frame(args.frame) {
	case m.GPS:
		fmt.Fprintf(out, "%%  latitude(deg) longitude(deg)  height(m)\n")
	case m.Cartesian:
		fmt.Fprintf(out, "%%          x(m)           y(m)           z(m)\n")
	case m.NED:
		fmt.Fprintf(out, "%% origin    : %s\n", args.origin)
		fmt.Fprintf(out, "%%   north(m)    east(m)    down(m)   range(m)   horiz(m)  azim(deg)\n")
	case m.ENU:
		fmt.Fprintf(out, "%% origin    : %s\n", args.origin)
		fmt.Fprintf(out, "%%    east(m)   north(m)      up(m)   range(m)   horiz(m)  azim(deg)\n")
	}
}

// Output one fix in the selected frame
func printFix(out io.Writer, args cmdOpt, fix m.GPSCoord) {
	switch m.Frame(args.frame) {
	case m.GPS:
		fmt.Fprintf(out, "%14.9f %14.9f %10.4f\n", fix.Lat, fix.Lon, fix.Alt)
	case m.Cartesian:
		xyz := fix.ECEF()
		fmt.Fprintf(out, "%14.4f %14.4f %14.4f\n", xyz.X, xyz.Y, xyz.Z)
	case m.NED:
		ned := fix.ToNED(args.origin)
		fmt.Fprintf(out, "%10.4f %10.4f %10.4f %10.4f %10.4f %10.4f\n",
			ned.N, ned.E, ned.D, m.L2Norm(ned), m.HorizontalDistance(ned), m.ToDeg(ned.Azimuth()))
	case m.ENU:
		enu := fix.ToENU(args.origin)
		fmt.Fprintf(out, "%10.4f %10.4f %10.4f %10.4f %10.4f %10.4f\n",
			enu.E, enu.N, enu.U, m.L2Norm(enu), m.HorizontalDistance(enu), m.ToDeg(enu.Azimuth()))
	}
}

type nopCloser struct {
	io.Writer
}

func (n *nopCloser) Close() error {
	return nil
}

// Output frame selection (for command arguments)
type frameVar m.Frame

func (p *frameVar) Set(s string) error {
	switch strings.ToLower(s) {
	case "ned":
		*p = frameVar(m.NED)
	case "enu":
		*p = frameVar(m.ENU)
	case "ecef", "xyz":
		*p = frameVar(m.Cartesian)
	case "gps", "llh":
		*p = frameVar(m.GPS)
	default:
		return fmt.Errorf("unknown frame %q", s)
	}
	return nil
}

func (p *frameVar) String() string {
	return m.Frame(*p).String()
}

// Command line options
type cmdOpt struct {
	fixFn       string
	outFn       string
	origin      m.GPSCoord
	frame       frameVar
	sortByRange bool
	noHeader    bool
}

// Parse command line arguments
func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options]                                      fixes.txt (for -f gps / -f ecef)
	%s [Options] -l "origin_lat origin_lon origin_hei" fixes.txt (for -f ned / -f enu)

	Fixes are read from stdin when no fix file is given.

[Options]
`, filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	a.frame = frameVar(m.NED)
	flag.Var(&a.frame, "f", "Output frame. ned, enu, ecef, gps")
	flag.Var(&a.origin, "l", "Origin latitude/longitude/ellipsoidal height. Enclose in quotes like -l \"35.73101206 139.7396917 80.33\"")
	flag.StringVar(&a.outFn, "o", "", "Output file path. If not specified, output to stdout.")
	flag.BoolVar(&a.noHeader, "nh", false, "Do not output the header section.")
	flag.BoolVar(&a.sortByRange, "s", false, "Sort output by 3D range from the origin.")
	var dbg int
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display)")
	flag.Parse()
	m.DBG_ = dbg

	switch flag.NArg() {
	case 0:
		// stdin
	case 1:
		a.fixFn = flag.Arg(0)
	default:
		return a, fmt.Errorf("too many arguments")
	}

	needOrigin := m.Frame(a.frame) == m.NED || m.Frame(a.frame) == m.ENU
	if needOrigin && a.origin.Lat == 0 && a.origin.Lon == 0 {
		return a, fmt.Errorf("the origin must be specified! (-l option)")
	}
	return
}
