// Package cli implements the welle command line: it parses a generation
// request, resolves and invokes its generator, prints the samples and
// presents them as a chart.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	"github.com/spf13/cobra"
	"github.com/thelolagemann/welle/internal/chart"
	"github.com/thelolagemann/welle/internal/config"
	"github.com/thelolagemann/welle/internal/welle"
	"github.com/thelolagemann/welle/pkg/display"
	"github.com/thelolagemann/welle/pkg/log"
)

// ErrInvalidArgument is returned for any command line that cannot be
// turned into a Request. The process exits with ExitUsage.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	ExitOK      = 0
	ExitFailure = 1 // generation, lookup or presentation failed
	ExitUsage   = 2 // the command line was rejected
)

// MaxPlay is the longest --play accepts.
const MaxPlay = 10 * time.Minute

// requiredFlags have no default and must be given on every invocation.
var requiredFlags = []string{"wave", "samplingRate", "frequency"}

// Player plays a sample sequence, looped for d.
type Player interface {
	Play(samples welle.Samples, samplingRate int, d time.Duration) error
}

type options struct {
	registry *welle.Registry
	stdout   io.Writer
	stderr   io.Writer
	driver   display.Driver
	player   Player
	config   *config.Config
	logger   log.Logger
}

// Opt is a function that modifies how the command runs.
type Opt func(o *options)

// WithRegistry resolves generators from r instead of welle.Default.
func WithRegistry(r *welle.Registry) Opt {
	return func(o *options) {
		o.registry = r
	}
}

// WithOutput redirects standard output and standard error.
func WithOutput(stdout, stderr io.Writer) Opt {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithDriver presents through d, ignoring --driver.
func WithDriver(d display.Driver) Opt {
	return func(o *options) {
		o.driver = d
	}
}

// WithPlayer enables --play through p.
func WithPlayer(p Player) Opt {
	return func(o *options) {
		o.player = p
	}
}

// WithConfig uses cfg for flag defaults instead of loading it from the
// environment.
func WithConfig(cfg *config.Config) Opt {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger logs to l instead of a logger on standard error.
func WithLogger(l log.Logger) Opt {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Opt) *options {
	o := &options{
		registry: welle.Default,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.config == nil {
		o.config = config.Load()
	}
	return o
}

// flags holds everything parsed from the command line that is not part
// of the generation request itself.
type flags struct {
	output  string
	driver  string
	dpi     int
	play    float64
	verbose bool
	list    bool
}

// decimal is an int flag read in base 10 only, so "010" is ten and
// "0x2" is rejected.
type decimal int

func (d *decimal) String() string {
	return strconv.Itoa(int(*d))
}

func (d *decimal) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*d = decimal(v)
	return nil
}

func (d *decimal) Type() string {
	return "int"
}

// NewCommand returns the root command.
func NewCommand(opts ...Opt) *cobra.Command {
	return newCommand(newOptions(opts))
}

func newCommand(o *options) *cobra.Command {
	req := welle.Request{Type: welle.Double}
	f := flags{}

	cmd := &cobra.Command{
		Use:   "welle",
		Short: "Visualize Welle generated waves",
		Long: `welle generates one period of a sine, square, saw or triangle wave,
prints every sample on its own line and plots the period in a window.`,
		Example: "  welle -w sine -s 8000 -f 440\n  welle -w triangle -t integer16 -s 1000 -f 10 -a 1024",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected arguments %q", ErrInvalidArgument, args)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := o.logger
			if logger == nil {
				logger = log.NewWithOutput(o.stderr, f.verbose)
			}

			if f.list {
				return listCapabilities(cmd.OutOrStdout(), o.registry)
			}

			for _, name := range requiredFlags {
				if !cmd.Flags().Changed(name) {
					return fmt.Errorf("%w: required flag --%s not set", ErrInvalidArgument, name)
				}
			}

			if !(f.play >= 0 && f.play <= MaxPlay.Seconds()) {
				return fmt.Errorf("%w: --play must be between 0 and %v seconds, got %v", ErrInvalidArgument, MaxPlay.Seconds(), f.play)
			}

			return execute(cmd.OutOrStdout(), o, logger, req, f)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.VarP(&req.Wave, "wave", "w", "wave shape, one of sine|square|saw|triangle (required)")
	fs.VarP(&req.Type, "type", "t", "sample type, one of double|integer16")
	fs.VarP((*decimal)(&req.SamplingRate), "samplingRate", "s", "sampling rate in Hz (required)")
	fs.VarP((*decimal)(&req.Frequency), "frequency", "f", "wave frequency in Hz (required)")
	fs.Float64VarP(&req.PeakToPeak, "peakToPeakAmplitude", "a", welle.DefaultPeakToPeak, "peak-to-peak amplitude")
	fs.Float64VarP(&req.PhaseShift, "phaseShift", "p", welle.DefaultPhaseShift, "phase shift in radians")

	fs.StringVarP(&f.output, "output", "o", "", "also save the figure to this file (png, jpg, tif, svg, pdf, eps)")
	fs.StringVar(&f.driver, "driver", o.config.Driver, "display driver, one of auto|"+strings.Join(display.DriverNames(), "|"))
	fs.IntVar(&f.dpi, "dpi", o.config.DPI, "resolution of the figure")
	fs.Float64Var(&f.play, "play", 0, "play the wave for this many seconds (at most 600) before plotting")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug information to standard error")
	fs.BoolVar(&f.list, "list", false, "list the available generation capabilities and exit")
	display.RegisterFlags(fs)

	return cmd
}

// Run executes the command with args and returns the process exit
// status.
func Run(args []string, opts ...Opt) int {
	o := newOptions(opts)
	cmd := newCommand(o)
	cmd.SetArgs(args)
	cmd.SetOut(o.stdout)
	cmd.SetErr(o.stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidArgument):
		fmt.Fprintf(o.stderr, "Error: %v\n", err)
		fmt.Fprint(o.stderr, cmd.UsageString())
		return ExitUsage
	default:
		fmt.Fprintf(o.stderr, "Error: %v\n", err)
		return ExitFailure
	}
}

func listCapabilities(w io.Writer, r *welle.Registry) error {
	for _, c := range r.Capabilities() {
		if _, err := fmt.Fprintln(w, c.Name()); err != nil {
			return err
		}
	}
	return nil
}

// execute runs one request: resolve, generate, print, plot, present.
func execute(stdout io.Writer, o *options, logger log.Logger, req welle.Request, f flags) error {
	driver := o.driver
	if driver == nil {
		if driver = display.GetDriver(f.driver); driver == nil {
			return fmt.Errorf("%w: invalid display driver %q (installed: %s)", ErrInvalidArgument, f.driver, strings.Join(display.DriverNames(), ", "))
		}
	}

	name := req.CapabilityName()
	g, err := o.registry.Lookup(req.Wave, req.Type)
	if err != nil {
		return err
	}
	logger.Debugf("resolved %s", name)

	samples, err := req.Generate(g)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	digest, err := Print(stdout, samples)
	if err != nil {
		return err
	}
	logger.Debugf("generated %d samples (xxhash %016x)", samples.Len(), digest)

	if f.play > 0 {
		play(o.player, logger, samples, req.SamplingRate, f.play)
	}

	fig, err := chart.New(req, samples, chart.WithDPI(f.dpi))
	if err != nil {
		return err
	}

	if f.output != "" {
		if err := fig.Save(f.output); err != nil {
			return fmt.Errorf("saving figure: %w", err)
		}
		logger.Infof("saved figure to %s", f.output)
	}

	driver.Initialize(logger)
	return driver.Present(fig.Title(), fig.Image())
}

// Print writes every sample on its own line, in sequence order, and
// returns the xxhash digest of what was written.
func Print(w io.Writer, samples welle.Samples) (uint64, error) {
	var buf bytes.Buffer
	for i := 0; i < samples.Len(); i++ {
		buf.WriteString(samples.Format(i))
		buf.WriteByte('\n')
	}

	digest := xxhash.Sum64(buf.Bytes())
	_, err := buf.WriteTo(w)
	return digest, err
}

// play is best effort: the chart is still presented when audio fails.
func play(p Player, logger log.Logger, samples welle.Samples, samplingRate int, seconds float64) {
	if p == nil {
		logger.Errorf("audio playback is not available")
		return
	}

	d := time.Duration(seconds * float64(time.Second))
	logger.Debugf("playing %d samples looped for %s", samples.Len(), d)
	if err := p.Play(samples, samplingRate, d); err != nil {
		logger.Errorf("unable to play audio: %v", err)
	}
}
