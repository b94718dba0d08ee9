// Package chart renders generated samples as a single annotated figure.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thelolagemann/welle/internal/welle"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	Width      = 6 * vg.Inch // Width of the figure.
	Height     = 4 * vg.Inch // Height of the figure.
	DefaultDPI = 100
)

var (
	// LineColor is the colour of the sample line.
	LineColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	// AnnotationColor is the muted colour used for the parameter labels,
	// so they do not compete with the plotted data.
	AnnotationColor = color.Gray{Y: 0x80}
)

// Annotation is a label placed at figure-relative coordinates, where
// (0, 0) is the bottom left and (1, 1) the top right of the figure.
type Annotation struct {
	X, Y float64
	Text string
}

// Figure is a plot of one sample sequence plus its annotations.
type Figure struct {
	Plot        *plot.Plot
	Annotations []Annotation
	Width       vg.Length
	Height      vg.Length
	DPI         int
}

// Opt is a function that modifies a Figure.
type Opt func(f *Figure)

// WithDPI sets the resolution used when rasterizing the figure.
func WithDPI(dpi int) Opt {
	return func(f *Figure) {
		if dpi > 0 {
			f.DPI = dpi
		}
	}
}

// Title returns the figure title for req, e.g. "SineWave<double>".
func Title(req welle.Request) string {
	return fmt.Sprintf("%sWave<%s>", req.Wave.Title(), req.Type)
}

// Annotations returns the parameter labels for req.
func Annotations(req welle.Request) []Annotation {
	return []Annotation{
		{X: 0.6, Y: 0.80, Text: fmt.Sprintf("Sampling Rate: %dHz", req.SamplingRate)},
		{X: 0.6, Y: 0.74, Text: fmt.Sprintf("Frequency: %dHz", req.Frequency)},
		{X: 0.6, Y: 0.68, Text: "Peak-to-peak: " + formatReal(req.PeakToPeak)},
		{X: 0.6, Y: 0.62, Text: "Phase Shift: " + formatReal(req.PhaseShift)},
	}
}

func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Segments splits samples into runs of finite values, plotting sample i
// at x = i. NaN and infinite samples are left out, so they show as gaps
// in the line.
func Segments(samples welle.Samples) []plotter.XYs {
	var segments []plotter.XYs
	var run plotter.XYs
	for i := 0; i < samples.Len(); i++ {
		v := samples.Value(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(run) > 0 {
				segments = append(segments, run)
				run = nil
			}
			continue
		}
		run = append(run, plotter.XY{X: float64(i), Y: v})
	}
	if len(run) > 0 {
		segments = append(segments, run)
	}
	return segments
}

// New creates the figure for samples generated from req.
func New(req welle.Request, samples welle.Samples, opts ...Opt) (*Figure, error) {
	p := plot.New()
	p.Title.Text = Title(req)
	p.X.Label.Text = "Samples"
	p.Y.Label.Text = "Amplitude"

	for _, segment := range Segments(samples) {
		line, err := plotter.NewLine(segment)
		if err != nil {
			return nil, fmt.Errorf("plotting samples: %w", err)
		}
		line.Color = LineColor
		p.Add(line)
	}

	f := &Figure{
		Plot:        p,
		Annotations: Annotations(req),
		Width:       Width,
		Height:      Height,
		DPI:         DefaultDPI,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Title returns the plot title.
func (f *Figure) Title() string {
	return f.Plot.Title.Text
}

// Draw draws the plot and its annotations onto c.
func (f *Figure) Draw(c draw.Canvas) {
	f.Plot.Draw(c)

	style := f.Plot.Title.TextStyle
	style.Color = AnnotationColor
	style.Font.Size = vg.Points(10)
	style.XAlign = draw.XLeft
	style.YAlign = draw.YBottom

	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	for _, a := range f.Annotations {
		pt := vg.Point{X: c.Min.X + w*vg.Length(a.X), Y: c.Min.Y + h*vg.Length(a.Y)}
		c.FillText(style, pt, a.Text)
	}
}

// Image rasterizes the figure at its DPI.
func (f *Figure) Image() image.Image {
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	f.Draw(draw.New(c))
	return c.Image()
}

// Save writes the figure to path, choosing the format from its
// extension (png, jpg, jpeg, tif, tiff, svg, pdf, eps).
func (f *Figure) Save(path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("no image format in file name %q", path)
	}

	var c vg.CanvasWriterTo
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		// raster formats honour the figure DPI
		img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
		switch format {
		case "png":
			c = vgimg.PngCanvas{Canvas: img}
		case "jpg", "jpeg":
			c = vgimg.JpegCanvas{Canvas: img}
		default:
			c = vgimg.TiffCanvas{Canvas: img}
		}
	default:
		var err error
		if c, err = draw.NewFormattedCanvas(f.Width, f.Height, format); err != nil {
			return err
		}
	}
	f.Draw(draw.New(c))

	return writeFile(path, c)
}

// writeFile writes w to a new file at path. Nothing is left at path
// when writing fails.
func writeFile(path string, w io.WriterTo) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := w.WriteTo(file); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return err
	}

	return nil
}
