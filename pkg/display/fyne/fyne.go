//go:build !test

package fyne

import (
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/thelolagemann/welle/pkg/display"
	"github.com/thelolagemann/welle/pkg/log"
	"github.com/thelolagemann/welle/pkg/utils"
)

const appID = "com.github.thelolagemann.welle"

var (
	_ display.Driver = &driver{}
)

// figure is what a window is currently presenting.
type figure struct {
	title string
	img   image.Image
}

var keyHandlers = map[fyne.KeyName]func(*driver, fyne.Window, figure){
	fyne.KeyC: func(d *driver, _ fyne.Window, f figure) {
		if err := utils.CopyImage(f.img); err != nil {
			d.logger.Errorf("failed to copy figure to clipboard: %v", err)
			return
		}
		d.logger.Infof("copied %s to clipboard", f.title)
	},
	fyne.KeyS: func(d *driver, _ fyne.Window, f figure) {
		wd, _ := os.Getwd()
		filename, err := utils.SaveImage(f.img, wd)
		if err != nil {
			d.logger.Errorf("failed to save figure: %v", err)
			return
		}
		d.logger.Infof("saved %s to %s", f.title, filename)
	},
	fyne.KeyEscape: func(_ *driver, w fyne.Window, _ figure) {
		w.Close()
	},
	fyne.KeyQ: func(_ *driver, w fyne.Window, _ figure) {
		w.Close()
	},
}

type driver struct {
	logger log.Logger
	scale  float64
}

func init() {
	d := &driver{logger: log.NewNullLogger()}
	display.Install("fyne", d, []display.DriverOption{
		{
			Name:        "scale",
			Default:     1.0,
			Value:       &d.scale,
			Type:        "float",
			Description: "Scale the figure by this factor",
		},
	})
}

func (d *driver) Initialize(logger log.Logger) {
	d.logger = logger
}

// Present opens a window showing img and runs the fyne event loop until
// the window is closed.
func (d *driver) Present(title string, img image.Image) error {
	f := figure{title: title, img: utils.ScaleImage(img, d.scale)}
	b := f.img.Bounds()

	a := app.NewWithID(appID)
	a.Settings().SetTheme(&figureTheme{})

	w := a.NewWindow(title)
	w.SetPadded(false)
	w.SetMaster()

	raster := canvas.NewRasterFromImage(f.img)
	raster.ScaleMode = canvas.ImageScaleSmooth
	raster.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.SetContent(raster)
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))

	w.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		if handler, ok := keyHandlers[e.Name]; ok {
			handler(d, w, f)
		}
	})

	d.logger.Debugf("presenting %s (%dx%d)", title, b.Dx(), b.Dy())
	w.ShowAndRun()

	return nil
}
