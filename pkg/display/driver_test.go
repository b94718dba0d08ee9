package display

import (
	"image"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/welle/pkg/log"
)

type fakeDriver struct {
	scale    float64
	smooth   bool
	titles   []string
	presents int
}

func (f *fakeDriver) Initialize(log.Logger) {}

func (f *fakeDriver) Present(title string, img image.Image) error {
	f.titles = append(f.titles, title)
	f.presents++
	return nil
}

// withDrivers replaces the installed drivers for the duration of a test.
func withDrivers(t *testing.T) {
	saved := InstalledDrivers
	InstalledDrivers = nil
	t.Cleanup(func() {
		InstalledDrivers = saved
	})
}

func TestNoneIsInstalled(t *testing.T) {
	d := GetDriver(None)
	require.NotNil(t, d)
	assert.Contains(t, DriverNames(), None)

	d.Initialize(log.NewNullLogger())
	assert.NoError(t, d.Present("SineWave<double>", image.NewRGBA(image.Rect(0, 0, 6, 4))))
}

func TestGetDriver(t *testing.T) {
	withDrivers(t)
	assert.Nil(t, GetDriver("auto"))

	none := &noneDriver{logger: log.NewNullLogger()}
	Install(None, none, nil)
	assert.Equal(t, Driver(none), GetDriver("auto"), "auto falls back to none")

	fake := &fakeDriver{}
	Install("fake", fake, nil)
	assert.Equal(t, Driver(fake), GetDriver("auto"))
	assert.Equal(t, Driver(fake), GetDriver("fake"))
	assert.Equal(t, Driver(none), GetDriver(None))
	assert.Nil(t, GetDriver("glfw"))
	assert.Equal(t, []string{None, "fake"}, DriverNames())
}

func TestRegisterFlags(t *testing.T) {
	withDrivers(t)

	a, b := &fakeDriver{}, &fakeDriver{}
	Install("a", a, []DriverOption{
		{Name: "scale", Default: 1.0, Value: &a.scale, Type: "float", Description: "scale factor"},
		{Name: "smooth", Default: true, Value: &a.smooth, Type: "bool", Description: "smooth scaling"},
	})
	Install("b", b, []DriverOption{
		{Name: "scale", Default: 1.0, Value: &b.scale, Type: "float", Description: "scale factor"},
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	// shared options are merged, unique ones prefixed
	require.NotNil(t, fs.Lookup("scale"))
	require.NotNil(t, fs.Lookup("a-smooth"))
	assert.Nil(t, fs.Lookup("a-scale"))

	assert.Equal(t, 1.0, a.scale)
	assert.Equal(t, 1.0, b.scale)
	assert.True(t, a.smooth)

	require.NoError(t, fs.Parse([]string{"--scale", "2.5", "--a-smooth=false"}))
	assert.Equal(t, 2.5, a.scale)
	assert.Equal(t, 2.5, b.scale)
	assert.False(t, a.smooth)

	assert.Error(t, fs.Parse([]string{"--scale", "big"}))
}
