package display

import (
	"fmt"
	"image"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/thelolagemann/welle/pkg/log"
)

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	// Initialize initializes the display driver with the logger it
	// should report to.
	Initialize(logger log.Logger)
	// Present shows img under the given title and blocks until the
	// user dismisses it.
	Present(title string, img image.Image) error
}

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. Drivers
// should call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, or nil if
// no driver with that name is installed. "auto" selects the first
// installed driver that is able to present.
func GetDriver(name string) Driver {
	if name == "auto" {
		for _, driver := range InstalledDrivers {
			if driver.Name != None {
				return driver.Driver
			}
		}
		name = None
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// DriverNames returns the names of all installed drivers.
func DriverNames() []string {
	names := make([]string, 0, len(InstalledDrivers))
	for _, driver := range InstalledDrivers {
		names = append(names, driver.Name)
	}
	return names
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	if InstalledDrivers == nil {
		InstalledDrivers = make([]*InstalledDriver, 0)
	}

	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
}

// RegisterFlags iterates through all the display driver
// options and registers them with fs. Options are prefixed with the
// driver name, unless several drivers share an option, in which case
// a single flag sets all of them.
func RegisterFlags(fs *pflag.FlagSet) {
	optionCounts := make(map[string]int)
	opts := make(map[string][]DriverOption)
	prefixes := make(map[string]string)

	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			// track how many times an option is used
			optionCounts[opt.Name]++
			opts[opt.Name] = append(opts[opt.Name], opt)
			prefixes[opt.Name] = driver.Name
		}
	}

	for o, count := range optionCounts {
		opt := opts[o][0]
		if count > 1 {
			// this requires an option merge
			multi := &multiValue{values: make([]any, 0), defaultValue: opt.Default, typ: opt.Type}
			for _, mOpt := range opts[o] {
				multi.values = append(multi.values, mOpt.Value)
			}
			// apply the default to every merged option
			_ = multi.Set(multi.String())
			fs.Var(multi, o, opt.Description)
			if opt.Type == "bool" {
				fs.Lookup(o).NoOptDefVal = "true"
			}
			continue
		}

		// this option is unique and should be prefixed
		optName := fmt.Sprintf("%s-%s", prefixes[o], opt.Name)
		switch opt.Type {
		case "string":
			fs.StringVar(opt.Value.(*string), optName, opt.Default.(string), opt.Description)
		case "bool":
			fs.BoolVar(opt.Value.(*bool), optName, opt.Default.(bool), opt.Description)
		case "float":
			fs.Float64Var(opt.Value.(*float64), optName, opt.Default.(float64), opt.Description)
		}
	}
}

type multiValue struct {
	values       []any
	defaultValue any
	typ          string
}

func (m *multiValue) String() string {
	switch v := m.defaultValue.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return ""
	}
}

func (m *multiValue) Set(value string) error {
	// update all the pointers with the provided value
	for _, ptr := range m.values {
		switch p := ptr.(type) {
		case *string:
			*p = value
		case *bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			*p = b
		case *float64:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			*p = f
		default:
			return fmt.Errorf("unknown type: %T", ptr) // should never happen, but just in case...
		}
	}

	return nil
}

func (m *multiValue) Type() string {
	return m.typ
}
