// Package config loads viewer settings from defaults, an optional TOML file
// and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"softcube/frame"
	"softcube/math3d"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the flat set of user settings. Angles are in degrees here and
// converted to radians by Options.
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Aspect string `toml:"aspect"` // "w:h", derives Height from Width when set

	FovDeg float64 `toml:"fov_deg"`
	Near   float64 `toml:"near"`
	Far    float64 `toml:"far"`

	MouseSensitivity float64 `toml:"mouse_sensitivity"`
	MoveSpeed        float64 `toml:"move_speed"`
	SpinRate         float64 `toml:"spin_rate"`

	Ambient    float64    `toml:"ambient"`
	LightDir   [3]float64 `toml:"light_dir"`
	Background string     `toml:"background"` // "#RRGGBB"

	Headless bool   `toml:"headless"`
	Hz       int    `toml:"hz"`
	Frames   uint64 `toml:"frames"`
	Snapshot string `toml:"snapshot"`
	HUD      bool   `toml:"hud"`
	LogLevel string `toml:"log_level"`
	Scale    int    `toml:"scale"`

	File    string `toml:"-"`
	Version bool   `toml:"-"`
}

func Default() Config {
	return Config{
		Width:            1280,
		Height:           720,
		FovDeg:           60,
		Near:             0.1,
		Far:              100,
		MouseSensitivity: 0.002,
		MoveSpeed:        3,
		SpinRate:         0.8,
		Ambient:          0.15,
		LightDir:         [3]float64{1, 2, 3},
		Background:       "#1A1A2E",
		Hz:               60,
		LogLevel:         "info",
		Scale:            1,
	}
}

// Parse builds a Config from args. A -config file is applied over the
// defaults first, then every flag given explicitly overrides it.
// flag.ErrHelp is returned unchanged for -h.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	return ParseWith(name, args, output, nil)
}

// ParseWith is Parse with extra command-specific flags registered by extra.
func ParseWith(name string, args []string, output io.Writer, extra func(*flag.FlagSet)) (Config, error) {
	// First pass only finds -config.
	var scratch Config
	pre := flag.NewFlagSet(name, flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	scratch.bind(pre)
	if extra != nil {
		extra(pre)
	}
	_ = pre.Parse(args)

	cfg := Default()
	if scratch.File != "" {
		if err := cfg.LoadFile(scratch.File); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	cfg.bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", ErrInvalid, fs.Args())
	}
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "Path to a TOML config file.")
	fs.IntVar(&c.Width, "width", c.Width, "Framebuffer width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Framebuffer height in pixels.")
	fs.StringVar(&c.Aspect, "aspect", c.Aspect, "Aspect ratio as width:height; derives -height from -width.")
	fs.Float64Var(&c.FovDeg, "fov", c.FovDeg, "Vertical field of view in degrees.")
	fs.Float64Var(&c.Near, "near", c.Near, "Near clip distance.")
	fs.Float64Var(&c.Far, "far", c.Far, "Far clip distance.")
	fs.Float64Var(&c.MouseSensitivity, "sensitivity", c.MouseSensitivity, "Mouse look in radians per pixel.")
	fs.Float64Var(&c.MoveSpeed, "speed", c.MoveSpeed, "Camera speed in units per second.")
	fs.Float64Var(&c.SpinRate, "spin", c.SpinRate, "Cube spin in radians per second.")
	fs.Float64Var(&c.Ambient, "ambient", c.Ambient, "Ambient light floor, 0..1.")
	fs.Var((*vec3Value)(&c.LightDir), "light", "Direction towards the light as x,y,z.")
	fs.StringVar(&c.Background, "background", c.Background, "Clear color as #RRGGBB.")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "Run without a window.")
	fs.IntVar(&c.Hz, "hz", c.Hz, "Frame rate.")
	fs.Uint64Var(&c.Frames, "frames", c.Frames, "Stop after N frames in headless mode (0 = run forever).")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "Write the last headless frame to this .png or .bmp file.")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "Draw the status overlay.")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error.")
	fs.IntVar(&c.Scale, "scale", c.Scale, "Window pixels per framebuffer pixel.")
	fs.BoolVar(&c.Version, "version", c.Version, "Print version and exit.")
}

// LoadFile decodes a TOML file over c. Keys not present in the file keep
// their current value; unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return c.Decode(f)
}

func (c *Config) Decode(r io.Reader) error {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%w: toml line %d column %d: %s", ErrInvalid, row, col, derr.Error())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// resolve applies derived settings and validates.
func (c *Config) resolve() error {
	if c.Aspect != "" {
		ar, err := ParseAspectRatio(c.Aspect)
		if err != nil {
			return err
		}
		c.Height = int(math.Round(float64(c.Width) / ar))
	}
	return c.Validate()
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if c.Width <= 0 || c.Height <= 0 {
		bad("size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FovDeg <= 0 || c.FovDeg >= 180 {
		bad("fov %v must be in (0, 180)", c.FovDeg)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		bad("clip range near=%v far=%v must satisfy 0 < near < far", c.Near, c.Far)
	}
	if c.Ambient < 0 || c.Ambient > 1 {
		bad("ambient %v must be in [0, 1]", c.Ambient)
	}
	if c.LightDir == [3]float64{} {
		bad("light direction must be non-zero")
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, err)
	}
	if c.Hz <= 0 {
		bad("hz %d must be positive", c.Hz)
	}
	if c.Scale <= 0 {
		bad("scale %d must be positive", c.Scale)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options converts c into frame options. c must be valid.
func (c Config) Options(log *slog.Logger) frame.Options {
	opts := frame.DefaultOptions()
	opts.Width, opts.Height = c.Width, c.Height
	opts.FovY = math3d.DegToRad(float32(c.FovDeg))
	opts.Near, opts.Far = float32(c.Near), float32(c.Far)
	opts.MouseSensitivity = float32(c.MouseSensitivity)
	opts.MoveSpeed = float32(c.MoveSpeed)
	opts.SpinRate = float32(c.SpinRate)
	opts.Ambient = float32(c.Ambient)
	opts.Light = math3d.V3(float32(c.LightDir[0]), float32(c.LightDir[1]), float32(c.LightDir[2]))
	if bg, err := ParseColor(c.Background); err == nil {
		opts.Background = bg
	}
	opts.Logger = log
	return opts
}

// ParseAspectRatio parses "w:h" into w/h.
func ParseAspectRatio(ar string) (float64, error) {
	operands := strings.Split(ar, ":")
	if len(operands) != 2 {
		return 0, fmt.Errorf("%w: aspect %q: expected \"width:height\"", ErrInvalid, ar)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(operands[0]), 64)
	if err != nil || w <= 0 {
		return 0, fmt.Errorf("%w: aspect %q: invalid width", ErrInvalid, ar)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(operands[1]), 64)
	if err != nil || h <= 0 {
		return 0, fmt.Errorf("%w: aspect %q: invalid height", ErrInvalid, ar)
	}
	return w / h, nil
}

// ParseColor parses "#RRGGBB" into opaque ARGB.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return 0, fmt.Errorf("%w: color %q: expected #RRGGBB", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	return 0xFF000000 | uint32(v), nil
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return l, nil
}

// vec3Value is a flag.Value for "x,y,z".
type vec3Value [3]float64

func (v *vec3Value) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

func (v *vec3Value) Set(s string) error {
	out, err := ParseVec3(s)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// ParseVec3 parses "x,y,z".
func ParseVec3(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("%w: vector %q: expected x,y,z", ErrInvalid, s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("%w: vector %q: %v", ErrInvalid, s, err)
		}
		out[i] = f
	}
	return out, nil
}
