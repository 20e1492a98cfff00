// Package config holds the simulation settings shared by every front end.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"conways-life/internal/core"
	"conways-life/internal/life"
)

// Accepted ranges for user-adjustable settings.
const (
	MinIntervalMs = 10
	MaxIntervalMs = 1000
	MinRadius     = 25
	MaxRadius     = 100
)

// CellSizes lists the cell edge lengths offered by the views.
var CellSizes = []int{5, 10, 25, 50}

// Config describes the playfield and the initial controller settings.
type Config struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	CellSize        int     `json:"cell_size"`
	IntervalMs      int     `json:"interval_ms"`
	InfluenceRadius int     `json:"influence_radius"`
	ShowGrid        bool    `json:"show_grid"`
	ShowInfluence   bool    `json:"show_influence"`
	Seed            []int   `json:"seed"`
	RandomSeed      int64   `json:"random_seed"`
	Density         float64 `json:"density"`
}

// DefaultConfig returns a 950x500 px field of 50 px cells seeded with
// life.DefaultSeed.
func DefaultConfig() Config {
	return Config{
		Width:           950,
		Height:          500,
		CellSize:        50,
		IntervalMs:      200,
		InfluenceRadius: 25,
		ShowGrid:        true,
		ShowInfluence:   false,
		Seed:            append([]int(nil), life.DefaultSeed...),
		Density:         0.25,
	}
}

// dropStaleSeed clears the built-in seed when the grid no longer has the
// shape it was laid out for. An explicitly chosen seed is never touched.
func (c *Config) dropStaleSeed() {
	cols, rows := c.Dimensions()
	dc, dr := DefaultConfig().Dimensions()
	if (cols != dc || rows != dr) && slices.Equal(c.Seed, life.DefaultSeed) {
		c.Seed = nil
	}
}

// Dimensions returns the grid size the field holds at the configured cell size.
func (c Config) Dimensions() (cols, rows int) {
	return GridSize(c.Width, c.Height, c.CellSize)
}

// GridSize returns how many whole cells of cellSize fit in a width x height
// pixel field.
func GridSize(width, height, cellSize int) (cols, rows int) {
	if cellSize <= 0 {
		return 0, 0
	}
	return width / cellSize, height / cellSize
}

// Validate reports the first setting the controller would refuse.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(core.ErrInvalidDimensions, "field %dx%d px", c.Width, c.Height)
	}
	if cols, rows := c.Dimensions(); cols < 1 || rows < 1 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "cell size %d px on %dx%d px field", c.CellSize, c.Width, c.Height)
	}
	if err := CheckInterval(c.IntervalMs); err != nil {
		return err
	}
	if c.InfluenceRadius < MinRadius || c.InfluenceRadius > MaxRadius {
		return errors.Wrapf(core.ErrInvalidConfiguration, "influence radius %d px not in [%d,%d]", c.InfluenceRadius, MinRadius, MaxRadius)
	}
	cols, rows := c.Dimensions()
	for _, i := range c.Seed {
		if i < 0 || i >= cols*rows {
			return errors.Wrapf(core.ErrIndexOutOfBounds, "seed index %d on %dx%d grid", i, cols, rows)
		}
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "density %g not in [0,1]", c.Density)
	}
	return nil
}

// CheckInterval rejects tick intervals outside [MinIntervalMs, MaxIntervalMs].
func CheckInterval(ms int) error {
	if ms < MinIntervalMs || ms > MaxIntervalMs {
		return errors.Wrapf(core.ErrInvalidConfiguration, "interval %d ms not in [%d,%d]", ms, MinIntervalMs, MaxIntervalMs)
	}
	return nil
}

// ClampRadius bounds an influence radius to [MinRadius, MaxRadius].
func ClampRadius(px int) int {
	return min(max(px, MinRadius), MaxRadius)
}

// ParseInt parses a numeric control value. Unparseable input is reported as
// ErrInvalidConfiguration so it never reaches the controller.
func ParseInt(key, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(core.ErrInvalidConfiguration, "%s: %q is not a number", key, raw)
	}
	return v, nil
}

// FromMap populates a Config from flag-style key/value pairs. Unparseable or
// out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && CheckInterval(parsed) == nil {
			c.IntervalMs = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.InfluenceRadius = ClampRadius(parsed)
		}
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ShowGrid = parsed
		}
	}
	if v, ok := cfg["influence"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ShowInfluence = parsed
		}
	}
	if v, ok := cfg["random_seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.RandomSeed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := ParseIndices(v); err == nil {
			c.Seed = parsed
		}
	} else {
		c.dropStaleSeed()
	}
	return c
}

// ParseIndices parses a comma separated list of cell indices.
func ParseIndices(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := ParseInt("seed", p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Load reads a JSON file over DefaultConfig and validates the result. When
// the file changes the grid shape without naming a seed, the grid starts empty.
func Load(filename string) (Config, error) {
	config, _, err := load(filename)
	return config, err
}

func load(filename string) (config Config, seeded bool, err error) {
	config = DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, false, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	var keys map[string]json.RawMessage
	if err = json.Unmarshal(data, &keys); err != nil {
		return config, false, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}
	if err = json.Unmarshal(data, &config); err != nil {
		return config, false, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}
	_, seeded = keys["seed"]
	if !seeded {
		config.dropStaleSeed()
	}

	if err = config.Validate(); err != nil {
		return config, seeded, errors.Wrapf(err, "[Load] invalid configuration in file: %+v", filename)
	}
	return config, seeded, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "playfield width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "playfield height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.IntervalMs, "interval", c.IntervalMs, "milliseconds between generations")
	fs.IntVar(&c.InfluenceRadius, "radius", c.InfluenceRadius, "influence radius in pixels")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw grid lines")
	fs.BoolVar(&c.ShowInfluence, "influence", c.ShowInfluence, "start with influence mode on")
	fs.Int64Var(&c.RandomSeed, "random", c.RandomSeed, "fill the grid randomly with this seed instead of the seed pattern (0 disables)")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for -random")
	fs.Func("seed", "comma separated live cell indices", func(s string) error {
		seed, err := ParseIndices(s)
		if err != nil {
			return err
		}
		c.Seed = seed
		return nil
	})
}

// Parse binds the configuration flags plus -config to fs and parses args.
// Values from a -config file are applied first; flags given on the command
// line override them. Unless a seed is given by flag or file, the built-in
// seed is dropped when the flags change the grid shape.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Bind(fs)
	path := fs.String("config", "", "JSON configuration file; explicit flags override its values")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	seedFlag := false
	fs.Visit(func(f *flag.Flag) { seedFlag = seedFlag || f.Name == "seed" })

	if *path == "" {
		if !seedFlag {
			cfg.dropStaleSeed()
		}
		return cfg, cfg.Validate()
	}

	loaded, seeded, err := load(*path)
	if err != nil {
		return cfg, err
	}
	over := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	loaded.Bind(over)
	fs.Visit(func(f *flag.Flag) {
		switch {
		case err != nil, over.Lookup(f.Name) == nil:
		case f.Name == "seed":
			loaded.Seed = cfg.Seed
		default:
			err = over.Set(f.Name, f.Value.String())
		}
	})
	if err != nil {
		return loaded, errors.Wrapf(err, "[Parse] applying flag overrides")
	}
	if !seedFlag && !seeded {
		loaded.dropStaleSeed()
	}
	return loaded, loaded.Validate()
}
