// seehuhn.de/go/patterns - synthetic pattern datasets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/patterns/array"
	"seehuhn.de/go/patterns/canvas"
	"seehuhn.de/go/patterns/combination"
	"seehuhn.de/go/patterns/internal/logging"
	"seehuhn.de/go/patterns/unit"
)

// ErrConfig is returned for configurations which cannot be used to
// generate a dataset.
var ErrConfig = errors.New("invalid dataset configuration")

// AutoOffset as the maximal offset selects the number of offset steps
// from the canvas and unit sizes.
const AutoOffset = -1

// Config describes a dataset.
type Config struct {
	// Types lists the shapes to generate.
	Types []unit.Type `toml:"types" yaml:"types"`

	UnitHeight int `toml:"unit_height" yaml:"unit_height"`
	UnitWidth  int `toml:"unit_width" yaml:"unit_width"`
	Height     int `toml:"height" yaml:"height"`
	Width      int `toml:"width" yaml:"width"`

	// Unit patterns are generated for the scales MinScale, MinScale+ScaleStep,
	// ... below MaxScale.
	MinScale  float64 `toml:"min_scale" yaml:"min_scale"`
	MaxScale  float64 `toml:"max_scale" yaml:"max_scale"`
	ScaleStep float64 `toml:"scale_step" yaml:"scale_step"`

	// MaxVerticalOffset and MaxHorizontalOffset bound the spacing between
	// tiles. Use AutoOffset to derive the bound from the sizes.
	MaxVerticalOffset   int `toml:"max_vertical_offset" yaml:"max_vertical_offset"`
	MaxHorizontalOffset int `toml:"max_horizontal_offset" yaml:"max_horizontal_offset"`

	Clipping bool `toml:"clipping" yaml:"clipping"`
	Center   bool `toml:"center" yaml:"center"`

	// Fraction is the share of tile assignments to keep, in (0, 1].
	Fraction float64 `toml:"fraction" yaml:"fraction"`

	// SmartScales derives the scale range from the unit size.
	SmartScales bool `toml:"smart_scales" yaml:"smart_scales"`

	// EnforceBorders lowers MaxScale until a border of MinPixels/2 pixels
	// remains around every shape.
	EnforceBorders bool `toml:"enforce_borders" yaml:"enforce_borders"`

	// MinPixels is the smallest extent, in pixels, of a shape at MinScale.
	MinPixels int `toml:"min_pixels" yaml:"min_pixels"`

	// FallbackThreshold and MaxCombinations configure the combination
	// sampler, see [combination.Sampler].
	FallbackThreshold int `toml:"fallback_threshold" yaml:"fallback_threshold"`
	MaxCombinations   int `toml:"max_combinations" yaml:"max_combinations"`

	// Workers bounds the number of goroutines. Zero means GOMAXPROCS.
	Workers int `toml:"workers" yaml:"workers"`

	// Output is the directory for data.csv and the image files.
	Output string `toml:"output" yaml:"output"`

	// ImageFormat is one of "bmp", "png", "pdf" and "svg".
	// If empty, no image files are written.
	ImageFormat string `toml:"image_format" yaml:"image_format"`

	// ImageScale is the size of one grid pixel in the image files.
	ImageScale int `toml:"image_scale" yaml:"image_scale"`

	// WriteRecords enables writing to data.csv.
	WriteRecords bool `toml:"write_records" yaml:"write_records"`

	// Seed initialises the random choices of [Generator.RunSamples].
	Seed uint64 `toml:"seed" yaml:"seed"`
}

// DefaultConfig returns the configuration used when no file is given:
// every shape on 50x50 units, tiled on a 65x465 canvas.
func DefaultConfig() *Config {
	return &Config{
		Types:               unit.Types(),
		UnitHeight:          50,
		UnitWidth:           50,
		Height:              65,
		Width:               465,
		MinScale:            0.2,
		MaxScale:            0.97,
		ScaleStep:           0.3,
		MaxVerticalOffset:   AutoOffset,
		MaxHorizontalOffset: AutoOffset,
		Center:              true,
		Fraction:            1,
		MinPixels:           30,
		FallbackThreshold:   combination.DefaultSampler.FallbackThreshold,
		MaxCombinations:     combination.DefaultSampler.Limit,
		Output:              ".",
		ImageScale:          1,
		WriteRecords:        true,
	}
}

// LoadConfig reads a configuration file on top of [DefaultConfig].
// Files ending in ".yaml" or ".yml" are read as YAML, all others as TOML.
// Unknown keys are an error.
// The result is not standardised.
func LoadConfig(fname string) (*Config, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(fd)
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if err == io.EOF {
			err = nil
		}
	default:
		err = toml.NewDecoder(fd).DisallowUnknownFields().Decode(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", fname, ErrConfig, err)
	}
	return cfg, nil
}

// Standardize checks the configuration and adjusts it so that the
// generated shapes are recognisable:
//   - the canvas is at least as large as a unit pattern,
//   - shape types are sorted and listed once,
//   - one scale step changes at least one pixel,
//   - a shape at MinScale spans at least MinPixels pixels,
//   - with EnforceBorders, MaxScale leaves a border of MinPixels/2 pixels.
func (c *Config) Standardize() error {
	if c.UnitHeight <= 0 || c.UnitWidth <= 0 {
		return fmt.Errorf("%w: unit size %dx%d", ErrConfig, c.UnitHeight, c.UnitWidth)
	}
	if !(c.Fraction > 0 && c.Fraction <= 1) {
		return fmt.Errorf("%w: fraction %g", ErrConfig, c.Fraction)
	}
	if len(c.Types) == 0 {
		return fmt.Errorf("%w: no shape types", ErrConfig)
	}
	for _, t := range c.Types {
		if !t.Valid() {
			return fmt.Errorf("%w: %w: %d", ErrConfig, unit.ErrUnknownType, int(t))
		}
	}
	if c.MinPixels < 0 || c.FallbackThreshold < 0 || c.MaxCombinations < 0 {
		return fmt.Errorf("%w: negative limit", ErrConfig)
	}
	if c.MaxVerticalOffset < AutoOffset || c.MaxHorizontalOffset < AutoOffset {
		return fmt.Errorf("%w: offsets %d/%d", ErrConfig,
			c.MaxVerticalOffset, c.MaxHorizontalOffset)
	}

	c.Width = max(c.Width, c.UnitWidth)
	c.Height = max(c.Height, c.UnitHeight)

	types := array.From(func(a, b unit.Type) int { return int(a) - int(b) }, c.Types...)
	types.RemoveDuplicates()
	c.Types = types.Items()

	smallest := float64(min(c.UnitHeight, c.UnitWidth))
	if c.SmartScales {
		c.ScaleStep = 1 / smallest
		c.MinScale = 0.2
		c.MaxScale = 0.9
	}
	if 1/smallest > c.ScaleStep {
		c.ScaleStep = 1 / smallest
	}
	if c.MinScale*smallest < float64(c.MinPixels) {
		c.MinScale = float64(c.MinPixels) / smallest
	}
	if c.EnforceBorders {
		allowed := float64(c.MinPixels / 2)
		if smallest-smallest*c.MaxScale < allowed {
			c.MaxScale = (smallest - allowed) / smallest
		}
	}

	c.ImageFormat = strings.ToLower(strings.TrimPrefix(c.ImageFormat, "."))
	switch c.ImageFormat {
	case "", "bmp", "png", "pdf", "svg":
	default:
		return fmt.Errorf("%w: image format %q", ErrConfig, c.ImageFormat)
	}
	c.ImageScale = max(c.ImageScale, 1)
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	out, err := homedir.Expand(c.Output)
	if err != nil {
		return fmt.Errorf("%w: output %q: %w", ErrConfig, c.Output, err)
	}
	c.Output = out

	logging.Logger().Debug("standardised configuration",
		"types", len(c.Types),
		"unit", fmt.Sprintf("%dx%d", c.UnitHeight, c.UnitWidth),
		"canvas", fmt.Sprintf("%dx%d", c.Height, c.Width),
		"min_scale", c.MinScale,
		"max_scale", c.MaxScale,
		"scale_step", c.ScaleStep)
	return nil
}

// Scales returns the scale values for which unit patterns are generated.
func (c *Config) Scales() []float64 {
	if !(c.ScaleStep > 0) {
		return nil
	}
	var res []float64
	for i := 0; ; i++ {
		s := c.MinScale + float64(i)*c.ScaleStep
		if s >= c.MaxScale {
			break
		}
		res = append(res, s)
	}
	return res
}

// OffsetSteps returns the largest vertical and horizontal tile offsets.
func (c *Config) OffsetSteps() (vertical, horizontal int) {
	vertical = c.MaxVerticalOffset
	if vertical == AutoOffset {
		vertical = autoSteps(c.Height, c.UnitHeight)
	}
	horizontal = c.MaxHorizontalOffset
	if horizontal == AutoOffset {
		horizontal = autoSteps(c.Width, c.UnitWidth)
	}
	return vertical, horizontal
}

// autoSteps allows offsets up to the point where two tiles no longer fit,
// provided more than one tile fits without offset.
func autoSteps(size, unitSize int) int {
	if unitSize <= 0 || size/unitSize <= 1 {
		return 0
	}
	return int(math.Ceil(float64(size)/2 + 1 - float64(unitSize)))
}

// Layout returns the canvas layout for the given offsets.
func (c *Config) Layout(verticalOffset, horizontalOffset int) canvas.Layout {
	return canvas.Layout{
		Height:           c.Height,
		Width:            c.Width,
		VerticalOffset:   verticalOffset,
		HorizontalOffset: horizontalOffset,
		Clipping:         c.Clipping,
		Center:           c.Center,
	}
}

// Sampler returns the combination sampler described by the configuration.
func (c *Config) Sampler() combination.Sampler {
	return combination.Sampler{
		FallbackThreshold: c.FallbackThreshold,
		Limit:             c.MaxCombinations,
	}
}
