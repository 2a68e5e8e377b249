package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-aowind/dsp/interp"
	"github.com/cwbudde/algo-aowind/dsp/window"
	"github.com/cwbudde/algo-aowind/measure/psd"
	"github.com/cwbudde/algo-aowind/measure/wind"
	"github.com/cwbudde/algo-aowind/measure/wind/fmts"
	"gopkg.in/yaml.v3"
)

// runConfig is the YAML document accepted by -config. Omitted keys keep
// their defaults.
type runConfig struct {
	Periodogram struct {
		Length  int    `yaml:"length"`
		Overlap bool   `yaml:"overlap"`
		Window  string `yaml:"window"`
	} `yaml:"periodogram"`

	Fitting struct {
		SearchRadius float64 `yaml:"search_radius"`
		MaskRadius   float64 `yaml:"mask_radius"`
		InitialAlpha float64 `yaml:"initial_alpha"`
		MinAlpha     float64 `yaml:"min_alpha"`
		MaxAlpha     float64 `yaml:"max_alpha"`
		FloatPeak    bool    `yaml:"float_peak"`
		MaxLayers    int     `yaml:"max_layers"`
		Workers      int     `yaml:"workers"`
	} `yaml:"fitting"`

	Loop struct {
		SampleRate float64 `yaml:"sample_rate"`
		Delay      int     `yaml:"delay_frames"`
		Gain       float64 `yaml:"gain"`
		Pole       float64 `yaml:"pole"`
		Open       bool    `yaml:"open"`
	} `yaml:"loop"`

	GaussNewton struct {
		Iterations  int    `yaml:"iterations"`
		Order       int    `yaml:"order"`
		Boundary    string `yaml:"boundary"`
		StrictEdges bool   `yaml:"strict_edges"`
	} `yaml:"gauss_newton"`

	Synth struct {
		Seed   int64   `yaml:"seed"`
		Size   int     `yaml:"size"`
		Frames int     `yaml:"frames"`
		Modes  int     `yaml:"modes"`
		Steps  int     `yaml:"steps"`
		WindX  float64 `yaml:"wind_x"`
		WindY  float64 `yaml:"wind_y"`
		Layers []struct {
			Alpha float64 `yaml:"alpha"`
			Omega float64 `yaml:"omega"`
			Sigma float64 `yaml:"sigma"`
		} `yaml:"layers"`
	} `yaml:"synth"`
}

func defaultRunConfig() runConfig {
	var c runConfig

	pc := psd.DefaultConfig()
	c.Periodogram.Length = pc.Length
	c.Periodogram.Overlap = pc.Overlap
	c.Periodogram.Window = pc.Window.String()

	fc := fmts.DefaultConfig()
	c.Fitting.SearchRadius = fc.SearchRadius
	c.Fitting.MaskRadius = fc.MaskRadius
	c.Fitting.InitialAlpha = fc.InitialAlpha
	c.Fitting.MinAlpha = fc.MinAlpha
	c.Fitting.MaxAlpha = fc.MaxAlpha
	c.Fitting.FloatPeak = fc.FloatPeak
	c.Fitting.MaxLayers = fc.MaxLayers

	c.Loop.SampleRate = 1000
	c.Loop.Delay = 1
	c.Loop.Gain = 0.4
	c.Loop.Pole = 0.99

	c.GaussNewton.Iterations = 3
	c.GaussNewton.Order = int(interp.OrderCubic)
	c.GaussNewton.Boundary = interp.BoundaryConstant.String()

	c.Synth.Seed = 1
	c.Synth.Size = 32
	c.Synth.Frames = 8
	c.Synth.Modes = 4
	c.Synth.Steps = 4096
	c.Synth.WindX = 0.6
	c.Synth.WindY = -0.3

	return c
}

// loadRunConfig overlays the YAML file at path onto the defaults.
func loadRunConfig(path string) (runConfig, error) {
	c := defaultRunConfig()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

func (c runConfig) psdConfig() (psd.Config, error) {
	typ, err := window.ParseType(c.Periodogram.Window)
	if err != nil {
		return psd.Config{}, err
	}

	pc := psd.DefaultConfig()
	pc.Length = c.Periodogram.Length
	pc.Overlap = c.Periodogram.Overlap
	pc.Window = typ
	pc.SampleRate = c.Loop.SampleRate
	return pc, pc.Validate()
}

func (c runConfig) fmtsConfig() fmts.Config {
	return fmts.Config{
		SearchRadius: c.Fitting.SearchRadius,
		MaskRadius:   c.Fitting.MaskRadius,
		InitialAlpha: c.Fitting.InitialAlpha,
		MinAlpha:     c.Fitting.MinAlpha,
		MaxAlpha:     c.Fitting.MaxAlpha,
		FloatPeak:    c.Fitting.FloatPeak,
		MaxLayers:    c.Fitting.MaxLayers,
	}
}

func (c runConfig) system() wind.System {
	return wind.System{
		SampleRate: c.Loop.SampleRate,
		Delay:      float64(c.Loop.Delay) / c.Loop.SampleRate,
		Gain:       c.Loop.Gain,
		Pole:       c.Loop.Pole,
	}
}
