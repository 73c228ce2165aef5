/*  D3pixelpaint - Minimal pixel art editor with SVG export
    Copyright (C) 2019  David Vogel

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.  */

package main

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Newest config format this version understands
var supportedConfigVersion = semver.New("1.0.0")

type config struct {
	Shell      string // Key of shellTypes
	WebAddress string

	GridSizes     gridSizes
	InitialSize   int
	CellPixelSize int // Size of a cell in exported documents
	InitialColor  paintColor

	ExportDirectory string

	LogLevel logrus.Level
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("configVersion", supportedConfigVersion.String())
	v.SetDefault("shell", "web")
	v.SetDefault("web.address", "127.0.0.1:8080")
	v.SetDefault("grid.sizes", []int(defaultGridSizes))
	v.SetDefault("grid.initialSize", 16)
	v.SetDefault("grid.cellPixelSize", defaultCellPixelSize)
	v.SetDefault("editor.initialColor", "#000000")
	v.SetDefault("export.directory", "export")
	v.SetDefault("log.level", "info")
}

// Reads and validates the configuration. Defaults have to be set before.
func loadConfig(v *viper.Viper) (*config, error) {
	version, err := semver.NewVersion(v.GetString("configVersion"))
	if err != nil {
		return nil, fmt.Errorf("Invalid config version %q: %v", v.GetString("configVersion"), err)
	}
	if version.Major != supportedConfigVersion.Major || supportedConfigVersion.LessThan(*version) {
		return nil, fmt.Errorf("Config version %v is not compatible with %v", version, supportedConfigVersion)
	}

	conf := &config{
		Shell:           v.GetString("shell"),
		WebAddress:      v.GetString("web.address"),
		GridSizes:       gridSizes(v.GetIntSlice("grid.sizes")),
		InitialSize:     v.GetInt("grid.initialSize"),
		CellPixelSize:   v.GetInt("grid.cellPixelSize"),
		ExportDirectory: v.GetString("export.directory"),
	}

	if _, ok := shellTypes[conf.Shell]; !ok {
		return nil, fmt.Errorf("Shell %q not found", conf.Shell)
	}

	if len(conf.GridSizes) == 0 {
		return nil, fmt.Errorf("No grid sizes given: %w", ErrInvalidDimension)
	}
	for _, size := range conf.GridSizes {
		if size <= 0 {
			return nil, fmt.Errorf("Grid size %v must be positive: %w", size, ErrInvalidDimension)
		}
	}
	if !conf.GridSizes.contains(conf.InitialSize) {
		return nil, fmt.Errorf("Initial grid size %v is not one of %v: %w", conf.InitialSize, conf.GridSizes, ErrInvalidDimension)
	}

	if conf.CellPixelSize <= 0 {
		return nil, fmt.Errorf("Cell pixel size %v must be positive", conf.CellPixelSize)
	}

	if conf.InitialColor, err = parseColor(v.GetString("editor.initialColor")); err != nil {
		return nil, fmt.Errorf("Invalid initial color: %w", err)
	}

	if conf.LogLevel, err = logrus.ParseLevel(v.GetString("log.level")); err != nil {
		return nil, fmt.Errorf("Invalid log level: %v", err)
	}

	return conf, nil
}
