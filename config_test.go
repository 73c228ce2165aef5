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
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func newTestConfig(t *testing.T) *config {
	t.Helper()

	return &config{
		Shell:           "web",
		WebAddress:      "127.0.0.1:0",
		GridSizes:       gridSizes{4, 8},
		InitialSize:     4,
		CellPixelSize:   defaultCellPixelSize,
		ExportDirectory: t.TempDir(),
		LogLevel:        logrus.InfoLevel,
	}
}

func Test_loadConfig_defaults(t *testing.T) {
	v := viper.New()
	setConfigDefaults(v)

	conf, err := loadConfig(v)
	if err != nil {
		t.Fatalf("Can't load default config: %v", err)
	}

	if conf.Shell != "web" {
		t.Errorf("Shell = %q, want web", conf.Shell)
	}
	if len(conf.GridSizes) != 3 || conf.GridSizes[0] != 8 || conf.GridSizes[1] != 16 || conf.GridSizes[2] != 32 {
		t.Errorf("GridSizes = %v, want [8 16 32]", conf.GridSizes)
	}
	if conf.InitialSize != 16 {
		t.Errorf("InitialSize = %v, want 16", conf.InitialSize)
	}
	if conf.CellPixelSize != 20 {
		t.Errorf("CellPixelSize = %v, want 20", conf.CellPixelSize)
	}
	if conf.InitialColor != (paintColor{}) {
		t.Errorf("InitialColor = %v, want #000000", conf.InitialColor)
	}
	if conf.LogLevel != logrus.InfoLevel {
		t.Errorf("LogLevel = %v, want %v", conf.LogLevel, logrus.InfoLevel)
	}
}

func Test_loadConfig_invalid(t *testing.T) {
	tests := []struct {
		key     string
		value   interface{}
		wantErr error
	}{
		{"configVersion", "2.0.0", nil},
		{"configVersion", "1.5.0", nil},
		{"configVersion", "garbage", nil},
		{"shell", "sciter", nil},
		{"grid.sizes", []int{}, ErrInvalidDimension},
		{"grid.sizes", []int{8, -1}, ErrInvalidDimension},
		{"grid.initialSize", 12, ErrInvalidDimension},
		{"grid.cellPixelSize", 0, nil},
		{"editor.initialColor", "black", ErrInvalidColorValue},
		{"log.level", "loud", nil},
	}

	for _, test := range tests {
		v := viper.New()
		setConfigDefaults(v)
		v.Set(test.key, test.value)

		_, err := loadConfig(v)
		if err == nil {
			t.Errorf("loadConfig() with %v = %v didn't fail", test.key, test.value)
			continue
		}
		if test.wantErr != nil && !errors.Is(err, test.wantErr) {
			t.Errorf("loadConfig() with %v = %v error = %v, want %v", test.key, test.value, err, test.wantErr)
		}
	}
}

func Test_loadConfig_custom(t *testing.T) {
	v := viper.New()
	setConfigDefaults(v)
	v.Set("configVersion", "1.0.0")
	v.Set("shell", "terminal")
	v.Set("grid.sizes", []int{4, 64})
	v.Set("grid.initialSize", 64)
	v.Set("editor.initialColor", "#FF00FF")

	conf, err := loadConfig(v)
	if err != nil {
		t.Fatalf("Can't load config: %v", err)
	}
	if conf.Shell != "terminal" || conf.InitialSize != 64 || conf.InitialColor != (paintColor{255, 0, 255}) {
		t.Errorf("Got config %+v", conf)
	}
}
