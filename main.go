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
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	colorable "github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var log = logrus.New()

func main() {
	log.SetReportCaller(true)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return fmt.Sprintf("%s()", f.Function), ""
		},
	})

	f, err := openLogFile(filepath.Join(".", "log"), time.Now())
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	defer f.Close()

	v := viper.GetViper()
	setConfigDefaults(v)
	v.SetConfigFile(filepath.Join(".", "config.json"))
	if err := v.ReadInConfig(); err != nil {
		log.Warnf("Can't load config file, using defaults: %v", err)
	}

	conf, err := loadConfig(v)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal shell owns stdout, so only log into the file
	if conf.Shell == "terminal" {
		log.SetOutput(f)
	} else {
		log.SetOutput(io.MultiWriter(colorable.NewColorableStdout(), f))
	}
	log.SetLevel(conf.LogLevel)

	log.Info("D3pixelpaint started")

	ed, err := newEditor(conf.GridSizes, conf.InitialSize, conf.InitialColor)
	if err != nil {
		log.Fatalf("Can't create editor: %v", err)
	}

	sh, err := shellTypes[conf.Shell].FunctionNew(conf, ed)
	if err != nil {
		log.Fatalf("Can't open %v shell: %v", conf.Shell, err)
	}
	defer sh.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		log.Info("Interrupted, closing shell")
		sh.Close()
	}()

	log.Infof("Opened %v", sh.getName())

	if err := sh.run(); err != nil {
		log.Errorf("Shell %v stopped: %v", sh.getShortName(), err)
	}

	log.Info("D3pixelpaint stopped")
}

// Creates the directory if needed, and opens a log file named after the given time.
func openLogFile(dir string, t time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		log.Warnf("Can't create log directory %q: %v", dir, err)
	}

	return os.OpenFile(filepath.Join(dir, t.UTC().Format("2006-01-02T150405")+".log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}
