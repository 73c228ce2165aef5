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
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	gzip "github.com/klauspost/pgzip"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
)

const defaultCellPixelSize = 20

// A serialized grid, ready to be handed to a shell for saving
type exportDocument struct {
	FileName string
	MIMEType string
	Data     []byte
}

type exportFormat struct {
	Extension string
	MIMEType  string

	FunctionEncode func(w io.Writer, g *grid, cellPixelSize int) error
}

var exportFormats = map[string]exportFormat{
	"svg": {
		Extension:      "svg",
		MIMEType:       "image/svg+xml",
		FunctionEncode: encodeSVG,
	},
	"svgz": {
		Extension:      "svgz",
		MIMEType:       "image/svg+xml",
		FunctionEncode: encodeSVGZ,
	},
	"png": {
		Extension:      "png",
		MIMEType:       "image/png",
		FunctionEncode: encodePNG,
	},
	"bmp": {
		Extension:      "bmp",
		MIMEType:       "image/bmp",
		FunctionEncode: encodeBMP,
	},
}

func (ef exportFormat) export(g *grid, cellPixelSize int) (*exportDocument, error) {
	if cellPixelSize <= 0 {
		return nil, fmt.Errorf("Cell pixel size %v must be positive", cellPixelSize)
	}

	buf := &bytes.Buffer{}
	if err := ef.FunctionEncode(buf, g, cellPixelSize); err != nil {
		return nil, fmt.Errorf("Can't encode %v: %w", ef.Extension, err)
	}

	return &exportDocument{
		FileName: "pixel-art." + ef.Extension,
		MIMEType: ef.MIMEType,
		Data:     buf.Bytes(),
	}, nil
}

// Writes an SVG document with one square per painted cell, in row major order.
// Background cells are left out.
func encodeSVG(w io.Writer, g *grid, cellPixelSize int) error {
	ps := pixelSize{cellPixelSize, cellPixelSize}

	canvas := svg.New(w)
	canvas.Start(g.Size*cellPixelSize, g.Size*cellPixelSize)
	for i, c := range g.Cells {
		if c.isBackground() {
			continue
		}
		rect := ps.getCellRect(g.getCoord(i))
		canvas.Rect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), fmt.Sprintf("fill=%q", c.Color.String()))
	}
	canvas.End()

	return nil
}

func encodeSVGZ(w io.Writer, g *grid, cellPixelSize int) error {
	zipWriter, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("Can't initialize compression: %v", err)
	}
	zipWriter.Name = "pixel-art.svg"

	if err := encodeSVG(zipWriter, g, cellPixelSize); err != nil {
		zipWriter.Close()
		return err
	}

	return zipWriter.Close()
}

// Renders the grid with one pixel per cell, and scales it up afterwards.
func renderImage(g *grid, cellPixelSize int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, g.Size, g.Size))

	for i, c := range g.Cells {
		coord := g.getCoord(i)
		img.Set(coord.X, coord.Y, c.rasterColor())
	}

	if cellPixelSize == 1 {
		return img
	}

	size := uint(g.Size * cellPixelSize)
	return resize.Resize(size, size, img, resize.NearestNeighbor)
}

func encodePNG(w io.Writer, g *grid, cellPixelSize int) error {
	return png.Encode(w, renderImage(g, cellPixelSize))
}

func encodeBMP(w io.Writer, g *grid, cellPixelSize int) error {
	return bmp.Encode(w, renderImage(g, cellPixelSize))
}
