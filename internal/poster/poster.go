// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
)

// Placeholder geometry and color
const (
	PlaceholderWidth  = 500
	PlaceholderHeight = 750
)

// PlaceholderColor is the fill of the fallback poster.
var PlaceholderColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Fetch stages, used as the Poster.Stage value and as metric outcomes.
const (
	StageOK           = "ok"
	StageCacheHit     = "cache_hit"
	StageDisabled     = "disabled"
	StageMetadata     = "metadata"
	StageNoPosterPath = "no_poster_path"
	StageImage        = "image"
	StageDecode       = "decode"
	StageRejected     = "rejected"
)

// Poster is the display image for one movie. Image is never nil.
type Poster struct {
	MovieID     int64
	Image       image.Image
	Placeholder bool

	// Stage is StageOK or StageCacheHit on success, otherwise the stage
	// that failed.
	Stage string
}

// Placeholder returns a new 500x750 solid gray image.
func Placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: PlaceholderColor}, image.Point{}, draw.Src)
	return img
}

// placeholderFor builds the fallback Poster for a failed stage.
func placeholderFor(movieID int64, stage string) Poster {
	return Poster{
		MovieID:     movieID,
		Image:       Placeholder(),
		Placeholder: true,
		Stage:       stage,
	}
}

// jpegQuality is used when re-encoding posters for HTTP responses.
const jpegQuality = 85

// EncodeJPEG encodes the poster image as JPEG.
func (p Poster) EncodeJPEG() ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, p.Image, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode poster %d: %w", p.MovieID, err)
	}
	return buf.Bytes(), nil
}

// DataURI returns the poster as an inline image/jpeg data URI.
func (p Poster) DataURI() (string, error) {
	data, err := p.EncodeJPEG()
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}
