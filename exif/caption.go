// Package exif derives gallery captions from EXIF metadata embedded in images.
package exif

import (
	"errors"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"

	"github.com/fwojciec/recipecrawl"
)

// Ensure Captioner implements recipecrawl.Captioner at compile time.
var _ recipecrawl.Captioner = (*Captioner)(nil)

// captionTags are the tags used for captions, in output order.
var captionTags = []string{"Make", "Model", "DateTimeOriginal"}

// Captioner builds captions from the camera and capture time of a photo.
type Captioner struct{}

// NewCaptioner returns a new Captioner.
func NewCaptioner() *Captioner {
	return &Captioner{}
}

// Caption returns the camera make, model and capture time joined by spaces.
// Images without EXIF data yield an empty caption and no error.
func (c *Captioner) Caption(data []byte) (string, error) {
	tags, err := Tags(data)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(captionTags))
	for _, name := range captionTags {
		if v := tags[name]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " "), nil
}

// Tags returns the formatted value of every EXIF tag in data keyed by tag
// name. The first occurrence of a name wins.
func Tags(data []byte) (map[string]string, error) {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil {
		if errors.Is(err, exif.ErrNoExif) {
			return map[string]string{}, nil
		}
		return nil, recipecrawl.Errorf(recipecrawl.EINVALID, "searching exif: %v", err)
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil, recipecrawl.Errorf(recipecrawl.EINVALID, "parsing exif: %v", err)
	}

	tags := make(map[string]string, len(entries))
	for _, entry := range entries {
		if _, ok := tags[entry.TagName]; ok {
			continue
		}
		tags[entry.TagName] = strings.TrimSpace(strings.TrimRight(entry.Formatted, "\x00"))
	}
	return tags, nil
}
