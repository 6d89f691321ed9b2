// Package resample scales decoded images to a target size.
package resample

import (
	"fmt"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"image"
	"strings"
	"vincit.fi/image-resizer/api"
	"vincit.fi/image-resizer/api/apitype"
	"vincit.fi/image-resizer/common/logger"
)

var imagingFilters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

var nfntFilters = map[string]resize.InterpolationFunction{
	"lanczos":    resize.Lanczos3,
	"lanczos2":   resize.Lanczos2,
	"catmullrom": resize.Bicubic,
	"bicubic":    resize.Bicubic,
	"mitchell":   resize.MitchellNetravali,
	"linear":     resize.Bilinear,
	"nearest":    resize.NearestNeighbor,
}

type ImagingResampler struct {
	filter imaging.ResampleFilter

	api.Resampler
}

func NewImagingResampler(filter imaging.ResampleFilter) *ImagingResampler {
	return &ImagingResampler{filter: filter}
}

func (s *ImagingResampler) Resample(img image.Image, size apitype.Size) (image.Image, error) {
	if err := validate(img, size); err != nil {
		return nil, err
	}
	return imaging.Resize(img, size.Width(), size.Height(), s.filter), nil
}

type NfntResampler struct {
	interpolation resize.InterpolationFunction

	api.Resampler
}

func NewNfntResampler(interpolation resize.InterpolationFunction) *NfntResampler {
	return &NfntResampler{interpolation: interpolation}
}

func (s *NfntResampler) Resample(img image.Image, size apitype.Size) (image.Image, error) {
	if err := validate(img, size); err != nil {
		return nil, err
	}
	resized := resize.Resize(uint(size.Width()), uint(size.Height()), img, s.interpolation)
	if resized == nil || resized.Bounds().Dx() != size.Width() || resized.Bounds().Dy() != size.Height() {
		return nil, fmt.Errorf("%w: nfnt produced wrong size", apitype.ErrResampleFailed)
	}
	return resized, nil
}

// FromName builds the resampler selected in the configuration. Unknown
// filter names fall back to Lanczos.
func FromName(name string, filter string) (api.Resampler, error) {
	filter = strings.ToLower(filter)
	switch strings.ToLower(name) {
	case "imaging", "":
		f, ok := imagingFilters[filter]
		if !ok {
			logger.Warn.Printf("Unknown filter '%s' for imaging, using lanczos", filter)
			f = imaging.Lanczos
		}
		return NewImagingResampler(f), nil
	case "nfnt":
		f, ok := nfntFilters[filter]
		if !ok {
			logger.Warn.Printf("Unknown filter '%s' for nfnt, using lanczos", filter)
			f = resize.Lanczos3
		}
		return NewNfntResampler(f), nil
	}
	return nil, fmt.Errorf("unknown resampler '%s'", name)
}

func validate(img image.Image, size apitype.Size) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", apitype.ErrResampleFailed)
	}
	if !size.IsValid() {
		return fmt.Errorf("%w: invalid target size %s", apitype.ErrResampleFailed, size)
	}
	if bounds := img.Bounds(); bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return fmt.Errorf("%w: empty source image", apitype.ErrResampleFailed)
	}
	return nil
}
