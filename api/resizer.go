package api

import (
	"image"
	"vincit.fi/image-resizer/api/apitype"
)

type Prober interface {
	Probe(path string) (*apitype.ImageDescriptor, error)
}

type Codecs interface {
	Decode(format apitype.Format, data []byte) (image.Image, error)
	Encode(format apitype.Format, img image.Image) ([]byte, error)
}

type Resampler interface {
	Resample(img image.Image, size apitype.Size) (image.Image, error)
}

type Journal interface {
	Record(result *apitype.ResizeResult) error
	Close()
}

type ImageResizer interface {
	Resize(descriptor *apitype.ImageDescriptor, constraints apitype.ResizeConstraints, data []byte) ([]byte, error)
	ResizeFile(path string, constraints apitype.ResizeConstraints) (*apitype.ResizeResult, error)
}
