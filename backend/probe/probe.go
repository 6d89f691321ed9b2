// Package probe inspects image files before they are decoded.
package probe

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"vincit.fi/image-resizer/api"
	"vincit.fi/image-resizer/api/apitype"
	"vincit.fi/image-resizer/common/logger"
	"vincit.fi/image-resizer/common/util"
)

const op = "probe"

type Prober struct {
	api.Prober
}

func NewProber() *Prober {
	return &Prober{}
}

// Probe checks that path is a regular file the process may both read and
// write and reads the format and dimensions from the image header. The pixel
// data is not decoded.
func (s *Prober) Probe(path string) (*apitype.ImageDescriptor, error) {
	if !util.IsRegularFile(path) {
		logger.Debug.Printf("No such file '%s'", path)
		return nil, apitype.NewResizeError(op, path, apitype.UnknownFormat, apitype.ErrFileNotFound)
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Debug.Printf("Could not open '%s' for reading: %s", path, err)
		return nil, apitype.NewResizeError(op, path, apitype.UnknownFormat, fmt.Errorf("%w: %s", apitype.ErrNotReadable, err))
	}
	defer file.Close()

	if err := checkWritable(path); err != nil {
		logger.Debug.Printf("Could not open '%s' for writing: %s", path, err)
		return nil, apitype.NewResizeError(op, path, apitype.UnknownFormat, fmt.Errorf("%w: %s", apitype.ErrNotWritable, err))
	}

	config, formatName, err := image.DecodeConfig(file)
	if err != nil {
		return nil, apitype.NewResizeError(op, path, apitype.UnknownFormat, fmt.Errorf("%w: %s", apitype.ErrUnsupportedFormat, err))
	}

	format := apitype.FormatFromName(formatName)
	if !format.IsSupported() {
		return nil, apitype.NewResizeError(op, path, format, fmt.Errorf("%w: %s", apitype.ErrUnsupportedFormat, formatName))
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, apitype.NewResizeError(op, path, format,
			fmt.Errorf("%w: invalid dimensions %dx%d", apitype.ErrUnsupportedFormat, config.Width, config.Height))
	}

	descriptor := apitype.NewImageDescriptor(path, config.Width, config.Height, format)
	logger.Trace.Printf("Probed %s", descriptor)
	return descriptor, nil
}

// Opens without truncating so the content is left as is.
func checkWritable(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	return file.Close()
}
