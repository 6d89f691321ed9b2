package apitype

import (
	"fmt"
	"path/filepath"
)

// ImageDescriptor describes an image file before it is decoded. It is
// created once by the probe and never modified.
type ImageDescriptor struct {
	path   string
	size   Size
	format Format
}

func NewImageDescriptor(path string, width int, height int, format Format) *ImageDescriptor {
	return &ImageDescriptor{
		path:   path,
		size:   SizeOf(width, height),
		format: format,
	}
}

func (s *ImageDescriptor) Path() string {
	return s.path
}

func (s *ImageDescriptor) FileName() string {
	return filepath.Base(s.path)
}

func (s *ImageDescriptor) Size() Size {
	return s.size
}

func (s *ImageDescriptor) Width() int {
	return s.size.width
}

func (s *ImageDescriptor) Height() int {
	return s.size.height
}

func (s *ImageDescriptor) Format() Format {
	return s.format
}

func (s *ImageDescriptor) Mime() string {
	return s.format.Mime()
}

func (s *ImageDescriptor) IsValid() bool {
	return s != nil && s.size.IsValid()
}

func (s *ImageDescriptor) String() string {
	if s == nil {
		return "ImageDescriptor<nil>"
	}
	return fmt.Sprintf("ImageDescriptor{%s %s %s}", s.path, s.size, s.format)
}
