package apitype

import (
	"github.com/stretchr/testify/assert"
	"path/filepath"
	"testing"
)

func TestImageDescriptor(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join("some", "dir", "plant.jpeg")
	descriptor := NewImageDescriptor(path, 640, 480, JPEG)

	a.True(descriptor.IsValid())
	a.Equal(path, descriptor.Path())
	a.Equal("plant.jpeg", descriptor.FileName())
	a.Equal(640, descriptor.Width())
	a.Equal(480, descriptor.Height())
	a.Equal(SizeOf(640, 480), descriptor.Size())
	a.Equal(JPEG, descriptor.Format())
	a.Equal("image/jpeg", descriptor.Mime())
	a.Equal("ImageDescriptor{"+path+" 640x480 jpeg}", descriptor.String())
}

func TestImageDescriptor_Invalid(t *testing.T) {
	a := assert.New(t)

	var nilDescriptor *ImageDescriptor
	a.False(nilDescriptor.IsValid())
	a.Equal("ImageDescriptor<nil>", nilDescriptor.String())
	a.False(NewImageDescriptor("file.png", 0, 10, PNG).IsValid())
}
