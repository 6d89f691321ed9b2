package planner

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"vincit.fi/image-resizer/api/apitype"
)

const none = 0

func descriptorOf(width int, height int) *apitype.ImageDescriptor {
	return apitype.NewImageDescriptor("image.jpeg", width, height, apitype.JPEG)
}

func TestNeedsResize(t *testing.T) {
	a := assert.New(t)
	type args struct {
		width     int
		height    int
		maxWidth  int
		maxHeight int
	}
	tests := []struct {
		name   string
		args   args
		expect bool
	}{
		{name: "max size equals to original size", args: args{width: 1, height: 1, maxWidth: 1, maxHeight: 1}, expect: false},
		{name: "original height is bigger than max height", args: args{width: 1, height: 2, maxWidth: 1, maxHeight: 1}, expect: true},
		{name: "original width is bigger than max width", args: args{width: 2, height: 1, maxWidth: 1, maxHeight: 1}, expect: true},
		{name: "both sizes are bigger", args: args{width: 2, height: 2, maxWidth: 1, maxHeight: 1}, expect: true},
		{name: "both sizes are smaller", args: args{width: 1, height: 1, maxWidth: 2, maxHeight: 2}, expect: false},
		{name: "no limit for height, too wide", args: args{width: 2, height: 2, maxWidth: 1, maxHeight: none}, expect: true},
		{name: "no limit for width, too tall", args: args{width: 2, height: 2, maxWidth: none, maxHeight: 1}, expect: true},
		{name: "no limit for height, fits", args: args{width: 1, height: 1, maxWidth: 2, maxHeight: none}, expect: false},
		{name: "no limit for width, fits", args: args{width: 1, height: 1, maxWidth: none, maxHeight: 2}, expect: false},
		{name: "no limits", args: args{width: 1, height: 1, maxWidth: none, maxHeight: none}, expect: false},
		{name: "no limits on a large image", args: args{width: 8000, height: 6000, maxWidth: none, maxHeight: none}, expect: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraints := apitype.MaxSize(tt.args.maxWidth, tt.args.maxHeight)
			a.Equal(tt.expect, NeedsResize(descriptorOf(tt.args.width, tt.args.height), constraints))
		})
	}
}

func TestNeedsResize_InvalidDescriptor(t *testing.T) {
	a := assert.New(t)

	a.False(NeedsResize(nil, apitype.MaxSize(1, 1)))
	a.False(NeedsResize(descriptorOf(0, 0), apitype.MaxSize(1, 1)))
}

func TestComputeTargetSize(t *testing.T) {
	a := assert.New(t)
	type args struct {
		width     int
		height    int
		maxWidth  int
		maxHeight int
	}
	tests := []struct {
		name   string
		args   args
		width  int
		height int
	}{
		{name: "max size equals to original size", args: args{width: 1, height: 1, maxWidth: 1, maxHeight: 1}, width: 1, height: 1},
		{name: "half scale on both axes", args: args{width: 640, height: 480, maxWidth: 320, maxHeight: 240}, width: 320, height: 240},
		{name: "1/2 scale", args: args{width: 960, height: 1280, maxWidth: 480, maxHeight: 640}, width: 480, height: 640},
		{name: "75 percent scale bound by height", args: args{width: 480, height: 640, maxWidth: 640, maxHeight: 480}, width: 360, height: 480},
		{name: "no limit for height", args: args{width: 960, height: 1280, maxWidth: 480, maxHeight: none}, width: 480, height: 640},
		{name: "no limit for width", args: args{width: 960, height: 1280, maxWidth: none, maxHeight: 640}, width: 480, height: 640},
		{name: "no limits returns original", args: args{width: 960, height: 1280, maxWidth: none, maxHeight: none}, width: 960, height: 1280},
		{name: "truncates toward zero", args: args{width: 3, height: 3, maxWidth: 2, maxHeight: none}, width: 2, height: 2},
		{name: "truncates instead of rounding", args: args{width: 400, height: 300, maxWidth: 100, maxHeight: 50}, width: 66, height: 50},
		{name: "width binds on landscape", args: args{width: 4000, height: 3000, maxWidth: 1920, maxHeight: 1920}, width: 1920, height: 1440},
		{name: "never below one pixel", args: args{width: 1000, height: 1, maxWidth: 10, maxHeight: none}, width: 10, height: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraints := apitype.MaxSize(tt.args.maxWidth, tt.args.maxHeight)
			size := ComputeTargetSize(descriptorOf(tt.args.width, tt.args.height), constraints)
			a.Equal(tt.width, size.Width())
			a.Equal(tt.height, size.Height())
		})
	}
}

func TestComputeTargetSize_FitsAllConstraints(t *testing.T) {
	a := assert.New(t)

	for width := 1; width <= 60; width += 7 {
		for height := 1; height <= 60; height += 5 {
			for maxWidth := 1; maxWidth <= 30; maxWidth += 3 {
				for maxHeight := 1; maxHeight <= 30; maxHeight += 4 {
					descriptor := descriptorOf(width, height)
					constraints := apitype.MaxSize(maxWidth, maxHeight)
					if !NeedsResize(descriptor, constraints) {
						continue
					}
					size := ComputeTargetSize(descriptor, constraints)
					a.LessOrEqual(size.Width(), maxWidth, "%dx%d into %s", width, height, constraints)
					a.LessOrEqual(size.Height(), maxHeight, "%dx%d into %s", width, height, constraints)
					a.True(size.IsValid())
				}
			}
		}
	}
}

func TestComputeTargetSize_InvalidDescriptor(t *testing.T) {
	a := assert.New(t)

	a.False(ComputeTargetSize(nil, apitype.MaxSize(1, 1)).IsValid())
}

func TestBindingScale(t *testing.T) {
	a := assert.New(t)

	t.Run("none", func(t *testing.T) {
		scale, ok := BindingScale(descriptorOf(10, 10), apitype.NoConstraints())
		a.False(ok)
		a.Equal(1.0, scale)
	})
	t.Run("width", func(t *testing.T) {
		scale, ok := BindingScale(descriptorOf(960, 1280), apitype.MaxWidthOnly(480))
		a.True(ok)
		a.Equal(0.5, scale)
	})
	t.Run("height binds", func(t *testing.T) {
		scale, ok := BindingScale(descriptorOf(480, 640), apitype.MaxSize(640, 480))
		a.True(ok)
		a.Equal(0.75, scale)
	})
}
