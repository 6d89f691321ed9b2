package apitype

import (
	"github.com/stretchr/testify/assert"
	"image"
	"testing"
)

func TestSizeOf(t *testing.T) {
	a := assert.New(t)
	type args struct {
		width  int
		height int
	}
	tests := []struct {
		name          string
		args          args
		width, height int
		valid         bool
	}{
		{name: "Size", args: args{width: 200, height: 100}, width: 200, height: 100, valid: true},
		{name: "Zero width", args: args{width: 0, height: 100}, width: 0, height: 100, valid: false},
		{name: "Zero height", args: args{width: 200, height: 0}, width: 200, height: 0, valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeOf(tt.args.width, tt.args.height)
			a.Equal(tt.width, got.Width())
			a.Equal(tt.height, got.Height())
			a.Equal(tt.valid, got.IsValid())
		})
	}
}

func TestSizeFromRectangle(t *testing.T) {
	a := assert.New(t)

	size := SizeFromRectangle(image.Rect(10, 20, 650, 500))

	a.Equal(640, size.Width())
	a.Equal(480, size.Height())
	a.Equal("640x480", size.String())
}
