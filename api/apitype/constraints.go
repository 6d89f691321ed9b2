package apitype

import "fmt"

const noLimit = 0

// ResizeConstraints holds the optional bounding box an image must fit in.
// A zero or negative value means the axis has no limit. The value is
// immutable: the With* methods return a modified copy.
type ResizeConstraints struct {
	maxWidth  int
	maxHeight int
}

func NoConstraints() ResizeConstraints {
	return ResizeConstraints{}
}

func MaxSize(maxWidth int, maxHeight int) ResizeConstraints {
	return NoConstraints().WithMaxWidth(maxWidth).WithMaxHeight(maxHeight)
}

func MaxWidthOnly(maxWidth int) ResizeConstraints {
	return NoConstraints().WithMaxWidth(maxWidth)
}

func MaxHeightOnly(maxHeight int) ResizeConstraints {
	return NoConstraints().WithMaxHeight(maxHeight)
}

func (s ResizeConstraints) WithMaxWidth(maxWidth int) ResizeConstraints {
	s.maxWidth = normalizeLimit(maxWidth)
	return s
}

func (s ResizeConstraints) WithMaxHeight(maxHeight int) ResizeConstraints {
	s.maxHeight = normalizeLimit(maxHeight)
	return s
}

func (s ResizeConstraints) WithoutMaxWidth() ResizeConstraints {
	s.maxWidth = noLimit
	return s
}

func (s ResizeConstraints) WithoutMaxHeight() ResizeConstraints {
	s.maxHeight = noLimit
	return s
}

func (s ResizeConstraints) MaxWidth() (int, bool) {
	return s.maxWidth, s.maxWidth != noLimit
}

func (s ResizeConstraints) MaxHeight() (int, bool) {
	return s.maxHeight, s.maxHeight != noLimit
}

func (s ResizeConstraints) HasAny() bool {
	return s.maxWidth != noLimit || s.maxHeight != noLimit
}

func (s ResizeConstraints) String() string {
	return fmt.Sprintf("max %sx%s", limitString(s.maxWidth), limitString(s.maxHeight))
}

func normalizeLimit(value int) int {
	if value < 0 {
		return noLimit
	}
	return value
}

func limitString(value int) string {
	if value == noLimit {
		return "-"
	}
	return fmt.Sprintf("%d", value)
}
