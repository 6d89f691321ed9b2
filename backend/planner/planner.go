// Package planner decides whether an image has to be shrunk to fit the
// given constraints and what its new size will be.
package planner

import (
	"vincit.fi/image-resizer/api/apitype"
)

// NeedsResize tells if the image is larger than any active constraint.
// Images that already fit, or requests without constraints, need nothing.
func NeedsResize(descriptor *apitype.ImageDescriptor, constraints apitype.ResizeConstraints) bool {
	if !descriptor.IsValid() {
		return false
	}
	if maxHeight, ok := constraints.MaxHeight(); ok && descriptor.Height() > maxHeight {
		return true
	}
	if maxWidth, ok := constraints.MaxWidth(); ok && descriptor.Width() > maxWidth {
		return true
	}
	return false
}

// ComputeTargetSize scales the original size with the smallest scale any
// active constraint requires. Fractional pixels are truncated toward zero,
// never rounded, so the result stays inside every active constraint.
func ComputeTargetSize(descriptor *apitype.ImageDescriptor, constraints apitype.ResizeConstraints) apitype.Size {
	if !descriptor.IsValid() {
		return apitype.SizeOf(0, 0)
	}

	scale, ok := BindingScale(descriptor, constraints)
	if !ok {
		return descriptor.Size()
	}

	return apitype.SizeOf(
		scaleAxis(descriptor.Width(), scale),
		scaleAxis(descriptor.Height(), scale),
	)
}

// BindingScale returns the minimum of the per-axis scale factors. The second
// return value is false when no constraint is active.
func BindingScale(descriptor *apitype.ImageDescriptor, constraints apitype.ResizeConstraints) (float64, bool) {
	var scales []float64
	if maxWidth, ok := constraints.MaxWidth(); ok {
		scales = append(scales, float64(maxWidth)/float64(descriptor.Width()))
	}
	if maxHeight, ok := constraints.MaxHeight(); ok {
		scales = append(scales, float64(maxHeight)/float64(descriptor.Height()))
	}

	if len(scales) == 0 {
		return 1, false
	}

	scale := scales[0]
	for _, candidate := range scales[1:] {
		if candidate < scale {
			scale = candidate
		}
	}
	return scale, true
}

func scaleAxis(value int, scale float64) int {
	scaled := int(float64(value) * scale)
	if scaled < 1 {
		return 1
	}
	return scaled
}
