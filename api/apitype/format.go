package apitype

import "strings"

type Format int

const (
	UnknownFormat Format = 0
	JPEG          Format = 1
	GIF           Format = 2
	PNG           Format = 3
)

var (
	formatNames      = map[Format]string{JPEG: "jpeg", GIF: "gif", PNG: "png"}
	formatMimes      = map[Format]string{JPEG: "image/jpeg", GIF: "image/gif", PNG: "image/png"}
	SupportedFormats = []Format{JPEG, GIF, PNG}
)

// FormatFromName maps the format name reported by image.DecodeConfig
// (or a file extension) to a Format. Unknown names map to UnknownFormat.
func FormatFromName(name string) Format {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "jpeg", "jpg":
		return JPEG
	case "gif":
		return GIF
	case "png":
		return PNG
	}
	return UnknownFormat
}

func FormatFromId(value int64) Format {
	format := Format(value)
	if !format.IsSupported() {
		return UnknownFormat
	}
	return format
}

func (s Format) IsSupported() bool {
	_, ok := formatNames[s]
	return ok
}

// HasAlpha tells if the container can carry transparent pixels.
func (s Format) HasAlpha() bool {
	return s == GIF || s == PNG
}

func (s Format) Mime() string {
	if mime, ok := formatMimes[s]; ok {
		return mime
	}
	return "application/octet-stream"
}

func (s Format) AsId() int64 {
	return int64(s)
}

func (s Format) String() string {
	if name, ok := formatNames[s]; ok {
		return name
	}
	return "unknown"
}
