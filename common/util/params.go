package util

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ImagingResampler = "imaging"
	NfntResampler    = "nfnt"

	defaultJpegQuality = 75
	defaultGifColors   = 256
	defaultQueueSize   = 100
)

// Params is the resizer configuration. It is parsed from an argument list
// supplied by the embedding application, never from os.Args directly.
type Params struct {
	logLevel       string
	resampler      string
	filter         string
	jpegQuality    int
	pngCompression string
	gifColors      int
	preserveExif   bool
	events         bool
	journalPath    string
	eventQueueSize int
}

func DefaultParams() *Params {
	params, _ := ParseParams([]string{})
	return params
}

func ParseParams(args []string) (*Params, error) {
	flags := flag.NewFlagSet("image-resizer", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	logLevel := flags.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	resampler := flags.String("resampler", ImagingResampler, "Resampling library: imaging or nfnt")
	filter := flags.String("filter", "lanczos", "Resampling filter, e.g. lanczos, catmullrom, linear, box, nearest")
	jpegQuality := flags.Int("jpegQuality", defaultJpegQuality, "JPEG quality 1-100")
	pngCompression := flags.String("pngCompression", "default", "PNG compression: default, none, fast, best")
	gifColors := flags.Int("gifColors", defaultGifColors, "Maximum number of colors in GIF palette 2-256")
	preserveExif := flags.Bool("preserveExif", true, "Keep the EXIF block of JPEG images when re-encoding")
	events := flags.Bool("events", true, "Publish resize events on the event bus")
	journalPath := flags.String("journal", "", "SQLite file for the resize journal. Empty disables the journal")
	eventQueueSize := flags.Int("eventQueueSize", defaultQueueSize, "Event bus queue size per subscriber")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	params := &Params{
		logLevel:       *logLevel,
		resampler:      strings.ToLower(*resampler),
		filter:         strings.ToLower(*filter),
		jpegQuality:    *jpegQuality,
		pngCompression: strings.ToLower(*pngCompression),
		gifColors:      *gifColors,
		preserveExif:   *preserveExif,
		events:         *events,
		journalPath:    *journalPath,
		eventQueueSize: *eventQueueSize,
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func (s *Params) validate() error {
	if s.resampler != ImagingResampler && s.resampler != NfntResampler {
		return fmt.Errorf("invalid resampler '%s'", s.resampler)
	}
	if s.jpegQuality < 1 || s.jpegQuality > 100 {
		return fmt.Errorf("invalid JPEG quality %d", s.jpegQuality)
	}
	if s.gifColors < 2 || s.gifColors > 256 {
		return fmt.Errorf("invalid GIF color count %d", s.gifColors)
	}
	switch s.pngCompression {
	case "default", "none", "fast", "best":
	default:
		return fmt.Errorf("invalid PNG compression '%s'", s.pngCompression)
	}
	if s.eventQueueSize < 1 {
		return fmt.Errorf("invalid event queue size %d", s.eventQueueSize)
	}
	return nil
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) Resampler() string {
	return s.resampler
}

func (s *Params) Filter() string {
	return s.filter
}

func (s *Params) JpegQuality() int {
	return s.jpegQuality
}

func (s *Params) PngCompression() string {
	return s.pngCompression
}

func (s *Params) GifColors() int {
	return s.gifColors
}

func (s *Params) PreserveExif() bool {
	return s.preserveExif
}

func (s *Params) Events() bool {
	return s.events
}

func (s *Params) JournalPath() string {
	return s.journalPath
}

func (s *Params) EventQueueSize() int {
	return s.eventQueueSize
}
