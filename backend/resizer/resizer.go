// Package resizer shrinks image files in place so that they fit the given
// constraints.
package resizer

import (
	"fmt"
	"github.com/google/uuid"
	"os"
	"time"
	"vincit.fi/image-resizer/api"
	"vincit.fi/image-resizer/api/apitype"
	"vincit.fi/image-resizer/backend/codec"
	"vincit.fi/image-resizer/backend/planner"
	"vincit.fi/image-resizer/common/logger"
	"vincit.fi/image-resizer/common/util"
)

type Options struct {
	PreserveExif bool
}

func DefaultOptions() Options {
	return Options{
		PreserveExif: true,
	}
}

type Resizer struct {
	prober    api.Prober
	codecs    api.Codecs
	resampler api.Resampler
	sender    api.Sender
	journal   api.Journal
	options   Options

	api.ImageResizer
}

// NewResizer creates a resizer. Journal may be nil.
func NewResizer(prober api.Prober, codecs api.Codecs, resampler api.Resampler, sender api.Sender, journal api.Journal, options Options) *Resizer {
	return &Resizer{
		prober:    prober,
		codecs:    codecs,
		resampler: resampler,
		sender:    sender,
		journal:   journal,
		options:   options,
	}
}

// Resize returns data re-encoded at the target size in the format of the
// descriptor. When the image already fits the constraints data is returned
// as is.
func (s *Resizer) Resize(descriptor *apitype.ImageDescriptor, constraints apitype.ResizeConstraints, data []byte) ([]byte, error) {
	if !planner.NeedsResize(descriptor, constraints) {
		logger.Debug.Printf("%s fits %s, not resizing", descriptor, constraints)
		return data, nil
	}

	format := descriptor.Format()
	if !format.IsSupported() {
		return nil, apitype.NewResizeError("resize", descriptor.Path(), format, apitype.ErrUnsupportedFormat)
	}

	target := planner.ComputeTargetSize(descriptor, constraints)
	logger.Debug.Printf("Resizing %s to %s", descriptor, target)

	decodeStart := time.Now()
	img, err := s.codecs.Decode(format, data)
	if err != nil {
		return nil, apitype.NewResizeError("decode", descriptor.Path(), format, asKind(err, apitype.ErrUnsupportedFormat))
	}
	logger.Trace.Printf(" - Decoded in %s", time.Since(decodeStart))

	resampleStart := time.Now()
	resized, err := s.resampler.Resample(img, target)
	if err != nil {
		return nil, apitype.NewResizeError("resample", descriptor.Path(), format, asKind(err, apitype.ErrResampleFailed))
	}
	logger.Trace.Printf(" - Resampled in %s", time.Since(resampleStart))

	encodeStart := time.Now()
	encoded, err := s.codecs.Encode(format, resized)
	if err != nil {
		return nil, apitype.NewResizeError("encode", descriptor.Path(), format, asKind(err, apitype.ErrResampleFailed))
	}
	logger.Trace.Printf(" - Encoded in %s", time.Since(encodeStart))

	if format == apitype.JPEG && s.options.PreserveExif {
		encoded = s.copyExif(descriptor, target, data, encoded)
	}
	return encoded, nil
}

// ResizeFile resizes the file at path in place. The file is only rewritten
// when it does not fit the constraints, and on failure it is left untouched.
func (s *Resizer) ResizeFile(path string, constraints apitype.ResizeConstraints) (*apitype.ResizeResult, error) {
	start := time.Now()
	requestId := uuid.New().String()

	descriptor, err := s.prober.Probe(path)
	if err != nil {
		return nil, s.fail(requestId, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, s.fail(requestId, path, apitype.NewResizeError("read", path, descriptor.Format(), fmt.Errorf("%w: %s", apitype.ErrNotReadable, err)))
	}

	output, err := s.Resize(descriptor, constraints, data)
	if err != nil {
		return nil, s.fail(requestId, path, err)
	}

	result := &apitype.ResizeResult{
		RequestId:    requestId,
		Path:         path,
		Format:       descriptor.Format(),
		OriginalSize: descriptor.Size(),
		TargetSize:   descriptor.Size(),
		BytesBefore:  int64(len(data)),
		BytesAfter:   int64(len(data)),
	}

	if planner.NeedsResize(descriptor, constraints) {
		if err := util.ReplaceFile(path, output); err != nil {
			return nil, s.fail(requestId, path, apitype.NewResizeError("write", path, descriptor.Format(), fmt.Errorf("%w: %s", apitype.ErrNotWritable, err)))
		}
		result.TargetSize = planner.ComputeTargetSize(descriptor, constraints)
		result.Resized = true
		result.BytesAfter = int64(len(output))
	}
	result.Duration = time.Since(start)
	result.Timestamp = time.Now()

	s.publish(result)
	return result, nil
}

// copyExif moves the EXIF block of the original into the encoded image and
// updates its pixel dimensions to the new size.
func (s *Resizer) copyExif(descriptor *apitype.ImageDescriptor, target apitype.Size, original []byte, encoded []byte) []byte {
	rawExif, err := codec.ReadExif(original)
	if err != nil || len(rawExif) == 0 {
		logger.Trace.Printf("No EXIF data in %s", descriptor)
		return encoded
	}
	if updated, err := codec.UpdateExifDimensions(rawExif, target); err != nil {
		logger.Warn.Printf("Could not update EXIF dimensions of %s: %s", descriptor, err)
	} else {
		rawExif = updated
	}
	withExif, err := codec.InsertExif(encoded, rawExif)
	if err != nil {
		logger.Warn.Printf("Could not copy EXIF data of %s: %s", descriptor, err)
		return encoded
	}
	return withExif
}

func (s *Resizer) publish(result *apitype.ResizeResult) {
	if result.Resized {
		logger.Info.Printf("Resized %s from %s to %s in %s", result.Path, result.OriginalSize, result.TargetSize, result.Duration)
		s.sendCommand(api.ResizeCompleted, &apitype.ResizedCommand{Result: result})
	} else {
		logger.Debug.Printf("Skipped %s", result)
		s.sendCommand(api.ResizeSkipped, &apitype.ResizedCommand{Result: result})
	}

	if s.journal != nil {
		if err := s.journal.Record(result); err != nil {
			logger.Warn.Printf("Could not record %s to journal: %s", result, err)
		}
	}
}

func (s *Resizer) fail(requestId string, path string, err error) error {
	if s.sender != nil {
		s.sender.SendError(fmt.Sprintf("Could not resize '%s'", path), err)
	} else {
		logger.Error.Printf("Could not resize '%s': %s", path, err)
	}
	s.sendCommand(api.ResizeFailed, &apitype.ResizeFailedCommand{
		Id:   requestId,
		Path: path,
		Err:  err,
	})
	return err
}

func (s *Resizer) sendCommand(topic api.Topic, command apitype.Command) {
	if s.sender != nil {
		s.sender.SendCommandToTopic(topic, command)
	}
}

// asKind keeps err if it already is one of the error kinds and wraps it
// in kind otherwise.
func asKind(err error, kind error) error {
	if apitype.KindOf(err) != nil {
		return err
	}
	return fmt.Errorf("%w: %s", kind, err)
}
