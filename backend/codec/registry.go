// Package codec maps image formats to their decode and encode capabilities.
package codec

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"sort"
	"sync"
	"vincit.fi/image-resizer/api/apitype"
)

type DecodeFunc func(r io.Reader) (image.Image, error)
type EncodeFunc func(w io.Writer, img image.Image) error

type Codec struct {
	Decode DecodeFunc
	Encode EncodeFunc
}

// Registry is safe for concurrent use. Formats without a registered codec
// are rejected with apitype.ErrUnsupportedFormat.
type Registry struct {
	codecs map[apitype.Format]Codec
	mux    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: map[apitype.Format]Codec{},
	}
}

func (s *Registry) Register(format apitype.Format, codec Codec) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.codecs[format] = codec
}

func (s *Registry) Lookup(format apitype.Format) (Codec, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if codec, ok := s.codecs[format]; ok && codec.Decode != nil && codec.Encode != nil {
		return codec, nil
	}
	return Codec{}, fmt.Errorf("%w: %s", apitype.ErrUnsupportedFormat, format)
}

func (s *Registry) Formats() []apitype.Format {
	s.mux.RLock()
	defer s.mux.RUnlock()
	formats := make([]apitype.Format, 0, len(s.codecs))
	for format := range s.codecs {
		formats = append(formats, format)
	}
	sort.Slice(formats, func(i, j int) bool {
		return formats[i] < formats[j]
	})
	return formats
}

func (s *Registry) Decode(format apitype.Format, data []byte) (image.Image, error) {
	codec, err := s.Lookup(format)
	if err != nil {
		return nil, err
	}
	img, err := codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return img, nil
}

func (s *Registry) Encode(format apitype.Format, img image.Image) ([]byte, error) {
	codec, err := s.Lookup(format)
	if err != nil {
		return nil, err
	}
	buffer := &bytes.Buffer{}
	if err := codec.Encode(buffer, img); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buffer.Bytes(), nil
}
