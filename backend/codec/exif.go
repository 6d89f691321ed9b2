package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"github.com/rwcarlsen/goexif/exif"
	"vincit.fi/image-resizer/api/apitype"
)

const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8
	markerAPP0   = 0xE0
	markerAPP1   = 0xE1

	exifHeader  = "Exif\x00\x00"
	lengthBytes = 2
	maxSegment  = 0xFFFF
)

const (
	tagImageWidth      = 0x0100
	tagImageLength     = 0x0101
	tagExifIfdPointer  = 0x8769
	tagPixelXDimension = 0xA002
	tagPixelYDimension = 0xA003

	typeShort = 3
	typeLong  = 4

	tiffHeaderLength = 8
	ifdEntryLength   = 12
)

var (
	ErrMalformedExif    = errors.New("malformed EXIF block")
	ErrNotJpeg          = errors.New("not a JPEG stream")
	ErrExifTooLarge     = errors.New("EXIF block does not fit in one segment")
	errTruncatedSegment = errors.New("truncated JPEG segment")
)

// ReadExif returns the raw TIFF-formatted EXIF block of a JPEG file.
func ReadExif(data []byte) ([]byte, error) {
	decoded, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return decoded.Raw, nil
}

// InsertExif writes raw EXIF data into an encoded JPEG as an APP1 segment.
// The segment goes right after the JFIF APP0 block when the encoder wrote
// one, otherwise right after the start-of-image marker.
func InsertExif(jpegData []byte, rawExif []byte) ([]byte, error) {
	if len(jpegData) < 2 || jpegData[0] != markerPrefix || jpegData[1] != markerSOI {
		return nil, ErrNotJpeg
	}
	segmentLength := len(rawExif) + len(exifHeader) + lengthBytes
	if segmentLength > maxSegment {
		return nil, ErrExifTooLarge
	}

	buffer := bytes.NewBuffer(jpegData)
	output := &bytes.Buffer{}
	writer := bufio.NewWriter(output)

	// 0xFF 0xD8: Start of JPEG
	writer.Write(buffer.Next(2))

	if err := writeJfifBlock(writer, buffer); err != nil {
		return nil, err
	}
	writeExifBlock(writer, rawExif, uint16(segmentLength))

	// Write rest of file
	writer.Write(buffer.Bytes())
	if err := writer.Flush(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func writeExifBlock(writer *bufio.Writer, rawExif []byte, segmentLength uint16) {
	lengthField := make([]byte, lengthBytes)
	binary.BigEndian.PutUint16(lengthField, segmentLength)
	writer.Write([]byte{markerPrefix, markerAPP1})
	writer.Write(lengthField)
	writer.WriteString(exifHeader)
	writer.Write(rawExif)
}

// writeJfifBlock copies the APP0 block if the stream has one next.
func writeJfifBlock(writer *bufio.Writer, buffer *bytes.Buffer) error {
	next := buffer.Bytes()
	if len(next) < 4 || next[0] != markerPrefix || next[1] != markerAPP0 {
		return nil
	}
	// Length includes the length bytes, so we need to subtract when reading
	appLength := int(binary.BigEndian.Uint16(next[2:4])) - lengthBytes
	if appLength < 0 || len(next) < 4+appLength {
		return errTruncatedSegment
	}
	writer.Write(buffer.Next(4 + appLength))
	return nil
}

// UpdateExifDimensions returns a copy of rawExif where the image width and
// height tags of IFD0 and the pixel dimension tags of the EXIF IFD are set
// to size. Tags that are not present are not added.
func UpdateExifDimensions(rawExif []byte, size apitype.Size) ([]byte, error) {
	if len(rawExif) < tiffHeaderLength {
		return nil, ErrMalformedExif
	}
	var order binary.ByteOrder
	switch string(rawExif[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return nil, ErrMalformedExif
	}
	if order.Uint16(rawExif[2:4]) != 42 {
		return nil, ErrMalformedExif
	}

	updated := make([]byte, len(rawExif))
	copy(updated, rawExif)

	ifd0 := order.Uint32(updated[4:8])
	exifIfd, err := updateIfd(updated, order, ifd0, map[uint16]int{
		tagImageWidth:  size.Width(),
		tagImageLength: size.Height(),
	})
	if err != nil {
		return nil, err
	}
	if exifIfd != 0 {
		if _, err := updateIfd(updated, order, exifIfd, map[uint16]int{
			tagPixelXDimension: size.Width(),
			tagPixelYDimension: size.Height(),
		}); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// updateIfd writes the values of the given tags in place and returns the
// offset of the EXIF IFD if the directory points to one.
func updateIfd(data []byte, order binary.ByteOrder, offset uint32, values map[uint16]int) (uint32, error) {
	start := int(offset)
	if start < tiffHeaderLength || start+2 > len(data) {
		return 0, ErrMalformedExif
	}
	count := int(order.Uint16(data[start : start+2]))
	if start+2+count*ifdEntryLength > len(data) {
		return 0, ErrMalformedExif
	}

	var exifIfd uint32
	for i := 0; i < count; i++ {
		entry := data[start+2+i*ifdEntryLength : start+2+(i+1)*ifdEntryLength]
		tag := order.Uint16(entry[0:2])
		valueType := order.Uint16(entry[2:4])
		value := entry[8:12]

		if tag == tagExifIfdPointer {
			exifIfd = order.Uint32(value)
			continue
		}
		newValue, ok := values[tag]
		if !ok || order.Uint32(entry[4:8]) != 1 {
			continue
		}
		switch valueType {
		case typeShort:
			if newValue <= 0xFFFF {
				order.PutUint16(value[0:2], uint16(newValue))
			}
		case typeLong:
			order.PutUint32(value, uint32(newValue))
		}
	}
	return exifIfd, nil
}
