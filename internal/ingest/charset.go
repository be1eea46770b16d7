package ingest

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies a feed file's text encoding.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1250 Encoding = "windows-1250"
	EncodingISO88592    Encoding = "iso-8859-2"
)

// DetectEncoding guesses the encoding of a feed file. Valid UTF-8 (with or
// without BOM) is taken at face value. For other data the 0x80-0x9F range
// decides: Windows-1250 assigns letters and punctuation there while
// ISO-8859-2 leaves it to control codes that never appear in feed text, so
// any such byte means Windows-1250 and all-high-byte data reads as
// ISO-8859-2. The two charmaps agree on the Romanian diacritics, so the
// split only matters for feeds carrying the Windows-only characters.
func DetectEncoding(data []byte) Encoding {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return EncodingUTF8
	}
	if utf8.Valid(data) {
		return EncodingUTF8
	}
	for _, b := range data {
		if b >= 0x80 && b <= 0x9F {
			return EncodingWindows1250
		}
	}
	return EncodingISO88592
}

// Decode converts feed bytes to a UTF-8 string. When the requested encoding
// is UTF-8 but the bytes are not valid UTF-8, it falls back to Windows-1250
// rather than emitting replacement runes; files mislabeled the other way
// round pass through unchanged.
func Decode(data []byte, enc Encoding) (string, error) {
	// A UTF-8 BOM is never part of the payload.
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	switch enc {
	case EncodingUTF8, "":
		if utf8.Valid(data) {
			return string(data), nil
		}
		return decodeCharmap(data, charmap.Windows1250)
	case EncodingWindows1250:
		if utf8.Valid(data) {
			return string(data), nil
		}
		return decodeCharmap(data, charmap.Windows1250)
	case EncodingISO88592:
		return decodeCharmap(data, charmap.ISO8859_2)
	default:
		return "", fmt.Errorf("unsupported encoding %q", enc)
	}
}

func decodeCharmap(data []byte, cm *charmap.Charmap) (string, error) {
	out, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", cm, err)
	}
	return string(out), nil
}
