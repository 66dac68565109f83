package checkpoint

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/fixgo/codec"
)

// Compression selects the payload compression scheme.
type Compression uint8

const (
	// CompressionNone stores the encoded payload as-is.
	CompressionNone Compression = iota
	// CompressionZstd compresses the payload with zstd.
	CompressionZstd
	// CompressionLZ4 compresses the payload with an lz4 frame.
	CompressionLZ4
)

// Record header layout:
//
//	magic "FXCP" | version (1 byte) | compression (1 byte) |
//	codec name length (1 byte) | codec name | payload
var recordMagic = []byte("FXCP")

const recordVersion = 1

// ErrMalformedRecord is returned when a stored record cannot be decoded.
var ErrMalformedRecord = errors.New("malformed checkpoint record")

var (
	// Shared one-shot zstd coders; both are safe for concurrent
	// EncodeAll/DecodeAll use.
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// EncodeRecord encodes record into the self-describing wire format.
func EncodeRecord(opts Options, record any) ([]byte, error) {
	c := opts.Codec
	if c == nil {
		c = codec.Default
	}

	payload, err := c.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal checkpoint record: %w", err)
	}

	switch opts.Compression {
	case CompressionNone:
	case CompressionZstd:
		payload = zstdEncoder.EncodeAll(payload, nil)
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		payload = buf.Bytes()
	default:
		return nil, fmt.Errorf("unsupported compression: %d", opts.Compression)
	}

	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("codec name too long: %s", name)
	}

	out := make([]byte, 0, len(recordMagic)+3+len(name)+len(payload))
	out = append(out, recordMagic...)
	out = append(out, recordVersion, byte(opts.Compression), byte(len(name)))
	out = append(out, name...)
	out = append(out, payload...)
	return out, nil
}

// DecodeRecord decodes data produced by EncodeRecord into record,
// selecting the codec by the name stored in the header.
func DecodeRecord(data []byte, record any) error {
	if len(data) < len(recordMagic)+3 || !bytes.Equal(data[:len(recordMagic)], recordMagic) {
		return ErrMalformedRecord
	}
	rest := data[len(recordMagic):]

	version := rest[0]
	if version != recordVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedRecord, version)
	}
	compression := Compression(rest[1])
	nameLen := int(rest[2])
	rest = rest[3:]
	if len(rest) < nameLen {
		return ErrMalformedRecord
	}
	name := string(rest[:nameLen])
	payload := rest[nameLen:]

	c, ok := codec.ByName(name)
	if !ok {
		return fmt.Errorf("%w: unknown codec %q", ErrMalformedRecord, name)
	}

	switch compression {
	case CompressionNone:
	case CompressionZstd:
		out, err := zstdDecoder.DecodeAll(payload, nil)
		if err != nil {
			return fmt.Errorf("zstd decompress: %w", err)
		}
		payload = out
	case CompressionLZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
		if err != nil {
			return fmt.Errorf("lz4 decompress: %w", err)
		}
		payload = out
	default:
		return fmt.Errorf("%w: unsupported compression %d", ErrMalformedRecord, compression)
	}

	if err := c.Unmarshal(payload, record); err != nil {
		return fmt.Errorf("unmarshal checkpoint record: %w", err)
	}
	return nil
}
