package fileloader

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// CompressionType represents the compression format of an input file
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
)

// String returns the string representation of CompressionType
func (ct CompressionType) String() string {
	switch ct {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

// compressionExtensions maps compression suffixes to their type
var compressionExtensions = map[string]CompressionType{
	".gz":  CompressionGzip,
	".bz2": CompressionBzip2,
	".xz":  CompressionXZ,
}

// Magic byte signatures for compression sniffing
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// DetectCompression determines the compression format of a file, first
// from its extension and then by sniffing magic bytes, so renamed
// compressed files are still handled.
func DetectCompression(path string) (CompressionType, error) {
	lower := strings.ToLower(path)
	for ext, ct := range compressionExtensions {
		if strings.HasSuffix(lower, ext) {
			return ct, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return CompressionNone, err
	}
	defer f.Close()

	// XZ has the longest magic (6 bytes)
	header := make([]byte, 6)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return CompressionNone, err
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip, nil
	case bytes.HasPrefix(header, bzip2Magic):
		return CompressionBzip2, nil
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXZ, nil
	}
	return CompressionNone, nil
}

// StripCompressionExt returns the path without a trailing compression
// suffix, e.g. "data.csv.gz" -> "data.csv".
func StripCompressionExt(path string) string {
	lower := strings.ToLower(path)
	for ext := range compressionExtensions {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}

// ReadFile reads the file at path, transparently decompressing it when a
// compression format is detected.
func ReadFile(path string) ([]byte, error) {
	compression, err := DetectCompression(path)
	if err != nil {
		return nil, err
	}
	if compression == CompressionNone {
		return os.ReadFile(path)
	}

	r, err := OpenDecompressed(path, compression)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	return data, nil
}

// OpenDecompressed opens the file and wraps it in the appropriate
// decompressing reader. The returned closer releases both the
// decompressor and the underlying file.
func OpenDecompressed(path string, compression CompressionType) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch compression {
	case CompressionNone:
		return f, nil
	case CompressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return &decompressingReadCloser{reader: gz, file: f}, nil
	case CompressionBzip2:
		return &decompressingReadCloser{reader: bzip2.NewReader(f), file: f}, nil
	case CompressionXZ:
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return &decompressingReadCloser{reader: xr, file: f}, nil
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported compression type: %v", compression)
	}
}

// decompressingReadCloser wraps a decompressing reader and the underlying file
type decompressingReadCloser struct {
	reader io.Reader
	file   *os.File
}

func (d *decompressingReadCloser) Read(p []byte) (int, error) {
	return d.reader.Read(p)
}

func (d *decompressingReadCloser) Close() error {
	if closer, ok := d.reader.(io.Closer); ok {
		closer.Close()
	}
	return d.file.Close()
}
