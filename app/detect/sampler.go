package detect

import (
	"io"
	"os"
)

// SampleSize is the maximum number of bytes read from a file for
// content-based detection. 8KB is enough to see headers, XML prologs
// and Excel container magic without reading the whole file.
const SampleSize = 8192

// sampleContent reads up to SampleSize bytes from the start of the file.
// The returned bytes are interpreted as UTF-8 text downstream on a
// best-effort basis; decoding artifacts are not specially handled.
// Read failures are returned to the caller so detection can degrade to
// extension/filename-only scoring instead of aborting.
func sampleContent(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, SampleSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}
