package validate

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/minio/highwayhash"
)

// fileHashKey is the fixed key used when hashing file content, so the same
// file always produces the same hash across runs.
var fileHashKey = []byte("filesift hash key\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")

// hashFile calculates a HighwayHash of the file content
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hash, err := highwayhash.New(fileHashKey)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(hash, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
