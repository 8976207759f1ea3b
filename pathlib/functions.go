package pathlib

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/flightdeck-io/flightdeck/common"
)

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return err == nil
}

func IsDir(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.IsDir()
}

func IsFile(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && !stat.IsDir()
}

// EnsureDirectory creates the directory chain when it is missing and
// hands the same path back for chaining into join calls.
func EnsureDirectory(directory string) (string, error) {
	if IsDir(directory) {
		return directory, nil
	}
	err := os.MkdirAll(directory, 0o755)
	if err != nil {
		return "", fmt.Errorf("could not create directory %q: %w", directory, err)
	}
	common.Trace("created directory %q", directory)
	return directory, nil
}

func digester(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "sha256":
		return sha256.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "md5":
		return md5.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", algorithm)
	}
}

// FileHash streams the file through the named digest (sha256, sha1 or
// md5) and returns the lowercase hex form.
func FileHash(filename, algorithm string) (string, error) {
	digest, err := digester(algorithm)
	if err != nil {
		return "", err
	}
	source, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", filename, err)
	}
	defer source.Close()
	if _, err := io.Copy(digest, source); err != nil {
		return "", fmt.Errorf("could not hash %q: %w", filename, err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Sha256 is the common case of FileHash.
func Sha256(filename string) (string, error) {
	return FileHash(filename, "sha256")
}
