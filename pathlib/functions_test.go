package pathlib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flightdeck-io/flightdeck/hamlet"
	"github.com/flightdeck-io/flightdeck/pathlib"
)

func TestFileHashMatchesKnownDigest(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), "greeting.txt")
	must_be.Nil(os.WriteFile(filename, []byte("Hello, World!"), 0o644))

	digest, err := pathlib.Sha256(filename)
	must_be.Nil(err)
	must_be.Equal("dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f", digest)

	short, err := pathlib.FileHash(filename, "md5")
	must_be.Nil(err)
	must_be.Equal(32, len(short))

	lean, err := pathlib.FileHash(filename, "sha1")
	must_be.Nil(err)
	must_be.Equal(40, len(lean))

	_, err = pathlib.FileHash(filename, "crc32")
	wont_be.Nil(err)
}

func TestFileHashOnMissingFileFails(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	digest, err := pathlib.Sha256(filepath.Join(t.TempDir(), "no-such-file"))
	wont_be.Nil(err)
	must_be.Equal("", digest)
}

func TestEnsureDirectoryCreatesChain(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	target := filepath.Join(t.TempDir(), "deep", "nested", "home")
	wont_be.True(pathlib.Exists(target))

	created, err := pathlib.EnsureDirectory(target)
	must_be.Nil(err)
	must_be.Equal(target, created)
	must_be.True(pathlib.IsDir(target))

	// second call is a quiet no-op
	again, err := pathlib.EnsureDirectory(target)
	must_be.Nil(err)
	must_be.Equal(target, again)
}
