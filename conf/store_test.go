package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flightdeck-io/flightdeck/conf"
	"github.com/flightdeck-io/flightdeck/hamlet"
)

func TestDottedRoundtrip(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := conf.NewStore(filepath.Join(t.TempDir(), "config.json"))
	wont_be.Nil(sut)

	must_be.Equal("fallback", sut.Get("a.b", "fallback"))

	sut.Set("a.b.c", "deep")
	must_be.Equal("deep", sut.Get("a.b.c", nil))
	sut.Set("top", 42)
	must_be.Equal(42, sut.Get("top", nil))

	sut.Delete("a.b.c")
	must_be.Equal("gone", sut.Get("a.b.c", "gone"))

	// unresolvable deletes stay quiet
	sut.Delete("no.such.path")
	sut.Delete("top.is.scalar")
	must_be.Equal(42, sut.Get("top", nil))
}

func TestSettingThroughScalarOverwrites(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := conf.NewStore(filepath.Join(t.TempDir(), "config.json"))
	sut.Set("node", "scalar")
	sut.Set("node.child", "value")
	must_be.Equal("value", sut.Get("node.child", nil))
	must_be.Equal("absent", sut.Get("node.other", "absent"))
}

func TestSaveAndReload(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	sut := conf.NewStore(filename)
	must_be.Equal("fallback", sut.Get("a.b", "fallback"))

	sut.Set("a.b", 5)
	must_be.Nil(sut.Save())

	reloaded := conf.NewStore(filename)
	must_be.Equal(float64(5), reloaded.Get("a.b", nil))
}

func TestCorruptDocumentResetsToEmpty(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), "config.json")
	must_be.Nil(os.WriteFile(filename, []byte("{not json"), 0o644))

	sut := conf.NewStore(filename)
	must_be.Equal(0, len(sut.AsMap()))
	must_be.Equal("fallback", sut.Get("anything", "fallback"))
}

func TestExplicitReadDemandsExistence(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	_, err := conf.ReadDocument(filepath.Join(t.TempDir(), "missing.json"))
	wont_be.Nil(err)

	filename := filepath.Join(t.TempDir(), "real.json")
	must_be.Nil(os.WriteFile(filename, []byte(`{"present": true}`), 0o644))
	document, err := conf.ReadDocument(filename)
	must_be.Nil(err)
	must_be.Equal(true, document["present"])
}
