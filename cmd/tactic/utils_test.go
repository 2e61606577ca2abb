package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestMapPath(t *testing.T) {
	var is = is.New(t)

	t.Setenv("HOME", "/home/tester")
	var home, err = os.UserHomeDir()
	is.NoErr(err)
	is.Equal(mapPath("~/chess/tests.epd"), filepath.Join(home, "chess", "tests.epd"))

	exe, err := os.Executable()
	is.NoErr(err)
	is.Equal(mapPath("./tests.epd"), filepath.Join(filepath.Dir(exe), "tests.epd"))

	t.Setenv("COUNTERLITE_EPD", "/data")
	is.Equal(mapPath("$COUNTERLITE_EPD/wac.epd"), "/data/wac.epd")
	is.Equal(mapPath("testdata/wac.epd"), "testdata/wac.epd")
}
