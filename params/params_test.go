package params

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func setupTestParams(t *testing.T) {
	t.Helper()
	old := ParamsPath
	ParamsPath = filepath.Join(t.TempDir(), "d")
	EnsureParamDirectories()
	t.Cleanup(func() {
		ParamsPath = old
	})
}

func TestPutGetParam(t *testing.T) {
	setupTestParams(t)

	path := ParamPath("TestValue")
	if err := PutParam(path, []byte("hello")); err != nil {
		t.Fatal(err)
	}
	data, err := GetParam(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("expected hello, got %q", data)
	}
}

func TestPutParamOverwrites(t *testing.T) {
	setupTestParams(t)

	path := ParamPath("TestValue")
	if err := PutParam(path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := PutParam(path, []byte("second")); err != nil {
		t.Fatal(err)
	}
	data, err := GetParam(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("expected second, got %q", data)
	}
}

func TestGetBool(t *testing.T) {
	setupTestParams(t)

	path := ParamPath("TestBool")
	if GetBool(path) {
		t.Error("expected a missing param to read as false")
	}
	if err := PutBool(path, true); err != nil {
		t.Fatal(err)
	}
	if !GetBool(path) {
		t.Error("expected true after PutBool(true)")
	}
	if err := PutBool(path, false); err != nil {
		t.Fatal(err)
	}
	if GetBool(path) {
		t.Error("expected false after PutBool(false)")
	}
}

func TestGetParamsSortsAndSkipsHidden(t *testing.T) {
	setupTestParams(t)

	for _, name := range []string{"Zeta", "Alpha"} {
		if err := PutParam(ParamPath(name), []byte("1")); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(ParamPath(".hidden"), []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := GetParams()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"Alpha", "Zeta"}) {
		t.Errorf("expected sorted visible params, got %v", names)
	}
}

func TestRemoveParam(t *testing.T) {
	setupTestParams(t)

	path := ParamPath("TestValue")
	if err := PutParam(path, []byte("data")); err != nil {
		t.Fatal(err)
	}
	if err := RemoveParam(path); err != nil {
		t.Fatal(err)
	}
	exists, err := Exists(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("expected the param file to be gone")
	}
}

func TestIsString(t *testing.T) {
	if !IsString([]byte("plain text\nwith lines\n")) {
		t.Error("expected printable data to read as a string")
	}
	if IsString([]byte{0x00, 0x01}) {
		t.Error("expected binary data to not read as a string")
	}
}
