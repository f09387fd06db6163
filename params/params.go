package params

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/gofrs/flock"
)

var ParamsPath string = "/data/params/d"

// Params
var (
	REVERSE_ACC_CHANGE = ParamPath("ReverseAccChange")
	IS_METRIC          = ParamPath("IsMetric")
	CRUISED_SETTINGS   = ParamPath("CruisedSettings")
)

// exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func EnsureParamDirectories() {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", ParamsPath)
	}
}

func IsString(data []byte) bool {
	for _, b := range data {
		if (b < 32 || b > 126) && !(b == 9 || b == 13 || b == 10) {
			return false
		}
	}
	return true
}

func GetParams() ([]string, error) {
	files, err := os.ReadDir(ParamsPath)
	if err != nil {
		return nil, errors.Wrap(err, "could not read params directory")
	}

	paramFiles := []string{}
	for _, file := range files {
		name := file.Name()
		if file.Type().IsRegular() && name[0] != '.' {
			paramFiles = append(paramFiles, name)
		}
	}
	sort.Strings(paramFiles)

	return paramFiles, nil
}

func ParamPath(name string) string {
	return filepath.Join(ParamsPath, name)
}

func GetParam(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// GetBool reads a boolean param. A missing or unreadable param reads as
// false, which keeps the per-cycle live reads fail-soft.
func GetBool(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return len(data) > 0 && data[0] == '1'
}

func PutBool(path string, value bool) error {
	data := []byte("0")
	if value {
		data = []byte("1")
	}
	return PutParam(path, data)
}

func PutParam(path string, data []byte) error {
	dir := filepath.Dir(path)
	lock_dir := filepath.Dir(dir)
	file, err := os.CreateTemp(dir, ".tmp_value_"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	fileLock, err := lockParamsDir(lock_dir)
	if err != nil {
		return err
	}
	defer unlockParamsDir(fileLock, lock_dir)

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncDir(dir)
}

func RemoveParam(path string) error {
	dir := filepath.Dir(path)
	lock_dir := filepath.Dir(dir)

	fileLock, err := lockParamsDir(lock_dir)
	if err != nil {
		return err
	}
	defer unlockParamsDir(fileLock, lock_dir)

	os.Remove(path)

	return syncDir(dir)
}

func lockParamsDir(lock_dir string) (*flock.Flock, error) {
	fileLock := flock.New(filepath.Join(lock_dir, ".lock"))

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking params directory")
		}
		if locked {
			return fileLock, nil
		}
		retries += 1
		if retries > 30 {
			// try to force the lock to be removed
			if err := os.Remove(filepath.Join(lock_dir, ".lock")); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > 50 {
			return nil, errors.New("could not obtain lock")
		}
		// if we didn't obtain the lock let's try again after a short delay
		time.Sleep(1 * time.Millisecond)
	}
}

func unlockParamsDir(fileLock *flock.Flock, lock_dir string) {
	if err := fileLock.Unlock(); err != nil {
		slog.Error("could not unlock params directory", "error", err)
	}
	if err := os.Remove(filepath.Join(lock_dir, ".lock")); err != nil {
		slog.Error("could not remove params lock file", "error", err)
	}
}

func syncDir(dir string) error {
	directory, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}

	return nil
}
