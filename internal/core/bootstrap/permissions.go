package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// DetectTools checks that every tool resolves on PATH
func DetectTools(tools []string, lookPath func(string) (string, error)) []Check {
	var checks []Check
	for _, tool := range tools {
		path, err := lookPath(tool)
		if err != nil {
			checks = append(checks, Check{
				Category: CategoryTools,
				Name:     tool,
				Status:   StatusFail,
				Detail:   "not found on PATH",
			})
			continue
		}
		checks = append(checks, Check{
			Category: CategoryTools,
			Name:     tool,
			Status:   StatusOK,
			Detail:   path,
		})
	}
	return checks
}

// DetectPermissions checks the watch directory can be listed and the
// profile and history locations can be written. Empty paths are skipped.
func DetectPermissions(watchDir, profilesPath, historyPath string) []Check {
	var checks []Check
	if watchDir != "" {
		checks = append(checks, checkReadableDir("watch_dir", watchDir))
	}
	if profilesPath != "" {
		checks = append(checks, checkWritableParent("profiles", profilesPath))
	}
	if historyPath != "" {
		checks = append(checks, checkWritableParent("history", historyPath))
	}
	return checks
}

func checkReadableDir(name, dir string) Check {
	c := Check{Category: CategoryPermissions, Name: name}
	if _, err := os.ReadDir(dir); err != nil {
		// Hotplug watching is optional, so this never fails the run.
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("cannot list %s: %v", dir, err)
		return c
	}
	c.Status = StatusOK
	c.Detail = dir
	return c
}

// checkWritableParent walks up to the closest existing ancestor, since
// missing directories are created on first write.
func checkWritableParent(name, path string) Check {
	c := Check{Category: CategoryPermissions, Name: name}

	dir := filepath.Dir(path)
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				c.Status = StatusFail
				c.Detail = fmt.Sprintf("%s is not a directory", dir)
				return c
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			c.Status = StatusFail
			c.Detail = fmt.Sprintf("cannot stat %s: %v", dir, err)
			return c
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if err := unix.Access(dir, unix.W_OK); err != nil {
		c.Status = StatusFail
		c.Detail = fmt.Sprintf("%s is not writable", dir)
		return c
	}
	c.Status = StatusOK
	c.Detail = path
	return c
}
