package sysinfo

import (
	"os"
	"os/user"
	"runtime"
)

// Info holds host details shown in the startup banner
type Info struct {
	OS         string
	Arch       string
	GoVersion  string
	WorkingDir string
	User       string
}

// Collect gathers host information. Fields that cannot be determined
// fall back to "unknown" rather than failing the run.
func Collect() Info {
	info := Info{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		GoVersion:  runtime.Version(),
		WorkingDir: "unknown",
		User:       "unknown",
	}

	if wd, err := os.Getwd(); err == nil {
		info.WorkingDir = wd
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		info.User = u.Username
	} else if name := os.Getenv("USER"); name != "" {
		info.User = name
	}

	return info
}
