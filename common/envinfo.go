package common

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
)

// Variable names containing any of these fragments never leave the
// process, not even as names in diagnostic reports.
var secretMarkers = []string{"SECRET", "PASSWORD", "TOKEN", "KEY"}

type EnvironmentReport struct {
	Product          string
	Version          string
	Platform         string
	Runtime          string
	Cpus             int
	WorkingDirectory string
	Home             string
	VariableNames    []string
}

func Platform() string {
	return fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
}

func Confidential(name string) bool {
	upper := strings.ToUpper(name)
	for _, marker := range secretMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

func EnvironmentInfo() *EnvironmentReport {
	workdir, err := os.Getwd()
	if err != nil {
		workdir = "."
	}
	names := []string{}
	for _, entry := range os.Environ() {
		name, _, ok := strings.Cut(entry, "=")
		if !ok || Confidential(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return &EnvironmentReport{
		Product:          ProductName,
		Version:          Version,
		Platform:         Platform(),
		Runtime:          runtime.Version(),
		Cpus:             runtime.NumCPU(),
		WorkingDirectory: workdir,
		Home:             Home(),
		VariableNames:    names,
	}
}
