// Package config resolves the layout of the project sniperctl drives:
// which toolchain to call, where artifacts land, and which env file the
// launched binary reads.
package config

import (
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/sniperctl/internal/core"
)

// Layout defaults for the sol-sniper crate.
const (
	DefaultToolchain   = "cargo"
	DefaultBinaryName  = "sol-sniper"
	DefaultTargetDir   = "target"
	DefaultEnvFile     = ".env"
	DefaultEnvTemplate = ".env.example"
	DefaultLogEnvVar   = "RUST_LOG"
)

// Environment overrides for the layout defaults.
const (
	EnvToolchain = "SNIPERCTL_TOOLCHAIN"
	EnvBinary    = "SNIPERCTL_BINARY"
)

// Env reads environment variables.
type Env interface {
	Get(key string) string
}

// Project is the resolved project layout. Relative paths are resolved
// against Root.
type Project struct {
	Root        string
	Toolchain   string
	BinaryName  string
	TargetDir   string
	EnvFile     string
	EnvTemplate string
	LogEnvVar   string
}

// Default returns the default layout rooted at root.
func Default(root string) Project {
	return Project{
		Root:        root,
		Toolchain:   DefaultToolchain,
		BinaryName:  DefaultBinaryName,
		TargetDir:   DefaultTargetDir,
		EnvFile:     DefaultEnvFile,
		EnvTemplate: DefaultEnvTemplate,
		LogEnvVar:   DefaultLogEnvVar,
	}
}

// Resolve returns the default layout with SNIPERCTL_* overrides applied.
// Blank overrides are ignored.
func Resolve(root string, env Env) Project {
	p := Default(root)
	if v := strings.TrimSpace(env.Get(EnvToolchain)); v != "" {
		p.Toolchain = v
	}
	if v := strings.TrimSpace(env.Get(EnvBinary)); v != "" {
		p.BinaryName = v
	}
	return p
}

// ArtifactPath returns the absolute path of the binary built for profile.
func (p Project) ArtifactPath(profile core.Profile) string {
	return p.abs(filepath.Join(p.TargetDir, profile.String(), p.BinaryName))
}

// EnvFilePath returns the absolute path of the env file the binary reads.
func (p Project) EnvFilePath() string {
	return p.abs(p.EnvFile)
}

// TemplatePath returns the absolute path of the env file template.
func (p Project) TemplatePath() string {
	return p.abs(p.EnvTemplate)
}

func (p Project) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Root, path)
}
