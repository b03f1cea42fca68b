// Package envfile checks for the .env file the launched binary reads its
// settings from, and materializes it from the checked-in template when it is
// missing.
//
// The check is existence-only: a present file passes even if it still holds
// the unedited template values. A missing file always fails the run that
// creates it, so the user gets a chance to fill it in.
package envfile

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/NielsdaWheelz/sniperctl/internal/config"
	"github.com/NielsdaWheelz/sniperctl/internal/core"
	"github.com/NielsdaWheelz/sniperctl/internal/errors"
	"github.com/NielsdaWheelz/sniperctl/internal/fs"
)

// Exists reports whether the env file is present. It has no side effects.
func Exists(fsys fs.FS, path string) (bool, error) {
	return fs.Exists(fsys, path)
}

// MaterializeTemplate copies template to target.
func MaterializeTemplate(fsys fs.FS, template, target string) error {
	if err := fs.CopyFile(fsys, template, target); err != nil {
		return fmt.Errorf("copy %s to %s: %w", filepath.Base(template), filepath.Base(target), err)
	}
	return nil
}

// Entries parses the env file and returns its key/value pairs.
func Entries(fsys fs.FS, path string) (map[string]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return godotenv.Parse(bytes.NewReader(data))
}

// CheckConfig is the composed configuration check: pass if the env file
// exists, otherwise copy the template into place (best-effort) and fail.
func CheckConfig(fsys fs.FS, project config.Project, log logrus.FieldLogger) core.StageResult {
	target := project.EnvFilePath()
	template := project.TemplatePath()
	details := map[string]string{
		"op":     "check-config",
		"config": target,
	}

	present, err := Exists(fsys, target)
	if err != nil {
		return core.Fail(errors.EConfigMissing, 1,
			fmt.Sprintf("cannot check %s: %v", project.EnvFile, err), details)
	}

	if present {
		entries, err := Entries(fsys, target)
		if err != nil {
			log.WithError(err).WithField("config", target).Warn("env file could not be parsed")
			return core.Pass(project.EnvFile + " found")
		}
		return core.Pass(fmt.Sprintf("%s found (%d entries)", project.EnvFile, len(entries)))
	}

	msg := fmt.Sprintf("%s not found; created it from %s", project.EnvFile, project.EnvTemplate)
	details["hint"] = fmt.Sprintf("edit %s with your settings, then rerun", project.EnvFile)
	if err := MaterializeTemplate(fsys, template, target); err != nil {
		log.WithError(err).Warn("template copy failed")
		msg = fmt.Sprintf("%s not found; template copy failed: %v", project.EnvFile, err)
		details["hint"] = fmt.Sprintf("create %s with your settings, then rerun", project.EnvFile)
	}
	return core.Fail(errors.EConfigMissing, 1, msg, details)
}
