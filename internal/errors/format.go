// Package errors provides error formatting for sniperctl CLI output.
package errors

import (
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose prints every detail key, not just the whitelisted ones.
	Verbose bool
}

// Context key whitelist (default mode, in order)
var defaultContextKeys = []string{
	"op",
	"command",
	"profile",
	"toolchain",
	"artifact",
	"config",
	"exit_code",
}

const (
	maxValueLen      = 256 // Max chars for single-line context values
	maxExtraValueLen = 128 // Max chars for extra section values
)

// Format formats an error for display without I/O.
//
//	error_code: <CODE>
//	<message>
//
//	key: value
//	...
//
//	hint: <hint>
//	try: <command>
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	ce, ok := AsCtlError(err)
	if !ok {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(ce.Code))
	sb.WriteString("\n")
	sb.WriteString(ce.Msg)
	sb.WriteString("\n")

	printed := make(map[string]bool)
	var contextLines []string
	for _, key := range defaultContextKeys {
		val, ok := ce.Details[key]
		if !ok || val == "" {
			continue
		}
		printed[key] = true
		contextLines = append(contextLines, key+": "+sanitizeValue(val, maxValueLen))
	}
	if len(contextLines) > 0 {
		sb.WriteString("\n")
		for _, line := range contextLines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	if opts.Verbose {
		var extraKeys []string
		for key, val := range ce.Details {
			if !printed[key] && key != "hint" && val != "" {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(ce.Details[key], maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	if hint := ce.Details["hint"]; hint != "" {
		sb.WriteString("\nhint: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}

	for _, try := range deriveTryLines(ce) {
		sb.WriteString("try: ")
		sb.WriteString(try)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Print writes the error to w in the default format.
func Print(w io.Writer, err error) {
	PrintWithOptions(w, err, PrintOptions{})
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, opts))
}

// sanitizeValue flattens a value onto one line and truncates it to maxLen.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")
	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(ce *CtlError) []string {
	switch ce.Code {
	case EArtifactMissing:
		return []string{"sniperctl build-release"}
	case EConfigMissing:
		return []string{"sniperctl check"}
	case EUsage:
		return []string{"sniperctl help"}
	}
	return nil
}
