// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"metaquot/internal/config"
	"metaquot/internal/errors"
	"metaquot/internal/expand"
	"metaquot/internal/parser"
)

func main() {
	// extra arguments are accepted and ignored so harness build drivers can
	// pass their own flag soup through unchanged
	if len(os.Args) < 2 {
		fmt.Println("Usage: metaquot <file.mq> [ignored...]")
		os.Exit(1)
	}

	commonlog.Configure(0, nil)
	log := commonlog.GetLogger("metaquot")

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	names, err := config.Find(filepath.Dir(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error[%s]: %v\n", errors.ErrorBadManifest, err)
		os.Exit(1)
	}
	log.Debugf("expanding %s", path)

	reporter := errors.NewErrorReporter(path, string(source))

	unit, parseErrors := parser.ParseUnit(path, string(source))
	for _, perr := range parseErrors {
		fmt.Fprint(os.Stderr, reporter.FormatError(perr))
	}

	hasErrors := len(parseErrors) > 0
	if unit != nil {
		expanded, expandErrors := expand.Unit(unit, names)
		for _, xerr := range expandErrors {
			fmt.Fprint(os.Stderr, reporter.FormatError(xerr))
			hasErrors = true
		}
		// nothing may be emitted from a failed expansion
		if !hasErrors {
			fmt.Println(expanded.String())
		}
	}

	duration := time.Since(startTime)
	if hasErrors {
		color.Red("Expansion failed after %s", formatDuration(duration))
		os.Exit(1)
	}
	log.Debugf("expanded %s in %s", path, formatDuration(duration))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
