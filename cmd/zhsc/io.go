package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// newLogger builds a SugaredLogger for -v/--verbose stage diagnostics.
// The compiler pipeline itself stays logging-free (it is pure per
// spec.md §5); this is strictly a CLI-layer concern.
func newLogger() *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func readSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(content), nil
}

func writeOutput(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return nil
}

// outputPathFor derives a ".sol" sibling of the input path's ".zhs"
// extension, matching original_source/cli.py's compile() command.
func outputPathFor(inputPath string) string {
	ext := strings.TrimSuffix(inputPath, ".zhs")
	if ext == inputPath {
		if idx := strings.LastIndex(inputPath, "."); idx >= 0 {
			return inputPath[:idx] + ".sol"
		}
		return inputPath + ".sol"
	}
	return ext + ".sol"
}
