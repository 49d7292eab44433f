// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext returns the lower-case extension of path without the dot,
// e.g. "FILE.WAV" -> "wav".
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// CollectFiles enumerates the input files for a run. When inputPath is a
// single file it is returned as-is with its parent as the base directory;
// when it is a directory the tree is walked recursively and every file
// whose extension satisfies supported is collected, sorted by path. The
// base directory is what destination paths mirror against.
func CollectFiles(inputPath string, supported func(ext string) bool) (files []string, baseDir string, err error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w", err)
	}

	if !info.IsDir() {
		return []string{inputPath}, filepath.Dir(inputPath), nil
	}

	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if supported(Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("walking %s: %w", inputPath, err)
	}

	sort.Strings(files)
	return files, inputPath, nil
}

// OutputPath mirrors src's location relative to baseDir under outDir,
// with the extension replaced by .wav (the pipeline always encodes WAV).
func OutputPath(src, baseDir, outDir string) (string, error) {
	rel, err := filepath.Rel(baseDir, src)
	if err != nil {
		return "", fmt.Errorf("resolving %s against %s: %w", src, baseDir, err)
	}

	ext := filepath.Ext(rel)
	rel = rel[:len(rel)-len(ext)] + ".wav"

	return filepath.Join(outDir, rel), nil
}
