package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"jsgen/internal/astio"
)

// Input is one document to emit. Rel is the path used under the output
// directory: the file name for a file argument, the path below the
// directory for files found by walking one.
type Input struct {
	Path string
	Rel  string
}

// CollectInputs expands files and directories into documents, sorted by
// path and deduplicated. Directories contribute every file with a known
// document extension.
func CollectInputs(paths []string) ([]Input, error) {
	seen := make(map[string]struct{})
	var inputs []Input
	add := func(path, rel string) {
		clean := filepath.Clean(path)
		if _, dup := seen[clean]; dup {
			return
		}
		seen[clean] = struct{}{}
		inputs = append(inputs, Input{Path: clean, Rel: rel})
	}
	for _, arg := range paths {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if astio.FormatFromPath(arg) == astio.FormatUnknown {
				return nil, fmt.Errorf("%s: not a document (want .json, .mpk or .msgpack)", arg)
			}
			add(arg, filepath.Base(arg))
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || astio.FormatFromPath(path) == astio.FormatUnknown {
				return nil
			}
			rel, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}
			add(path, rel)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Path < inputs[j].Path })
	return inputs, nil
}

// OutputPath maps an input to its .js file: next to the input when outDir
// is empty, otherwise at Rel below outDir.
func OutputPath(in Input, outDir string) string {
	if outDir == "" {
		return trimExt(in.Path) + ".js"
	}
	return filepath.Join(outDir, trimExt(in.Rel)+".js")
}

func trimExt(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}
