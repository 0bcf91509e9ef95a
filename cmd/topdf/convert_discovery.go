package main

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/starsunsurpass/topdf"
)

// discoverInputs resolves positional arguments into the files to convert
// and the directories to watch. Files named directly are taken as given,
// so an unsupported one still shows up as a failed entry; directories are
// walked and contribute only recognized kinds.
func discoverInputs(args []string) ([]string, []string, error) {
	var files, dirs []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		dirs = append(dirs, arg)
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if topdf.DetectKind(path) == topdf.KindUnknown {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}

	return files, dirs, nil
}
