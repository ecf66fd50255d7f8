package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed cassettes
var cassettes embed.FS

// Cassette returns the raw JSON of the named recording, e.g.
// "internal_transfer/find".
func Cassette(name string) ([]byte, error) {
	file := path.Join("cassettes", strings.TrimSuffix(name, ".json")+".json")
	data, err := cassettes.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("fixtures: cassette %s: %w", name, err)
	}
	return data, nil
}

// Names lists every embedded cassette.
func Names() ([]string, error) {
	var names []string
	err := fs.WalkDir(cassettes, "cassettes", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".json") {
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(p, "cassettes/"), ".json"))
		}
		return nil
	})
	return names, err
}
