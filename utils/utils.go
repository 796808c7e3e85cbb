// Helpers shared by the table-driven and golden tests.
package utils

import (
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// TestData is one entry of testdata/testcase.yaml.
// Expected is keyed by stage: "parser" holds the tree, "eval" the formatted
// result and "error" the failing stage ("lex", "parse" or "eval").
type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// FindSourceFiles returns the *.calc files in dir, sorted by name.
func FindSourceFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.calc"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	return files, nil
}
