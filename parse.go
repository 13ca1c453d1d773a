package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

var errNoWords = errors.New("no words provided")

// LoadWordListsFile reads word lists from a YAML or JSON file. The format is
// picked by extension: .json goes through gjson, everything else is treated
// as YAML. Words are normalized before the engine sees them.
func LoadWordListsFile(path string) (WordLists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WordLists{}, fmt.Errorf("read %s: %w", path, err)
	}
	var lists WordLists
	if strings.EqualFold(filepath.Ext(path), ".json") {
		lists, err = parseWordListsJSON(data)
	} else {
		lists, err = parseWordListsYAML(data)
	}
	if err != nil {
		return WordLists{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return normalizeWordLists(lists)
}

func parseWordListsJSON(data []byte) (WordLists, error) {
	if !gjson.ValidBytes(data) {
		return WordLists{}, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	var lists WordLists
	for _, w := range root.Get("horizontal").Array() {
		lists.Horizontal = append(lists.Horizontal, w.String())
	}
	for _, w := range root.Get("vertical").Array() {
		lists.Vertical = append(lists.Vertical, w.String())
	}
	return lists, nil
}

func parseWordListsYAML(data []byte) (WordLists, error) {
	var lists WordLists
	if err := yaml.Unmarshal(data, &lists); err != nil {
		return WordLists{}, err
	}
	return lists, nil
}

// normalizeWordLists upper-cases and trims every word, drops empties, and
// rejects input with no words at all. The engine assumes normalized,
// non-degenerate input.
func normalizeWordLists(lists WordLists) (WordLists, error) {
	out := WordLists{
		Horizontal: normalizeWords(lists.Horizontal),
		Vertical:   normalizeWords(lists.Vertical),
	}
	if len(out.Horizontal) == 0 && len(out.Vertical) == 0 {
		return WordLists{}, errNoWords
	}
	return out, nil
}

func normalizeWords(words []string) []string {
	var out []string
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
