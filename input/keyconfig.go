package input

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName resolves tcell key names case-insensitively ("Left", "Enter", "Ctrl-S")
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

type keymapFile struct {
	Keys map[string][]string `toml:"keys"`
}

// LoadKeyConfig parses a TOML keymap into a sparse override table
//
//	[keys]
//	jump = ["space", "Up"]
//	none = ["q"]
//
// Returns an error on unknown action or key names
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown section or key %q", undecoded[0].String())
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}
	for name, keys := range f.Keys {
		action, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", name)
		}
		for _, key := range keys {
			if err := kt.bind(key, action); err != nil {
				return nil, fmt.Errorf("keymap action %s: %w", name, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(key string, action Action) error {
	if r, ok := runeAliases[strings.ToLower(key)]; ok {
		kt.Runes[r] = action
		return nil
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		kt.Runes[r] = action
		return nil
	}
	if k, ok := keyByName[strings.ToLower(key)]; ok {
		kt.Keys[k] = action
		return nil
	}
	return fmt.Errorf("unknown key %q", key)
}

// LoadKeyTable returns the defaults overlaid with the keymap at path; an empty path means defaults
func LoadKeyTable(path string) (*KeyTable, error) {
	kt := DefaultKeyTable()
	if path == "" {
		return kt, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	kt.Merge(override)
	return kt, nil
}
