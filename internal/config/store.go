package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"
)

// FileName is the settings file kept next to the executable.
const FileName = "config.ini"

// Store holds the program configuration loaded from a single INI file.
// Values are opaque literal strings: no interpolation or expansion is
// applied, so the prompt template's {today_date} placeholder survives
// load/save round trips byte-identically.
type Store struct {
	path      string
	file      *ini.File
	overrides map[string]string
}

var loadOptions = ini.LoadOptions{
	AllowPythonMultilineValues: true,
	// Values are opaque literals: a stored value that happens to be wrapped
	// in quotes must reload with its quotes intact.
	PreserveSurroundedQuote: true,
}

// Load reads the store at path. A missing file is not an error: every Get
// resolves to its fallback until the first successful Set creates the file.
func Load(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Config file unreadable, using defaults")
		}
		s.file = ini.Empty(loadOptions)
		return s
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Config file unparsable, using defaults")
		s.file = ini.Empty(loadOptions)
		return s
	}

	s.file = file
	return s
}

// LoadDir is shorthand for Load on the well-known file name inside dir.
func LoadDir(dir string) *Store {
	return Load(filepath.Join(dir, FileName))
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Override shadows section/key with a session-scoped value, typically from
// the environment. Overrides win over file contents for Get but are never
// written back to disk.
func (s *Store) Override(section, key, value string) {
	if s.overrides == nil {
		s.overrides = make(map[string]string)
	}
	s.overrides[section+"."+key] = value
}

// Get returns the value stored under section/key, or fallback when the
// section or key does not exist. The raw value is returned untouched.
func (s *Store) Get(section, key, fallback string) string {
	if v, ok := s.overrides[section+"."+key]; ok {
		return v
	}
	sec := s.file.Section(section)
	if !sec.HasKey(key) {
		return fallback
	}
	return sec.Key(key).Value()
}

// Set stores value under section/key and persists the whole file,
// overwriting the previous contents. The section is created if absent.
// Returns false on write failure; the in-memory value is still updated so
// the running session stays consistent with what the user entered.
func (s *Store) Set(section, key, value string) bool {
	s.file.Section(section).Key(key).SetValue(value)

	if err := s.file.SaveTo(s.path); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("Failed to write config file")
		return false
	}
	return true
}
