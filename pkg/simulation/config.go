package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	golog "github.com/tochemey/goakt/v3/log"
	"gopkg.in/yaml.v3"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
)

// SettingsKey names the persisted settings, the store saves them as <dir>/SettingsKey.json.
const SettingsKey = "go-boids.settings"

// MaxBoids is the largest population settings.schema.json accepts.
const MaxBoids = 10000

// ErrInvalidSettings is wrapped by every error caused by settings breaking the schema.
var ErrInvalidSettings = errors.New("invalid settings")

//go:embed settings.schema.json
var settingsSchema string

var compileSettingsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("settings.schema.json", settingsSchema)
})

// validateDocument checks a decoded JSON document against the settings schema.
func validateDocument(doc any) error {
	sch, err := compileSettingsSchema()
	if err != nil {
		return fmt.Errorf("failed to compile settings schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// ValidateSettings checks s against the settings schema.
func ValidateSettings(s behavior.Settings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("failed to decode settings json: %w", err)
	}
	return validateDocument(doc)
}

// decodeSettingsJSON validates then decodes b. Missing fields keep their default value.
func decodeSettingsJSON(b []byte) (behavior.Settings, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return behavior.Settings{}, fmt.Errorf("failed to decode settings json: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return behavior.Settings{}, err
	}

	s := behavior.DefaultSettings()
	if err := json.Unmarshal(b, &s); err != nil {
		return behavior.Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return s, nil
}

func decodeSettingsYAML(b []byte) (behavior.Settings, error) {
	s := behavior.DefaultSettings()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return behavior.Settings{}, fmt.Errorf("%w: failed to decode settings yaml: %w", ErrInvalidSettings, err)
	}
	if err := ValidateSettings(s); err != nil {
		return behavior.Settings{}, err
	}
	return s, nil
}

// LoadSettingsFile loads settings from a .json, .yaml or .yml file and validates them.
// Fields absent from the file keep their default value.
func LoadSettingsFile(path string) (behavior.Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return behavior.Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return decodeSettingsJSON(b)
	case ".yaml", ".yml":
		return decodeSettingsYAML(b)
	default:
		return behavior.Settings{}, fmt.Errorf("unsupported settings file extension %q", ext)
	}
}

// SettingsStore persists the settings between runs, like the browser local storage of a web page.
type SettingsStore struct {
	dir    string
	logger golog.Logger
}

// NewSettingsStore returns a store keeping its file in dir.
func NewSettingsStore(dir string, logger golog.Logger) *SettingsStore {
	return &SettingsStore{dir: dir, logger: logger}
}

// DefaultSettingsDir is the per-user configuration directory, or the working directory
// when the platform has none.
func DefaultSettingsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "go-boids")
}

func (st *SettingsStore) Path() string {
	return filepath.Join(st.dir, SettingsKey+".json")
}

// Load returns the stored settings. It never fails: a missing, unreadable or invalid
// file gives the default settings.
func (st *SettingsStore) Load() behavior.Settings {
	b, err := os.ReadFile(st.Path())
	if errors.Is(err, fs.ErrNotExist) {
		st.logger.Debugf("no stored settings in %s, using defaults", st.Path())
		return behavior.DefaultSettings()
	}
	if err != nil {
		st.logger.Warnf("failed to read stored settings, using defaults: %v", err)
		return behavior.DefaultSettings()
	}

	s, err := decodeSettingsJSON(b)
	if err != nil {
		st.logger.Warnf("ignoring stored settings %s: %v", st.Path(), err)
		return behavior.DefaultSettings()
	}
	return s
}

// Store saves s, creating the directory when needed.
func (st *SettingsStore) Store(s behavior.Settings) error {
	if err := ValidateSettings(s); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(st.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(st.Path(), b, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Remove deletes the stored settings. Removing absent settings is not an error.
func (st *SettingsStore) Remove() error {
	if err := os.Remove(st.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove settings: %w", err)
	}
	return nil
}
