package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Engine     *EngineConfig
	Battleship *BattleshipConfig
}

// Loader loads game configuration from YAML files using fs.FS interface.
// Files are read from the root of fsys; basePath only names them in errors.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadEngine loads engine.yaml
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	var cfg EngineConfig
	if err := l.decode("engine.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", l.path("engine.yaml"), err)
	}
	return &cfg, nil
}

// LoadBattleship loads battleship.yaml
func (l *Loader) LoadBattleship() (*BattleshipConfig, error) {
	var cfg BattleshipConfig
	if err := l.decode("battleship.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", l.path("battleship.yaml"), err)
	}
	return &cfg, nil
}

// LoadAll loads all configurations (engine, battleship)
func (l *Loader) LoadAll() (*GameConfig, error) {
	engine, err := l.LoadEngine()
	if err != nil {
		return nil, err
	}

	battleship, err := l.LoadBattleship()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Engine:     engine,
		Battleship: battleship,
	}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", l.path(name), err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", l.path(name), err)
	}
	return nil
}

// path is where name lives as the user knows it.
func (l *Loader) path(name string) string {
	return filepath.Join(l.basePath, name)
}
