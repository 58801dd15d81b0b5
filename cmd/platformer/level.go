package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// fallbackLevelName is the score key for runs on the built-in level.
const fallbackLevelName = "fallback"

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "platformer",
	})
}

// loadTuning resolves the simulation config from the --config flag.
func loadTuning(logger *log.Logger) sim.Config {
	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		logger.Error("cannot load tuning", "error", err)
		os.Exit(1)
	}
	return tuning.ToSim()
}

// resolveLevel loads and validates a level. A missing or malformed level is
// substituted with the built-in fallback; the substitution is logged, never
// fatal. The returned name keys score persistence.
func resolveLevel(logger *log.Logger, levelFlag string, cfg sim.Config) (name, contents string) {
	if levelFlag == "" {
		return fallbackLevelName, world.FallbackLevel
	}

	contents, path, err := readLevelFile(levelFlag)
	if err != nil {
		logger.Warn("level file not found, using built-in level",
			"level", levelFlag, "error", err)
		return fallbackLevelName, world.FallbackLevel
	}

	if _, err := world.FromASCII(contents, cfg.TileSize, cfg.MushroomSize); err != nil {
		logger.Warn("level file is malformed, using built-in level",
			"level", path, "error", err)
		return fallbackLevelName, world.FallbackLevel
	}

	return levelName(path), contents
}

// readLevelFile tries the flag as a path, then as a name under --assets-dir.
func readLevelFile(levelFlag string) (contents, path string, err error) {
	data, err := os.ReadFile(levelFlag)
	if err == nil {
		return string(data), levelFlag, nil
	}

	alt := filepath.Join(flagAssetsDir, levelFlag)
	if filepath.Ext(alt) == "" {
		alt += ".txt"
	}
	data, altErr := os.ReadFile(alt)
	if altErr == nil {
		return string(data), alt, nil
	}

	return "", "", err
}

// levelName derives the score key from a level path: the base name without
// its extension.
func levelName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// buildGame parses the level and constructs a fresh game state.
func buildGame(logger *log.Logger, contents string, cfg sim.Config) *sim.GameState {
	w, err := world.FromASCII(contents, cfg.TileSize, cfg.MushroomSize)
	if err != nil {
		// resolveLevel validated the contents already.
		logger.Error("cannot parse level", "error", err)
		os.Exit(1)
	}
	return sim.NewGame(w, cfg)
}
