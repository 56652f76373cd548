package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/iburimskiy/cloth/internal/cloth"
)

// Settings is the runtime tuning of the simulation.
type Settings struct {
	Cloth cloth.Config
	Audio bool
}

func Defaults() Settings {
	return Settings{Cloth: cloth.DefaultConfig(), Audio: true}
}

// Load reads the optional env file at path, then the process environment,
// and applies any CLOTH_* keys on top of the defaults. Process variables win
// over the file. A missing file is not an error.
func Load(path string) (Settings, error) {
	file := map[string]string{}
	if path != "" {
		m, err := godotenv.Read(path)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Settings{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	s := Defaults()
	c := &s.Cloth
	for _, f := range []struct {
		key string
		dst any
	}{
		{"CLOTH_ROWS", &c.Rows},
		{"CLOTH_COLS", &c.Cols},
		{"CLOTH_SPACING", &c.Spacing},
		{"CLOTH_GRAVITY", &c.Gravity},
		{"CLOTH_DAMPING", &c.Damping},
		{"CLOTH_SPEED", &c.Speed},
		{"CLOTH_ITERATIONS", &c.Iterations},
		{"CLOTH_STRENGTH", &c.Strength},
		{"CLOTH_BREAK_RATIO", &c.BreakRatio},
		{"CLOTH_AUDIO", &s.Audio},
	} {
		raw, ok := lookup(f.key)
		if !ok || raw == "" {
			continue
		}
		if err := parseInto(f.dst, raw); err != nil {
			return Settings{}, fmt.Errorf("%s=%q: %w", f.key, raw, err)
		}
	}

	if err := s.Cloth.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func parseInto(dst any, raw string) error {
	switch d := dst.(type) {
	case *int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*d = v
	case *float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*d = v
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*d = v
	default:
		return fmt.Errorf("unsupported setting type %T", dst)
	}
	return nil
}
