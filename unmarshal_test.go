// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type logLevel string

func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(strings.ToLower(string(text)))
	return nil
}

func environOf(pairs ...string) func() []string {
	return func() []string {
		return pairs
	}
}

func TestUnmarshal(t *testing.T) {
	t.Run("decodes scalar fields", func(t *testing.T) {
		var cfg struct {
			Name    string        `env:"APP_NAME"`
			Port    int           `env:"APP_PORT"`
			Ratio   float64       `env:"APP_RATIO"`
			Debug   bool          `env:"APP_DEBUG"`
			Timeout time.Duration `env:"APP_TIMEOUT"`
		}

		err := Unmarshal(&cfg, Environ(environOf(
			"APP_NAME=envconv",
			"APP_PORT=8080",
			"APP_RATIO=0.25",
			"APP_DEBUG=t",
			"APP_TIMEOUT=1m30s",
		)))
		require.NoError(t, err)
		require.Equal(t, "envconv", cfg.Name)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, 0.25, cfg.Ratio)
		require.True(t, cfg.Debug)
		require.Equal(t, 90*time.Second, cfg.Timeout)
	})

	t.Run("leaves fields untouched when their variable is unset", func(t *testing.T) {
		cfg := struct {
			Port int `env:"APP_PORT"`
		}{
			Port: 9090,
		}

		err := Unmarshal(&cfg, Environ(environOf("OTHER=1")))
		require.NoError(t, err)
		require.Equal(t, 9090, cfg.Port)
	})

	t.Run("decodes collection fields", func(t *testing.T) {
		var cfg struct {
			Hosts  []string          `env:"APP_HOSTS"`
			Labels map[string]string `env:"APP_LABELS"`
		}

		err := Unmarshal(&cfg, Environ(environOf(
			"APP_HOSTS=[host1, host2, host3]",
			`APP_LABELS={"env": prod, "team": core}`,
		)))
		require.NoError(t, err)
		require.Equal(t, []string{"host1", "host2", "host3"}, cfg.Hosts)
		require.Equal(t, map[string]string{"env": "prod", "team": "core"}, cfg.Labels)
	})

	t.Run("decodes time fields using the candidate layouts", func(t *testing.T) {
		var cfg struct {
			Since time.Time `env:"APP_SINCE"`
		}

		err := Unmarshal(&cfg, Environ(environOf("APP_SINCE=2024-03-01 13:05:07")))
		require.NoError(t, err)
		require.True(t, time.Date(2024, time.March, 1, 13, 5, 7, 0, time.UTC).Equal(cfg.Since))
	})

	t.Run("uses the candidate layouts for time fields even though time.Time is a TextUnmarshaler", func(t *testing.T) {
		var cfg struct {
			Since time.Time `env:"APP_SINCE"`
			Level logLevel  `env:"APP_LEVEL"`
		}

		err := Unmarshal(&cfg, Environ(environOf(
			"APP_SINCE=2024-03-01 13:05:07",
			"APP_LEVEL=DEBUG",
		)))
		require.NoError(t, err)
		require.True(t, time.Date(2024, time.March, 1, 13, 5, 7, 0, time.UTC).Equal(cfg.Since))
		require.Equal(t, logLevel("debug"), cfg.Level)
	})

	t.Run("honors an explicit datetime layout", func(t *testing.T) {
		var cfg struct {
			Since time.Time `env:"APP_SINCE"`
		}

		err := Unmarshal(
			&cfg,
			Environ(environOf("APP_SINCE=01/03/2024")),
			UnmarshalDateTimeLayout("02/01/2006"),
		)
		require.NoError(t, err)
		require.True(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).Equal(cfg.Since))
	})

	t.Run("honors overridden boolean token sets", func(t *testing.T) {
		var cfg struct {
			Enabled bool `env:"APP_ENABLED"`
		}

		err := Unmarshal(
			&cfg,
			Environ(environOf("APP_ENABLED=yes")),
			UnmarshalBoolValues([]string{"yes"}, []string{"no"}),
		)
		require.NoError(t, err)
		require.True(t, cfg.Enabled)
	})

	t.Run("reports coercion failures", func(t *testing.T) {
		var cfg struct {
			Debug bool `env:"APP_DEBUG"`
		}

		err := Unmarshal(&cfg, Environ(environOf("APP_DEBUG=definitely")))
		require.Error(t, err)
		require.Contains(t, err.Error(), `"definitely"`)
	})

	t.Run("reports malformed map pairing", func(t *testing.T) {
		var cfg struct {
			Labels map[string]string `env:"APP_LABELS"`
		}

		err := Unmarshal(&cfg, Environ(environOf(`APP_LABELS="a":1, "b": 2`)))
		require.Error(t, err)
	})

	t.Run("skips malformed environ entries", func(t *testing.T) {
		var cfg struct {
			Name string `env:"APP_NAME"`
		}

		err := Unmarshal(&cfg, Environ(environOf("garbage", "APP_NAME=ok")))
		require.NoError(t, err)
		require.Equal(t, "ok", cfg.Name)
	})
}
