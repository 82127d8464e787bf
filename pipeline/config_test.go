// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"errors"
	"testing"
)

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	mp3Cfg := Config{}.WithDefaults()

	if mp3Cfg.Format != FormatMP3 {
		t.Errorf("Format = %q, want mp3", mp3Cfg.Format)
	}
	if mp3Cfg.Naming != (Naming{Strategy: NamingDerived}) {
		t.Errorf("Naming = %+v, want derived", mp3Cfg.Naming)
	}
	if mp3Cfg.Parallelism != DefaultParallelism {
		t.Errorf("Parallelism = %d, want %d", mp3Cfg.Parallelism, DefaultParallelism)
	}
	if mp3Cfg.NewCodec == nil || mp3Cfg.Logger == nil {
		t.Error("NewCodec and Logger must be set")
	}

	wavCfg := Config{Format: FormatWAV}.WithDefaults()
	if wavCfg.Naming != (Naming{Strategy: NamingFixed, FixedName: "lingopolo.wav"}) {
		t.Errorf("Naming = %+v, want fixed lingopolo.wav", wavCfg.Naming)
	}

	// explicit values are kept
	custom := Config{
		Format:      FormatWAV,
		Naming:      Naming{Strategy: NamingDerived},
		Parallelism: 2,
	}.WithDefaults()

	if custom.Naming.Strategy != NamingDerived || custom.Parallelism != 2 {
		t.Errorf("WithDefaults() overwrote explicit values: %+v", custom)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"defaults", Config{}.WithDefaults(), nil},
		{"wav", Config{Format: FormatWAV}.WithDefaults(), nil},
		{"unknown format", Config{Format: "ogg", Naming: Naming{Strategy: NamingDerived}}, ErrUnknownOutputFormat},
		{"empty format", Config{Naming: Naming{Strategy: NamingDerived}}, ErrUnknownOutputFormat},
		{"bad naming", Config{Format: FormatMP3, Naming: Naming{Strategy: "x"}}, ErrInvalidConfig},
		{"negative parallelism", Config{Format: FormatMP3, Naming: Naming{Strategy: NamingFixed}, Parallelism: -1}, ErrInvalidConfig},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Validate() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}
