package main

import (
	"os"
	"testing"
	"time"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				Root:       ".",
				Manifest:   "btime.json",
				TimeFormat: "rfc3339",
			},
		},
		{
			name: "restore run configuration",
			envVars: map[string]string{
				"BEAVER_BTIME_ROOT":      "/restore/photos",
				"BEAVER_BTIME_MANIFEST":  "photos.json",
				"BEAVER_BTIME_FILTER":    "*.jpg",
				"BEAVER_BTIME_VERIFY":    "true",
				"BEAVER_BTIME_NO_FOLLOW": "true",
			},
			want: Config{
				Root:       "/restore/photos",
				Manifest:   "photos.json",
				TimeFormat: "rfc3339",
				Filter:     "*.jpg",
				Verify:     true,
				NoFollow:   true,
			},
		},
		{
			name: "strict debug run",
			envVars: map[string]string{
				"BEAVER_BTIME_TIME_FORMAT": "date",
				"BEAVER_BTIME_STRICT":      "true",
				"BEAVER_BTIME_DEBUG":       "true",
			},
			want: Config{
				Root:       ".",
				Manifest:   "btime.json",
				TimeFormat: "date",
				Strict:     true,
				Debug:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			cfg, err := getConfig()
			if err != nil {
				t.Fatalf("getConfig() error = %v", err)
			}

			if cfg.Root != tt.want.Root {
				t.Errorf("Root = %v, want %v", cfg.Root, tt.want.Root)
			}
			if cfg.Manifest != tt.want.Manifest {
				t.Errorf("Manifest = %v, want %v", cfg.Manifest, tt.want.Manifest)
			}
			if cfg.TimeFormat != tt.want.TimeFormat {
				t.Errorf("TimeFormat = %v, want %v", cfg.TimeFormat, tt.want.TimeFormat)
			}
			if cfg.Filter != tt.want.Filter {
				t.Errorf("Filter = %v, want %v", cfg.Filter, tt.want.Filter)
			}
			if cfg.Verify != tt.want.Verify {
				t.Errorf("Verify = %v, want %v", cfg.Verify, tt.want.Verify)
			}
			if cfg.NoFollow != tt.want.NoFollow {
				t.Errorf("NoFollow = %v, want %v", cfg.NoFollow, tt.want.NoFollow)
			}
			if cfg.Strict != tt.want.Strict {
				t.Errorf("Strict = %v, want %v", cfg.Strict, tt.want.Strict)
			}
			if cfg.Debug != tt.want.Debug {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.want.Debug)
			}
		})
	}
}

func TestTimeLayout(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "rfc3339 keyword", format: "rfc3339", want: time.RFC3339},
		{name: "empty defaults to rfc3339", format: "", want: time.RFC3339},
		{name: "date keyword", format: "date", want: time.DateOnly},
		{name: "literal layout", format: "2006-01-02 15:04:05", want: "2006-01-02 15:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{TimeFormat: tt.format}
			if got := cfg.timeLayout(); got != tt.want {
				t.Errorf("timeLayout() = %v, want %v", got, tt.want)
			}
		})
	}
}
