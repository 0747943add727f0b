// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative author", func(c *Config) { c.Weights.Author = -1 }, "weights.author"},
		{"negative source", func(c *Config) { c.Weights.Source = -1 }, "weights.source"},
		{"negative recency", func(c *Config) { c.Weights.Recency = -1 }, "weights.recency"},
		{"zero top n", func(c *Config) { c.DefaultTopN = 0 }, "default_top_n"},
		{"max below default", func(c *Config) { c.MaxTopN = 1 }, "max_top_n"},
		{"negative max articles", func(c *Config) { c.MaxArticles = -1 }, "max_articles"},
		{"unknown exclusion", func(c *Config) { c.Exclusion = "first" }, "exclusion"},
		{"positional exclusion", func(c *Config) { c.Exclusion = ExcludePositional }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Weights.Author = 0.5
	if cfg.Weights.Author != 0.10 {
		t.Errorf("Clone shares state: Author = %v", cfg.Weights.Author)
	}
}
