// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for the cooccur command line tool.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

type DataConfig struct {
	// RatingsPath is the feedback CSV consumed by dataset.LoadCSV.
	RatingsPath string `mapstructure:"ratings_path"`
}

type RecommendConfig struct {
	// TopN truncates the recommendation list, 0 means unlimited.
	TopN                  int  `mapstructure:"top_n"`
	NormalizeOnPopularity bool `mapstructure:"normalize_on_popularity"`
	SimilarTasteOnly      bool `mapstructure:"similar_taste_only"`
	Jobs                  int  `mapstructure:"jobs"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Recommend: RecommendConfig{
			TopN:                  10,
			NormalizeOnPopularity: true,
			SimilarTasteOnly:      true,
			Jobs:                  1,
		},
	}
}

// LoadConfig loads and validates the TOML configuration at path.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	defaults := GetDefaultConfig()
	v.SetDefault("recommend.top_n", defaults.Recommend.TopN)
	v.SetDefault("recommend.normalize_on_popularity", defaults.Recommend.NormalizeOnPopularity)
	v.SetDefault("recommend.similar_taste_only", defaults.Recommend.SimilarTasteOnly)
	v.SetDefault("recommend.jobs", defaults.Recommend.Jobs)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Trace(err)
	}
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

func (config *Config) Validate() error {
	if strings.TrimSpace(config.Data.RatingsPath) == "" {
		return errors.New("value of `data.ratings_path` in config must not be empty")
	}
	if config.Recommend.TopN < 0 {
		return errors.Errorf("value of `recommend.top_n` in config must not be negative, but the current value is %d",
			config.Recommend.TopN)
	}
	if config.Recommend.Jobs <= 0 {
		return errors.Errorf("value of `recommend.jobs` in config must be positive, but the current value is %d",
			config.Recommend.Jobs)
	}
	return nil
}
