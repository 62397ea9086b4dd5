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

package main

import (
	"fmt"
	"strings"

	"github.com/gorse-io/cooccur/base/log"
	"github.com/gorse-io/cooccur/cf"
	"github.com/gorse-io/cooccur/cmd/version"
	"github.com/gorse-io/cooccur/config"
	"github.com/gorse-io/cooccur/dataset"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cooccurCommand = &cobra.Command{
	Use:   "cooccur",
	Short: "Item co-occurrence collaborative filtering.",
	Run: func(cmd *cobra.Command, args []string) {
		// Show version
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}

		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)

		// load config
		conf := config.GetDefaultConfig()
		if cmd.PersistentFlags().Changed("config") {
			configPath, _ := cmd.PersistentFlags().GetString("config")
			var err error
			conf, err = config.LoadConfig(configPath)
			if err != nil {
				log.Logger().Fatal("failed to load config", zap.String("path", configPath), zap.Error(err))
			}
		}
		// command line flags override the config file
		if cmd.PersistentFlags().Changed("ratings") {
			conf.Data.RatingsPath, _ = cmd.PersistentFlags().GetString("ratings")
		}
		if cmd.PersistentFlags().Changed("top-n") {
			conf.Recommend.TopN, _ = cmd.PersistentFlags().GetInt("top-n")
		}
		if cmd.PersistentFlags().Changed("jobs") {
			conf.Recommend.Jobs, _ = cmd.PersistentFlags().GetInt("jobs")
		}
		if rawCounts, _ := cmd.PersistentFlags().GetBool("raw-counts"); rawCounts {
			conf.Recommend.NormalizeOnPopularity = false
		}
		if includeCold, _ := cmd.PersistentFlags().GetBool("include-cold"); includeCold {
			conf.Recommend.SimilarTasteOnly = false
		}
		userId, _ := cmd.PersistentFlags().GetString("user")
		if userId == "" {
			log.Logger().Fatal("user id is required")
		}
		if conf.Data.RatingsPath == "" {
			log.Logger().Fatal("ratings path is required")
		}

		// load feedback
		feedback, err := dataset.LoadCSV(conf.Data.RatingsPath)
		if err != nil {
			log.Logger().Fatal("failed to load feedback",
				zap.String("path", conf.Data.RatingsPath), zap.Error(err))
		}
		userIndex, ok := feedback.UserIndex(userId)
		if !ok {
			log.Logger().Fatal("unknown user id", zap.String("user_id", userId))
		}
		ratings := feedback.Matrix()

		// build co-occurrence matrix and rank
		builder := cf.NewCoMatrixBuilder()
		builder.NormalizeOnPopularity = conf.Recommend.NormalizeOnPopularity
		builder.Jobs = conf.Recommend.Jobs
		coMatrix, err := builder.Build(ratings)
		if err != nil {
			log.Logger().Fatal("failed to build co-occurrence matrix", zap.Error(err))
		}
		recommendations, err := cf.Recommendations(ratings, coMatrix, userIndex, conf.Recommend.SimilarTasteOnly)
		if err != nil {
			log.Logger().Fatal("failed to rank recommendations", zap.Error(err))
		}
		if conf.Recommend.TopN > 0 && len(recommendations) > conf.Recommend.TopN {
			recommendations = recommendations[:conf.Recommend.TopN]
		}

		// print item ids, best first
		itemIds := lo.Map(recommendations, func(itemIndex int, _ int) string {
			itemId, _ := feedback.ItemId(itemIndex)
			return itemId
		})
		fmt.Println(strings.Join(itemIds, "\n"))
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Check the version of cooccur",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.BuildInfo())
	},
}

func init() {
	cooccurCommand.AddCommand(versionCommand)
	cooccurCommand.PersistentFlags().BoolP("version", "v", false, "cooccur version")
	cooccurCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	cooccurCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	cooccurCommand.PersistentFlags().String("ratings", "", "feedback CSV path (userId,itemId per line)")
	cooccurCommand.PersistentFlags().StringP("user", "u", "", "user id to recommend items for")
	cooccurCommand.PersistentFlags().IntP("top-n", "n", 0, "truncate the recommendation list, 0 means unlimited")
	cooccurCommand.PersistentFlags().IntP("jobs", "j", 0, "number of workers building the co-occurrence matrix")
	cooccurCommand.PersistentFlags().Bool("raw-counts", false, "disable popularity normalization")
	cooccurCommand.PersistentFlags().Bool("include-cold", false, "keep items with zero similarity in the output")
	log.AddFlags(cooccurCommand.PersistentFlags())
}

func main() {
	if err := cooccurCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
