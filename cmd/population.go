package cmd

import (
	"fmt"

	"github.com/sherine-k/onboarding/pkg/entity"
	"github.com/sherine-k/onboarding/pkg/generator"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPopulationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "population",
		Short: "Generate a seed population",
		Long: `Generate a population of uniquely named entities with their friends,
using the configured size, friend count and seed.

The output can be referenced from population.file in the configuration to
replay a run against the same people.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}
			if cfg.Population.File != "" {
				return fmt.Errorf("population.file is set; nothing to generate")
			}

			population, err := seedPopulation(cfg, generator.New(newRand(cfg.Seed)))
			if err != nil {
				return err
			}

			if out != "" {
				if err := entity.SavePopulation(out, population); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entities to %s (seed %d)\n", population.Len(), out, cfg.Seed)
				return nil
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(population); err != nil {
				return fmt.Errorf("failed to encode population: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write the population to this file instead of stdout")
	return cmd
}
