package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jackpotiq/domain/game"
	"jackpotiq/internal/analysis"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jackpotiq-stats",
		Short: "Recompute lottery statistics from local draw files",
	}

	rootCmd.AddCommand(newCalcCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCalcCmd() *cobra.Command {
	var mmInput, pbInput, mmOutput, pbOutput string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate statistics for both games and write the report files",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := []struct {
				cfg    game.Config
				input  string
				output string
			}{
				{game.MegaMillionsConfig(), mmInput, mmOutput},
				{game.PowerballConfig(), pbInput, pbOutput},
			}

			for _, job := range jobs {
				draws, err := readDraws(job.input)
				if err != nil {
					return err
				}
				history := game.NewHistory(job.cfg, draws)
				fmt.Printf("%s: %d draws (%d quarantined)\n", job.cfg.Game, history.Len(), history.Dropped)

				r := analysis.Build(job.cfg, history)
				if err := analysis.Verify(r); err != nil {
					return fmt.Errorf("%s verification: %w", job.cfg.Game, err)
				}

				data, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(job.output, data, 0644); err != nil {
					return err
				}
				fmt.Printf("saved %s statistics to %s\n", job.cfg.Game, job.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mmInput, "mm-input", "data/mm.json", "Mega Millions draws file")
	cmd.Flags().StringVar(&pbInput, "pb-input", "data/pb.json", "Powerball draws file")
	cmd.Flags().StringVar(&mmOutput, "mm-output", "data/mm-stats.json", "Mega Millions statistics output")
	cmd.Flags().StringVar(&pbOutput, "pb-output", "data/pb-stats.json", "Powerball statistics output")
	return cmd
}

func readDraws(path string) ([]game.Draw, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draws []game.Draw
	if err := json.Unmarshal(data, &draws); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return draws, nil
}
