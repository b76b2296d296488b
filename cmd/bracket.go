package main

import (
	"encoding/json"
	"errors"
	"flooow/pkg/qf"
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

type bracketOutput struct {
	QF                  float64    `json:"qf"`
	RepresentativeValue int        `json:"representativeValue"`
	Bracket             qf.Bracket `json:"bracket"`
}

// bracketCommand constructs the 'bracket' subcommand that maps a QF to its
// bracket, or a representative value to its label, and prints the result.
func bracketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "Maps a quotient familial to its aid bracket",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("value") {
				value, _ := cmd.Flags().GetInt("value")
				_, err := fmt.Fprintln(out, qf.Label(value))

				return err //nolint: wrapcheck
			}

			value, _ := cmd.Flags().GetFloat64("qf")
			if !cmd.Flags().Changed("qf") {
				return errors.New("one of --qf or --value is required")
			}
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return errors.New("qf must be a finite number")
			}

			b := qf.BracketFor(value)
			res, err := json.MarshalIndent(bracketOutput{
				QF:                  value,
				RepresentativeValue: b.Value,
				Bracket:             b,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("could not encode bracket: %w", err)
			}
			_, err = fmt.Fprintln(out, string(res))

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().Float64("qf", 0, "Quotient familial to map")
	cmd.Flags().Int("value", 0, "Representative value to label")

	return cmd
}
