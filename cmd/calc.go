/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/saltwater/internal/chem"
	"github.com/sumwatshade/saltwater/internal/salinity"
)

var (
	errMissingInput = errors.New("missing input data: provide --input or --inputs-json")
)

var (
	calcJSON            bool
	calcComponents      bool
	calcInputPath       string
	calcInputsJSON      string
	calcAssumptionsJSON string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute salinity for a single analysis (JSON in, text or JSON out)",
	Long: `Computes salinity for one water analysis without the interactive UI.

Input is JSON: either an inline inputs object via --inputs-json (optionally
paired with --assumptions-json), or a document {"inputs": {...},
"assumptions": {...}} from a file or stdin via --input. Assumption fields
left out of the JSON fall back to the configured defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, assumptions, err := parseCalcInputs(cmd.InOrStdin())
		if err != nil {
			return err
		}
		return runCalc(cmd.OutOrStdout(), sample, assumptions)
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "emit JSON instead of text")
	calcCmd.Flags().BoolVar(&calcComponents, "components", false, "include per-species component tables")
	calcCmd.Flags().StringVar(&calcInputPath, "input", "", "JSON file with inputs and optional assumptions; '-' reads from stdin")
	calcCmd.Flags().StringVar(&calcInputsJSON, "inputs-json", "", "inline JSON for inputs (overrides --input)")
	calcCmd.Flags().StringVar(&calcAssumptionsJSON, "assumptions-json", "", "inline JSON for assumptions (supplements --inputs-json)")
}

// calcDocument is the on-the-wire input shape for --input.
type calcDocument struct {
	Inputs      chem.Sample      `json:"inputs"`
	Assumptions *json.RawMessage `json:"assumptions,omitempty"`
}

// parseCalcInputs resolves the sample and assumptions from flags and, if
// requested, stdin. Assumptions start from the configured defaults so JSON
// only needs the fields it wants to change.
func parseCalcInputs(stdin io.Reader) (chem.Sample, chem.Assumptions, error) {
	var sample chem.Sample
	assumptions := configAssumptions()

	switch {
	case calcInputsJSON != "":
		if err := json.Unmarshal([]byte(calcInputsJSON), &sample); err != nil {
			return sample, assumptions, fmt.Errorf("invalid JSON for --inputs-json: %w", err)
		}
		if calcAssumptionsJSON != "" {
			if err := json.Unmarshal([]byte(calcAssumptionsJSON), &assumptions); err != nil {
				return sample, assumptions, fmt.Errorf("invalid JSON for --assumptions-json: %w", err)
			}
		}
	case calcInputPath == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return sample, assumptions, fmt.Errorf("reading from stdin: %w", err)
		}
		return parseCalcDocument(data, assumptions)
	case calcInputPath != "":
		data, err := os.ReadFile(calcInputPath)
		if err != nil {
			return sample, assumptions, fmt.Errorf("reading file %q: %w", calcInputPath, err)
		}
		return parseCalcDocument(data, assumptions)
	default:
		return sample, assumptions, errMissingInput
	}
	return sample, assumptions, nil
}

func parseCalcDocument(data []byte, assumptions chem.Assumptions) (chem.Sample, chem.Assumptions, error) {
	var doc calcDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc.Inputs, assumptions, fmt.Errorf("invalid JSON in input document: %w", err)
	}
	if doc.Assumptions != nil {
		if err := json.Unmarshal(*doc.Assumptions, &assumptions); err != nil {
			return doc.Inputs, assumptions, fmt.Errorf("invalid JSON in input document assumptions: %w", err)
		}
	}
	return doc.Inputs, assumptions, nil
}

func runCalc(w io.Writer, sample chem.Sample, assumptions chem.Assumptions) error {
	if calcComponents {
		assumptions.ReturnComponents = true
	}

	if assumptions.ReturnComponents {
		det, err := salinity.CalculateDetailed(sample, assumptions)
		if err != nil {
			return err
		}
		return printCalcOutput(w, det.Result, det.Components)
	}

	res, err := salinity.Calculate(sample, assumptions)
	if err != nil {
		return err
	}
	return printCalcOutput(w, res, nil)
}

func printCalcOutput(w io.Writer, res salinity.Result, components []salinity.ComponentRow) error {
	if calcJSON {
		out := struct {
			salinity.Result
			Components []salinity.ComponentRow `json:"components,omitempty"`
		}{Result: res, Components: components}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("could not serialize output to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "SP: %.4f\n", res.SP)
	fmt.Fprintf(w, "SA: %.4f g/kg\n", res.SA)
	fmt.Fprintf(w, "Density: %.3f kg/m^3\n", res.Density)
	fmt.Fprintf(w, "SG 20/20: %.5f\n", res.SG2020)
	fmt.Fprintf(w, "SG 25/25: %.5f\n", res.SG2525)
	if !res.Converged {
		fmt.Fprintf(w, "warning: solver did not converge after %d iterations\n", res.Iterations)
	}
	if len(components) > 0 {
		fmt.Fprintf(w, "\n%-8s %12s %12s %12s\n", "Species", "mg/L", "mg/kg", "mg/kg@norm")
		for _, row := range components {
			fmt.Fprintf(w, "%-8s %12.3f %12.3f %12.3f\n",
				row.Species, row.MgPerL, row.MgPerKg, row.MgPerKgNorm)
		}
	}
	return nil
}
