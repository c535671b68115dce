/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sumwatshade/saltwater/internal/chem"
	"github.com/sumwatshade/saltwater/internal/salinity"
)

func resetCalcFlags() {
	calcJSON = false
	calcComponents = false
	calcInputPath = ""
	calcInputsJSON = ""
	calcAssumptionsJSON = ""
}

func TestParseCalcDocument(t *testing.T) {
	doc := []byte(`{
		"inputs": {"na": 10780, "mg": 1290, "ca": 420, "alk_dkh": 8.0},
		"assumptions": {"temp": 25, "salinity_norm": 36}
	}`)

	sample, assumptions, err := parseCalcDocument(doc, chem.DefaultAssumptions())
	if err != nil {
		t.Fatalf("parseCalcDocument: %v", err)
	}
	if sample.Na != 10780 || sample.Mg != 1290 || sample.Ca != 420 {
		t.Errorf("sample = %+v, want na=10780 mg=1290 ca=420", sample)
	}
	if sample.AlkDKH == nil || *sample.AlkDKH != 8.0 {
		t.Errorf("sample alk_dkh = %v, want 8.0", sample.AlkDKH)
	}
	if assumptions.Temperature != 25 {
		t.Errorf("temperature = %v, want 25 from document", assumptions.Temperature)
	}
	if assumptions.SalinityNorm != 36 {
		t.Errorf("salinity_norm = %v, want 36 from document", assumptions.SalinityNorm)
	}
	// Fields absent from the document keep their defaults.
	if assumptions.PressureDbar != 0 {
		t.Errorf("pressure = %v, want default 0", assumptions.PressureDbar)
	}
}

func TestParseCalcDocumentWithoutAssumptions(t *testing.T) {
	sample, assumptions, err := parseCalcDocument(
		[]byte(`{"inputs": {"na": 9000}}`), chem.DefaultAssumptions())
	if err != nil {
		t.Fatalf("parseCalcDocument: %v", err)
	}
	if sample.Na != 9000 {
		t.Errorf("na = %v, want 9000", sample.Na)
	}
	if assumptions.Temperature != 20 {
		t.Errorf("temperature = %v, want default 20", assumptions.Temperature)
	}
}

func TestParseCalcDocumentInvalidJSON(t *testing.T) {
	_, _, err := parseCalcDocument([]byte(`{"inputs": `), chem.DefaultAssumptions())
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestParseCalcInputsRequiresInput(t *testing.T) {
	resetCalcFlags()
	_, _, err := parseCalcInputs(strings.NewReader(""))
	if err != errMissingInput {
		t.Fatalf("err = %v, want errMissingInput", err)
	}
}

func TestParseCalcInputsInlineJSON(t *testing.T) {
	resetCalcFlags()
	calcInputsJSON = `{"na": 10780, "cl": 19400}`
	calcAssumptionsJSON = `{"temp": 18}`
	defer resetCalcFlags()

	sample, assumptions, err := parseCalcInputs(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parseCalcInputs: %v", err)
	}
	if sample.Cl == nil || *sample.Cl != 19400 {
		t.Errorf("cl = %v, want 19400", sample.Cl)
	}
	if assumptions.Temperature != 18 {
		t.Errorf("temperature = %v, want 18", assumptions.Temperature)
	}
}

func TestParseCalcInputsStdin(t *testing.T) {
	resetCalcFlags()
	calcInputPath = "-"
	defer resetCalcFlags()

	stdin := strings.NewReader(`{"inputs": {"na": 11000}}`)
	sample, _, err := parseCalcInputs(stdin)
	if err != nil {
		t.Fatalf("parseCalcInputs: %v", err)
	}
	if sample.Na != 11000 {
		t.Errorf("na = %v, want 11000", sample.Na)
	}
}

func TestPrintCalcOutputText(t *testing.T) {
	resetCalcFlags()
	res := salinity.Result{
		SP: 34.1854, SA: 34.3467, Density: 1024.137,
		SG2020: 1.02598, SG2525: 1.02576,
		Converged: true, Iterations: 4,
	}

	var buf bytes.Buffer
	if err := printCalcOutput(&buf, res, nil); err != nil {
		t.Fatalf("printCalcOutput: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"SP: 34.1854", "SA: 34.3467 g/kg", "Density: 1024.137 kg/m^3",
		"SG 20/20: 1.02598", "SG 25/25: 1.02576",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "warning") {
		t.Errorf("unexpected warning for converged result:\n%s", out)
	}
}

func TestPrintCalcOutputWarnsOnNonConvergence(t *testing.T) {
	resetCalcFlags()
	var buf bytes.Buffer
	res := salinity.Result{SP: 35, Iterations: 30}
	if err := printCalcOutput(&buf, res, nil); err != nil {
		t.Fatalf("printCalcOutput: %v", err)
	}
	if !strings.Contains(buf.String(), "did not converge after 30 iterations") {
		t.Errorf("expected non-convergence warning:\n%s", buf.String())
	}
}

func TestPrintCalcOutputJSON(t *testing.T) {
	resetCalcFlags()
	calcJSON = true
	defer resetCalcFlags()

	res := salinity.Result{SP: 34.1854, Converged: true, Iterations: 4}
	rows := []salinity.ComponentRow{{Species: chem.Sodium, MgPerL: 10780}}

	var buf bytes.Buffer
	if err := printCalcOutput(&buf, res, rows); err != nil {
		t.Fatalf("printCalcOutput: %v", err)
	}

	var decoded struct {
		SP         float64                 `json:"sp"`
		Converged  bool                    `json:"converged"`
		Components []salinity.ComponentRow `json:"components"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.SP != 34.1854 || !decoded.Converged {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Components) != 1 || decoded.Components[0].Species != chem.Sodium {
		t.Errorf("components = %+v, want one Na+ row", decoded.Components)
	}
}
