package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"decisionengine/internal/domain"
)

const reportDisclaimer = "This output is for decision support only and does not constitute financial advice. " +
	"Do your own research and consider consulting a licensed advisor."

// FormatReport renders a single-ticker analyze result as the plain-text
// decision report the CLI prints.
func FormatReport(result *domain.AnalyzeResult, thesis string) string {
	if thesis == "" {
		thesis = "(none)"
	}
	bullets := "  (none)"
	if len(result.Verdict.Justification) > 0 {
		lines := make([]string, 0, len(result.Verdict.Justification))
		for _, j := range result.Verdict.Justification {
			lines = append(lines, "  - "+j)
		}
		bullets = strings.Join(lines, "\n")
	}

	quantJSON, err := json.MarshalIndent(result.QuantData, "", "  ")
	if err != nil {
		quantJSON = []byte("{}")
	}

	divider := strings.Repeat("=", 60)
	return strings.Join([]string{
		divider,
		"THE RATIONAL DECISION ENGINE - Decision Report",
		divider,
		fmt.Sprintf("Ticker: %s", result.Ticker),
		fmt.Sprintf("Thesis: %s", thesis),
		"",
		"--- Risk Analyst (Bear) ---",
		result.BearOutput,
		"",
		"--- Growth Advocate (Bull) ---",
		result.BullOutput,
		"",
		"--- Quantitative Data ---",
		string(quantJSON),
		"",
		"--- Verdict ---",
		fmt.Sprintf("Verdict: %s", result.Verdict.Verdict),
		fmt.Sprintf("Confidence score: %d (0-100)", result.Verdict.ConfidenceScore),
		"",
		"Justification:",
		bullets,
		"",
		"Confidence basis:",
		"  " + result.Verdict.ConfidenceBasis,
		"",
		"--- Disclaimer ---",
		reportDisclaimer,
		"",
		divider,
	}, "\n")
}
