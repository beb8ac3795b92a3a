package llm

import (
	"fmt"
	"strings"

	"github.com/medscan/medscan/pkg/analyzer"
)

const imageFallback = "Unable to analyze the image due to API issues. Please try again later or consult a medical professional for accurate interpretation."

const textFallbackTemplate = `Fallback Analysis:
1. Document Type: Text-based medical report
2. Word Count: Approximately %d words
3. Content: The document appears to contain medical information, but detailed analysis is unavailable due to technical issues.
4. Recommendation: Please review the document manually or consult with a healthcare professional for accurate interpretation.
5. Note: This is a simplified analysis due to temporary unavailability of the AI service. For a comprehensive analysis, please try again later.`

// fallbackAnalysis is the deterministic, offline substitute used once the
// remote service stayed unavailable through all attempts.
func fallbackAnalysis(input analyzer.Input) string {
	if input.Kind == analyzer.ContentKindImage {
		return imageFallback
	}

	return fmt.Sprintf(textFallbackTemplate, len(strings.Fields(input.Content)))
}
