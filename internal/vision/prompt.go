package vision

import "strings"

// BuildInstruction composes the fixed natural-language instruction sent with
// every slip image.
func BuildInstruction(defaultCurrency string) string {
	defCur := strings.TrimSpace(defaultCurrency)
	if defCur == "" {
		defCur = "฿"
	}
	parts := []string{
		"You are a payment-slip reader for a camp registration system.",
		"The image is a bank transfer receipt or payment confirmation.",
		"Return ONLY a JSON object with the fields {\"name\", \"amount\", \"itemName\", \"currency\", \"confidence\"}.",
		"'name' is the payer's name as printed on the slip, or \"Unknown\" if not visible.",
		"'amount' is the transferred amount as a number with at most two decimals.",
		"'itemName' is a short label for what was paid for (default \"Payment slip\").",
		"'currency' is the currency symbol printed on the slip; default to " + defCur + " if uncertain.",
		"'confidence' is your confidence in the extraction, between 0 and 1.",
		"Never output null. If a field is not readable, use its default.",
	}
	return strings.Join(parts, " ")
}
