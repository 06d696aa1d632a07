package vision

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// reNumber accepts integer and two-decimal-fraction forms. Digit runs only;
// currency symbols never match so no stripping is needed.
var reNumber = regexp.MustCompile(`\d+(?:\.\d{1,2})?`)

// ParseExtraction applies the fallback ladder to raw model output:
//  1. first balanced {...} substring, parsed as the structured record;
//  2. last numeric substring in the text, taken as the amount;
//  3. the failure sentinel.
func ParseExtraction(content, defaultCurrency string) Extraction {
	if obj, ok := FirstJSONObject(content); ok {
		if ext, err := decodeWireObject(obj, defaultCurrency); err == nil {
			return ext
		}
	}
	if n, ok := LastNumber(content); ok {
		return Extraction{
			PersonName: "Unknown",
			Amount:     n,
			ItemName:   "Payment slip",
			Currency:   defaultCurrency,
			Confidence: 0.5,
		}
	}
	return FailureSentinel("no parseable content in model response")
}

// FirstJSONObject returns the first balanced {...} substring of raw, skipping
// braces inside JSON strings.
func FirstJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}

// LastNumber returns the last numeric substring of raw. Last match wins so
// that totals, which slips print after line items, are preferred.
func LastNumber(raw string) (decimal.Decimal, bool) {
	matches := reNumber.FindAllString(raw, -1)
	if len(matches) == 0 {
		return decimal.Zero, false
	}
	n, err := decimal.NewFromString(matches[len(matches)-1])
	if err != nil {
		return decimal.Zero, false
	}
	return n, true
}

// wireExtraction mirrors the JSON object requested from the model.
// decimal.Decimal tolerates both numeric and quoted amounts.
type wireExtraction struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	ItemName   string          `json:"itemName"`
	Currency   string          `json:"currency"`
	Confidence float64         `json:"confidence"`
}

func decodeWireObject(obj, defaultCurrency string) (Extraction, error) {
	if err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), []byte(obj)); err != nil {
		return Extraction{}, err
	}
	var w wireExtraction
	if err := json.Unmarshal([]byte(obj), &w); err != nil {
		return Extraction{}, err
	}
	ext := Extraction{
		PersonName: strings.TrimSpace(w.Name),
		Amount:     w.Amount,
		ItemName:   strings.TrimSpace(w.ItemName),
		Currency:   strings.TrimSpace(w.Currency),
		Confidence: w.Confidence,
	}
	if ext.Amount.IsNegative() {
		ext.Amount = decimal.Zero
	}
	if ext.PersonName == "" {
		ext.PersonName = "Unknown"
	}
	if ext.ItemName == "" {
		ext.ItemName = "Payment slip"
	}
	if ext.Currency == "" {
		ext.Currency = defaultCurrency
	}
	return ext, nil
}
