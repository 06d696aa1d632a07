package vision

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseExtractionStructuredObject(t *testing.T) {
	content := `Here is the result:
{"name": "Somchai P.", "amount": 350.50, "itemName": "Camp fee", "currency": "฿", "confidence": 0.92}
Let me know if you need anything else.`

	got := ParseExtraction(content, "฿")
	if got.Failed {
		t.Fatalf("unexpected failure: %s", got.FailureReason)
	}
	if got.PersonName != "Somchai P." {
		t.Errorf("name = %q, want %q", got.PersonName, "Somchai P.")
	}
	if !got.Amount.Equal(decimal.RequireFromString("350.50")) {
		t.Errorf("amount = %s, want 350.50", got.Amount)
	}
	if got.ItemName != "Camp fee" {
		t.Errorf("itemName = %q, want %q", got.ItemName, "Camp fee")
	}
	if got.Confidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", got.Confidence)
	}
}

func TestParseExtractionQuotedAmount(t *testing.T) {
	got := ParseExtraction(`{"name": "Mali", "amount": "1200.00", "confidence": 0.8}`, "฿")
	if got.Failed {
		t.Fatalf("unexpected failure: %s", got.FailureReason)
	}
	if !got.Amount.Equal(decimal.RequireFromString("1200.00")) {
		t.Errorf("amount = %s, want 1200.00", got.Amount)
	}
	if got.ItemName != "Payment slip" {
		t.Errorf("itemName = %q, want default %q", got.ItemName, "Payment slip")
	}
	if got.Currency != "฿" {
		t.Errorf("currency = %q, want default", got.Currency)
	}
}

func TestParseExtractionDefaultsMissingName(t *testing.T) {
	got := ParseExtraction(`{"amount": 75}`, "฿")
	if got.Failed {
		t.Fatalf("unexpected failure: %s", got.FailureReason)
	}
	if got.PersonName != "Unknown" {
		t.Errorf("name = %q, want Unknown", got.PersonName)
	}
}

func TestParseExtractionNegativeAmountClampedToZero(t *testing.T) {
	got := ParseExtraction(`{"amount": -42.00}`, "฿")
	if got.Failed {
		t.Fatalf("unexpected failure: %s", got.FailureReason)
	}
	if !got.Amount.Equal(decimal.Zero) {
		t.Errorf("amount = %s, want 0", got.Amount)
	}
}

func TestParseExtractionNumericFallbackLastMatchWins(t *testing.T) {
	got := ParseExtraction("I found 12 items totalling 250.50 on this slip", "฿")
	if got.Failed {
		t.Fatalf("unexpected failure: %s", got.FailureReason)
	}
	if !got.Amount.Equal(decimal.RequireFromString("250.50")) {
		t.Errorf("amount = %s, want 250.50 (last match)", got.Amount)
	}
	if got.ItemName != "Payment slip" {
		t.Errorf("itemName = %q, want %q", got.ItemName, "Payment slip")
	}
	if got.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", got.Confidence)
	}
	if got.PersonName != "Unknown" {
		t.Errorf("name = %q, want Unknown", got.PersonName)
	}
}

func TestParseExtractionBrokenJSONFallsBackToNumbers(t *testing.T) {
	// Unbalanced object never closes, so the numeric scan applies.
	got := ParseExtraction(`{"amount": 12, "note": "total 99.95"`, "฿")
	if got.Failed {
		t.Fatalf("unexpected failure: %s", got.FailureReason)
	}
	if !got.Amount.Equal(decimal.RequireFromString("99.95")) {
		t.Errorf("amount = %s, want 99.95", got.Amount)
	}
}

func TestParseExtractionNothingUsableIsSentinel(t *testing.T) {
	got := ParseExtraction("the image is too blurry to read", "฿")
	if !got.Failed {
		t.Fatal("expected sentinel for unusable content")
	}
	if !got.Amount.Equal(decimal.Zero) {
		t.Errorf("sentinel amount = %s, want exactly 0", got.Amount)
	}
	if got.Confidence != 0 {
		t.Errorf("sentinel confidence = %v, want 0", got.Confidence)
	}
	if got.PersonName != "Unknown" {
		t.Errorf("sentinel name = %q, want Unknown", got.PersonName)
	}
	if got.ItemName != "Analysis failed" {
		t.Errorf("sentinel itemName = %q, want %q", got.ItemName, "Analysis failed")
	}
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"plain", `{"a":1}`, `{"a":1}`, true},
		{"surrounded", `noise {"a":1} trailing {"b":2}`, `{"a":1}`, true},
		{"nested", `{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{"brace in string", `{"a":"}"}`, `{"a":"}"}`, true},
		{"escaped quote", `{"a":"\"}"}`, `{"a":"\"}"}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"none", `no braces here`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstJSONObject(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FirstJSONObject(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLastNumberFormats(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12 then 250.50", "250.50", true},
		{"amount ฿1,234.56", "234.56", true},
		{"only 100", "100", true},
		{"no digits", "", false},
	}
	for _, tt := range tests {
		n, ok := LastNumber(tt.in)
		if ok != tt.ok {
			t.Errorf("LastNumber(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !n.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("LastNumber(%q) = %s, want %s", tt.in, n, tt.want)
		}
	}
}

func TestFailureSentinelShape(t *testing.T) {
	s := FailureSentinel("boom")
	if !s.Failed {
		t.Error("sentinel must be tagged as failed")
	}
	if s.Amount.IsNegative() || !s.Amount.Equal(decimal.Zero) {
		t.Errorf("sentinel amount = %s, want 0", s.Amount)
	}
}
