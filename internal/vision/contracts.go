package vision

import (
	"context"

	"github.com/shopspring/decimal"
)

// SlipImage is one uploaded payment-slip image handed to the classifier.
type SlipImage struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Extraction is the structured record produced from exactly one slip image.
// It is never mutated after creation. Failed tags the sentinel shape so a
// genuine zero-amount slip stays distinguishable from a failed analysis.
type Extraction struct {
	PersonName    string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	ItemName      string          `json:"itemName"`
	Currency      string          `json:"currency"`
	Confidence    float64         `json:"confidence"`
	Failed        bool            `json:"-"`
	FailureReason string          `json:"-"`
}

// FailureSentinel is the well-formed "analysis failed" record. All classifier
// failure paths resolve to this value; it never crosses the boundary as an error.
func FailureSentinel(reason string) Extraction {
	return Extraction{
		PersonName:    "Unknown",
		Amount:        decimal.Zero,
		ItemName:      "Analysis failed",
		Currency:      "",
		Confidence:    0,
		Failed:        true,
		FailureReason: reason,
	}
}

// Classifier converts one slip image into an Extraction. Implementations must
// not return errors to callers; every failure collapses to FailureSentinel.
type Classifier interface {
	Classify(ctx context.Context, img SlipImage) Extraction
}
