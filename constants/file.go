package constants

import "strings"

// ImageMIMEPrefix is the only content-type family accepted for slip uploads.
const ImageMIMEPrefix = "image/"

// MaxSlipFileBytes caps a single slip upload at 10 MiB.
const MaxSlipFileBytes int64 = 10 << 20

// DefaultCurrencySymbol is used when the classifier reports no currency.
const DefaultCurrencySymbol = "฿"

// AllowedExtensions holds the slip image extensions we generate storage paths for.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
