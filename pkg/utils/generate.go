package utils

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"
)

// ==================== OTP ====================

// GenerateOTP returns a 6-digit code in [100000, 999999].
func GenerateOTP() string {
	return fmt.Sprintf("%d", 100000+rand.IntN(900000))
}

// ==================== UPLOAD FILENAME ====================

// GenerateUploadName builds a timestamp+random-suffix filename that keeps
// the original extension, e.g. "1712345678901-384756102.png".
func GenerateUploadName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
}
