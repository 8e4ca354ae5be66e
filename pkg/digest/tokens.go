// File: pkg/digest/tokens.go
package digest

import (
	tiktoken "github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// tokenEncoding is the tokenizer encoding used for the summary estimate.
const tokenEncoding = "cl100k_base"

// EstimateTokens counts the tokens the digest text would occupy. The count
// is best-effort: a tokenizer failure logs a warning and yields zero.
func EstimateTokens(text string, logger *zap.Logger) int {
	if text == "" {
		return 0
	}
	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		logger.Warn("Token encoding unavailable", zap.Error(err))
		return 0
	}
	return len(enc.EncodeOrdinary(text))
}
