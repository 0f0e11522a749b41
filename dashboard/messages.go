package dashboard

import (
	"errors"
	"fmt"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

// Level is the severity of a page message
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Message is a notice shown to the viewer
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// UserMessage turns a fetch error into text fit for the viewer
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *cg.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.RateLimited() {
			return "CoinGecko rate limit reached. Wait a moment before reloading."
		}
		return fmt.Sprintf("CoinGecko returned status %d.", statusErr.StatusCode)
	}

	var reqErr *cg.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("Could not reach CoinGecko: %v", reqErr.Err)
	}

	var decodeErr *cg.DecodeError
	if errors.As(err, &decodeErr) {
		return "CoinGecko returned an unexpected response."
	}

	return fmt.Sprintf("Unexpected error: %v", err)
}
