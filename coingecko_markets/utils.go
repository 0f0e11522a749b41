package coingecko_markets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/interfaces"
)

// decodeEntries decodes each raw record into a MarketEntry in source order.
// Records that are not JSON objects are logged and skipped. A field of the
// wrong type is logged and left unset; the rest of its record is kept.
func decodeEntries(records []json.RawMessage, logger *zap.Logger) []interfaces.MarketEntry {
	entries := make([]interfaces.MarketEntry, 0, len(records))
	for i, record := range records {
		trimmed := bytes.TrimSpace(record)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			logger.Warn("skipping market record that is not an object", zap.Int("index", i))
			continue
		}

		var entry interfaces.MarketEntry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				logger.Warn("skipping malformed market record", zap.Int("index", i), zap.Error(err))
				continue
			}
			logger.Warn("market record field has unexpected type",
				zap.Int("index", i),
				zap.String("id", entry.ID),
				zap.String("field", typeErr.Field),
				zap.Error(err))
		}
		entries = append(entries, entry)
	}
	return entries
}

// marketsCacheKey builds the cache key for one markets request
func marketsCacheKey(params interfaces.MarketsParams) string {
	return fmt.Sprintf("markets:%s:%s:%d:%d", params.Currency, params.Order, params.PerPage, params.Page)
}
