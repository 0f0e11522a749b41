package api

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// setCacheStatusHeader sets the Cache-Status header based on cache status
func (s *Server) setCacheStatusHeader(w http.ResponseWriter, cacheStatus string) {
	if cacheStatus != "" {
		w.Header().Set("Cache-Status", cacheStatus)
	}
}

// sendJSONResponse is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	// Marshal the data to calculate content length and ETag
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// Calculate ETag (MD5 hash of the response)
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	// Set headers
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")

	// Write the response
	if _, err := w.Write(responseBytes); err != nil && s.logger != nil {
		s.logger.Warn("error writing response", zap.Error(err))
	}
}

func getParamLowercase(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	value := r.URL.Query().Get(key)
	if value != "" {
		return strings.ToLower(strings.TrimSpace(value))
	}
	return ""
}

// wantsHTML reports whether the request came from a browser form
func wantsHTML(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.Contains(r.Header.Get("Accept"), "text/html")
}
