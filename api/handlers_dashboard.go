package api

import (
	"bytes"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/session"
)

// handleDashboard renders the HTML dashboard for the selection in the query
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sel, selErr := session.Parse(r.URL.Query())

	page := s.dashboard.Render(r.Context(), sel)
	if selErr != nil {
		page.Messages = append([]dashboard.Message{{Level: dashboard.LevelWarning, Text: selErr.Error()}}, page.Messages...)
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		s.logger.Error("error rendering dashboard", zap.Error(err))
		http.Error(w, "Error rendering dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("error writing dashboard", zap.Error(err))
	}
}
