package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ccxla/3RVX/internal/history"
	"github.com/ccxla/3RVX/internal/hotkey"
	"github.com/ccxla/3RVX/internal/keys"
)

type hotkeyJSON struct {
	Combo   string   `json:"combo"`
	Action  string   `json:"action"`
	Args    []string `json:"args"`
	Display string   `json:"display"`
}

// handleHotkeys returns the registered hotkey definitions.
func (s *Server) handleHotkeys(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	defs := s.registry.Definitions()
	hotkeys := make([]hotkeyJSON, 0, len(defs))
	for _, def := range defs {
		hotkeys = append(hotkeys, hotkeyJSON{
			Combo:   def.Combo.String(),
			Action:  def.Action.String(),
			Args:    append([]string{}, def.Args...),
			Display: def.String(),
		})
	}

	response := map[string]interface{}{
		"hotkeys": hotkeys,
		"units":   s.dispatcher.Units(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleActions returns the action catalog and the media key table.
func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"actions":   hotkey.ActionNames(),
		"mediaKeys": hotkey.MediaKeyNames(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleHistory returns paginated dispatch history.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 50 // default
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	events := []history.Event{}
	total := 0

	if s.store != nil {
		var err error
		events, err = s.store.Recent(limit, offset)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to get events")
			http.Error(w, "Failed to get history", http.StatusInternalServerError)
			return
		}
		if events == nil {
			events = []history.Event{}
		}

		total, err = s.store.Count()
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to get event count")
			http.Error(w, "Failed to get history", http.StatusInternalServerError)
			return
		}
	}

	response := map[string]interface{}{
		"events": events,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleStats returns per-action dispatch counts for a time range.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := 7 // default to 7 days
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil && d > 0 {
			days = d
		}
	}

	actions := []history.ActionStats{}
	total := 0

	if s.store != nil {
		var err error
		actions, err = s.store.Stats(days)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to get action stats")
			http.Error(w, "Failed to get statistics", http.StatusInternalServerError)
			return
		}
		if actions == nil {
			actions = []history.ActionStats{}
		}

		total, err = s.store.Count()
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to get event count")
			http.Error(w, "Failed to get statistics", http.StatusInternalServerError)
			return
		}
	}

	response := map[string]interface{}{
		"actions": actions,
		"total":   total,
		"days":    days,
		"hotkeys": s.registry.Len(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleTrigger dispatches a registered hotkey by combination.
func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Combo string `json:"combo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	combo, err := keys.Parse(req.Combo)
	if err != nil {
		http.Error(w, "Invalid combination", http.StatusBadRequest)
		return
	}

	if !s.dispatcher.Dispatch(combo) {
		http.Error(w, "No hotkey registered for combination", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
