package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Qeenon/nlprule"
)

type checkRequest struct {
	Text string `json:"text"`
}

type suggestionPayload struct {
	Start        int      `json:"start"`
	End          int      `json:"end"`
	Replacements []string `json:"replacements"`
}

type suggestResponse struct {
	Suggestions []suggestionPayload `json:"suggestions"`
}

type correctResponse struct {
	Corrected string `json:"corrected"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCheckRequest(w, r)
	if !ok {
		return
	}

	suggestions, err := s.rules.Suggest(req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := suggestResponse{Suggestions: []suggestionPayload{}}
	for _, sug := range suggestions {
		if s.inPersonalDict(r, req.Text, sug) {
			continue
		}
		resp.Suggestions = append(resp.Suggestions, suggestionPayload{
			Start:        sug.Start(),
			End:          sug.End(),
			Replacements: sug.Replacements(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCheckRequest(w, r)
	if !ok {
		return
	}

	corrected, err := s.rules.Correct(req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, correctResponse{Corrected: corrected})
}

// inPersonalDict reports whether the flagged span of text is a word the
// user added to their personal dictionary. Dictionary errors only disable
// filtering for the request.
func (s *Server) inPersonalDict(r *http.Request, text string, sug nlprule.Suggestion) bool {
	if s.dict == nil {
		return false
	}
	runes := []rune(text)
	if sug.Start() < 0 || sug.End() > len(runes) {
		return false
	}
	word := string(runes[sug.Start():sug.End()])
	ok, err := s.dict.Contains(r.Context(), word)
	if err != nil {
		s.log.Warn("personal dictionary lookup failed", "error", err)
		return false
	}
	return ok
}

func (s *Server) handleDictList(w http.ResponseWriter, r *http.Request) {
	if s.dict == nil {
		jsonError(w, "personal dictionary not configured", http.StatusNotFound)
		return
	}
	words, err := s.dict.All(r.Context())
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadGateway)
		return
	}
	if words == nil {
		words = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"words": words})
}

func (s *Server) handleDictAdd(w http.ResponseWriter, r *http.Request) {
	if s.dict == nil {
		jsonError(w, "personal dictionary not configured", http.StatusNotFound)
		return
	}
	if err := s.dict.Add(r.Context(), chi.URLParam(r, "word")); err != nil {
		jsonError(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDictRemove(w http.ResponseWriter, r *http.Request) {
	if s.dict == nil {
		jsonError(w, "personal dictionary not configured", http.StatusNotFound)
		return
	}
	if err := s.dict.Remove(r.Context(), chi.URLParam(r, "word")); err != nil {
		jsonError(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeCheckRequest(w http.ResponseWriter, r *http.Request) (checkRequest, bool) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return checkRequest{}, false
	}
	return req, true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, nlprule.ErrConfiguration) {
		status = http.StatusUnprocessableEntity
	}
	jsonError(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
