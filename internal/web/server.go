package web

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"brainsync/internal/config"
	"brainsync/internal/prompt"
	"brainsync/internal/session"
)

// Server is the HTTP front end: one page plus a small JSON API the
// page's buttons call.
type Server struct {
	session   *session.Session
	cfg       *config.Config
	server    *http.Server
	startTime time.Time
}

type askRequest struct {
	Question string `json:"question"`
	Mode     string `json:"mode"`
}

type askResponse struct {
	Answer string `json:"answer"`
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

type clearResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func NewServer(sess *session.Session, cfg *config.Config) *Server {
	return &Server{
		session:   sess,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/ask", s.handleAsk)
	mux.HandleFunc("/api/clear", s.handleClear)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/", s.handleIndex)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.HTTPPort),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("🌐 Starting web server on http://localhost:%d", s.cfg.HTTPPort)
	return s.server.ListenAndServe()
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answer, ok := s.session.Ask(r.Context(), req.Question, prompt.ParseMode(req.Mode))

	status := "✅ Response generated successfully!"
	if !ok {
		status = "❌ " + answer
	}

	writeJSON(w, askResponse{Answer: answer, OK: ok, Status: status})
}

// handleClear resets the page fields only; the history log is
// append-only and stays untouched.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, clearResponse{})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, s.session.Summary())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":       "ok",
		"uptime":       time.Since(s.startTime).String(),
		"interactions": s.session.Interactions(),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Title       string
		Subtitle    string
		Description string
		Summary     string
	}{
		Title:       s.cfg.AppTitle,
		Subtitle:    s.cfg.AppSubtitle,
		Description: s.cfg.AppDescription,
		Summary:     s.session.Summary(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("❌ failed to render index page: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ failed to encode response: %v", err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; }
header { text-align: center; margin-bottom: 2rem; }
header h1 { margin-bottom: 0.2rem; }
header .subtitle { color: #555; font-size: 1.1rem; }
header .description { color: #888; font-size: 0.9rem; }
textarea { width: 100%; min-height: 5rem; }
pre { white-space: pre-wrap; background: #f6f6f6; padding: 1rem; border-radius: 6px; }
button { padding: 0.5rem 1.2rem; margin-right: 0.5rem; }
</style>
</head>
<body>
<header>
<h1>✨ {{.Title}}</h1>
<div class="subtitle">{{.Subtitle}}</div>
<div class="description">{{.Description}}</div>
</header>

<textarea id="question" placeholder="What would you like to know?"></textarea>
<p>
<label><input type="radio" name="mode" value="qa" checked> 🎯 Smart Q&amp;A</label>
<label><input type="radio" name="mode" value="creative"> 🎨 Creative Mode</label>
<label><input type="radio" name="mode" value="analysis"> 📊 Analysis Mode</label>
</p>
<p>
<button onclick="ask()">🚀 Generate Answer</button>
<button onclick="clearAll()">🗑️ Clear All</button>
<button onclick="loadHistory()">📜 History</button>
</p>
<div id="status"></div>
<pre id="answer"></pre>
<pre id="history">{{.Summary}}</pre>

<script>
async function ask() {
  const question = document.getElementById('question').value;
  const mode = document.querySelector('input[name="mode"]:checked').value;
  const resp = await fetch('/api/ask', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({question: question, mode: mode})
  });
  const data = await resp.json();
  document.getElementById('answer').textContent = data.ok ? data.answer : '';
  document.getElementById('status').textContent = data.status;
  loadHistory();
}
async function clearAll() {
  const resp = await fetch('/api/clear', {method: 'POST'});
  const data = await resp.json();
  document.getElementById('question').value = data.question;
  document.getElementById('answer').textContent = data.answer;
  document.getElementById('status').textContent = '';
}
async function loadHistory() {
  const resp = await fetch('/api/history');
  document.getElementById('history').textContent = await resp.text();
}
</script>
</body>
</html>
`))
