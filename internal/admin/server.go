package admin

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"failpolicy-sim/internal/config"
	"failpolicy-sim/internal/policy"
	"failpolicy-sim/internal/record"
	"failpolicy-sim/internal/scenario"
	"failpolicy-sim/internal/service"
	"failpolicy-sim/internal/sim"
)

// Server exposes simulation runs over HTTP: a small console page plus JSON
// endpoints to trigger runs on demand.
type Server struct {
	cfg *config.SimulationConfig
	tpl *template.Template
	mux *http.ServeMux
}

//go:embed templates/index.html
var content embed.FS

func NewServer(cfg *config.SimulationConfig) *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	s := &Server{cfg: cfg, tpl: tpl, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/run", s.handleRun)
	s.mux.HandleFunc("/scenarios", s.handleScenarios)
	s.mux.HandleFunc("/policies", s.handlePolicies)
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Scenarios []string
		Policies  []string
		Default   string
	}{
		Scenarios: scenario.Names(),
		Policies:  policy.Names(),
		Default:   s.cfg.Scenario,
	}
	s.tpl.Execute(w, data)
}

// runResult is the JSON payload returned by /run.
type runResult struct {
	Report   record.ReportRow    `json:"report"`
	Outcomes []record.OutcomeRow `json:"outcomes"`
}

// collector captures a run's rows in memory for the JSON response.
type collector struct {
	outcomes []record.OutcomeRow
	report   record.ReportRow
}

func (c *collector) Write(row record.OutcomeRow) error {
	c.outcomes = append(c.outcomes, row)
	return nil
}

func (c *collector) WriteReport(rep record.ReportRow) error {
	c.report = rep
	return nil
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	policyName := r.URL.Query().Get("policy")
	if policyName == "" {
		policyName = "safe"
	}

	cfg := *s.cfg
	if name := r.URL.Query().Get("scenario"); name != "" {
		cfg.Scenario = name
		cfg.ScenarioFile = ""
		cfg.Requests = nil
	}
	units, scenarioName, err := cfg.Resolve()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	svc := service.New(cfg.Service.FailureRate, cfg.Service.Fallback, nil)
	exec, err := policy.New(policyName, svc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	col := &collector{}
	runner := sim.NewRunner(col, col)
	runner.Run(r.Context(), exec, scenarioName, units)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runResult{Report: col.report, Outcomes: col.outcomes})
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scenario.Names())
}

func (s *Server) handlePolicies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(policy.Names())
}
