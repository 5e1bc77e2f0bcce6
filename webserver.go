package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"
)

// WebServer holds the HTTP server configuration
type WebServer struct {
	config *Config
	addr   string
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, addr string) *WebServer {
	return &WebServer{
		config: config,
		addr:   addr,
	}
}

// APICalculateRequest asks for a single-charity or all-charity calculation.
// Weights and Preset are both optional; Preset wins when set.
type APICalculateRequest struct {
	Charity   string        `json:"charity"`
	Location  string        `json:"location,omitempty"`
	GrantSize float64       `json:"grant_size"`
	Preset    string        `json:"preset,omitempty"`
	Weights   *MoralWeights `json:"weights,omitempty"`
}

// APICharityResult is one charity's unified result plus identifying info
type APICharityResult struct {
	Charity  string         `json:"charity"`
	Name     string         `json:"name"`
	Location string         `json:"location"`
	Results  UnifiedResults `json:"results"`
}

// APICalculateResponse carries the calculation results
type APICalculateResponse struct {
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
	Results []APICharityResult `json:"results,omitempty"`
}

// APIMonteCarloRequest asks for an uncertainty simulation
type APIMonteCarloRequest struct {
	Charity   string        `json:"charity"`
	Location  string        `json:"location,omitempty"`
	GrantSize float64       `json:"grant_size"`
	Trials    int           `json:"trials"`
	Seed      int64         `json:"seed"`
	Preset    string        `json:"preset,omitempty"`
	Weights   *MoralWeights `json:"weights,omitempty"`
}

// APIMonteCarloResponse carries one charity's simulation statistics
type APIMonteCarloResponse struct {
	Success  bool              `json:"success"`
	Error    string            `json:"error,omitempty"`
	Charity  string            `json:"charity,omitempty"`
	Location string            `json:"location,omitempty"`
	Results  MonteCarloResults `json:"results"`
}

// APISweepRequest asks for a sensitivity sweep over one parameter
type APISweepRequest struct {
	Parameter string        `json:"parameter"`
	GrantSize float64       `json:"grant_size"`
	Points    int           `json:"points"`
	Preset    string        `json:"preset,omitempty"`
	Weights   *MoralWeights `json:"weights,omitempty"`
}

// APISweepResponse carries the sweep series
type APISweepResponse struct {
	Success   bool         `json:"success"`
	Error     string       `json:"error,omitempty"`
	Parameter string       `json:"parameter,omitempty"`
	Label     string       `json:"label,omitempty"`
	Points    []SweepPoint `json:"points,omitempty"`
}

// writeJSON encodes a response body, logging encode failures rather than
// silently dropping them (the status line has already gone out by then, so
// the log is all that's left).
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// routes registers the handler set shared by Start and StartForEmbedded
func (ws *WebServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/charities", ws.handleCharities)
	mux.HandleFunc("/api/locations", ws.handleLocations)
	mux.HandleFunc("/api/presets", ws.handlePresets)
	mux.HandleFunc("/api/calculate", ws.handleCalculate)
	mux.HandleFunc("/api/montecarlo", ws.handleMonteCarlo)
	mux.HandleFunc("/api/sweep", ws.handleSweep)
	return mux
}

// Start starts the web server and opens the browser
func (ws *WebServer) Start() error {
	// Listen on the address (use :0 for auto-assign)
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return err
	}

	url := listenerURL(listener.Addr().String())
	log.Printf("Starting web server on %s", listener.Addr().String())
	log.Printf("Opening %s in your browser...", url)

	go openBrowser(url)

	return http.Serve(listener, ws.routes())
}

// StartForEmbedded starts the server and returns the URL and a cleanup function.
// Unlike Start(), this does NOT open the browser and does NOT block.
// The caller is responsible for stopping the server via the cleanup function.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return "", nil, err
	}

	url = listenerURL(listener.Addr().String())
	log.Printf("Starting embedded web server on %s", listener.Addr().String())

	server := &http.Server{Handler: ws.routes()}

	go func() {
		if err := server.Serve(listener); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}

	return url, cleanup, nil
}

// listenerURL builds a browsable URL from a listener address, mapping the
// all-interfaces forms to localhost.
func listenerURL(actualAddr string) string {
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		return fmt.Sprintf("http://localhost:%s", port)
	}
	return fmt.Sprintf("http://%s", actualAddr)
}

// handleIndex serves the main web UI
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, webUIHTML)
}

// handleGetConfig returns the current configuration
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if ws.config == nil {
		defaultConfig, err := LoadDefaultConfig()
		if err != nil {
			writeJSON(w, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, defaultConfig)
		return
	}

	writeJSON(w, ws.config)
}

// handleCharities lists the charity IDs and display names
func (ws *WebServer) handleCharities(w http.ResponseWriter, r *http.Request) {
	type charityInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	var list []charityInfo
	for _, c := range AllCharityTypes {
		list = append(list, charityInfo{ID: c.ID(), Name: c.String()})
	}
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, list)
}

// handleLocations lists every charity's locations keyed by charity ID
func (ws *WebServer) handleLocations(w http.ResponseWriter, r *http.Request) {
	locations := make(map[string][]LocationInfo, len(AllCharityTypes))
	for _, c := range AllCharityTypes {
		locations[c.ID()] = LocationsFor(c)
	}
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, locations)
}

// handlePresets lists the moral-weight presets
func (ws *WebServer) handlePresets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, WeightPresets)
}

// resolveRequestWeights picks the effective weights for a request: named
// preset first, then inline weights, then the server config's weights.
func (ws *WebServer) resolveRequestWeights(preset string, weights *MoralWeights) MoralWeights {
	if preset != "" {
		if p := GetWeightPresetByID(preset); p != nil {
			return p.Weights
		}
	}
	if weights != nil {
		return *weights
	}
	if ws.config != nil {
		return ws.config.GetMoralWeights()
	}
	return DefaultMoralWeights()
}

// resolveRequestInputs builds the weighted inputs for one charity/location
func resolveRequestInputs(charityID, locationID string, grantSize float64, w MoralWeights) (CharityInputs, string, error) {
	charity, ok := ParseCharityType(charityID)
	if !ok {
		return nil, "", fmt.Errorf("unknown charity %q", charityID)
	}
	if locationID == "" {
		locationID = DefaultLocationID(charity)
	}
	if grantSize <= 0 {
		grantSize = DefaultGrantSize
	}
	inputs, ok := InputsForLocation(charity, locationID, grantSize)
	if !ok {
		return nil, "", fmt.Errorf("unknown location %q for charity %q", locationID, charityID)
	}
	return ApplyMoralWeights(inputs, w), locationID, nil
}

// handleCalculate runs the calculation for one charity, or all six when the
// charity field is empty.
func (ws *WebServer) handleCalculate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req APICalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, APICalculateResponse{Success: false, Error: "invalid request: " + err.Error()})
		return
	}

	weights := ws.resolveRequestWeights(req.Preset, req.Weights)

	var charityIDs []string
	if req.Charity == "" {
		for _, c := range AllCharityTypes {
			charityIDs = append(charityIDs, c.ID())
		}
	} else {
		charityIDs = []string{req.Charity}
	}

	var results []APICharityResult
	for _, id := range charityIDs {
		// The explicit location only applies to a single-charity request;
		// location IDs are not shared across charities.
		location := ""
		if req.Charity != "" {
			location = req.Location
		}
		inputs, locationID, err := resolveRequestInputs(id, location, req.GrantSize, weights)
		if err != nil {
			writeJSON(w, APICalculateResponse{Success: false, Error: err.Error()})
			return
		}
		results = append(results, APICharityResult{
			Charity:  id,
			Name:     inputs.Charity().String(),
			Location: locationID,
			Results:  CalculateCharity(inputs),
		})
	}

	writeJSON(w, APICalculateResponse{Success: true, Results: results})
}

// handleMonteCarlo runs the uncertainty simulation for one charity
func (ws *WebServer) handleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req APIMonteCarloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, APIMonteCarloResponse{Success: false, Error: "invalid request: " + err.Error()})
		return
	}

	weights := ws.resolveRequestWeights(req.Preset, req.Weights)
	inputs, locationID, err := resolveRequestInputs(req.Charity, req.Location, req.GrantSize, weights)
	if err != nil {
		writeJSON(w, APIMonteCarloResponse{Success: false, Error: err.Error()})
		return
	}

	trials := req.Trials
	if trials <= 0 {
		trials = 10000
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	writeJSON(w, APIMonteCarloResponse{
		Success:  true,
		Charity:  req.Charity,
		Location: locationID,
		Results:  RunCharityMonteCarlo(rng, inputs, trials),
	})
}

// handleSweep runs a moral-weight sensitivity sweep
func (ws *WebServer) handleSweep(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req APISweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, APISweepResponse{Success: false, Error: "invalid request: " + err.Error()})
		return
	}

	param, ok := ParseSweepParam(req.Parameter)
	if !ok {
		writeJSON(w, APISweepResponse{Success: false, Error: fmt.Sprintf("unknown sweep parameter %q", req.Parameter)})
		return
	}

	weights := ws.resolveRequestWeights(req.Preset, req.Weights)
	grantSize := req.GrantSize
	if grantSize <= 0 {
		grantSize = DefaultGrantSize
	}
	points := req.Points
	if points <= 0 {
		points = 21
	}

	writeJSON(w, APISweepResponse{
		Success:   true,
		Parameter: param.ID(),
		Label:     param.String(),
		Points:    RunSensitivitySweep(weights, param, grantSize, points),
	})
}
