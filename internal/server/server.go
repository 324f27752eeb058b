package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/forex-sim/internal/config"
	"github.com/iwvelando/forex-sim/internal/simulation"
	"github.com/iwvelando/forex-sim/pkg/constants"
	"github.com/iwvelando/forex-sim/pkg/format"
	"github.com/iwvelando/forex-sim/pkg/output"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and simulation API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Simulation API endpoint
	mux.HandleFunc("/api/simulate", h.handleSimulate)

	// Config serialization endpoint for downloads
	mux.HandleFunc("/api/export", h.handleConfigExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type simulateRequest struct {
	Budget                 float64          `json:"budget"`
	DirectRate             float64          `json:"directRate"`
	HomeToIntermediateRate float64          `json:"homeToIntermediateRate"`
	RateRange              rateRangePayload `json:"rateRange"`
}

type rateRangePayload struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type simulateResponse struct {
	Comparison     comparisonPayload `json:"comparison"`
	Chart          chartPayload      `json:"chart"`
	CSV            string            `json:"csv"`
	Recommendation string            `json:"recommendation"`
	Warnings       []string          `json:"warnings,omitempty"`
	Duration       string            `json:"duration"`
}

type comparisonPayload struct {
	RepresentativeRate                 float64  `json:"representativeRate"`
	DirectYield                        float64  `json:"directYield"`
	IntermediateAmount                 float64  `json:"intermediateAmount"`
	IndirectYield                      float64  `json:"indirectYield"`
	BreakEvenDirectRate                *float64 `json:"breakEvenDirectRate,omitempty"`
	BreakEvenIntermediateToForeignRate float64  `json:"breakEvenIntermediateToForeignRate"`
}

// chartPayload is the JSON form of the three chart pieces; it doubles as the
// CurveSink the curve renders into.
type chartPayload struct {
	ConstantLine   chartConstantLine `json:"constantLine"`
	Series         chartSeries       `json:"series"`
	VerticalMarker chartMarker       `json:"verticalMarker"`
}

type chartConstantLine struct {
	Label string  `json:"label"`
	Y     float64 `json:"y"`
}

type chartSeries struct {
	Label  string       `json:"label"`
	Points []chartPoint `json:"points"`
}

type chartPoint struct {
	Rate          float64 `json:"rate"`
	IndirectYield float64 `json:"indirectYield"`
}

type chartMarker struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
}

func (c *chartPayload) DrawConstantLine(label string, y float64) {
	c.ConstantLine = chartConstantLine{Label: label, Y: y}
}

func (c *chartPayload) DrawSeries(label string, points []simulation.CurvePoint) {
	series := chartSeries{Label: label, Points: make([]chartPoint, len(points))}
	for i, point := range points {
		series.Points[i] = chartPoint{Rate: point.Rate, IndirectYield: point.IndirectYield}
	}
	c.Series = series
}

func (c *chartPayload) DrawVerticalMarker(label string, x float64) {
	c.VerticalMarker = chartMarker{Label: label, X: x}
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	inputs := simulation.Inputs{
		Budget:                 req.Budget,
		DirectRate:             req.DirectRate,
		HomeToIntermediateRate: req.HomeToIntermediateRate,
	}
	rateRange := simulation.RateRange{Min: req.RateRange.Min, Max: req.RateRange.Max}

	representativeRate := rateRange.Midpoint()
	comparison, err := simulation.Compare(h.logger, inputs, representativeRate)
	if err != nil {
		h.respondSimulationError(w, err)
		return
	}

	curve, err := simulation.GenerateCurve(h.logger, inputs, rateRange)
	if err != nil {
		h.respondSimulationError(w, err)
		return
	}

	warnings := requestConfiguration(req).ValidateConfiguration()

	var chart chartPayload
	curve.Render(&chart,
		fmt.Sprintf("Direct home-to-foreign (%.0f)", curve.DirectYield),
		"Via intermediate currency",
		fmt.Sprintf("Break-even intermediate-to-foreign: %s", format.Rate(curve.BreakEvenRate)),
	)

	elapsed := time.Since(start)

	response := simulateResponse{
		Comparison: comparisonPayload{
			RepresentativeRate:                 representativeRate,
			DirectYield:                        comparison.DirectYield,
			IntermediateAmount:                 comparison.IntermediateAmount,
			IndirectYield:                      comparison.IndirectYield,
			BreakEvenDirectRate:                comparison.BreakEvenDirectRate,
			BreakEvenIntermediateToForeignRate: comparison.BreakEvenIntermediateToForeignRate,
		},
		Chart:          chart,
		CSV:            output.CsvString(curve),
		Recommendation: output.Recommendation(comparison),
		Warnings:       warnings,
		Duration:       elapsed.String(),
	}

	h.logger.Info("simulation computed",
		zap.String("op", "server.handleSimulate"),
		zap.Float64("representativeRate", representativeRate),
		zap.Int("samples", len(curve.Points)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	yamlBytes, err := yaml.Marshal(requestConfiguration(req))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func requestConfiguration(req simulateRequest) *config.Configuration {
	return &config.Configuration{
		Simulation: config.SimulationConfig{
			Budget:                 req.Budget,
			DirectRate:             req.DirectRate,
			HomeToIntermediateRate: req.HomeToIntermediateRate,
			RateRange: config.RateRangeConfig{
				Min: req.RateRange.Min,
				Max: req.RateRange.Max,
			},
		},
	}
}

func (h *handler) respondSimulationError(w http.ResponseWriter, err error) {
	if errors.Is(err, simulation.ErrInvalidInput) {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute simulation: %v", err))
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Error("simulation request failed",
		zap.String("op", "server.handleSimulate"),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
