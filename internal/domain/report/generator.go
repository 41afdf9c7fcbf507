package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Request describes the report to generate.
type Request struct {
	PatientID   string                 `json:"patientId"`
	PatientName string                 `json:"patientName"`
	ReportType  string                 `json:"reportType"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// Generator produces report text from clinical inputs. Implementations are
// opaque to the service; failures surface as upstream errors.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// TemplateGenerator renders a plain-text report locally. It is the fallback
// when no external generation service is configured.
type TemplateGenerator struct{}

func (TemplateGenerator) Generate(_ context.Context, req Request) (string, error) {
	reportType := req.ReportType
	if reportType == "" {
		reportType = "progress"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Clinical %s report\n", reportType)
	fmt.Fprintf(&b, "Patient: %s\n", req.PatientName)
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02"))
	if len(req.Data) > 0 {
		b.WriteString("\nFindings:\n")
		for key, value := range req.Data {
			fmt.Fprintf(&b, "- %s: %v\n", key, value)
		}
	}
	return b.String(), nil
}

// HTTPGenerator delegates report text to an external generation service.
type HTTPGenerator struct {
	url    string
	apiKey string
	client *http.Client
	log    zerolog.Logger
}

func NewHTTPGenerator(url, apiKey string, log zerolog.Logger) *HTTPGenerator {
	return &HTTPGenerator{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

func (g *HTTPGenerator) Generate(ctx context.Context, req Request) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding report request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building report request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling report service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Warn().Int("status", resp.StatusCode).Str("url", g.url).Msg("report service returned non-200")
		return "", fmt.Errorf("report service returned status %d", resp.StatusCode)
	}

	var out struct {
		Report string `json:"report"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding report response: %w", err)
	}
	return out.Report, nil
}
