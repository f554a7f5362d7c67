package copywriter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"postergen/internal/domain"
)

const geminiDefaultTimeout = 15 * time.Second

// GeminiOptions controls how the Gemini composer is configured.
type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Fallback   Composer
}

// GeminiComposer asks Gemini for poster copy. Any failure along the way
// (transport, status, payload shape) falls back to the chained composer so a
// poster always ships with usable copy.
type GeminiComposer struct {
	apiKey   string
	model    string
	baseURL  string
	client   *http.Client
	fallback Composer
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	CandidateCount   int     `json:"candidateCount,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiComposer(opts GeminiOptions) (*GeminiComposer, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = NewStaticComposer()
	}
	return &GeminiComposer{
		apiKey:   opts.APIKey,
		model:    model,
		baseURL:  baseURL,
		client:   client,
		fallback: fallback,
	}, nil
}

func (g *GeminiComposer) Compose(ctx context.Context, req Request) (*domain.Copy, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{{
				Text: buildCopyPrompt(req),
			}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      0.5,
			CandidateCount:   1,
			ResponseMimeType: "application/json",
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return g.fallback.Compose(ctx, req)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), &buf)
	if err != nil {
		return g.fallback.Compose(ctx, req)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return g.fallback.Compose(ctx, req)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return g.fallback.Compose(ctx, req)
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return g.fallback.Compose(ctx, req)
	}
	text := extractText(out)
	if text == "" {
		return g.fallback.Compose(ctx, req)
	}
	parsed, err := parseCopyPayload(text)
	if err != nil {
		return g.fallback.Compose(ctx, req)
	}
	return g.assemble(parsed, req), nil
}

// assemble fills any field the model omitted with the listing-derived
// defaults, so partial model output still yields a complete poster.
func (g *GeminiComposer) assemble(parsed modelCopyPayload, req Request) *domain.Copy {
	amenities := normalizeAmenities(parsed.Amenities)
	if len(amenities) == 0 {
		amenities = normalizeAmenities(req.Amenities)
	}
	if len(amenities) == 0 {
		amenities = defaultAmenities()
	}
	return &domain.Copy{
		Title:     coalesce(parsed.Title, "LUXURY REDEFINED"),
		Subline:   coalesce(parsed.Subline, "PREMIUM HOMES AT "+strings.ToUpper(req.Location)),
		Amenities: amenities,
		CTA:       strings.ToUpper(coalesce(parsed.CTA, "BOOK NOW")),
	}
}

func (g *GeminiComposer) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
}

func buildCopyPrompt(req Request) string {
	sb := &strings.Builder{}
	sb.WriteString("You are a senior real estate copywriter producing poster copy. ")
	sb.WriteString(`Respond strictly with JSON matching this schema: {"title":string,"subline":string,"amenities":string[],"cta":string}. `)
	fmt.Fprintf(sb, "Listing: property_type=%q, location=%q, price=%q, configuration=%q. ", req.PropertyType, req.Location, req.Price, req.BHK)
	fmt.Fprintf(sb, "Amenity keywords: %s. ", strings.Join(req.Amenities, ", "))
	sb.WriteString("Rules: title short and punchy, subline offer or location driven, at most 6 amenities of at most 3 words each, cta a short urgent phrase such as BOOK NOW, no full stops anywhere. ")
	if req.Locale != "" && req.Locale != "en" {
		fmt.Fprintf(sb, "Write the copy in locale '%s'. ", req.Locale)
	}
	return sb.String()
}

func extractText(resp geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

var _ Composer = (*GeminiComposer)(nil)
