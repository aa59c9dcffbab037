/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package generate invokes the Gemini structured-output endpoint and parses
// responses into the typed content shapes. It owns prompt construction per
// mode, credential resolution, and the mapping of backend failures onto the
// package's sentinel errors.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"

	"mindflow.dev/mindflow/content"
	"mindflow.dev/mindflow/credentials"
	"mindflow.dev/mindflow/metrics"
	"mindflow.dev/mindflow/result"
	"mindflow.dev/mindflow/schemas"
)

const (
	defaultModel = "gemini-2.5-flash"
	// A smaller model keeps autosuggest latency interactive.
	defaultSuggestionModel = "gemini-2.5-flash-lite"

	defaultMaxOutputTokens = 8192
	suggestionMaxTokens    = 100
)

// Generator is the minimal surface of the generative backend the client
// depends on. The production implementation wraps genai.Client; tests
// substitute fakes.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeneratorFactory constructs a Generator for the given API key. A factory
// rather than a fixed Generator because the key is resolved per call and
// may change between calls via the credential provider.
type GeneratorFactory func(ctx context.Context, apiKey string) (Generator, error)

// Client generates study material through the Gemini API.
type Client struct {
	creds           credentials.Provider
	model           string
	suggestionModel string
	maxOutputTokens int32
	tempOverride    *float32
	strict          bool
	httpClient      *http.Client
	factory         GeneratorFactory
	genaiMetrics    *metrics.GenAI
}

// Option configures a Client.
type Option func(*Client) error

// WithModel sets the model used for full generation requests.
func WithModel(model string) Option {
	return func(c *Client) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		c.model = model
		return nil
	}
}

// WithSuggestionModel sets the model used for autosuggest requests.
func WithSuggestionModel(model string) Option {
	return func(c *Client) error {
		if model == "" {
			return errors.New("suggestion model cannot be empty")
		}
		c.suggestionModel = model
		return nil
	}
}

// WithMaxOutputTokens caps the output size of full generation requests.
func WithMaxOutputTokens(tokens int32) Option {
	return func(c *Client) error {
		if tokens <= 0 {
			return fmt.Errorf("max output tokens must be positive, got %d", tokens)
		}
		c.maxOutputTokens = tokens
		return nil
	}
}

// WithTemperatureOverride pins the sampling temperature for all modes,
// replacing the per-mode defaults.
func WithTemperatureOverride(t float32) Option {
	return func(c *Client) error {
		if t < 0 || t > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %v", t)
		}
		c.tempOverride = &t
		return nil
	}
}

// WithStrictValidation enables the deep structural validation gate on
// parsed payloads. Without it only JSON parsing and the always-on repairs
// (chart consistency, segment ids) guard the response.
func WithStrictValidation() Option {
	return func(c *Client) error {
		c.strict = true
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for backend calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithGeneratorFactory replaces the backend constructor. Tests use this to
// observe or fake network traffic.
func WithGeneratorFactory(f GeneratorFactory) Option {
	return func(c *Client) error {
		if f == nil {
			return errors.New("generator factory cannot be nil")
		}
		c.factory = f
		return nil
	}
}

// New creates a Client reading its API key from the given provider.
func New(creds credentials.Provider, options ...Option) (*Client, error) {
	if creds == nil {
		return nil, errors.New("credential provider is required")
	}
	c := &Client{
		creds:           creds,
		model:           defaultModel,
		suggestionModel: defaultSuggestionModel,
		maxOutputTokens: defaultMaxOutputTokens,
		genaiMetrics:    metrics.NewGenAI("mindflow.genai"),
	}
	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if c.factory == nil {
		c.factory = c.newGenaiGenerator
	}
	return c, nil
}

func (c *Client) newGenaiGenerator(ctx context.Context, apiKey string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return genaiGenerator{client: client}, nil
}

type genaiGenerator struct {
	client *genai.Client
}

func (g genaiGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.client.Models.GenerateContent(ctx, model, contents, config)
}

// Generate produces the typed content for userText in the given mode.
//
// Fails fast with ErrMissingCredential before any network call when no API
// key is available, and with ErrInvalidInput for blank text. Backend and
// parse failures are wrapped (ErrEmptyResponse, ErrMalformedResponse) and
// never retried here; the caller decides whether to re-request.
func (c *Client) Generate(ctx context.Context, userText string, mode content.Mode) (*content.Variant, error) {
	log := clog.FromContext(ctx)

	key, err := c.creds.APIKey(ctx)
	if err != nil || key == "" {
		return nil, ErrMissingCredential
	}

	req, err := BuildRequest(userText, mode)
	if err != nil {
		return nil, err
	}

	gen, err := c.factory(ctx, key)
	if err != nil {
		return nil, err
	}

	temperature := req.Sampling.Temperature
	if c.tempOverride != nil {
		temperature = *c.tempOverride
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
		Temperature:      genai.Ptr(temperature),
		MaxOutputTokens:  c.maxOutputTokens,
	}
	if req.Sampling.WebGrounding {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	log.With("model", c.model).With("mode", mode).Info("Requesting structured generation")
	resp, err := gen.GenerateContent(ctx, c.model, genai.Text(req.Instruction), config)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}
	c.recordUsage(ctx, mode, resp)

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	variant, err := decode(mode, text)
	if err != nil {
		log.With("error", err).Error("Failed to parse generated content")
		// The reflected contract makes drifted payloads diagnosable from
		// logs alone.
		if contract, merr := json.Marshal(schemas.Descriptor(mode)); merr == nil {
			log.With("contract", string(contract)).Debug("Expected response contract")
		}
		return nil, err
	}

	variant.Repair()
	if c.strict {
		if err := schemas.Validate(variant); err != nil {
			return nil, err
		}
	}
	return variant, nil
}

// decode parses the response text into the member selected by mode. Unknown
// modes decode as study guides, matching BuildRequest's fallback.
func decode(mode content.Mode, text string) (*content.Variant, error) {
	v := &content.Variant{Mode: mode}
	var err error
	switch mode {
	case content.ModeTeacher:
		var tc content.TeacherContent
		if tc, err = result.Extract[content.TeacherContent](text); err == nil {
			v.Teacher = &tc
		}
	case content.ModeGrammar:
		var ga content.GrammarAnalysis
		if ga, err = result.Extract[content.GrammarAnalysis](text); err == nil {
			v.Grammar = &ga
		}
	case content.ModeSearch:
		var sr content.SearchResult
		if sr, err = result.Extract[content.SearchResult](text); err == nil {
			v.Search = &sr
		}
	default:
		var sg content.StudyGuide
		if sg, err = result.Extract[content.StudyGuide](text); err == nil {
			v.StudyGuide = &sg
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return v, nil
}

func (c *Client) recordUsage(ctx context.Context, mode content.Mode, resp *genai.GenerateContentResponse) {
	if resp == nil || resp.UsageMetadata == nil {
		return
	}
	c.genaiMetrics.RecordTokens(ctx, c.model, string(mode),
		int64(resp.UsageMetadata.PromptTokenCount),
		int64(resp.UsageMetadata.CandidatesTokenCount))
}
