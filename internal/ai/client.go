// Package ai extracts structured shift drafts from free-form Italian text
// via the Gemini generateContent REST API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ffusco/turni/internal/config"
	"github.com/ffusco/turni/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrNoResult signals that the service produced nothing usable. The caller
// degrades to manual entry; this is never fatal.
var ErrNoResult = errors.New("ai: no usable result")

// Client calls the Gemini API. A Client with an empty API key is valid and
// reports itself as disabled.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: config.AITimeout,
		},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// ParseShift asks the model to extract shift details from text. The
// reference date anchors relative expressions like "domani". Fields the
// model does not return stay at their zero value in the draft; a type
// label outside the closed set is dropped.
func (c *Client) ParseShift(ctx context.Context, text, referenceDate string) (models.ShiftDraft, error) {
	if !c.Enabled() {
		return models.ShiftDraft{}, ErrNoResult
	}

	prompt := fmt.Sprintf(`Estrai i dettagli del turno da questo testo: %q. La data di riferimento è %s.
Se l'utente dice "domani", calcola la data basandoti sulla data di riferimento.
Cerca riferimenti a pause (es. "pausa pranzo di 30 minuti").
Se l'utente specifica solo un numero di ore (es. "8 ore di ferie") senza orario di inizio/fine, usa il campo 'customDuration'.
Restituisci un JSON valido che corrisponda allo schema.`, text, referenceDate)

	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   draftSchema(),
		},
	}

	raw, err := c.generateContent(ctx, reqBody)
	if err != nil {
		return models.ShiftDraft{}, err
	}

	var payload draftPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return models.ShiftDraft{}, fmt.Errorf("%w: %v", ErrNoResult, err)
	}
	return payload.toDraft(), nil
}

func (c *Client) generateContent(ctx context.Context, body generateContentRequest) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, config.AIModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoResult, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrNoResult, resp.StatusCode, msg)
	}

	var gcResp generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&gcResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoResult, err)
	}
	text := gcResp.text()
	if text == "" {
		return "", ErrNoResult
	}
	return text, nil
}
