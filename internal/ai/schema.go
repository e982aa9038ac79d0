package ai

import "github.com/ffusco/turni/internal/models"

// Request/response shapes for the generateContent endpoint. Only the
// fields this client uses are modeled.

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string      `json:"responseMimeType"`
	ResponseSchema   schemaValue `json:"responseSchema"`
}

type schemaValue struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Enum        []string               `json:"enum,omitempty"`
	Properties  map[string]schemaValue `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r generateContentResponse) text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

// draftSchema constrains the model to a JSON object matching draftPayload.
func draftSchema() schemaValue {
	labels := make([]string, len(models.ShiftTypes))
	for i, t := range models.ShiftTypes {
		labels[i] = string(t)
	}
	return schemaValue{
		Type: "OBJECT",
		Properties: map[string]schemaValue{
			"date":           {Type: "STRING", Description: "Formato YYYY-MM-DD"},
			"startTime":      {Type: "STRING", Description: "Formato 24 ore HH:mm, stringa vuota se customDuration è usato"},
			"endTime":        {Type: "STRING", Description: "Formato 24 ore HH:mm, stringa vuota se customDuration è usato"},
			"type":           {Type: "STRING", Enum: labels, Description: "La categoria del turno"},
			"description":    {Type: "STRING", Description: "Breve descrizione dell'evento"},
			"breakMinutes":   {Type: "INTEGER", Description: "Durata della pausa in minuti (default 0)"},
			"customDuration": {Type: "NUMBER", Description: "Durata totale in ore se non ci sono orari specifici (es. 8)"},
		},
		Required: []string{"type"},
	}
}

// draftPayload is the JSON object the model returns.
type draftPayload struct {
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	BreakMinutes   *int     `json:"breakMinutes"`
	CustomDuration *float64 `json:"customDuration"`
}

// toDraft validates the payload against the domain model. An unknown type
// label is silently dropped; a declared duration suppresses the start/end
// pair, mirroring the storage invariant.
func (p draftPayload) toDraft() models.ShiftDraft {
	d := models.ShiftDraft{
		Date:           p.Date,
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		Description:    p.Description,
		BreakMinutes:   p.BreakMinutes,
		CustomDuration: p.CustomDuration,
	}
	if t, ok := models.ParseShiftType(p.Type); ok {
		d.Type = t
	}
	if d.HasDuration() {
		d.StartTime = ""
		d.EndTime = ""
	}
	return d
}
