package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/astrenrest/storefront/config"
	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/utils"
)

// PairingConfig holds the pairing suggestion API configuration.
type PairingConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// PairingService asks an external text-generation API for a drink
// pairing to go with a dish. It is a pure enrichment: any failure
// degrades to a fixed localized string and nothing else in the system
// depends on the result.
type PairingService struct {
	config     PairingConfig
	httpClient *http.Client
}

func NewPairingService(cfg config.Config) *PairingService {
	return &PairingService{
		config: PairingConfig{
			APIKey:  cfg.PairingAPIKey,
			BaseURL: cfg.PairingBaseURL,
			Model:   "gemini-2.5-flash",
		},
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

var pairingFallbacks = map[string]models.LocalizedText{
	"unconfigured": {
		En: "API Key not configured. Please contact the administrator.",
		Ar: "مفتاح API غير مهيأ. يرجى الاتصال بالمسؤول.",
	},
	"unavailable": {
		En: "Sorry, we couldn't fetch a suggestion at this time.",
		Ar: "عذراً، لم نتمكن من جلب اقتراح في الوقت الحالي.",
	},
}

type pairingPart struct {
	Text string `json:"text"`
}

type pairingContent struct {
	Parts []pairingPart `json:"parts"`
}

type generateRequest struct {
	Contents []pairingContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content pairingContent `json:"content"`
	} `json:"candidates"`
}

func pairingPrompt(item models.MenuItem, lang models.Language) string {
	language := "English"
	if lang == models.LangArabic {
		language = "Arabic"
	}
	return fmt.Sprintf(
		"You are a world-class sommelier for a luxurious restaurant. For the dish %q: %q, recommend a perfect wine or cocktail pairing. Keep the description brief, elegant, and enticing (max 30 words). Respond in %s.",
		item.Name.In(lang), item.Description.In(lang), language,
	)
}

// Suggest returns a pairing suggestion for the dish in the requested
// language. A missing key or any request failure yields the localized
// fallback text, never an error.
func (p *PairingService) Suggest(item models.MenuItem, lang models.Language) string {
	if p.config.APIKey == "" {
		return pairingFallbacks["unconfigured"].In(lang)
	}

	req := generateRequest{
		Contents: []pairingContent{
			{Parts: []pairingPart{{Text: pairingPrompt(item, lang)}}},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		utils.ErrorLogger.Printf("Could not encode pairing request: %v", err)
		return pairingFallbacks["unavailable"].In(lang)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", p.config.BaseURL, p.config.Model, p.config.APIKey)
	resp, err := p.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		utils.ErrorLogger.Printf("Pairing suggestion request failed: %v", err)
		return pairingFallbacks["unavailable"].In(lang)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.ErrorLogger.Printf("Pairing suggestion API returned %d", resp.StatusCode)
		return pairingFallbacks["unavailable"].In(lang)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		utils.ErrorLogger.Printf("Could not decode pairing response: %v", err)
		return pairingFallbacks["unavailable"].In(lang)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return pairingFallbacks["unavailable"].In(lang)
	}
	return out.Candidates[0].Content.Parts[0].Text
}
