package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/utils"
)

func pairingTestService(apiKey, baseURL string) *PairingService {
	utils.InitLogger()
	return &PairingService{
		config: PairingConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   "test-model",
		},
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestSuggestWithoutAPIKeyReturnsLocalizedFallback(t *testing.T) {
	svc := pairingTestService("", "http://unused")
	item := testMenuItem("1", 28, 19.80)

	assert.Equal(t,
		"API Key not configured. Please contact the administrator.",
		svc.Suggest(item, models.LangEnglish))
	assert.Equal(t,
		"مفتاح API غير مهيأ. يرجى الاتصال بالمسؤول.",
		svc.Suggest(item, models.LangArabic))
}

func TestSuggestReturnsUpstreamText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "test-model")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A crisp Vermentino."}]}}]}`))
	}))
	defer server.Close()

	svc := pairingTestService("key", server.URL)
	got := svc.Suggest(testMenuItem("1", 28, 19.80), models.LangEnglish)
	assert.Equal(t, "A crisp Vermentino.", got)
}

func TestSuggestFallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := pairingTestService("key", server.URL)
	got := svc.Suggest(testMenuItem("1", 28, 19.80), models.LangArabic)
	assert.Equal(t, "عذراً، لم نتمكن من جلب اقتراح في الوقت الحالي.", got)
}

func TestSuggestFallsBackOnEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	svc := pairingTestService("key", server.URL)
	got := svc.Suggest(testMenuItem("1", 28, 19.80), models.LangEnglish)
	assert.Equal(t, "Sorry, we couldn't fetch a suggestion at this time.", got)
}
