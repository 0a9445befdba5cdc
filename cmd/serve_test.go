package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/rhythmdex/model"
	"github.com/stretchr/testify/assert"
)

func createAnalyzeReqBody(t *testing.T, onsets []float64) io.Reader {
	body := model.AnalyzeRequestBody{Onsets: onsets}
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("could not marshal request body: %v", err)
	}
	return bytes.NewReader(data)
}

func TestHandleAnalyzeBasic(t *testing.T) {
	body := createAnalyzeReqBody(t, []float64{0, 100, 200, 450, 700})
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	HandleAnalyze(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var analyzeResponse model.AnalyzeResponse
	err := json.Unmarshal(respBody, &analyzeResponse)
	assert.NoError(err)

	assert.NotEmpty(analyzeResponse.Id)
	assert.Equal(5, analyzeResponse.NumEvents)
	assert.Equal(2, len(analyzeResponse.Groups))

	first := analyzeResponse.Groups[0]
	assert.Equal(3, first.NumEvents)
	assert.Equal(0.0, first.StartTime)
	assert.NotNil(first.EventInterval)
	assert.Equal(100.0, *first.EventInterval)
	assert.Equal(1.0, first.EventIntervalRatio)
	assert.Nil(first.StartTimeInterval)

	second := analyzeResponse.Groups[1]
	assert.Equal(2, second.NumEvents)
	assert.Equal(450.0, second.StartTime)
	assert.NotNil(second.EventInterval)
	assert.Equal(250.0, *second.EventInterval)
	assert.Equal(2.5, second.EventIntervalRatio)
	assert.NotNil(second.StartTimeInterval)
	assert.Equal(450.0, *second.StartTimeInterval)
}

func TestHandleAnalyzeEmptyOnsets(t *testing.T) {
	body := createAnalyzeReqBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	HandleAnalyze(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errorResponse model.ErrorResponse
	assert.NoError(json.Unmarshal(respBody, &errorResponse))
	assert.NotEmpty(errorResponse.Error)
}

func TestHandleAnalyzeBadJson(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	HandleAnalyze(w, req)

	assert.Equal(t, 400, w.Result().StatusCode)
}
