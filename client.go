package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type (
	APIRecord struct {
		ID        int64     `json:"id"`
		Timestamp time.Time `json:"timestamp"`
		Kind      string    `json:"kind"`
	}

	Response struct {
		Success bool   `json:"success"`
		Code    string `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
		Data    any    `json:"data,omitempty"`
	}

	RecordsResponse struct {
		Total   int         `json:"total"`
		Records []APIRecord `json:"records"`
	}

	MarkImportedResponse struct {
		ImportedCount  int `json:"imported_count"`
		RemainingCount int `json:"remaining_count"`
	}
)

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// fetches all unimported records from the API
func (c *APIClient) GetUnimportedRecords() ([]APIRecord, error) {
	url := fmt.Sprintf("%s/api/records", c.baseURL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var errRes Response
		if err := json.NewDecoder(res.Body).Decode(&errRes); err != nil {
			return nil, fmt.Errorf("error decoding error response: %w", err)
		}
		return nil, fmt.Errorf("%s", errRes.Message)
	}

	var apiRes Response
	if err := json.NewDecoder(res.Body).Decode(&apiRes); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	if !apiRes.Success {
		return nil, fmt.Errorf("%s", apiRes.Message)
	}

	// the data field arrives as any, re-encode it into its concrete shape
	dataJSON, err := json.Marshal(apiRes.Data)
	if err != nil {
		return nil, fmt.Errorf("error re-encoding data: %w", err)
	}

	var recordsRes RecordsResponse
	if err := json.Unmarshal(dataJSON, &recordsRes); err != nil {
		return nil, fmt.Errorf("error decoding records data: %w", err)
	}

	return recordsRes.Records, nil
}

// send request to mark specified records as imported
func (c *APIClient) MarkRecordsAsImported(recordIDs []int64) (string, error) {
	url := fmt.Sprintf("%s/api/records/mark", c.baseURL)
	reqData := struct {
		RecordIDs []int64 `json:"record_ids"`
	}{RecordIDs: recordIDs}

	reqBody, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errRes Response
		if err := json.NewDecoder(resp.Body).Decode(&errRes); err != nil {
			return "", fmt.Errorf("error decoding error response: %w", err)
		}
		return "", fmt.Errorf("%s", errRes.Message)
	}

	var apiRes Response
	if err := json.NewDecoder(resp.Body).Decode(&apiRes); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	if !apiRes.Success {
		return "", fmt.Errorf("%s", apiRes.Message)
	}

	dataJSON, err := json.Marshal(apiRes.Data)
	if err != nil {
		return "", fmt.Errorf("error re-encoding data: %w", err)
	}

	var res MarkImportedResponse
	if err := json.Unmarshal(dataJSON, &res); err != nil {
		return "", fmt.Errorf("error decoding mark response data: %w", err)
	}
	return fmt.Sprintf("Successfully imported %d records, %d remaining.", res.ImportedCount, res.RemainingCount), nil
}
