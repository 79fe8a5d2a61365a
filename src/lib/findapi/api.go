package findapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gitlab.com/pnathan/kthsub/src/lib/log"
)

// InsertRequest carries strings to add, in order.
type InsertRequest struct {
	Strings []string `json:"strings"`
}

type InsertResponse struct {
	// Added is the number of distinct substrings the request contributed.
	Added int `json:"added"`
	// Size is the total after the request.
	Size int `json:"size"`
}

type FindResponse struct {
	Order     int    `json:"order"`
	Substring string `json:"substring"`
	Found     bool   `json:"found"`
}

type Statistics struct {
	// Strings counts distinct inserted strings.
	Strings    int `json:"strings"`
	Duplicates int `json:"duplicates"`
	Substrings int `json:"substrings"`
	// TotalLength sums the byte length of every insert, duplicates included.
	TotalLength int `json:"total_length"`
}

const (
	httpPutVerb = "PUT"
	httpGetVerb = "GET"
)

func httpMethod(method, addr string, text []byte) (*http.Response, error) {
	log.Debug("calling server", zap.String("method", method), zap.String("endpoint", addr))
	buf := bytes.NewBuffer(text)
	client := &http.Client{}
	req, err := http.NewRequest(method, addr, buf)
	if err != nil {
		log.Warn("http error", zap.Error(err), zap.String("host", addr))
		return nil, err
	}
	if text != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Warn("http error", zap.Error(err), zap.String("host", addr))
		return nil, err
	}

	return resp, nil
}

func decode(resp *http.Response, into any, addr string) error {
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(into); err != nil {
		log.Warn("decoding error", zap.Error(err), zap.String("address", addr))
		return fmt.Errorf("decoding response from %v: %w", addr, err)
	}
	return nil
}

// PutStrings inserts data.Strings at the server at addr.
func PutStrings(data *InsertRequest, addr string) (*InsertResponse, error) {
	text, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	formulatedAddress := fmt.Sprintf("%v/api/strings", addr)

	resp, err := httpMethod(httpPutVerb, formulatedAddress, text)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("bad request")
	default:
		return nil, fmt.Errorf("bad error code: %d", resp.StatusCode)
	}

	result := &InsertResponse{}
	if err := decode(resp, result, formulatedAddress); err != nil {
		return nil, err
	}
	return result, nil
}

// GetSubstring asks for the order-th substring. An out of range order is not
// an error: the response comes back with Found unset.
func GetSubstring(order int, addr string) (*FindResponse, error) {
	formulatedAddress := fmt.Sprintf("%v/api/substring/%d", addr, order)

	resp, err := httpMethod(httpGetVerb, formulatedAddress, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("bad request")
	default:
		return nil, fmt.Errorf("bad error code: %d", resp.StatusCode)
	}

	result := &FindResponse{}
	if err := decode(resp, result, formulatedAddress); err != nil {
		return nil, err
	}
	return result, nil
}

func GetStatistics(addr string) (*Statistics, error) {
	formulatedAddress := fmt.Sprintf("%v/api/statistics", addr)

	resp, err := httpMethod(httpGetVerb, formulatedAddress, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad error code: %d", resp.StatusCode)
	}

	result := &Statistics{}
	if err := decode(resp, result, formulatedAddress); err != nil {
		return nil, err
	}
	return result, nil
}
