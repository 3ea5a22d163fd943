package bundlesync

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// mockTransport is a minimal http.RoundTripper double for exercising
// Client without network access, grounded on updater.MockHTTPTransport.
type mockTransport struct {
	responses map[string]*http.Response
}

func newMockTransport() *mockTransport {
	return &mockTransport{responses: make(map[string]*http.Response)}
}

func (m *mockTransport) addResponse(url string, statusCode int, body string) {
	m.responses[url] = &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if resp, ok := m.responses[req.URL.String()]; ok {
		return resp, nil
	}
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
		Body:       io.NopCloser(strings.NewReader("Not Found")),
		Header:     make(http.Header),
	}, nil
}
