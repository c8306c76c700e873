package elastic

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	esDoc "monad-feedback/internal/types/elastic"
	myErr "monad-feedback/internal/types/errors"
)

type mockTransport struct {
	RoundTripFn func(req *http.Request) (*http.Response, error)
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFn(req)
}

func setupTestService(t *testing.T, transport http.RoundTripper) *ElasticService {
	t.Helper()
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Transport: transport,
	})
	assert.NoError(t, err)

	logger := zaptest.NewLogger(t).Sugar()

	return NewService(client, logger, "test-index")
}

func elasticOKResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"X-Elastic-Product": []string{"Elasticsearch"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testDoc(id string) esDoc.FeedbackDoc {
	return esDoc.FeedbackDoc{
		ID:                  id,
		Text:                "network feels snappy today",
		Category:            "speed_performance",
		XHandle:             "handle",
		AnonymizedTimestamp: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestIndexFeedback(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		doc         esDoc.FeedbackDoc
		mockFn      func(req *http.Request) (*http.Response, error)
		expectedErr error
	}{
		{
			name: "successful indexing",
			doc:  testDoc("test-id"),
			mockFn: func(req *http.Request) (*http.Response, error) {
				if req.Method == "GET" && req.URL.Path == "/_cluster/health" {
					return elasticOKResponse(`{"status":"green"}`), nil
				}

				return elasticOKResponse(`{}`), nil
			},
			expectedErr: nil,
		},
		{
			name: "elasticsearch error",
			doc:  testDoc("test-id"),
			mockFn: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(strings.NewReader(`{"error": "server error"}`)),
				}, nil
			},
			expectedErr: myErr.ErrIndexing,
		},
		{
			name: "request error",
			doc:  testDoc("test-id"),
			mockFn: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection error")
			},
			expectedErr: errors.New("connection error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &mockTransport{
				RoundTripFn: tt.mockFn,
			}

			service := setupTestService(t, transport)
			err := service.IndexFeedback(context.Background(), tt.doc)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBulkIndexFeedback(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		docs        []esDoc.FeedbackDoc
		mockFn      func(req *http.Request) (*http.Response, error)
		expectedErr error
	}{
		{
			name: "successful bulk indexing",
			docs: []esDoc.FeedbackDoc{testDoc("test-id-1"), testDoc("test-id-2")},
			mockFn: func(req *http.Request) (*http.Response, error) {
				if req.Method == "GET" && req.URL.Path == "/_cluster/health" {
					return elasticOKResponse(`{"status":"green"}`), nil
				}

				body, err := io.ReadAll(req.Body)
				assert.NoError(t, err)
				assert.Contains(t, string(body), `"_id":"test-id-1"`)
				assert.Contains(t, string(body), `"_id":"test-id-2"`)
				return elasticOKResponse(`{}`), nil
			},
			expectedErr: nil,
		},
		{
			name: "empty docs array",
			docs: []esDoc.FeedbackDoc{},
			mockFn: func(req *http.Request) (*http.Response, error) {
				t.Error("Request should not be made for empty docs")
				return nil, nil
			},
			expectedErr: nil,
		},
		{
			name: "bulk request error",
			docs: []esDoc.FeedbackDoc{testDoc("test-id-1")},
			mockFn: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("bulk request failed")
			},
			expectedErr: errors.New("bulk request failed"),
		},
		{
			name: "bulk response error",
			docs: []esDoc.FeedbackDoc{testDoc("test-id-1")},
			mockFn: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(strings.NewReader(`{"error": "bulk error"}`)),
				}, nil
			},
			expectedErr: myErr.ErrIndexing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &mockTransport{
				RoundTripFn: tt.mockFn,
			}

			service := setupTestService(t, transport)
			err := service.BulkIndex(context.Background(), tt.docs)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchByText(t *testing.T) {
	t.Parallel()

	t.Run("returns hits", func(t *testing.T) {
		transport := &mockTransport{
			RoundTripFn: func(req *http.Request) (*http.Response, error) {
				if req.Method == "GET" && req.URL.Path == "/_cluster/health" {
					return elasticOKResponse(`{"status":"green"}`), nil
				}

				body, err := io.ReadAll(req.Body)
				assert.NoError(t, err)
				assert.Contains(t, string(body), `"fuzziness":"AUTO"`)

				return elasticOKResponse(`{
					"hits": {"hits": [
						{"_source": {"id": "f1", "text": "network feels snappy today", "category": "speed_performance"}}
					]}
				}`), nil
			},
		}

		service := setupTestService(t, transport)
		docs, err := service.SearchByText(context.Background(), "snappy")
		assert.NoError(t, err)
		assert.Len(t, docs, 1)
		assert.Equal(t, "f1", docs[0].ID)
	})

	t.Run("search error", func(t *testing.T) {
		transport := &mockTransport{
			RoundTripFn: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(strings.NewReader(`{"error": "search error"}`)),
				}, nil
			},
		}

		service := setupTestService(t, transport)
		_, err := service.SearchByText(context.Background(), "anything")
		assert.ErrorIs(t, err, myErr.ErrSearch)
	})
}
