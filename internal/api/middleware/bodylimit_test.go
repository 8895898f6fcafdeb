package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyLimit(t *testing.T) {
	var readErr error
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	h := BodyLimit(16)(inner)

	// тело в пределах лимита читается целиком
	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader("short body"))
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.NoError(t, readErr)

	// превышение лимита - ошибка чтения в хендлере
	req = httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(strings.Repeat("x", 64)))
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.Error(t, readErr)

	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxBytesErr)
}
