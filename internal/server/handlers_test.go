package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"targetcheck/internal/common"
	"targetcheck/internal/entity"
	"targetcheck/internal/validation"
	"targetcheck/internal/verifier"
)

type stubVerifier struct {
	verdict verifier.Verdict
	err     error
}

func (s *stubVerifier) Verify(_ context.Context, _ verifier.VerifyRequest) (verifier.Verdict, []byte, error) {
	return s.verdict, nil, s.err
}

func newTestRouter(v verifier.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := validation.NewService(nil, v, nil)
	return NewRouter(NewHandler(svc, nil))
}

func postValidate(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validBody() ValidateRequest {
	return ValidateRequest{
		DocumentText: "AM: ASHISH BHATT\nCustomer: A M AUTO SALES\nBRAKE PARTS 12,50,000",
		Expected: entity.ExpectedRecord{
			AgentName:    "ASHISH BHATT",
			CustomerName: "A M AUTO SALES",
			Targets:      []entity.TargetLine{{ProductLabel: "BRAKE PARTS", TargetAmount: 1250000}},
		},
	}
}

func TestHandleValidateOK(t *testing.T) {
	router := newTestRouter(&stubVerifier{verdict: verifier.Verdict{IsValid: true, Mismatches: []entity.FieldMismatch{}}})

	w := postValidate(t, router, validBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.IsValid)
	assert.Empty(t, resp.Mismatches)
}

func TestHandleValidateMismatch(t *testing.T) {
	router := newTestRouter(&stubVerifier{verdict: verifier.Verdict{
		IsValid: false,
		Message: "brake parts target differs",
		Mismatches: []entity.FieldMismatch{
			{Field: "BRAKE PARTS", ExpectedValue: "1250000", PdfValue: "9999999", Reason: "target differs"},
		},
	}})

	w := postValidate(t, router, validBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.IsValid)
	require.Len(t, resp.Mismatches, 1)
	assert.Equal(t, "BRAKE PARTS", resp.Mismatches[0].Field)
}

func TestHandleValidateBadRequest(t *testing.T) {
	router := newTestRouter(&stubVerifier{})

	// no expected record
	w := postValidate(t, router, ValidateRequest{DocumentText: "some text"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// not JSON at all
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader([]byte("not json")))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleValidateTransportFailure(t *testing.T) {
	router := newTestRouter(&stubVerifier{err: common.WrapError(common.ErrTransport, "verify")})

	w := postValidate(t, router, validBody())
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Mismatches)
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(&stubVerifier{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
