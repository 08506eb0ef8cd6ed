package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"nest/internal/domains/booking/model/dto"
	"nest/transport/http/response"
)

func TestWithJSON_WrapsPayloadInDataEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"hello":"world"}}`, rec.Body.String())
}

func TestWithPayload_WritesBodyWithoutEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPayload(rec, http.StatusOK, dto.DeleteBookingResponse{
		Message: "Booking deleted successfully",
		Booking: dto.BookingResponse{ID: 42, Name: "Jane Roe", Status: "Confirmed"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage

	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "message")
	assert.Contains(t, body, "booking")
	assert.NotContains(t, body, "data")
}

func TestWithMessage_EmitsMessageOnly(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "done")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"done"}`, rec.Body.String())
}
