package price

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lizzyPrice/internal/domain"
	"lizzyPrice/internal/mocks"
)

func newTestRouter(t *testing.T, uc *mocks.MockIPriceUseCase) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	New(uc, log).RegisterRoutes(r)

	return r
}

func TestSuggest_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPriceUseCase(ctrl)

	payload := domain.PricePayload{
		Status: http.StatusOK,
		Content: domain.PriceContent{
			Item:            "Chair",
			ItemCount:       3,
			PriceSuggestion: 50,
			City:            "Austin",
		},
	}

	// Параметры запроса передаются в usecase без изменений.
	uc.EXPECT().
		Suggest(gomock.Any(), "Chair", "Austin").
		Return(payload, nil)

	r := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/item-price-service/?item=Chair&city=Austin", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got domain.PricePayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, payload, got)
}

func TestSuggest_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPriceUseCase(ctrl)

	// HTTP-код ответа повторяет status из payload.
	uc.EXPECT().
		Suggest(gomock.Any(), "Chair", "Dallas").
		Return(domain.NotFoundPayload, nil)

	r := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/item-price-service/?item=Chair&city=Dallas", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var got domain.PricePayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "Not found", got.Content.Message)
}

func TestSuggest_NoQueryParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPriceUseCase(ctrl)

	// Отсутствующие параметры приходят в usecase пустыми строками.
	uc.EXPECT().
		Suggest(gomock.Any(), "", "").
		Return(domain.NotFoundPayload, nil)

	r := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/item-price-service/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggest_UseCaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPriceUseCase(ctrl)

	uc.EXPECT().
		Suggest(gomock.Any(), "Chair", "").
		Return(domain.PricePayload{}, errors.New("pg begin: connection refused"))

	r := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/item-price-service/?item=Chair", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.Error)
}
