package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tair/price-list/internal/catalog/cache"
	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/repository"
	"github.com/tair/price-list/internal/catalog/store"
	"github.com/tair/price-list/internal/catalog/view"
)

type capturingNotifier struct {
	changes []domain.Change
}

func (n *capturingNotifier) NotifyChange(_ context.Context, change domain.Change) error {
	n.changes = append(n.changes, change)
	return nil
}

func TestInitializeServiceServesCatalog(t *testing.T) {
	ctx := context.Background()
	notifier := &capturingNotifier{}

	svc, err := InitializeService(
		repository.NewProductRepositoryWithTracing(repository.NewMemoryProductRepository()),
		repository.NewCategoryRepositoryWithTracing(repository.NewMemoryCategoryRepository()),
		cache.Noop{},
		notifier,
		store.Config{InstanceID: "replica-a"},
		view.NewEngine(language.Indonesian),
		prometheus.NewRegistry(),
	)
	require.NoError(t, err)

	def, err := svc.Store.EnsureDefaultCategory(ctx)
	require.NoError(t, err)

	router := mux.NewRouter()
	svc.Handler.RegisterRoutes(router)

	body := `{"name":"Minyak Goreng","price":32000,"categoryId":"` + def.ID + `"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products?search=minyak", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Products []domain.Product `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Products, 1)

	require.Len(t, notifier.changes, 2)
	assert.Equal(t, domain.EntityCategory, notifier.changes[0].Entity)
	assert.Equal(t, domain.EntityProduct, notifier.changes[1].Entity)
	assert.Equal(t, "replica-a", notifier.changes[1].Origin)
}
