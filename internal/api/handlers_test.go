package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutridiary/backend/internal/dateutil"
	"github.com/nutridiary/backend/internal/model"
	"github.com/nutridiary/backend/internal/nutrition"
	"github.com/nutridiary/backend/internal/service"
	"github.com/nutridiary/backend/internal/storage"
)

var testTargets = nutrition.Targets{Calories: 2200, Protein: 137.5, Carbs: 330, Fat: 36.7, Fibre: 30}

type testAPI struct {
	router  *gin.Engine
	logs    *service.LogService
	weights *service.WeightService
}

func newTestAPI(t *testing.T, allowPastAdd bool) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.FoodProfile{}))

	ctx := context.Background()
	catalog := service.NewCatalogService(db)
	require.NoError(t, catalog.Seed(ctx))

	store := storage.NewMemoryStore()
	logs, err := service.NewLogService(ctx, store, allowPastAdd)
	require.NoError(t, err)
	weights := service.NewWeightService(ctx, store)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewLogHandler(logs, catalog, testTargets).RegisterRoutes(v1)
	NewCatalogHandler(catalog).RegisterRoutes(v1)
	NewWeightHandler(weights).RegisterRoutes(v1)

	return &testAPI{router: router, logs: logs, weights: weights}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestSearchFoodsEndpoint(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodGet, "/api/v1/catalog/foods?q=banana", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Foods []model.FoodProfile `json:"foods"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Foods, 1)
	assert.Equal(t, "Banana (raw)", resp.Foods[0].Name)
}

func TestSearchFoodsEmptyQuery(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodGet, "/api/v1/catalog/foods", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Foods []model.FoodProfile `json:"foods"`
	}
	decode(t, w, &resp)
	assert.Empty(t, resp.Foods)
}

func TestSuggestionsEndpoint(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodGet, "/api/v1/catalog/suggestions/Breakfast", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Foods []model.FoodProfile `json:"foods"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Foods)

	w = a.do(t, http.MethodGet, "/api/v1/catalog/suggestions/Brunch", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAddEntryFromCatalog(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPost, "/api/v1/log/"+today+"/entries", EntryRequest{
		MealType: "Breakfast",
		FoodName: "Apple (raw)",
		Quantity: 150,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var entry model.LoggedEntry
	decode(t, w, &entry)
	assert.Equal(t, 78, entry.Calories)
	assert.Equal(t, "g", entry.Unit)
	assert.NotEmpty(t, entry.ID)
	assert.NotEmpty(t, entry.ImageURL)
}

func TestAddEntryCustomFood(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPost, "/api/v1/log/"+today+"/entries", EntryRequest{
		MealType: "Dinner",
		FoodName: "Homemade Soup",
		Unit:     "bowl",
		Quantity: 2,
		PerUnit:  &PerUnitRequest{Calories: 80, Protein: 3.5, Carbs: 12, Fat: 2.1, Fibre: 1.2},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var entry model.LoggedEntry
	decode(t, w, &entry)
	assert.Equal(t, 160, entry.Calories)
	assert.Equal(t, "bowl", entry.Unit)
}

func TestAddEntryUnknownFood(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPost, "/api/v1/log/"+today+"/entries", EntryRequest{
		MealType: "Lunch",
		FoodName: "Unobtainium",
		Quantity: 100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAddEntryPastDateRejected(t *testing.T) {
	a := newTestAPI(t, false)
	yesterday, err := dateutil.AddDays(a.logs.Now(), -1)
	require.NoError(t, err)

	w := a.do(t, http.MethodPost, "/api/v1/log/"+yesterday+"/entries", EntryRequest{
		MealType: "Lunch",
		FoodName: "Apple (raw)",
		Quantity: 100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetDayWithTotalsAndProgress(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPost, "/api/v1/log/"+today+"/entries", EntryRequest{
		MealType: "Breakfast",
		FoodName: "Apple (raw)",
		Quantity: 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/log/"+today, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date     string               `json:"date"`
		Meals    []MealGroup          `json:"meals"`
		Entries  []model.LoggedEntry  `json:"entries"`
		Totals   model.NutrientTotals `json:"totals"`
		Progress []nutrition.Progress `json:"progress"`
	}
	decode(t, w, &resp)
	assert.Equal(t, today, resp.Date)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, 78, resp.Totals.Calories)
	require.Len(t, resp.Progress, 5)
	assert.Equal(t, "Calories", resp.Progress[0].Label)

	// One group per meal slot, in display order; the entry sits in Breakfast.
	require.Len(t, resp.Meals, len(model.MealTypes))
	assert.Equal(t, model.MealBreakfast, resp.Meals[0].MealType)
	assert.Len(t, resp.Meals[0].Entries, 1)
	assert.Empty(t, resp.Meals[1].Entries)
}

func TestGetDayInvalidDate(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodGet, "/api/v1/log/tomorrow", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditEntryEndpoint(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPost, "/api/v1/log/"+today+"/entries", EntryRequest{
		MealType: "Breakfast",
		FoodName: "Apple (raw)",
		Quantity: 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var entry model.LoggedEntry
	decode(t, w, &entry)

	w = a.do(t, http.MethodPut, fmt.Sprintf("/api/v1/log/%s/entries/%s", today, entry.ID), EntryRequest{
		MealType: "Breakfast",
		FoodName: "Apple (raw)",
		Unit:     "100g",
		Quantity: 300,
		PerUnit:  &PerUnitRequest{Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Fibre: 2.4},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var edited model.LoggedEntry
	decode(t, w, &edited)
	assert.Equal(t, entry.ID, edited.ID)
	assert.Equal(t, 156, edited.Calories)
}

func TestEditEntryRequiresPerUnit(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPut, "/api/v1/log/"+today+"/entries/some-id", EntryRequest{
		MealType: "Breakfast",
		FoodName: "Apple (raw)",
		Quantity: 100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestEditEntryUnknownID(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPut, "/api/v1/log/"+today+"/entries/missing", EntryRequest{
		MealType: "Breakfast",
		FoodName: "Apple (raw)",
		Unit:     "100g",
		Quantity: 100,
		PerUnit:  &PerUnitRequest{Calories: 52},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEntryEndpoint(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPost, "/api/v1/log/"+today+"/entries", EntryRequest{
		MealType: "Breakfast",
		FoodName: "Apple (raw)",
		Quantity: 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var entry model.LoggedEntry
	decode(t, w, &entry)

	w = a.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/log/%s/entries/%s", today, entry.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, a.logs.Entries(today))

	// Deleting again is still a no-op success.
	w = a.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/log/%s/entries/%s", today, entry.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCopyDayEndpoint(t *testing.T) {
	a := newTestAPI(t, true)
	today := a.logs.Now()
	yesterday, err := dateutil.AddDays(today, -1)
	require.NoError(t, err)

	w := a.do(t, http.MethodPost, "/api/v1/log/"+yesterday+"/entries", EntryRequest{
		MealType: "Lunch",
		FoodName: "Apple (raw)",
		Quantity: 100,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/log/copy", CopyDayRequest{
		SourceDate: yesterday,
		TargetDate: today,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		TargetDate string              `json:"target_date"`
		Entries    []model.LoggedEntry `json:"entries"`
	}
	decode(t, w, &resp)
	assert.Equal(t, today, resp.TargetDate)
	require.Len(t, resp.Entries, 1)
}

func TestCopyDayEmptySource(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()
	yesterday, err := dateutil.AddDays(today, -1)
	require.NoError(t, err)

	w := a.do(t, http.MethodPost, "/api/v1/log/copy", CopyDayRequest{
		SourceDate: yesterday,
		TargetDate: today,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestWindowEndpoint(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodGet, "/api/v1/log/window", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Today  string   `json:"today"`
		Oldest string   `json:"oldest"`
		Days   []string `json:"days"`
	}
	decode(t, w, &resp)
	assert.Equal(t, a.logs.Now(), resp.Today)
	require.Len(t, resp.Days, dateutil.LogWindowDays)
	assert.Equal(t, resp.Oldest, resp.Days[0])
	assert.Equal(t, resp.Today, resp.Days[len(resp.Days)-1])
}

func TestWeeklySummaryEndpoint(t *testing.T) {
	a := newTestAPI(t, false)
	today := a.logs.Now()

	w := a.do(t, http.MethodPost, "/api/v1/log/"+today+"/entries", EntryRequest{
		MealType: "Breakfast",
		FoodName: "Apple (raw)",
		Quantity: 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/log/week/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Days    []service.DayCalories `json:"days"`
		Average float64               `json:"average"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, 78, resp.Days[6].Calories)
	assert.InDelta(t, 78.0/7, resp.Average, 1e-9)
}

func TestTargetsEndpoint(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodGet, "/api/v1/targets", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var targets nutrition.Targets
	decode(t, w, &targets)
	assert.Equal(t, testTargets, targets)
}

func TestLogWeightEndpoint(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodPost, "/api/v1/weight", WeightRequest{Weight: 72.5})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/weight", WeightRequest{Weight: -1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestWeightTrendEndpoint(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodPost, "/api/v1/weight", WeightRequest{Weight: 72.5})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(t, http.MethodGet, "/api/v1/weight/trend", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Points []model.TrendPoint `json:"points"`
		Min    float64            `json:"min"`
		Max    float64            `json:"max"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Points, dateutil.WeightWindowDays)
	last := resp.Points[len(resp.Points)-1]
	require.NotNil(t, last.Weight)
	assert.Equal(t, 72.5, *last.Weight)
	assert.Equal(t, 72.5, resp.Min)
	assert.Equal(t, 72.5, resp.Max)
}

func TestWeightTrendFallbackBounds(t *testing.T) {
	a := newTestAPI(t, false)

	w := a.do(t, http.MethodGet, "/api/v1/weight/trend", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 0.0, resp.Min)
	assert.Equal(t, 100.0, resp.Max)
}
