package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "catering/internal/adapters/in/http"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newEcho serves a Server without handlers: every request below is rejected
// before a use case runs.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Use(httpin.NewAuthenticator(testSecret).Middleware())
	servers.RegisterHandlers(e, httpin.NewServer(httpin.Commands{}, httpin.Queries{}))
	return e
}

func TestServer_RejectsBeforeUseCase(t *testing.T) {
	customer := "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, kernel.NewUUID().String(), "customer", time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		auth       string
		wantStatus int
	}{
		{"anonymous orders", http.MethodGet, "/api/v1/orders", "", "", http.StatusUnauthorized},
		{"anonymous events", http.MethodGet, "/api/v1/events", "", "", http.StatusUnauthorized},
		{"malformed path id", http.MethodGet, "/api/v1/providers/not-a-uuid", "", "", http.StatusBadRequest},
		{"unknown provider type", http.MethodGet, "/api/v1/providers?type=food_truck", "", "", http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/v1/events", "{", customer, http.StatusBadRequest},
		{"negative price", http.MethodPost, "/api/v1/carts/" + kernel.NewUUID().String() + "/items",
			`{"foodItemId":"` + kernel.NewUUID().String() + `","providerId":"` + kernel.NewUUID().String() +
				`","traySize":"full","quantity":1,"unitPrice":-5}`, customer, http.StatusBadRequest},
		{"unknown tray size", http.MethodPost, "/api/v1/food-items",
			`{"name":"Paella","pricePerTray":90,"traySize":"family"}`, customer, http.StatusBadRequest},
		{"pending is not a decision", http.MethodPut, "/api/v1/orders/" + kernel.NewUUID().String() + "/status",
			`{"status":"pending"}`, customer, http.StatusBadRequest},
		{"anonymous own menus", http.MethodGet, "/api/v1/menus", "", "", http.StatusUnauthorized},
		{"anonymous menu", http.MethodPost, "/api/v1/menus", `{"title":"Brunch"}`, "", http.StatusUnauthorized},
		{"malformed menu body", http.MethodPost, "/api/v1/menus", "[", customer, http.StatusBadRequest},
		{"malformed reviews provider id", http.MethodGet, "/api/v1/providers/42/reviews", "", "", http.StatusBadRequest},
		{"malformed menus provider id", http.MethodGet, "/api/v1/providers/42/menus", "", "", http.StatusBadRequest},
		{"empty food item update", http.MethodPatch, "/api/v1/food-items/" + kernel.NewUUID().String(), `{}`, customer, http.StatusBadRequest},
		{"negative food item price", http.MethodPatch, "/api/v1/food-items/" + kernel.NewUUID().String(),
			`{"pricePerTray":-1}`, customer, http.StatusBadRequest},
		{"anonymous food item update", http.MethodPatch, "/api/v1/food-items/" + kernel.NewUUID().String(),
			`{"isAvailable":false}`, "", http.StatusUnauthorized},
		{"anonymous cancel", http.MethodPost, "/api/v1/orders/" + kernel.NewUUID().String() + "/cancel", "", "", http.StatusUnauthorized},
	}

	e := newEcho()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.auth != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.auth)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}
