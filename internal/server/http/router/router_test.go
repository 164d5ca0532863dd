package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/server/http/handlers"
	testhelpers "github.com/agronhq/agron/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.MarketFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{ParseFn: func(string) (model.Actor, error) {
			return model.Actor{ID: 9, Role: model.RoleTransporter}, nil
		}},
		JobFacadeStub: testhelpers.JobFacadeStub{OpenJobsFn: func(_ context.Context, actor model.Actor) ([]model.DeliveryJob, error) {
			if actor.ID != 9 || actor.Role != model.RoleTransporter {
				t.Fatalf("actor not propagated from token: %+v", actor)
			}
			return []model.DeliveryJob{{ID: 1, Status: model.JobStatusOpen}}, nil
		}},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"login": "user", "password": "pass", "role": "transporter"})
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/jobs/available", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for job board, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/jobs/statistics", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for job statistics, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/crops/types", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for crop types, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

var _ handlers.MarketFacade = (*testhelpers.MarketFacadeStub)(nil)
