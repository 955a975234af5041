package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"IdeaHub/config"
	"IdeaHub/models"
	"IdeaHub/pkg/jwt"
	"IdeaHub/service"
	"IdeaHub/types"

	"github.com/gin-gonic/gin"
)

type stubTaxonomyService struct {
	service.ITaxonomyService

	updatedDepartmentID uint64
	departmentReq       *types.UpdateDepartmentRequest
	updatedYearID       uint64
	yearReq             *types.UpdateAcademicYearRequest
}

func (s *stubTaxonomyService) UpdateDepartment(_ context.Context, id uint64, req *types.UpdateDepartmentRequest) error {
	s.updatedDepartmentID = id
	s.departmentReq = req
	return nil
}

func (s *stubTaxonomyService) UpdateAcademicYear(_ context.Context, id uint64, req *types.UpdateAcademicYearRequest) error {
	s.updatedYearID = id
	s.yearReq = req
	return nil
}

func newTaxonomyRouter(t *testing.T, stub *stubTaxonomyService) (*gin.Engine, string) {
	t.Helper()
	cfg := &config.Config{Jwt: &config.Jwt{Secret: "test-secret"}}
	token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), 1, models.RoleAdmin, "access", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	(&Department{Config: cfg, TaxonomyService: stub}).RegisterRouter(api)
	(&AcademicYear{Config: cfg, TaxonomyService: stub}).RegisterRouter(api)
	return r, token
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateDepartmentRoute(t *testing.T) {
	stub := &stubTaxonomyService{}
	r, token := newTaxonomyRouter(t, stub)

	w := doJSON(r, http.MethodPut, "/api/update/department/7", token, `{"name":"工学院"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if stub.updatedDepartmentID != 7 {
		t.Fatalf("updated id = %d, want 7", stub.updatedDepartmentID)
	}
	if stub.departmentReq == nil || stub.departmentReq.Name != "工学院" {
		t.Fatalf("request not forwarded: %+v", stub.departmentReq)
	}
}

func TestUpdateAcademicYearRoute(t *testing.T) {
	stub := &stubTaxonomyService{}
	r, token := newTaxonomyRouter(t, stub)

	w := doJSON(r, http.MethodPut, "/api/update/academicYear/9", token,
		`{"name":"2026-2027","closure_date":"2027-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if stub.updatedYearID != 9 {
		t.Fatalf("updated id = %d, want 9", stub.updatedYearID)
	}
	if stub.yearReq == nil || stub.yearReq.ClosureDate != "2027-03-01" {
		t.Fatalf("request not forwarded: %+v", stub.yearReq)
	}
}

func TestUpdateTaxonomyRequiresAuth(t *testing.T) {
	stub := &stubTaxonomyService{}
	r, _ := newTaxonomyRouter(t, stub)

	w := doJSON(r, http.MethodPut, "/api/update/department/7", "", `{"name":"工学院"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if stub.updatedDepartmentID != 0 {
		t.Fatal("service should not be reached without auth")
	}
}
