package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/api"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
)

type MockService struct{ mock.Mock }

func (m *MockService) CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Student), args.Error(1)
}

func (m *MockService) GetStudent(ctx context.Context, id string) (*Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Student), args.Error(1)
}

func (m *MockService) UpdateStudent(ctx context.Context, id string, req UpdateStudentRequest) (*Student, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Student), args.Error(1)
}

func (m *MockService) ListStudents(ctx context.Context, page api.PageQuery) (*StudentListResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StudentListResponse), args.Error(1)
}

func (m *MockService) CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Class), args.Error(1)
}

func (m *MockService) GetClass(ctx context.Context, id string) (*Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Class), args.Error(1)
}

func (m *MockService) ListClasses(ctx context.Context, page api.PageQuery) (*ClassListResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClassListResponse), args.Error(1)
}

func (m *MockService) ListAvailableClasses(ctx context.Context, page api.PageQuery) (*ClassListResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClassListResponse), args.Error(1)
}

func (m *MockService) CancelClass(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	students := r.Group("/api/students")
	students.GET("", h.ListStudents)
	students.POST("", h.CreateStudent)
	students.GET("/:studentID", h.GetStudent)
	students.PUT("/:studentID", h.UpdateStudent)

	classes := r.Group("/api/classes")
	classes.GET("", h.ListClasses)
	classes.POST("", h.CreateClass)
	classes.GET("/list/available", h.ListAvailableClasses)
	classes.GET("/:classID", h.GetClass)
	classes.POST("/:classID/cancel", h.CancelClass)
	return r
}

func TestCreateStudentHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("CreateStudent", mock.Anything, CreateStudentRequest{Name: "Ana", PlanTypeID: "p1"}).
		Return(&Student{ID: "s1", Name: "Ana", PlanTypeID: "p1", PlanTypeName: "Mensal", IsActive: true}, nil)

	body, _ := json.Marshal(gin.H{"name": "Ana", "planTypeId": "p1"})
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var student Student
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
	assert.Equal(t, "s1", student.ID)
	assert.Equal(t, "Mensal", student.PlanTypeName)
}

func TestCreateStudentHandlerInvalidEmail(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	body, _ := json.Marshal(gin.H{"name": "Ana", "planTypeId": "p1", "email": "not-an-email"})
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateStudent")
}

func TestGetStudentHandlerNotFound(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("GetStudent", mock.Anything, "ghost").Return(nil, apperr.NotFound("Aluno não encontrado"))

	req := httptest.NewRequest(http.MethodGet, "/api/students/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp api.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Aluno não encontrado", resp.Message)
}

func TestUpdateStudentHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("UpdateStudent", mock.Anything, "s1", UpdateStudentRequest{Name: "Ana Paula", PlanTypeID: "p1"}).
		Return(&Student{ID: "s1", Name: "Ana Paula"}, nil)

	body, _ := json.Marshal(gin.H{"name": "Ana Paula", "planTypeId": "p1"})
	req := httptest.NewRequest(http.MethodPut, "/api/students/s1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAvailableClassesHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("ListAvailableClasses", mock.Anything, api.PageQuery{Page: 1, PageSize: 10}).
		Return(&ClassListResponse{
			Items:      []Class{{ID: "c1", ClassTypeName: "Yoga", ScheduledAt: time.Now(), MaxCapacity: 15}},
			TotalCount: 1,
			PageNumber: 1,
			PageSize:   10,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/classes/list/available", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ClassListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "Yoga", resp.Items[0].ClassTypeName)
}

func TestCreateClassHandlerMissingCapacity(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	body, _ := json.Marshal(gin.H{"classTypeId": "ct1", "scheduledAt": "2026-09-01T18:00:00Z", "durationMinutes": 60})
	req := httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateClass")
}

func TestCancelClassHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("CancelClass", mock.Anything, "c1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/classes/c1/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCancelClassHandlerConflict(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("CancelClass", mock.Anything, "c1").
		Return(apperr.Conflict("Aula não encontrada ou já cancelada"))

	req := httptest.NewRequest(http.MethodPost, "/api/classes/c1/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
