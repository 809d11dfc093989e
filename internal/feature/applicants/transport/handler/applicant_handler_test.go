package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym_backend/internal/feature/applicants/domain"
	"gym_backend/internal/feature/applicants/domain/entity"
	"gym_backend/internal/feature/applicants/usecase"
)

// mockApplicantUsecase is a mock implementation of the ApplicantUsecase interface.
type mockApplicantUsecase struct {
	ApplyFunc         func(ctx context.Context, in usecase.ApplyInput) (*entity.Applicant, error)
	ListFunc          func(ctx context.Context, f usecase.Filter) ([]entity.Applicant, error)
	GetFunc           func(ctx context.Context, id uint) (*entity.Applicant, error)
	UpdateFunc        func(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Applicant, error)
	ToggleCheckedFunc func(ctx context.Context, id uint) (*entity.Applicant, error)
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockApplicantUsecase) Apply(ctx context.Context, in usecase.ApplyInput) (*entity.Applicant, error) {
	return m.ApplyFunc(ctx, in)
}

func (m *mockApplicantUsecase) List(ctx context.Context, f usecase.Filter) ([]entity.Applicant, error) {
	return m.ListFunc(ctx, f)
}

func (m *mockApplicantUsecase) Get(ctx context.Context, id uint) (*entity.Applicant, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockApplicantUsecase) Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Applicant, error) {
	return m.UpdateFunc(ctx, id, in)
}

func (m *mockApplicantUsecase) ToggleChecked(ctx context.Context, id uint) (*entity.Applicant, error) {
	return m.ToggleCheckedFunc(ctx, id)
}

func (m *mockApplicantUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func newRouter(h *ApplicantHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/apply", h.Apply)
	router.GET("/api/applicants", h.List)
	router.GET("/api/applicants/export", h.ExportList)
	router.GET("/api/applicants/:id/export", h.ExportOne)
	router.PATCH("/api/applicants/:id", h.Toggle)
	router.PUT("/api/applicants/:id", h.Update)
	router.DELETE("/api/applicants", h.Delete)
	return router
}

func validApplyBody() gin.H {
	return gin.H{
		"name":                "홍길동",
		"phone":               "010-1234-5678",
		"exerciseFrequency":   "weekly3",
		"exercisePurpose":     "health",
		"postureType":         "ideal",
		"nerveResponse":       "좋습니다",
		"participationIntent": "yes",
	}
}

func TestApplicantHandler_Apply(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockApplyFunc  func(ctx context.Context, in usecase.ApplyInput) (*entity.Applicant, error)
		expectedStatus int
	}{
		{
			name:        "success: valid application",
			requestBody: validApplyBody(),
			mockApplyFunc: func(ctx context.Context, in usecase.ApplyInput) (*entity.Applicant, error) {
				return &entity.Applicant{ID: 1, Name: in.Name, Phone: in.Phone, ParticipationIntent: true}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing required field",
			requestBody:    gin.H{"name": "홍길동"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: intent token outside yes/no",
			requestBody:    func() gin.H { b := validApplyBody(); b["participationIntent"] = "maybe"; return b }(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: server-side validation rejects phone",
			requestBody: validApplyBody(),
			mockApplyFunc: func(ctx context.Context, in usecase.ApplyInput) (*entity.Applicant, error) {
				return nil, domain.ErrInvalidPhone
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: storage error",
			requestBody: validApplyBody(),
			mockApplyFunc: func(ctx context.Context, in usecase.ApplyInput) (*entity.Applicant, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewApplicantHandler(&mockApplicantUsecase{ApplyFunc: tt.mockApplyFunc})
			router := newRouter(h)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/apply", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedStatus == http.StatusCreated, responseBody["success"])
		})
	}
}

func TestApplicantHandler_List(t *testing.T) {
	t.Run("passes query params through as a filter", func(t *testing.T) {
		var got usecase.Filter
		h := NewApplicantHandler(&mockApplicantUsecase{
			ListFunc: func(ctx context.Context, f usecase.Filter) ([]entity.Applicant, error) {
				got = f
				return []entity.Applicant{{ID: 1, Name: "홍길동"}}, nil
			},
		})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodGet,
			"/api/applicants?tab=unchecked&startDate=2024-01-01&endDate=2024-01-31&q=%ED%99%8D", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecase.TabUnchecked, got.Tab)
		require.NotNil(t, got.Start)
		require.NotNil(t, got.End)
		assert.Equal(t, "홍", got.Search)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["data"], 1)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		h := NewApplicantHandler(&mockApplicantUsecase{
			ListFunc: func(ctx context.Context, f usecase.Filter) ([]entity.Applicant, error) {
				t.Fatal("usecase must not be called")
				return nil, nil
			},
		})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodGet, "/api/applicants?startDate=bad-date", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApplicantHandler_Toggle(t *testing.T) {
	t.Run("success: flips the flag", func(t *testing.T) {
		h := NewApplicantHandler(&mockApplicantUsecase{
			ToggleCheckedFunc: func(ctx context.Context, id uint) (*entity.Applicant, error) {
				return &entity.Applicant{ID: id, Checked: true}, nil
			},
		})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodPatch, "/api/applicants/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failure: unknown applicant", func(t *testing.T) {
		h := NewApplicantHandler(&mockApplicantUsecase{
			ToggleCheckedFunc: func(ctx context.Context, id uint) (*entity.Applicant, error) {
				return nil, domain.ErrApplicantNotFound
			},
		})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodPatch, "/api/applicants/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "신청자를 찾을 수 없습니다.", body["message"])
	})

	t.Run("failure: non-numeric id", func(t *testing.T) {
		h := NewApplicantHandler(&mockApplicantUsecase{})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodPatch, "/api/applicants/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApplicantHandler_Update(t *testing.T) {
	t.Run("success: overwrites all fields", func(t *testing.T) {
		var gotID uint
		var gotIn usecase.UpdateInput
		h := NewApplicantHandler(&mockApplicantUsecase{
			UpdateFunc: func(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Applicant, error) {
				gotID, gotIn = id, in
				return &entity.Applicant{ID: id, Name: in.Name}, nil
			},
		})
		router := newRouter(h)

		body, _ := json.Marshal(gin.H{
			"name":                "김철수",
			"phone":               "010-9999-8888",
			"participationIntent": false,
			"checked":             true,
		})
		req, _ := http.NewRequest(http.MethodPut, "/api/applicants/7", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), gotID)
		assert.Equal(t, "김철수", gotIn.Name)
		assert.True(t, gotIn.Checked)
	})

	t.Run("failure: unknown applicant", func(t *testing.T) {
		h := NewApplicantHandler(&mockApplicantUsecase{
			UpdateFunc: func(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Applicant, error) {
				return nil, domain.ErrApplicantNotFound
			},
		})
		router := newRouter(h)

		body, _ := json.Marshal(gin.H{"name": "김철수", "phone": "010-9999-8888"})
		req, _ := http.NewRequest(http.MethodPut, "/api/applicants/999", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApplicantHandler_Delete(t *testing.T) {
	t.Run("success: deletes by query id", func(t *testing.T) {
		var deleted uint
		h := NewApplicantHandler(&mockApplicantUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodDelete, "/api/applicants?id=3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), deleted)
	})

	t.Run("failure: missing id", func(t *testing.T) {
		h := NewApplicantHandler(&mockApplicantUsecase{})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodDelete, "/api/applicants", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ID is required", body["message"])
	})
}

func TestApplicantHandler_ExportList(t *testing.T) {
	h := NewApplicantHandler(&mockApplicantUsecase{
		ListFunc: func(ctx context.Context, f usecase.Filter) ([]entity.Applicant, error) {
			return []entity.Applicant{{ID: 1, Name: "홍길동", Phone: "010-1234-5678"}}, nil
		},
	})
	router := newRouter(h)

	req, _ := http.NewRequest(http.MethodGet, "/api/applicants/export?tab=checked", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, "attachment; filename*=UTF-8''"))
	assert.Contains(t, disposition, "%ED%99%95%EC%9D%B8%EC%99%84%EB%A3%8C") // 확인완료

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFF"))
	assert.Contains(t, body, "홍길동")
}

func TestApplicantHandler_ExportOne(t *testing.T) {
	t.Run("success: two-column csv", func(t *testing.T) {
		h := NewApplicantHandler(&mockApplicantUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.Applicant, error) {
				return &entity.Applicant{ID: id, Name: "홍길동", Phone: "010-1234-5678"}, nil
			},
		})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodGet, "/api/applicants/1/export", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "항목,내용")
	})

	t.Run("failure: unknown applicant", func(t *testing.T) {
		h := NewApplicantHandler(&mockApplicantUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.Applicant, error) {
				return nil, domain.ErrApplicantNotFound
			},
		})
		router := newRouter(h)

		req, _ := http.NewRequest(http.MethodGet, "/api/applicants/999/export", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
