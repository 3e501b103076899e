package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/generation"
	"alcyxob/workout-vibe/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Fakes ---

type fakePlannerService struct {
	plan *domain.WorkoutPlan
	err  error
}

func (f *fakePlannerService) Synthesize(ctx context.Context, description string, equipment []domain.EquipmentItem) (*domain.WorkoutPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.plan, nil
}

type fakeWorkoutService struct {
	record *domain.WorkoutRecord
	logs   []domain.SetLogEntry
	err    error
}

func (f *fakeWorkoutService) SaveWorkout(ctx context.Context, plan *domain.WorkoutPlan, gymID *primitive.ObjectID) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeWorkoutService) GetWorkout(ctx context.Context, workoutID primitive.ObjectID) (*domain.WorkoutRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

func (f *fakeWorkoutService) RecentWorkouts(ctx context.Context, limit int64) ([]domain.WorkoutRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.record == nil {
		return nil, nil
	}
	return []domain.WorkoutRecord{*f.record}, nil
}

func (f *fakeWorkoutService) LogSet(ctx context.Context, workoutID primitive.ObjectID, input service.SetLogInput) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeWorkoutService) WorkoutLogs(ctx context.Context, workoutID primitive.ObjectID) ([]domain.SetLogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.logs, nil
}

type fakeGymService struct {
	gym *domain.Gym
	err error
}

func (f *fakeGymService) CreateGym(ctx context.Context, name, location, description string, equipment []domain.EquipmentItem) (*domain.Gym, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gym, nil
}

func (f *fakeGymService) GetGym(ctx context.Context, gymID primitive.ObjectID) (*domain.Gym, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gym, nil
}

func (f *fakeGymService) ListGyms(ctx context.Context) ([]domain.Gym, error) {
	return nil, nil
}

func (f *fakeGymService) GymEquipment(ctx context.Context, gymID primitive.ObjectID) ([]domain.EquipmentItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gym.Equipment, nil
}

func newTestRouter(planner service.PlannerService, workout service.WorkoutService, gym service.GymService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewWorkoutHandler(planner, workout, gym)

	router.POST("/workouts/generate", handler.GenerateWorkout)
	router.POST("/workouts", handler.SaveWorkout)
	router.GET("/workouts/:id", handler.GetWorkout)
	router.POST("/workouts/:id/logs", handler.LogSet)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestGenerateWorkoutSuccess(t *testing.T) {
	plan := &domain.WorkoutPlan{
		Title:       "Leg Day",
		Description: "Lower body.",
		Exercises:   []domain.PlannedExercise{{Name: "Squat", Sets: 3, Reps: "8"}},
		SetsAndReps: []string{"3x8"},
	}
	router := newTestRouter(&fakePlannerService{plan: plan}, &fakeWorkoutService{}, &fakeGymService{})

	w := postJSON(router, "/workouts/generate", gin.H{"description": "leg day"})

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.WorkoutPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *plan, got)
}

func TestGenerateWorkoutErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty description", service.ErrEmptyDescription, http.StatusBadRequest},
		{"generation unavailable", generation.ErrUnavailable, http.StatusServiceUnavailable},
		{"invalid plan", generation.ErrInvalidPlan, http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&fakePlannerService{err: tc.err}, &fakeWorkoutService{}, &fakeGymService{})
			w := postJSON(router, "/workouts/generate", gin.H{"description": "anything"})
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestGenerateWorkoutMissingDescription(t *testing.T) {
	router := newTestRouter(&fakePlannerService{}, &fakeWorkoutService{}, &fakeGymService{})

	// Binding rejects the body before the service is reached.
	w := postJSON(router, "/workouts/generate", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateWorkoutUnknownGym(t *testing.T) {
	router := newTestRouter(&fakePlannerService{}, &fakeWorkoutService{}, &fakeGymService{err: service.ErrGymNotFound})

	w := postJSON(router, "/workouts/generate", gin.H{
		"description": "leg day",
		"gymId":       primitive.NewObjectID().Hex(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetWorkoutNotFoundStatus(t *testing.T) {
	router := newTestRouter(&fakePlannerService{}, &fakeWorkoutService{err: service.ErrWorkoutNotFound}, &fakeGymService{})

	req := httptest.NewRequest(http.MethodGet, "/workouts/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetWorkoutInvalidID(t *testing.T) {
	router := newTestRouter(&fakePlannerService{}, &fakeWorkoutService{}, &fakeGymService{})

	req := httptest.NewRequest(http.MethodGet, "/workouts/not-an-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogSetStatusMapping(t *testing.T) {
	workoutPath := "/workouts/" + primitive.NewObjectID().Hex() + "/logs"

	router := newTestRouter(&fakePlannerService{}, &fakeWorkoutService{}, &fakeGymService{})
	w := postJSON(router, workoutPath, gin.H{"exercise_name": "Squat", "set_number": 1, "reps": 8})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["log_id"])

	router = newTestRouter(&fakePlannerService{}, &fakeWorkoutService{err: service.ErrWorkoutNotFound}, &fakeGymService{})
	w = postJSON(router, workoutPath, gin.H{"exercise_name": "Squat", "set_number": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// set_number below 1 fails request binding.
	router = newTestRouter(&fakePlannerService{}, &fakeWorkoutService{}, &fakeGymService{})
	w = postJSON(router, workoutPath, gin.H{"exercise_name": "Squat", "set_number": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
