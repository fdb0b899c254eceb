package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk-backend-go/internal/config"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/attendance"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/group"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/leave"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/jwt"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/oauth"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/activitylog"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	return nil
}

type fakeEmployeeService struct {
	employee.EmployeeService

	createCalls int
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeData, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeData{}, err
	}
	f.createCalls++
	return employee.EmployeeData{ID: "e1", Name: req.Name, Email: req.Email}, nil
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeData, error) {
	return employee.EmployeeData{ID: id}, nil
}

type fakeGroupService struct {
	group.GroupService

	addCalls int
}

func (f *fakeGroupService) AddMembers(ctx context.Context, groupID string, memberIDs []string) (group.GroupResponse, error) {
	if len(memberIDs) == 0 {
		return group.GroupResponse{}, group.ErrNoMemberIDs
	}
	f.addCalls++
	return group.GroupResponse{ID: groupID}, nil
}

type fakeAttendanceService struct{ attendance.AttendanceService }
type fakeLeaveService struct{ leave.LeaveService }
type fakeLogService struct{ activitylog.LogService }
type fakeAuthService struct{ auth.AuthService }

type testEnv struct {
	router      http.Handler
	jwtService  jwt.Service
	employeeSvc *fakeEmployeeService
	groupSvc    *fakeGroupService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := &fakeUserRepo{users: map[string]user.User{
		"hr-1":   {ID: "hr-1", Email: "hr@example.com", Role: user.RoleHR},
		"user-1": {ID: "user-1", Email: "user@example.com", Role: user.RoleUser},
	}}

	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	googleService := oauth.NewGoogleService("", "", "", nil)

	employeeSvc := &fakeEmployeeService{}
	groupSvc := &fakeGroupService{}

	handlers := Handlers{
		Auth:       NewAuthHandler(&fakeAuthService{}, googleService),
		Employee:   NewEmployeeHandler(employeeSvc),
		Attendance: NewAttendanceHandler(&fakeAttendanceService{}),
		Leave:      NewLeaveHandler(&fakeLeaveService{}),
		Log:        NewLogHandler(&fakeLogService{}),
		Group:      NewGroupHandler(groupSvc),
		Docs:       NewDocsHandler(),
	}

	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	return &testEnv{
		router:      NewRouter(cfg, jwtService, users, handlers),
		jwtService:  jwtService,
		employeeSvc: employeeSvc,
		groupSvc:    groupSvc,
	}
}

func (e *testEnv) accessToken(t *testing.T, id, email string, role user.Role) string {
	t.Helper()
	token, _, err := e.jwtService.GenerateAccessToken(id, email, role)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestRouter_Heartbeat(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_GetEmployee_NotFound(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/employees/missing", "", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, false, envelope["success"])
}

func TestRouter_CreateEmployee_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/employees", "", map[string]string{"name": "Ada"})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Zero(t, env.employeeSvc.createCalls)
}

func TestRouter_CreateEmployee_RejectsUserRole(t *testing.T) {
	env := newTestEnv(t)
	token := env.accessToken(t, "user-1", "user@example.com", user.RoleUser)

	recorder := env.do(t, http.MethodPost, "/employees", token, map[string]string{"name": "Ada"})

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Zero(t, env.employeeSvc.createCalls)
}

func TestRouter_CreateEmployee_HRSucceeds(t *testing.T) {
	env := newTestEnv(t)
	token := env.accessToken(t, "hr-1", "hr@example.com", user.RoleHR)

	recorder := env.do(t, http.MethodPost, "/employees", token, map[string]string{
		"name":            "Ada Lovelace",
		"email":           "ada@example.com",
		"position":        "Engineer",
		"department":      "R&D",
		"date_of_joining": "2024-01-15",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "e1", data["id"])
}

func TestRouter_CreateEmployee_DeletedAccountIs404(t *testing.T) {
	env := newTestEnv(t)
	token := env.accessToken(t, "ghost", "ghost@example.com", user.RoleHR)

	recorder := env.do(t, http.MethodPost, "/employees", token, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRouter_CreateEmployee_GarbageTokenIs403(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/employees", "not-a-jwt", nil)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRouter_UpdateEmployee_PublicRoute(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPut, "/employees/e1", "", map[string]string{"name": "Ada"})

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_AddMembers_EmptyListIs400(t *testing.T) {
	env := newTestEnv(t)
	token := env.accessToken(t, "hr-1", "hr@example.com", user.RoleHR)

	recorder := env.do(t, http.MethodPost, "/groups/g1/members", token, map[string]any{
		"memberIds": []string{},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	errDetail, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "No member IDs provided", errDetail["message"])
	assert.Zero(t, env.groupSvc.addCalls)
}

func TestRouter_GroupRoutes_RequireHR(t *testing.T) {
	env := newTestEnv(t)
	token := env.accessToken(t, "user-1", "user@example.com", user.RoleUser)

	recorder := env.do(t, http.MethodPost, "/groups/g1/members", token, map[string]any{
		"memberIds": []string{"e1"},
	})

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Zero(t, env.groupSvc.addCalls)
}

func TestRouter_Docs_ServesOpenAPI(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/docs/openapi.json", "", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &doc))
	assert.Contains(t, doc, "openapi")
}
