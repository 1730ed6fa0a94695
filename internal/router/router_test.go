package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suteetoe/jobboard/internal/model"
	"github.com/suteetoe/jobboard/internal/router"
	"github.com/suteetoe/jobboard/internal/router/routertest"
	"github.com/suteetoe/jobboard/pkg/database/databasetest"
	"go.uber.org/zap"
)

type api struct {
	t      *testing.T
	server *routertest.Server
}

type response struct {
	Code int
	Body map[string]interface{}
	Raw  string
}

func newAPI(t *testing.T) *api {
	return &api{t: t, server: routertest.New(t)}
}

func (a *api) call(method, path, token string, body interface{}) response {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.server.Echo.ServeHTTP(rec, req)

	res := response{Code: rec.Code, Raw: rec.Body.String()}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &res.Body), rec.Body.String())
	}
	return res
}

func (a *api) register(name, email, role string) (string, uint) {
	a.t.Helper()
	res := a.call(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	require.Equal(a.t, http.StatusCreated, res.Code, res.Raw)
	user := res.Body["user"].(map[string]interface{})
	return res.Body["token"].(string), uint(user["id"].(float64))
}

func (a *api) createJob(adminToken string, fields map[string]interface{}) uint {
	a.t.Helper()
	body := map[string]interface{}{
		"title":       "Senior Registered Nurse",
		"company":     "Metropolitan Medical Center",
		"location":    "Chicago, IL",
		"department":  "Nursing",
		"type":        "Full-time",
		"description": "Emergency department nursing",
	}
	for k, v := range fields {
		body[k] = v
	}
	res := a.call(http.MethodPost, "/api/jobs", adminToken, body)
	require.Equal(a.t, http.StatusCreated, res.Code, res.Raw)
	return uint(res.Body["jobId"].(float64))
}

func TestOperationalRoutes(t *testing.T) {
	a := newAPI(t)

	res := a.call(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Job Board API Server Running", res.Raw)

	res = a.call(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "healthy", res.Body["status"])

	a.call(http.MethodGet, "/api/jobs", "", nil)
	res = a.call(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Raw, `jobboard_test_http_requests_total{method="GET",path="/api/jobs",status="200"} 1`)

	res = a.call(http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.NotEmpty(t, res.Body["message"])
}

func TestMetricsDisabled(t *testing.T) {
	e := router.New(router.Deps{
		Config: routertest.Config(),
		DB:     databasetest.New(t),
		Logger: zap.NewNop(),
	})
	a := &api{t: t, server: &routertest.Server{Echo: e}}

	require.NotPanics(t, func() {
		admin, _ := a.register("Admin", "admin@example.com", "admin")
		a.createJob(admin, nil)

		res := a.call(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@example.com", "password": "secret123"})
		assert.Equal(t, http.StatusOK, res.Code)

		res = a.call(http.MethodGet, "/api/jobs", "", nil)
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Len(t, res.Body["jobs"], 1)

		res = a.call(http.MethodPost, "/api/jobs", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)

		res = a.call(http.MethodGet, "/metrics", "", nil)
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestRegisterLoginMe(t *testing.T) {
	a := newAPI(t)

	res := a.call(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Test User", "email": "user@example.com", "password": "user123",
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Raw)
	assert.Equal(t, "User registered successfully", res.Body["message"])
	user := res.Body["user"].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, false, user["profileComplete"])
	assert.NotContains(t, res.Raw, "password")

	res = a.call(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Again", "email": "user@example.com", "password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "User already exists with this email", res.Body["message"])

	res = a.call(http.MethodPost, "/api/auth/register", "", map[string]string{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Please provide all required fields", res.Body["message"])

	res = a.call(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "user@example.com"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Please provide email and password", res.Body["message"])

	wrong := a.call(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "user@example.com", "password": "nope"})
	unknown := a.call(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ghost@example.com", "password": "user123"})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, "Invalid email or password", wrong.Body["message"])
	assert.Equal(t, wrong.Body, unknown.Body)

	res = a.call(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "user@example.com", "password": "user123"})
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Login successful", res.Body["message"])
	token := res.Body["token"].(string)

	res = a.call(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	me := res.Body["user"].(map[string]interface{})
	assert.Equal(t, "user@example.com", me["email"])

	// role changes after issuance are visible
	require.NoError(t, a.server.DB.Model(&model.User{}).Where("email = ?", "user@example.com").Update("role", model.RoleAdmin).Error)
	res = a.call(http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, "admin", res.Body["user"].(map[string]interface{})["role"])

	res = a.call(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Access denied. No token provided.", res.Body["message"])

	res = a.call(http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.Equal(t, "Invalid or expired token", res.Body["message"])

	require.NoError(t, a.server.DB.Where("email = ?", "user@example.com").Delete(&model.User{}).Error)
	res = a.call(http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "User not found", res.Body["message"])
}

func TestNonAdminGetsForbiddenRegardlessOfPayload(t *testing.T) {
	a := newAPI(t)
	token, _ := a.register("Test User", "user@example.com", "user")

	routes := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/api/jobs", nil},
		{http.MethodPost, "/api/jobs", map[string]string{"title": "x"}},
		{http.MethodPut, "/api/jobs/1", map[string]string{"type": "not-a-type"}},
		{http.MethodDelete, "/api/jobs/1", nil},
		{http.MethodGet, "/api/applications", nil},
		{http.MethodPut, "/api/applications/1/status", map[string]string{"status": "bogus"}},
		{http.MethodGet, "/api/users", nil},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			res := a.call(r.method, r.path, token, r.body)
			assert.Equal(t, http.StatusForbidden, res.Code)
			assert.Equal(t, "Access denied. Admin only.", res.Body["message"])
		})
	}
}

func TestJobRoutes(t *testing.T) {
	a := newAPI(t)
	admin, _ := a.register("Admin", "admin@example.com", "admin")

	id := a.createJob(admin, map[string]interface{}{
		"requirements": []string{"A", "B"},
		"salary":       "$75,000 - $95,000",
		"deadline":     "2030-01-31",
	})
	pharmacy := a.createJob(admin, map[string]interface{}{
		"title": "Pharmacist", "department": "Pharmacy", "type": "Part-time", "location": "Austin, TX",
	})

	res := a.call(http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	job := res.Body["job"].(map[string]interface{})
	assert.Equal(t, []interface{}{"A", "B"}, job["requirements"])
	assert.Equal(t, []interface{}{}, job["responsibilities"])
	assert.Equal(t, "active", job["status"])
	assert.Equal(t, "$75,000 - $95,000", job["salary"])
	assert.NotNil(t, job["deadline"])

	res = a.call(http.MethodGet, "/api/jobs?department=all-departments&location=all-locations&jobType=all-types", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.Body["jobs"], 2)

	res = a.call(http.MethodGet, "/api/jobs?department=Pharmacy", "", nil)
	require.Len(t, res.Body["jobs"], 1)

	res = a.call(http.MethodGet, "/api/jobs?search=metropolitan", "", nil)
	assert.Len(t, res.Body["jobs"], 2)
	res = a.call(http.MethodGet, "/api/jobs?search=metropolitan&location=chicago", "", nil)
	assert.Len(t, res.Body["jobs"], 1)

	res = a.call(http.MethodGet, "/api/jobs?jobType=Contract", "", nil)
	assert.Equal(t, []interface{}{}, res.Body["jobs"])

	res = a.call(http.MethodPost, "/api/jobs", admin, map[string]string{"title": "Nurse"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Please provide all required fields", res.Body["message"])

	res = a.call(http.MethodPut, fmt.Sprintf("/api/jobs/%d", pharmacy), admin, map[string]interface{}{
		"title": "Pharmacist", "company": "Metropolitan Medical Center", "location": "Austin, TX",
		"department": "Pharmacy", "type": "Part-time", "description": "d", "status": "closed",
	})
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Job updated successfully", res.Body["message"])

	res = a.call(http.MethodGet, "/api/jobs", "", nil)
	assert.Len(t, res.Body["jobs"], 1)
	res = a.call(http.MethodGet, "/api/jobs?status=all", admin, nil)
	assert.Len(t, res.Body["jobs"], 2)
	res = a.call(http.MethodGet, "/api/jobs?status=closed", admin, nil)
	require.Len(t, res.Body["jobs"], 1)
	assert.Equal(t, "closed", res.Body["jobs"].([]interface{})[0].(map[string]interface{})["status"])
	res = a.call(http.MethodGet, "/api/jobs?status=draft", admin, nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	// only admins may look past active postings
	user, _ := a.register("User", "user@example.com", "user")
	for _, token := range []string{"", user, "not-a-jwt"} {
		for _, status := range []string{"closed", "all", "draft"} {
			res = a.call(http.MethodGet, "/api/jobs?status="+status, token, nil)
			require.Equal(t, http.StatusOK, res.Code, status)
			jobs := res.Body["jobs"].([]interface{})
			require.Len(t, jobs, 1, status)
			assert.Equal(t, "active", jobs[0].(map[string]interface{})["status"], status)
		}
	}
	res = a.call(http.MethodGet, fmt.Sprintf("/api/jobs/%d", pharmacy), "", nil)
	assert.Equal(t, http.StatusOK, res.Code, "closed postings stay reachable by id")

	res = a.call(http.MethodPut, "/api/jobs/9999", admin, map[string]string{"title": "ghost"})
	assert.Equal(t, http.StatusOK, res.Code)

	res = a.call(http.MethodDelete, fmt.Sprintf("/api/jobs/%d", pharmacy), admin, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Job deleted successfully", res.Body["message"])
	res = a.call(http.MethodDelete, fmt.Sprintf("/api/jobs/%d", pharmacy), admin, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	res = a.call(http.MethodGet, fmt.Sprintf("/api/jobs/%d", pharmacy), "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Job not found", res.Body["message"])

	res = a.call(http.MethodGet, "/api/jobs/abc", "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestApplicationFlow(t *testing.T) {
	a := newAPI(t)
	admin, _ := a.register("Admin", "admin@example.com", "admin")
	userA, _ := a.register("User A", "a@example.com", "user")
	userB, _ := a.register("User B", "b@example.com", "user")

	jobID := a.createJob(admin, nil)
	closedID := a.createJob(admin, map[string]interface{}{"status": "closed"})

	res := a.call(http.MethodGet, fmt.Sprintf("/api/jobs/%d", jobID), userA, nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = a.call(http.MethodPost, "/api/applications", userA, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Job ID is required", res.Body["message"])

	res = a.call(http.MethodPost, "/api/applications", userA, map[string]interface{}{"jobId": closedID})
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Job not found or not active", res.Body["message"])

	res = a.call(http.MethodPost, "/api/applications", userA, map[string]interface{}{
		"jobId": jobID, "resumeUrl": "https://files.example.com/a.pdf",
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Raw)
	assert.Equal(t, "Application submitted successfully", res.Body["message"])
	appID := uint(res.Body["applicationId"].(float64))

	// the id may also arrive as a string
	res = a.call(http.MethodPost, "/api/applications", userA, map[string]interface{}{"jobId": fmt.Sprint(jobID)})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "You have already applied for this job", res.Body["message"])

	res = a.call(http.MethodGet, "/api/applications/my", userA, nil)
	require.Equal(t, http.StatusOK, res.Code)
	mine := res.Body["applications"].([]interface{})
	require.Len(t, mine, 1)
	entry := mine[0].(map[string]interface{})
	assert.Equal(t, "applied", entry["status"])
	assert.Equal(t, "Senior Registered Nurse", entry["title"])
	assert.Equal(t, "https://files.example.com/a.pdf", entry["resumeUrl"])
	assert.Equal(t, []interface{}{}, entry["feedback"])

	path := fmt.Sprintf("/api/applications/%d", appID)
	res = a.call(http.MethodGet, path, userB, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Application not found", res.Body["message"])

	res = a.call(http.MethodPost, path+"/feedback", userB, map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = a.call(http.MethodPost, path+"/feedback", userA, map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Feedback message is required", res.Body["message"])

	res = a.call(http.MethodPut, path+"/status", admin, map[string]string{"status": "hired"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Invalid status", res.Body["message"])

	res = a.call(http.MethodGet, path, admin, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "applied", res.Body["application"].(map[string]interface{})["status"])

	for _, status := range []string{"rejected", "interview", "applied", "offered"} {
		res = a.call(http.MethodPut, path+"/status", admin, map[string]string{"status": status})
		require.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "Application status updated", res.Body["message"])
	}

	res = a.call(http.MethodPost, path+"/feedback", admin, map[string]string{"message": "Congratulations"})
	require.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, "Feedback added successfully", res.Body["message"])
	assert.NotZero(t, res.Body["feedbackId"])

	res = a.call(http.MethodPost, path+"/feedback", userA, map[string]string{"message": "Thank you"})
	require.Equal(t, http.StatusCreated, res.Code)

	res = a.call(http.MethodGet, path, userA, nil)
	require.Equal(t, http.StatusOK, res.Code)
	app := res.Body["application"].(map[string]interface{})
	assert.Equal(t, "offered", app["status"])
	feedback := app["feedback"].([]interface{})
	require.Len(t, feedback, 2)
	assert.Equal(t, true, feedback[0].(map[string]interface{})["fromAdmin"])
	assert.Equal(t, false, feedback[1].(map[string]interface{})["fromAdmin"])

	res = a.call(http.MethodGet, "/api/applications", admin, nil)
	require.Equal(t, http.StatusOK, res.Code)
	all := res.Body["applications"].([]interface{})
	require.Len(t, all, 1)
	assert.Equal(t, "a@example.com", all[0].(map[string]interface{})["applicantEmail"])
	assert.Equal(t, "User A", all[0].(map[string]interface{})["applicantName"])
}

func TestProfileRoutes(t *testing.T) {
	a := newAPI(t)
	token, _ := a.register("Jane", "jane@example.com", "user")
	other, _ := a.register("Other", "other@example.com", "user")

	res := a.call(http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Nil(t, res.Body["profile"])
	assert.Equal(t, "jane@example.com", res.Body["user"].(map[string]interface{})["email"])

	res = a.call(http.MethodPut, "/api/users/profile", token, map[string]string{"firstName": "Jane"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "First name and last name are required", res.Body["message"])

	res = a.call(http.MethodPut, "/api/users/profile", token, map[string]interface{}{
		"firstName": "Jane", "lastName": "Doe", "bio": "ER nurse", "skills": []string{"Triage", "ACLS"},
	})
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Profile updated successfully", res.Body["message"])

	res = a.call(http.MethodPost, "/api/users/experience", token, map[string]string{"company": "Metro"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Company, position and start date are required", res.Body["message"])

	res = a.call(http.MethodPost, "/api/users/experience", token, map[string]interface{}{
		"company": "Metro", "position": "RN", "startDate": "2018-03-01", "current": true,
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Raw)
	assert.Equal(t, "Experience added successfully", res.Body["message"])
	expID := uint(res.Body["experienceId"].(float64))

	res = a.call(http.MethodPost, "/api/users/education", token, map[string]string{"institution": "State"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Institution, degree, field and start date are required", res.Body["message"])

	res = a.call(http.MethodPost, "/api/users/education", token, map[string]string{
		"institution": "State University", "degree": "BSN", "field": "Nursing", "startDate": "2012-09", "endDate": "2016-05",
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Raw)
	eduID := uint(res.Body["educationId"].(float64))

	res = a.call(http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	user := res.Body["user"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", user["name"])
	assert.Equal(t, true, user["profileComplete"])
	profile := res.Body["profile"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Triage", "ACLS"}, profile["skills"])
	assert.Len(t, profile["experience"], 1)
	assert.Len(t, profile["education"], 1)

	expPath := fmt.Sprintf("/api/users/experience/%d", expID)
	update := map[string]string{"company": "Metro", "position": "Charge RN", "startDate": "2018-03-01"}
	res = a.call(http.MethodPut, expPath, other, update)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Experience not found", res.Body["message"])
	res = a.call(http.MethodPut, expPath, other, map[string]string{})
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Experience not found", res.Body["message"])
	res = a.call(http.MethodPut, "/api/users/experience/9999", token, map[string]string{})
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Experience not found", res.Body["message"])
	res = a.call(http.MethodPut, expPath, token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	res = a.call(http.MethodPut, expPath, token, update)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Experience updated successfully", res.Body["message"])
	res = a.call(http.MethodDelete, expPath, other, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	res = a.call(http.MethodDelete, expPath, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Experience deleted successfully", res.Body["message"])

	eduPath := fmt.Sprintf("/api/users/education/%d", eduID)
	eduUpdate := map[string]string{"institution": "State University", "degree": "MSN", "field": "Nursing", "startDate": "2012-09-01"}
	res = a.call(http.MethodPut, eduPath, other, eduUpdate)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Education not found", res.Body["message"])
	res = a.call(http.MethodPut, eduPath, other, map[string]string{})
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Education not found", res.Body["message"])
	res = a.call(http.MethodPut, "/api/users/education/9999", token, map[string]string{})
	assert.Equal(t, http.StatusNotFound, res.Code)
	res = a.call(http.MethodPut, eduPath, token, eduUpdate)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Education updated successfully", res.Body["message"])
	res = a.call(http.MethodDelete, eduPath, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Education deleted successfully", res.Body["message"])
}

func TestListUsers(t *testing.T) {
	a := newAPI(t)
	admin, _ := a.register("Admin", "admin@example.com", "admin")
	a.register("User", "user@example.com", "user")

	res := a.call(http.MethodGet, "/api/users", admin, nil)
	require.Equal(t, http.StatusOK, res.Code)
	users := res.Body["users"].([]interface{})
	require.Len(t, users, 2)
	first := users[0].(map[string]interface{})
	assert.ElementsMatch(t, []string{"id", "name", "email", "role", "profileComplete"}, keys(first))
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
