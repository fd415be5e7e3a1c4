package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/taskmanager/internal/config"
	"github.com/sakif/taskmanager/internal/model"
)

// newTestServer assembles the real stack — router, handlers, services, and
// an in-memory SQLite database — so these tests exercise the wire contract
// end to end.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Port:   0,
		DBPath: ":memory:",
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	srv, err := New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })
	return srv
}

// do sends a request through the router and returns the recorder.
func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)
	return rr
}

func TestRegister(t *testing.T) {
	srv := newTestServer(t)

	t.Run("new user gets numeric id", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/register",
			`{"username":"alice","email":"a@x.com","password":"pw123","role":"admin"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			UserID int64 `json:"userId"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, int64(1), res.UserID)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/register",
			`{"username":"alice","email":"other@x.com","password":"pw456","role":"member"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var res struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "User already exists", res.Error)
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/register", `{"username":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	rr := do(srv, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","password":"pw123","role":"admin"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	// Login answers in plain text — these exact strings are the contract.
	t.Run("correct credentials", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/login", `{"username":"alice","password":"pw123"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Login successfully", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid Password", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("unknown username", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/login", `{"username":"nobody","password":"pw123"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User not exist", strings.TrimSpace(rr.Body.String()))
	})
}

func TestCreateProject(t *testing.T) {
	srv := newTestServer(t)

	t.Run("valid project", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/projects/1",
			`{"projectName":"P1","projectDescription":"D1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			ProjectID int64 `json:"projectId"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, int64(1), res.ProjectID)
	})

	t.Run("empty name", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/projects/1",
			`{"projectName":"","projectDescription":"D1"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty description", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/projects/1",
			`{"projectName":"P1","projectDescription":""}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-numeric owner id", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/projects/abc",
			`{"projectName":"P1","projectDescription":"D1"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	// The owner id is not validated against the users table.
	t.Run("nonexistent owner accepted", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/projects/999",
			`{"projectName":"orphan","projectDescription":"no such owner"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	// Owner 0 is a legal value like any other numeric id.
	t.Run("owner id zero accepted", func(t *testing.T) {
		rr := do(srv, http.MethodPost, "/projects/0",
			`{"projectName":"zero","projectDescription":"owner zero"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUpdateProject(t *testing.T) {
	srv := newTestServer(t)

	rr := do(srv, http.MethodPost, "/projects/1",
		`{"projectName":"before","projectDescription":"old"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	t.Run("existing project", func(t *testing.T) {
		rr := do(srv, http.MethodPut, "/projects/1",
			`{"projectName":"after","projectDescription":"new"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Project updated successfully", res.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		rr := do(srv, http.MethodPut, "/projects/1",
			`{"projectName":"","projectDescription":"new"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	// The body check outranks the id: missing fields answer 400 even when
	// the id segment is not numeric.
	t.Run("missing fields with non-numeric id", func(t *testing.T) {
		rr := do(srv, http.MethodPut, "/projects/abc",
			`{"projectName":"","projectDescription":""}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	// With a valid body, a non-numeric id matches no row and answers 404.
	t.Run("non-numeric id with valid body", func(t *testing.T) {
		rr := do(srv, http.MethodPut, "/projects/abc",
			`{"projectName":"x","projectDescription":"y"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("nonexistent project", func(t *testing.T) {
		rr := do(srv, http.MethodPut, "/projects/42",
			`{"projectName":"x","projectDescription":"y"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var res struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Project not found", res.Error)
	})
}

func TestDeleteProject(t *testing.T) {
	srv := newTestServer(t)

	rr := do(srv, http.MethodPost, "/projects/1",
		`{"projectName":"doomed","projectDescription":"soon gone"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	t.Run("existing project", func(t *testing.T) {
		rr := do(srv, http.MethodDelete, "/projects/1", "")

		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Project deleted successfully", res.Message)
	})

	t.Run("already deleted", func(t *testing.T) {
		rr := do(srv, http.MethodDelete, "/projects/1", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListProjects_EmptyIsJSONArray(t *testing.T) {
	srv := newTestServer(t)

	rr := do(srv, http.MethodGet, "/projects", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	// Empty store serializes as {"projects":[]}, never {"projects":null}.
	assert.JSONEq(t, `{"projects":[]}`, rr.Body.String())
}

// The full walkthrough: register → login (good and bad) → create → list →
// delete → list again.
func TestScenario_EndToEnd(t *testing.T) {
	srv := newTestServer(t)

	rr := do(srv, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","password":"pw123","role":"admin"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var reg struct {
		UserID int64 `json:"userId"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&reg))
	require.Equal(t, int64(1), reg.UserID)

	rr = do(srv, http.MethodPost, "/login", `{"username":"alice","password":"pw123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(srv, http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid Password", strings.TrimSpace(rr.Body.String()))

	rr = do(srv, http.MethodPost, "/projects/1",
		`{"projectName":"P1","projectDescription":"D1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var created struct {
		ProjectID int64 `json:"projectId"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	require.Equal(t, int64(1), created.ProjectID)

	rr = do(srv, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var listed struct {
		Projects []model.Project `json:"projects"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&listed))
	require.Len(t, listed.Projects, 1)
	assert.Equal(t, int64(1), listed.Projects[0].ID)
	assert.Equal(t, "P1", listed.Projects[0].Name)
	assert.Equal(t, "D1", listed.Projects[0].Description)
	assert.Equal(t, int64(1), listed.Projects[0].UserID)

	rr = do(srv, http.MethodDelete, "/projects/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(srv, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"projects":[]}`, rr.Body.String())
}
