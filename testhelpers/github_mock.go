package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-github/v62/github"
)

// RecordedRequest is one request received by the mock GitHub server.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
}

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Token is the only credential accepted. Empty accepts anything.
	Token string
	// Login is the authenticated user's name
	Login string
	// Repos holds existing repository names owned by Login
	Repos map[string]bool
	// AdminDenied makes every delete fail with an admin-rights error
	AdminDenied bool

	mu       sync.Mutex
	Requests []RecordedRequest
	Created  []*github.Repository
	Deleted  []string
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Token: "test-token",
		Login: "octo",
		Repos: make(map[string]bool),
	}
}

func (c *MockGitHubServerConfig) record(r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Requests = append(c.Requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
	})
}

// RecordedRequests returns a copy of the received requests.
func (c *MockGitHubServerConfig) RecordedRequests() []RecordedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]RecordedRequest(nil), c.Requests...)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (c *MockGitHubServerConfig) authorized(w http.ResponseWriter, r *http.Request) bool {
	if c.Token == "" || r.Header.Get("Authorization") == "token "+c.Token {
		return true
	}
	writeJSON(w, http.StatusUnauthorized, map[string]any{
		"message":           "Bad credentials",
		"documentation_url": "https://docs.github.com/rest",
	})
	return false
}

// NewMockGitHubServer creates an httptest server that mocks the repository endpoints
// of the GitHub REST API: POST /user/repos, DELETE /repos/{owner}/{repo} and GET /user.
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		config.record(r)
		if !config.authorized(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, &github.User{Login: github.String(config.Login)})
	})

	mux.HandleFunc("POST /user/repos", func(w http.ResponseWriter, r *http.Request) {
		config.record(r)
		if !config.authorized(w, r) {
			return
		}
		var req github.Repository
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Problems parsing JSON"})
			return
		}

		config.mu.Lock()
		defer config.mu.Unlock()
		name := req.GetName()
		if config.Repos[name] {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"message": "Repository creation failed.",
				"errors": []map[string]string{{
					"resource": "Repository",
					"code":     "custom",
					"field":    "name",
					"message":  "name already exists on this account",
				}},
			})
			return
		}
		config.Repos[name] = true

		fullName := config.Login + "/" + name
		repo := &github.Repository{
			Name:        github.String(name),
			FullName:    github.String(fullName),
			Description: req.Description,
			Private:     github.Bool(req.GetPrivate()),
			HTMLURL:     github.String("https://github.com/" + fullName),
			CloneURL:    github.String("https://github.com/" + fullName + ".git"),
			Owner:       &github.User{Login: github.String(config.Login)},
		}
		config.Created = append(config.Created, repo)
		writeJSON(w, http.StatusCreated, repo)
	})

	mux.HandleFunc("DELETE /repos/{owner}/{repo}", func(w http.ResponseWriter, r *http.Request) {
		config.record(r)
		if !config.authorized(w, r) {
			return
		}
		config.mu.Lock()
		defer config.mu.Unlock()
		name := r.PathValue("repo")
		switch {
		case r.PathValue("owner") != config.Login || !config.Repos[name]:
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
		case config.AdminDenied:
			writeJSON(w, http.StatusForbidden, map[string]any{"message": "Must have admin rights to Repository."})
		default:
			delete(config.Repos, name)
			config.Deleted = append(config.Deleted, r.PathValue("owner")+"/"+name)
			w.WriteHeader(http.StatusNoContent)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}
