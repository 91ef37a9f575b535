package hcloud

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/hetznercloud/hcloud-go/v2/hcloud/schema"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// testAPI httptest сервер, отвечающий как Hetzner Cloud API.
type testAPI struct {
	server *httptest.Server
	mux    *http.ServeMux
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &testAPI{server: srv, mux: mux}
}

func (a *testAPI) client() *Client {
	logger, _ := test.NewNullLogger()
	return New("test-token", "test",
		WithEndpoint(a.server.URL),
		WithLogger(logger),
		WithRetry(3, time.Millisecond),
	)
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func errorResponse(w http.ResponseWriter, status int, code string) {
	jsonResponse(w, status, schema.ErrorResponse{Error: schema.Error{Code: code, Message: code}})
}

func successAction(id int64, command string) schema.Action {
	return schema.Action{ID: id, Command: command, Status: "success", Progress: 100, Started: time.Now()}
}

func TestCreateInstance(t *testing.T) {
	api := newTestAPI(t)
	key := "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIGq6x1Gk2bVv4v3Y9X4c0Zq3q6e2N3v0Gm2tY4kP9yAb laptop"

	api.mux.HandleFunc("POST /servers", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, "web-1", body["name"])
		assert.Equal(t, "cx22", body["server_type"])
		assert.Equal(t, "ubuntu-24.04", body["image"])
		assert.Equal(t, "fsn1", body["location"])
		labels, _ := body["labels"].(map[string]any)
		assert.Equal(t, "groph-vps", labels["managed-by"])

		userData, _ := body["user_data"].(string)
		require.True(t, strings.HasPrefix(userData, "#cloud-config\n"))
		var doc cloudConfig
		require.NoError(t, yaml.Unmarshal([]byte(userData), &doc))
		assert.Equal(t, []string{key}, doc.SSHAuthorizedKeys)
		assert.Equal(t, "web-1", doc.Hostname)
		assert.False(t, doc.SSHPasswordAuth)

		jsonResponse(w, http.StatusCreated, schema.ServerCreateResponse{
			Server: schema.Server{
				ID:     4711,
				Name:   "web-1",
				Status: "initializing",
				Labels: map[string]string{"managed-by": "groph-vps"},
				PublicNet: schema.ServerPublicNet{
					IPv4: schema.ServerPublicNetIPv4{IP: "203.0.113.10"},
					IPv6: schema.ServerPublicNetIPv6{IP: "2001:db8:1::/64"},
				},
				ServerType: schema.ServerType{Name: "cx22"},
			},
			Action: successAction(1, "create_server"),
		})
	})

	inst, err := api.client().CreateInstance(t.Context(), domain.CreateInstanceArgs{
		Label:          "web-1",
		Region:         "fsn1",
		ServerType:     "cx22",
		Image:          "ubuntu-24.04",
		AuthorizedKeys: []string{key},
		Labels:         map[string]string{"managed-by": "groph-vps"},
	})
	require.NoError(t, err)
	assert.Equal(t, "4711", inst.ID)
	assert.Equal(t, domain.InstanceInitializing, inst.State)
	assert.Equal(t, "203.0.113.10", inst.IPv4)
	assert.Equal(t, "2001:db8:1::/64", inst.IPv6)
	assert.Equal(t, "cx22", inst.Raw["server_type"])
}

func TestCreateInstanceErrors(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		status   int
		conflict bool
	}{
		{name: "capacity", code: "resource_unavailable", status: http.StatusConflict, conflict: true},
		{name: "limit", code: "resource_limit_exceeded", status: http.StatusForbidden, conflict: true},
		{name: "invalid", code: "invalid_input", status: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPI(t)
			var calls atomic.Int32
			api.mux.HandleFunc("POST /servers", func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				errorResponse(w, tc.status, tc.code)
			})

			_, err := api.client().CreateInstance(t.Context(), domain.CreateInstanceArgs{
				Label: "web-1", Region: "fsn1", ServerType: "cx22", Image: "ubuntu-24.04",
			})
			require.ErrorIs(t, err, domain.ErrProvider)
			assert.Equal(t, tc.conflict, errors.Is(err, domain.ErrConflict))
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestGetInstance(t *testing.T) {
	api := newTestAPI(t)
	api.mux.HandleFunc("GET /servers/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "10" {
			errorResponse(w, http.StatusNotFound, "not_found")
			return
		}
		jsonResponse(w, http.StatusOK, schema.ServerGetResponse{
			Server: schema.Server{ID: 10, Name: "db-1", Status: "off"},
		})
	})
	client := api.client()

	inst, err := client.GetInstance(t.Context(), "10")
	require.NoError(t, err)
	assert.Equal(t, domain.InstanceOff, inst.State)

	_, err = client.GetInstance(t.Context(), "11")
	require.ErrorIs(t, err, domain.ErrProvider)
	require.ErrorIs(t, err, domain.ErrInstanceNotFound)

	_, err = client.GetInstance(t.Context(), "abc")
	require.ErrorIs(t, err, domain.ErrInstanceNotFound)
}

func TestGetInstanceRetriesLocked(t *testing.T) {
	api := newTestAPI(t)
	var calls atomic.Int32
	api.mux.HandleFunc("GET /servers/{id}", func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			errorResponse(w, http.StatusLocked, "locked")
			return
		}
		jsonResponse(w, http.StatusOK, schema.ServerGetResponse{
			Server: schema.Server{ID: 10, Name: "db-1", Status: "running"},
		})
	})

	inst, err := api.client().GetInstance(t.Context(), "10")
	require.NoError(t, err)
	assert.Equal(t, domain.InstanceRunning, inst.State)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPowerAction(t *testing.T) {
	cases := []struct {
		action domain.PowerAction
		path   string
	}{
		{action: domain.PowerStart, path: "poweron"},
		{action: domain.PowerStop, path: "poweroff"},
		{action: domain.PowerReboot, path: "reboot"},
	}
	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			api := newTestAPI(t)
			var called atomic.Bool
			api.mux.HandleFunc("POST /servers/7/actions/"+tc.path, func(w http.ResponseWriter, _ *http.Request) {
				called.Store(true)
				jsonResponse(w, http.StatusCreated, schema.ServerActionPoweronResponse{
					Action: successAction(2, tc.path),
				})
			})

			require.NoError(t, api.client().PowerAction(t.Context(), "7", tc.action))
			assert.True(t, called.Load())
		})
	}
}

func TestPowerActionLockedIsNotRetried(t *testing.T) {
	api := newTestAPI(t)
	var calls atomic.Int32
	api.mux.HandleFunc("POST /servers/7/actions/poweron", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		errorResponse(w, http.StatusLocked, "locked")
	})

	err := api.client().PowerAction(t.Context(), "7", domain.PowerStart)
	require.ErrorIs(t, err, domain.ErrProvider)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRebuildInstance(t *testing.T) {
	api := newTestAPI(t)
	api.mux.HandleFunc("POST /servers/7/actions/rebuild", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "debian-12", body["image"])
		jsonResponse(w, http.StatusCreated, schema.ServerActionRebuildResponse{
			Action: schema.Action{ID: 3, Command: "rebuild_server", Status: "running", Started: time.Now()},
		})
	})

	require.NoError(t, api.client().RebuildInstance(t.Context(), "7", "debian-12", nil))
}

func TestDeleteInstance(t *testing.T) {
	api := newTestAPI(t)
	api.mux.HandleFunc("DELETE /servers/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "7":
			jsonResponse(w, http.StatusOK, map[string]any{"action": successAction(4, "delete_server")})
		case "8":
			errorResponse(w, http.StatusNotFound, "not_found")
		default:
			errorResponse(w, http.StatusForbidden, "forbidden")
		}
	})
	client := api.client()

	require.NoError(t, client.DeleteInstance(t.Context(), "7"))
	// отсутствующий сервер считается удаленным.
	require.NoError(t, client.DeleteInstance(t.Context(), "8"))
	require.ErrorIs(t, client.DeleteInstance(t.Context(), "9"), domain.ErrProvider)
}

func TestListInstances(t *testing.T) {
	api := newTestAPI(t)
	api.mux.HandleFunc("GET /servers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "managed-by=groph-vps,owner-id=5", r.URL.Query().Get("label_selector"))
		jsonResponse(w, http.StatusOK, schema.ServerListResponse{
			Servers: []schema.Server{
				{ID: 1, Name: "a", Status: "running"},
				{ID: 2, Name: "b", Status: "starting"},
			},
		})
	})

	instances, err := api.client().ListInstances(t.Context(), map[string]string{
		"owner-id":   "5",
		"managed-by": "groph-vps",
	})
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, "1", instances[0].ID)
	assert.Equal(t, domain.InstanceTransitioning, instances[1].State)
}

func TestRenderUserDataWithoutKeys(t *testing.T) {
	out, err := renderUserData("web-1", nil)
	require.NoError(t, err)

	var doc cloudConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.True(t, doc.SSHPasswordAuth)
	assert.Empty(t, doc.SSHAuthorizedKeys)
}
