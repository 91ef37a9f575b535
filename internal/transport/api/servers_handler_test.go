package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/service"
	"github.com/fsdevblog/groph-vps/internal/service/tokens"
	"github.com/fsdevblog/groph-vps/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ServersHandlerTestSuite struct {
	handlerSuite
	owner domain.Actor
}

func TestServersHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServersHandlerTestSuite))
}

func (s *ServersHandlerTestSuite) SetupTest() {
	s.handlerSuite.SetupTest()
	s.owner = domain.Actor{OwnerID: 7, Email: "owner@example.com"}
}

func (s *ServersHandlerTestSuite) server(status domain.ServerStatus) *domain.Server {
	return &domain.Server{
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		OwnerID:      s.owner.OwnerID,
		InstanceID:   "4711",
		Hostname:     "web-1",
		Region:       "fsn1",
		Image:        "ubuntu-24.04",
		PlanID:       "standard-2",
		Status:       status,
		HourlyCost:   decimal.RequireFromString("0.03"),
		Currency:     "EUR",
		BillingStart: time.Now(),
	}
}

func (s *ServersHandlerTestSuite) createRequest(body any, token string) *http.Response {
	return testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + ServersRoute,
		Body:   testutils.JSONBody(body),
	}, testutils.WithBearer(token))
}

func (s *ServersHandlerTestSuite) TestCreate() {
	server := s.server(domain.ServerStatusProvisioning)
	validBody := map[string]any{
		"hostname": "web-1",
		"region":   "fsn1",
		"image":    "ubuntu-24.04",
		"plan":     "standard-2",
		"ssh_keys": []string{"ssh-ed25519 AAAA laptop"},
	}

	s.mockProvisioner.EXPECT().
		Provision(gomock.Any(), service.ProvisionRequest{
			OwnerID:    s.owner.OwnerID,
			OwnerEmail: s.owner.Email,
			Hostname:   "web-1",
			Region:     "fsn1",
			Image:      "ubuntu-24.04",
			PlanID:     "standard-2",
			SSHKeys:    []string{"ssh-ed25519 AAAA laptop"},
		}).
		Return(&service.ProvisionResult{
			Server:      server,
			Price:       &domain.Price{PlanID: "standard-2", Hourly: decimal.RequireFromString("0.03")},
			Charged:     decimal.RequireFromString("0.03"),
			Transaction: &domain.LedgerTransaction{ID: uuid.New()},
		}, nil).Times(1)

	resp := s.createRequest(validBody, s.token(s.owner))
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body struct {
		Server        ServerResponse `json:"server"`
		Charged       string         `json:"charged"`
		TransactionID string         `json:"transaction_id"`
		Warnings      []string       `json:"warnings"`
	}
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Equal(server.ID.String(), body.Server.ID)
	s.Equal("provisioning", body.Server.Status)
	s.Equal("0.03", body.Charged)
	s.NotEmpty(body.TransactionID)
	s.Empty(body.Warnings)
}

func (s *ServersHandlerTestSuite) TestCreateDegraded() {
	s.mockProvisioner.EXPECT().Provision(gomock.Any(), gomock.Any()).
		Return(&service.ProvisionResult{
			Server:   s.server(domain.ServerStatusProvisioning),
			Price:    &domain.Price{},
			Charged:  decimal.Zero,
			Warnings: []string{"server created but payment was not charged"},
		}, nil)

	resp := s.createRequest(map[string]any{
		"hostname": "web-1", "region": "fsn1", "image": "ubuntu-24.04", "plan": "standard-2",
	}, s.token(s.owner))
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body ProvisionResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Len(body.Warnings, 1)
}

func (s *ServersHandlerTestSuite) TestCreateErrors() {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: domain.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "insufficient balance", err: domain.ErrInsufficientBalance, wantStatus: http.StatusPaymentRequired},
		{name: "plan not found", err: domain.ErrPlanNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "capacity",
			err:        domain.NewProviderError("create", domain.ErrConflict, false),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "provider",
			err:        domain.NewProviderError("create", domain.ErrUnknown, false),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "provider timeout",
			err:        domain.NewProviderError("create", context.DeadlineExceeded, true),
			wantStatus: http.StatusBadGateway,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.mockProvisioner.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			resp := s.createRequest(map[string]any{
				"hostname": "web-1", "region": "fsn1", "image": "ubuntu-24.04", "plan": "standard-2",
			}, s.token(s.owner))
			s.Equal(tc.wantStatus, resp.StatusCode)

			var body map[string]any
			s.Require().NoError(testutils.DecodeJSON(resp, &body))
			s.NotEmpty(body["error"])
		})
	}
}

// TestCreatePersistenceError ответ содержит идентификатор инстанса, созданного у провайдера.
func (s *ServersHandlerTestSuite) TestCreatePersistenceError() {
	s.mockProvisioner.EXPECT().Provision(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewPersistenceError("4711", domain.ErrUnknown))

	resp := s.createRequest(map[string]any{
		"hostname": "web-1", "region": "fsn1", "image": "ubuntu-24.04", "plan": "standard-2",
	}, s.token(s.owner))
	s.Equal(http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Equal("4711", body["instance_id"])

	var logged bool
	for _, e := range s.logHook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Data["status"] == http.StatusInternalServerError {
			logged = true
		}
	}
	s.True(logged)
}

func (s *ServersHandlerTestSuite) TestCreateBadRequest() {
	s.mockProvisioner.EXPECT().Provision(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name string
		body map[string]any
	}{
		{name: "missing plan", body: map[string]any{"hostname": "web-1", "region": "fsn1", "image": "ubuntu-24.04"}},
		{
			name: "hostname too long in bytes",
			body: map[string]any{
				"hostname": testutils.GenerateOverBytesUnderRunes(20),
				"region":   "fsn1", "image": "ubuntu-24.04", "plan": "standard-2",
			},
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp := s.createRequest(tc.body, s.token(s.owner))
			s.Equal(http.StatusBadRequest, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}

func (s *ServersHandlerTestSuite) TestCreateUnauthorized() {
	s.mockProvisioner.EXPECT().Provision(gomock.Any(), gomock.Any()).Times(0)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + ServersRoute,
		Body:   testutils.JSONBody(map[string]any{"hostname": "web-1"}),
	})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	expired, err := tokens.GenerateOwnerJWT(tokens.OwnerClaims{ID: s.owner.OwnerID}, -time.Minute, s.jwtSecret)
	s.Require().NoError(err)
	resp = s.createRequest(map[string]any{"hostname": "web-1"}, expired)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

// TestCreateRateLimited лимит считается отдельно для каждого владельца.
func (s *ServersHandlerTestSuite) TestCreateRateLimited() {
	s.mockProvisioner.EXPECT().Provision(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInsufficientBalance).Times(3)
	body := map[string]any{"hostname": "web-1", "region": "fsn1", "image": "ubuntu-24.04", "plan": "standard-2"}

	ownerToken := s.token(s.owner)
	for range 2 {
		resp := s.createRequest(body, ownerToken)
		s.Equal(http.StatusPaymentRequired, resp.StatusCode)
		_ = resp.Body.Close()
	}
	resp := s.createRequest(body, ownerToken)
	s.Equal(http.StatusTooManyRequests, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.createRequest(body, s.token(domain.Actor{OwnerID: 8}))
	s.Equal(http.StatusPaymentRequired, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *ServersHandlerTestSuite) TestIndex() {
	servers := []domain.Server{*s.server(domain.ServerStatusRunning), *s.server(domain.ServerStatusStopped)}
	s.mockLifecycle.EXPECT().List(gomock.Any(), s.owner.OwnerID).Return(servers, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + ServersRoute,
	}, testutils.WithBearer(s.token(s.owner)))
	s.Equal(http.StatusOK, resp.StatusCode)

	var body []ServerResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Require().Len(body, 2)
	s.Equal("stopped", body[1].Status)
}

func (s *ServersHandlerTestSuite) TestShowNotOwned() {
	id := uuid.New()
	s.mockLifecycle.EXPECT().Authorize(gomock.Any(), s.owner, id).Return(nil, domain.ErrForbidden)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/servers/" + id.String(),
	}, testutils.WithBearer(s.token(s.owner)))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/servers/not-a-uuid",
	}, testutils.WithBearer(s.token(s.owner)))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *ServersHandlerTestSuite) TestPower() {
	server := s.server(domain.ServerStatusRunning)
	stopped := *server
	stopped.Status = domain.ServerStatusStopped

	s.mockLifecycle.EXPECT().Authorize(gomock.Any(), s.owner, server.ID).Return(server, nil).Times(2)
	gomock.InOrder(
		s.mockLifecycle.EXPECT().Power(gomock.Any(), server.ID, domain.PowerStop).Return(&stopped, nil),
		s.mockLifecycle.EXPECT().Power(gomock.Any(), server.ID, domain.PowerReboot).
			Return(nil, domain.NewIllegalTransitionError(domain.ServerStatusStopped, "reboot")),
	)

	cases := []struct {
		action     string
		wantStatus int
	}{
		{action: "stop", wantStatus: http.StatusOK},
		{action: "reboot", wantStatus: http.StatusConflict},
		{action: "hibernate", wantStatus: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.action, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/servers/" + server.ID.String() + "/power",
				Body:   testutils.JSONBody(map[string]string{"action": tc.action}),
			}, testutils.WithBearer(s.token(s.owner)))
			s.Equal(tc.wantStatus, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}

func (s *ServersHandlerTestSuite) TestRebuild() {
	server := s.server(domain.ServerStatusRunning)
	rebuilding := *server
	rebuilding.Status = domain.ServerStatusRebuilding
	rebuilding.Image = "debian-12"

	s.mockLifecycle.EXPECT().Authorize(gomock.Any(), s.owner, server.ID).Return(server, nil).Times(2)
	s.mockLifecycle.EXPECT().Rebuild(gomock.Any(), service.RebuildArgs{
		ServerID:     server.ID,
		Image:        "debian-12",
		ConfirmName:  "web-1",
		Acknowledged: true,
	}).Return(&rebuilding, nil)
	s.mockLifecycle.EXPECT().Rebuild(gomock.Any(), service.RebuildArgs{
		ServerID:    server.ID,
		Image:       "debian-12",
		ConfirmName: "web-2",
	}).Return(nil, domain.ErrPreconditionFailed)

	cases := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "accepted",
			body:       map[string]any{"image": "debian-12", "confirm_name": "web-1", "acknowledged": true},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "precondition",
			body:       map[string]any{"image": "debian-12", "confirm_name": "web-2"},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/servers/" + server.ID.String() + "/rebuild",
				Body:   testutils.JSONBody(tc.body),
			}, testutils.WithBearer(s.token(s.owner)))
			s.Equal(tc.wantStatus, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}

func (s *ServersHandlerTestSuite) TestReconcile() {
	server := s.server(domain.ServerStatusProvisioning)
	running := *server
	running.Status = domain.ServerStatusRunning
	running.IPv4 = "203.0.113.10"

	s.mockLifecycle.EXPECT().Authorize(gomock.Any(), s.owner, server.ID).Return(server, nil)
	s.mockLifecycle.EXPECT().Reconcile(gomock.Any(), server.ID).Return(&running, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/servers/" + server.ID.String() + "/reconcile",
	}, testutils.WithBearer(s.token(s.owner)))
	s.Equal(http.StatusOK, resp.StatusCode)

	var body ServerResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Equal("running", body.Status)
	s.Equal("203.0.113.10", body.IPv4)
}

func (s *ServersHandlerTestSuite) TestDelete() {
	server := s.server(domain.ServerStatusRunning)
	s.mockLifecycle.EXPECT().Authorize(gomock.Any(), s.owner, server.ID).Return(server, nil)
	s.mockLifecycle.EXPECT().Delete(gomock.Any(), server.ID).Return(&service.DeleteResult{
		LocalDeleted: true,
		RemoteError:  "provider delete timed out",
	}, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodDelete,
		URL:    RouteGroup + "/servers/" + server.ID.String(),
	}, testutils.WithBearer(s.token(s.owner)))
	s.Equal(http.StatusOK, resp.StatusCode)

	var body DeleteResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.True(body.LocalDeleted)
	s.False(body.RemoteDeleted)
	s.Equal("provider delete timed out", body.RemoteError)
}
