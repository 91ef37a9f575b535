package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/service"
	"github.com/fsdevblog/groph-vps/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ServersHandler struct {
	provisioner ProvisioningServicer
	lifecycle   LifecycleServicer
}

func NewServersHandler(provisioner ProvisioningServicer, lifecycle LifecycleServicer) *ServersHandler {
	return &ServersHandler{
		provisioner: provisioner,
		lifecycle:   lifecycle,
	}
}

type CreateServerParams struct {
	Hostname string   `binding:"required,max_bytes=63"             json:"hostname"`
	Region   string   `binding:"required,max=32"                   json:"region"`
	Image    string   `binding:"required,max=128"                  json:"image"`
	PlanID   string   `binding:"required,max=64"                   json:"plan"`
	SSHKeys  []string `binding:"max=10,dive,required,max_bytes=16384" json:"ssh_keys"`
}

// Create POST RouteGroup + ServersRoute. Заказывает сервер от имени текущего владельца.
func (h *ServersHandler) Create(c *gin.Context) {
	var params CreateServerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	actor := middlewares.CurrentActor(c)

	ctx, cancel := context.WithTimeout(c, ProvisionTimeout)
	defer cancel()

	res, err := h.provisioner.Provision(ctx, service.ProvisionRequest{
		OwnerID:    actor.OwnerID,
		OwnerEmail: actor.Email,
		Hostname:   params.Hostname,
		Region:     params.Region,
		Image:      params.Image,
		PlanID:     params.PlanID,
		SSHKeys:    params.SSHKeys,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProvisionResponse(res))
}

// Index GET RouteGroup + ServersRoute. Серверы текущего владельца.
func (h *ServersHandler) Index(c *gin.Context) {
	actor := middlewares.CurrentActor(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	servers, err := h.lifecycle.List(ctx, actor.OwnerID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]ServerResponse, len(servers))
	for i := range servers {
		response[i] = toServerResponse(&servers[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *ServersHandler) Show(c *gin.Context) {
	server, ok := h.authorize(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toServerResponse(server))
}

type PowerParams struct {
	Action string `binding:"required,oneof=start stop reboot" json:"action"`
}

// Power POST RouteGroup + ServerPowerRoute. Включение, выключение и перезагрузка.
func (h *ServersHandler) Power(c *gin.Context) {
	var params PowerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	server, ok := h.authorize(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, ProvisionTimeout)
	defer cancel()

	updated, err := h.lifecycle.Power(ctx, server.ID, domain.PowerAction(params.Action))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServerResponse(updated))
}

type RebuildParams struct {
	Image        string   `binding:"required,max=128"                     json:"image"`
	ConfirmName  string   `binding:"required,max_bytes=63"                json:"confirm_name"`
	Acknowledged bool     `json:"acknowledged"`
	SSHKeys      []string `binding:"max=10,dive,required,max_bytes=16384" json:"ssh_keys"`
}

// Rebuild POST RouteGroup + ServerRebuildRoute. Переустановка ОС, данные на диске теряются.
func (h *ServersHandler) Rebuild(c *gin.Context) {
	var params RebuildParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	server, ok := h.authorize(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, ProvisionTimeout)
	defer cancel()

	updated, err := h.lifecycle.Rebuild(ctx, service.RebuildArgs{
		ServerID:     server.ID,
		Image:        params.Image,
		ConfirmName:  params.ConfirmName,
		Acknowledged: params.Acknowledged,
		SSHKeys:      params.SSHKeys,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, toServerResponse(updated))
}

// Reconcile POST RouteGroup + ServerReconcileRoute. Сверяет статус с провайдером.
func (h *ServersHandler) Reconcile(c *gin.Context) {
	server, ok := h.authorize(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, ProvisionTimeout)
	defer cancel()

	updated, err := h.lifecycle.Reconcile(ctx, server.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServerResponse(updated))
}

// Delete DELETE RouteGroup + ServerRoute. Локальная запись удаляется, даже если провайдер ответил ошибкой.
func (h *ServersHandler) Delete(c *gin.Context) {
	server, ok := h.authorize(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, ProvisionTimeout)
	defer cancel()

	res, err := h.lifecycle.Delete(ctx, server.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{
		LocalDeleted:  res.LocalDeleted,
		RemoteDeleted: res.RemoteDeleted,
		RemoteError:   res.RemoteError,
	})
}

// authorize находит сервер из пути и проверяет, что текущий владелец может им управлять.
// Чужой сервер отдается как отсутствующий.
func (h *ServersHandler) authorize(c *gin.Context) (*domain.Server, bool) {
	serverID, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusNotFound, parseErr).SetType(gin.ErrorTypePrivate)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	server, err := h.lifecycle.Authorize(ctx, middlewares.CurrentActor(c), serverID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
			return nil, false
		}
		abortWithServiceError(c, err)
		return nil, false
	}
	return server, true
}

func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fieldErrors(valErrs)})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

func fieldErrors(valErrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(valErrs))
	for _, fe := range valErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
