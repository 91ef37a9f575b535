package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/gin-gonic/gin"
)

// errorStatus сопоставляет ошибку сервисного слоя http статусу. public - можно ли отдавать текст ошибки клиенту.
// ErrConflict проверяется раньше ErrProvider: нехватка мощностей у провайдера оборачивает оба.
func errorStatus(err error) (status int, public bool) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPreconditionFailed):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired, true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, false
	case errors.Is(err, domain.ErrPlanNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, false
	case errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, true
	case errors.Is(err, domain.ErrProvider):
		return http.StatusBadGateway, false
	default:
		return http.StatusInternalServerError, false
	}
}

// abortWithServiceError завершает запрос ошибкой сервисного слоя.
func abortWithServiceError(c *gin.Context, err error) {
	var persistErr *domain.PersistenceError
	if errors.As(err, &persistErr) {
		// инстанс у провайдера уже создан, его идентификатор нужен для ручной сверки.
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":       "server was created at provider but could not be saved",
			"instance_id": persistErr.InstanceID,
		})
		return
	}

	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) && providerErr.Timeout && !errors.Is(err, domain.ErrConflict) {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"error":           "provider did not respond in time, operation outcome is unknown",
			"outcome_unknown": true,
		})
		return
	}

	status, public := errorStatus(err)
	errType := gin.ErrorTypePrivate
	if public {
		errType = gin.ErrorTypePublic
	}
	_ = c.AbortWithError(status, err).SetType(errType)
}
