package hcloud

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// isHCloudErrorCode true, если err ошибка API с одним из кодов codes.
func isHCloudErrorCode(err error, codes ...hcloud.ErrorCode) bool {
	if err == nil {
		return false
	}
	var hErr hcloud.Error
	if !errors.As(err, &hErr) {
		return false
	}
	for _, code := range codes {
		if hErr.Code == code {
			return true
		}
	}
	return false
}

func isNotFound(err error) bool {
	return isHCloudErrorCode(err, hcloud.ErrorCodeNotFound)
}

// isRetryable временные ошибки: ресурс занят другим действием, лимит запросов, сбой на стороне API.
func isRetryable(err error) bool {
	return isHCloudErrorCode(err,
		hcloud.ErrorCodeLocked,
		hcloud.ErrorCodeConflict,
		hcloud.ErrorCodeRateLimitExceeded,
		hcloud.ErrorCodeServiceError,
		hcloud.ErrorCodeTimeout,
	)
}

// isCapacity у провайдера нет ресурсов или исчерпаны лимиты проекта.
func isCapacity(err error) bool {
	return isHCloudErrorCode(err,
		hcloud.ErrorCodeResourceUnavailable,
		hcloud.ErrorCodeResourceLimitExceeded,
		hcloud.ErrorCodePlacementError,
	)
}

// providerError приводит ошибку hcloud к *domain.ProviderError.
func providerError(op string, err error) error {
	var pErr *domain.ProviderError
	if errors.As(err, &pErr) {
		return err
	}
	timeout := errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
	switch {
	case isNotFound(err):
		err = fmt.Errorf("%w: %w", domain.ErrInstanceNotFound, err)
	case isCapacity(err):
		err = fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return domain.NewProviderError(op, err, timeout)
}
