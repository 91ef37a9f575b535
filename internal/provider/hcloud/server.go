package hcloud

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/pkg/retry"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/sirupsen/logrus"
)

// CreateInstance создает сервер и не ждет завершения действия создания: сервер возвращается в состоянии
// initializing, дальнейшее состояние выясняется сверкой. Запрос создания не повторяется.
func (c *Client) CreateInstance(ctx context.Context, args domain.CreateInstanceArgs) (*domain.ProviderInstance, error) {
	userData, err := renderUserData(args.Label, args.AuthorizedKeys)
	if err != nil {
		return nil, providerError("create", err)
	}

	result, _, err := c.client.Server.Create(ctx, hcloud.ServerCreateOpts{
		Name:       args.Label,
		ServerType: &hcloud.ServerType{Name: args.ServerType},
		Image:      &hcloud.Image{Name: args.Image},
		Location:   &hcloud.Location{Name: args.Region},
		UserData:   userData,
		Labels:     args.Labels,
	})
	if err != nil {
		return nil, providerError("create", err)
	}
	if result.Server == nil {
		return nil, providerError("create", fmt.Errorf("empty response"))
	}

	c.logger.WithFields(logrus.Fields{
		"instance_id": result.Server.ID,
		"name":        args.Label,
		"server_type": args.ServerType,
		"location":    args.Region,
	}).Info("instance created")
	return toInstance(result.Server), nil
}

func (c *Client) GetInstance(ctx context.Context, id string) (*domain.ProviderInstance, error) {
	serverID, err := parseID(id)
	if err != nil {
		return nil, providerError("get", err)
	}

	var server *hcloud.Server
	err = c.withRetry(ctx, func(ctx context.Context) error {
		var getErr error
		server, _, getErr = c.client.Server.GetByID(ctx, serverID)
		return getErr
	})
	if err != nil {
		return nil, providerError("get", err)
	}
	if server == nil {
		return nil, providerError("get", fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, id))
	}
	return toInstance(server), nil
}

// PowerAction выполняет действие с питанием и ждет его завершения. stop выключает сервер без ожидания ОС.
func (c *Client) PowerAction(ctx context.Context, id string, action domain.PowerAction) error {
	op := "power_" + string(action)
	serverID, err := parseID(id)
	if err != nil {
		return providerError(op, err)
	}
	server := &hcloud.Server{ID: serverID}

	var act *hcloud.Action
	switch action {
	case domain.PowerStart:
		act, _, err = c.client.Server.Poweron(ctx, server)
	case domain.PowerStop:
		act, _, err = c.client.Server.Poweroff(ctx, server)
	case domain.PowerReboot:
		act, _, err = c.client.Server.Reboot(ctx, server)
	default:
		return providerError(op, fmt.Errorf("%w: unknown power action %q", domain.ErrValidation, action))
	}
	if err != nil {
		return providerError(op, err)
	}
	if err = c.client.Action.WaitFor(ctx, act); err != nil {
		return providerError(op, err)
	}
	return nil
}

// RebuildInstance переустанавливает сервер из образа. API не принимает user data при переустановке,
// поэтому ключи из authorizedKeys не применяются: остаются ключи, заданные при создании.
func (c *Client) RebuildInstance(ctx context.Context, id, image string, authorizedKeys []string) error {
	serverID, err := parseID(id)
	if err != nil {
		return providerError("rebuild", err)
	}
	if len(authorizedKeys) > 0 {
		c.logger.WithField("instance_id", id).Warn("rebuild does not support ssh keys, keeping keys from creation")
	}

	result, _, err := c.client.Server.RebuildWithResult(ctx, &hcloud.Server{ID: serverID}, hcloud.ServerRebuildOpts{
		Image: &hcloud.Image{Name: image},
	})
	if err != nil {
		return providerError("rebuild", err)
	}
	c.logger.WithFields(logrus.Fields{
		"instance_id": id,
		"image":       image,
		"action_id":   actionID(result.Action),
	}).Info("instance rebuild started")
	return nil
}

// DeleteInstance удаляет сервер. Отсутствующий сервер считается удаленным.
func (c *Client) DeleteInstance(ctx context.Context, id string) error {
	serverID, err := parseID(id)
	if err != nil {
		return providerError("delete", err)
	}

	err = c.withRetry(ctx, func(ctx context.Context) error {
		_, _, delErr := c.client.Server.DeleteWithResult(ctx, &hcloud.Server{ID: serverID})
		if isNotFound(delErr) {
			return nil
		}
		return delErr
	})
	if err != nil {
		return providerError("delete", err)
	}
	c.logger.WithField("instance_id", id).Info("instance deleted")
	return nil
}

// ListInstances серверы, у которых есть все метки labels.
func (c *Client) ListInstances(ctx context.Context, labels map[string]string) ([]domain.ProviderInstance, error) {
	var servers []*hcloud.Server
	err := c.withRetry(ctx, func(ctx context.Context) error {
		var listErr error
		servers, listErr = c.client.Server.AllWithOpts(ctx, hcloud.ServerListOpts{
			ListOpts: hcloud.ListOpts{LabelSelector: labelSelector(labels)},
		})
		return listErr
	})
	if err != nil {
		return nil, providerError("list", err)
	}

	res := make([]domain.ProviderInstance, 0, len(servers))
	for _, s := range servers {
		res = append(res, *toInstance(s))
	}
	return res, nil
}

func (c *Client) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	return retry.Do(ctx, op, //nolint:wrapcheck
		retry.Attempts(c.retryAttempts),
		retry.InitialDelay(c.retryDelay),
		retry.If(isRetryable),
	)
}

// labelSelector строит селектор вида "a=1,b=2" в стабильном порядке.
func labelSelector(labels map[string]string) string {
	parts := make([]string, 0, len(labels))
	for k, v := range labels {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func parseID(id string) (int64, error) {
	serverID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || serverID <= 0 {
		return 0, fmt.Errorf("%w: invalid instance id %q", domain.ErrInstanceNotFound, id)
	}
	return serverID, nil
}

func actionID(a *hcloud.Action) int64 {
	if a == nil {
		return 0
	}
	return a.ID
}

func toInstance(s *hcloud.Server) *domain.ProviderInstance {
	inst := &domain.ProviderInstance{
		ID:     strconv.FormatInt(s.ID, 10),
		Name:   s.Name,
		State:  toState(s.Status),
		Labels: s.Labels,
		Raw:    map[string]any{"status": string(s.Status)},
	}
	if s.PublicNet.IPv4.IP != nil {
		inst.IPv4 = s.PublicNet.IPv4.IP.String()
	}
	if s.PublicNet.IPv6.Network != nil {
		inst.IPv6 = s.PublicNet.IPv6.Network.String()
	} else if s.PublicNet.IPv6.IP != nil {
		inst.IPv6 = s.PublicNet.IPv6.IP.String()
	}
	if s.ServerType != nil {
		inst.Raw["server_type"] = s.ServerType.Name
	}
	if s.Datacenter != nil {
		inst.Raw["datacenter"] = s.Datacenter.Name
	}
	if s.Image != nil {
		inst.Raw["image"] = s.Image.Name
	}
	if !s.Created.IsZero() {
		inst.Raw["created"] = s.Created.UTC().Format(time.RFC3339)
	}
	return inst
}

func toState(status hcloud.ServerStatus) domain.InstanceState {
	switch status {
	case hcloud.ServerStatusInitializing:
		return domain.InstanceInitializing
	case hcloud.ServerStatusRunning:
		return domain.InstanceRunning
	case hcloud.ServerStatusOff:
		return domain.InstanceOff
	case hcloud.ServerStatusRebuilding:
		return domain.InstanceRebuilding
	case hcloud.ServerStatusDeleting:
		return domain.InstanceDeleting
	case hcloud.ServerStatusStarting, hcloud.ServerStatusStopping, hcloud.ServerStatusMigrating:
		return domain.InstanceTransitioning
	default:
		return domain.InstanceUnknown
	}
}
