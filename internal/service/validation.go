package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"golang.org/x/crypto/ssh"
)

const maxAuthorizedKeys = 10

var hostnameRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// normalizeHostname приводит имя к нижнему регистру и проверяет, что это допустимая метка DNS.
func normalizeHostname(hostname string) (string, error) {
	h := strings.ToLower(strings.TrimSpace(hostname))
	if !hostnameRe.MatchString(h) {
		return "", fmt.Errorf("%w: invalid hostname %q", domain.ErrValidation, hostname)
	}
	return h, nil
}

// normalizeAuthorizedKeys разбирает ключи в формате authorized_keys и возвращает их в каноническом виде.
func normalizeAuthorizedKeys(keys []string) ([]string, error) {
	if len(keys) > maxAuthorizedKeys {
		return nil, fmt.Errorf("%w: too many ssh keys (max %d)", domain.ErrValidation, maxAuthorizedKeys)
	}
	res := make([]string, 0, len(keys))
	for i, key := range keys {
		pub, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(key))
		if err != nil {
			return nil, fmt.Errorf("%w: ssh key #%d: %s", domain.ErrValidation, i+1, err.Error())
		}
		line := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub)))
		if comment != "" {
			line += " " + comment
		}
		res = append(res, line)
	}
	return res, nil
}
