package hcloud

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const cloudConfigHeader = "#cloud-config\n"

type cloudConfig struct {
	Hostname          string   `yaml:"hostname,omitempty"`
	PreserveHostname  bool     `yaml:"preserve_hostname"`
	SSHAuthorizedKeys []string `yaml:"ssh_authorized_keys,omitempty"`
	SSHPasswordAuth   bool     `yaml:"ssh_pwauth"`
	DisableRoot       bool     `yaml:"disable_root"`
}

// renderUserData документ cloud-init, который раскладывает ключи пользователя и выставляет имя хоста.
func renderUserData(hostname string, keys []string) (string, error) {
	doc := cloudConfig{
		Hostname:          hostname,
		SSHAuthorizedKeys: keys,
		// без ключей доступ только по паролю root из письма провайдера.
		SSHPasswordAuth: len(keys) == 0,
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render cloud-init: %w", err)
	}
	return cloudConfigHeader + string(out), nil
}
