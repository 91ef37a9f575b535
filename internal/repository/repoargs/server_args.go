package repoargs

import (
	"github.com/fsdevblog/groph-vps/internal/domain"
)

// ServerRebuilt изменения записи сервера после запуска переустановки.
type ServerRebuilt struct {
	Image  string
	Status domain.ServerStatus
}

