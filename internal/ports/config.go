package ports

import "github.com/gabrielcapilla/radiogo/internal/domain"

type ConfigService interface {
	Load() (domain.Config, error)
}
