package redis

import (
	"dashboard-srv/internal/dashboard/repository"
	"dashboard-srv/pkg/log"
	pkgRedis "dashboard-srv/pkg/redis"
)

const keyPrefix = "dashboard:session:"

type implStateRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.StateRepository {
	return &implStateRepository{
		redis: redis,
		l:     l,
	}
}
