package producer

import (
	"dashboard-srv/internal/dashboard"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new dashboard producer
func New(l log.Logger, producer pkgKafka.IProducer) dashboard.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
