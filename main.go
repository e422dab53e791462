package main

import (
	"course-hub/biz/infrastructure/config"
	"course-hub/biz/infrastructure/util/log"
	"course-hub/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	otel.SetTextMapPropagator(b3.New())
	tracer, cfg := hertztracing.NewServerTracer()

	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))

	customizedRegister(h)

	log.Info("course-hub listening on %s", c.ListenOn)
	h.Spin()
}
