package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/metrics"
	"github.com/jhoicas/privilege-pass-api/pkg/generator"
	"github.com/jhoicas/privilege-pass-api/pkg/logger"
)

// RequestID asigna un ULID a cada petición salvo que el cliente ya envíe X-Request-ID.
// Los ULID se ordenan por tiempo, así que los logs de una misma ventana quedan juntos.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{Generator: generator.ID})
}

// RequestLogger registra método, ruta, estado y latencia de cada petición y alimenta las métricas HTTP.
// Los errores 5xx se registran con el error interno que dejó writeError.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Deja que el ErrorHandler de Fiber escriba la respuesta antes de leer el estado.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		route := c.Route().Path
		metrics.ObserveHTTP(c.Method(), route, status, start)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
			if err, ok := c.Locals(LocalError).(error); ok {
				ev = ev.Err(err)
			} else if chainErr != nil {
				ev = ev.Err(chainErr)
			}
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("http request")
		return nil
	}
}
