package http

import (
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate instancia compartida del validador; las reglas viven en los
// tags de los DTO. Los valores de filtro no se validan a propósito: un
// valor ilegible degrada según las reglas del motor de filtrado.
var validate = validator.New()

// queryValues adapta los query args de fasthttp a url.Values, que es lo
// que consume el códec de filtros. Conserva claves repetidas.
func queryValues(c *fiber.Ctx) url.Values {
	q := make(url.Values)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		q.Add(string(key), string(value))
	})
	return q
}
