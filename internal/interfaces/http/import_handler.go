package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/supir/suministros-api/internal/application/dto"
	"github.com/supir/suministros-api/internal/application/feed"
)

// ImportHandler dispara la reconciliación del feed Supir.
type ImportHandler struct {
	importer *feed.Importer
	feedPath string
}

// NewImportHandler construye el handler. feedPath es la ubicación por defecto
// del feed en el servidor, usada cuando la petición no trae cuerpo.
func NewImportHandler(importer *feed.Importer, feedPath string) *ImportHandler {
	return &ImportHandler{importer: importer, feedPath: feedPath}
}

// Import ejecuta una corrida de importación. Con cuerpo XML en la petición se
// importa ese documento; sin cuerpo se importa el feed del servidor (la ruta
// puede sobreescribirse con el header X-Feed-Path). El resultado estructurado
// se devuelve siempre con HTTP 200: los fallos por registro y el fallo
// catastrófico de parseo viajan dentro del resultado, no como error HTTP.
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	var result *feed.Result
	if body := c.Body(); len(body) > 0 {
		result = h.importer.Import(bytes.NewReader(body))
	} else {
		path := c.Get("X-Feed-Path", h.feedPath)
		result = h.importer.ImportFile(path)
	}
	return c.JSON(dto.ToImportResponse(result))
}
