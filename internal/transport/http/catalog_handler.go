package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"security-funnel-service/internal/catalog"
	"security-funnel-service/internal/domain"
)

// CatalogProvider serves per-language question catalogs (usually the
// cached repository).
type CatalogProvider interface {
	GetCatalog(ctx context.Context, lang string) (domain.Catalog, error)
}

// CatalogHandler exposes the question catalog to the funnel client.
type CatalogHandler struct {
	catalogs CatalogProvider
	log      *zap.Logger
}

func NewCatalogHandler(catalogs CatalogProvider, log *zap.Logger) *CatalogHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogHandler{catalogs: catalogs, log: log}
}

// Questions handles GET /api/questions?lang=xx. Unknown languages fall
// back to the default catalog, never an error.
func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = catalog.DefaultLanguage
	}

	result, err := h.catalogs.GetCatalog(r.Context(), lang)
	if err != nil {
		h.log.Error("catalog load failed", zap.String("lang", lang), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language":    result.Language,
		"questions":   result.Questions,
		"areaDetails": catalog.AreaDetails(result.Language),
	})
}
