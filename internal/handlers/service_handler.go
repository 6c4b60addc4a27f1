package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luminasalon/salon-manager/internal/cache"
	domain "github.com/luminasalon/salon-manager/internal/domain/catalog"
	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/models"
	"github.com/luminasalon/salon-manager/internal/schema"
	"github.com/luminasalon/salon-manager/internal/usecase/catalog"
)

type ServiceHandler struct {
	uc    *catalog.Catalog
	cache *cache.Client
}

func NewServiceHandler(uc *catalog.Catalog, cache *cache.Client) *ServiceHandler {
	return &ServiceHandler{uc: uc, cache: cache}
}

// List supports ?category=, ?active=true|false and ?q= filters. The
// unfiltered listing is served from cache when possible.
func (h *ServiceHandler) List(c *gin.Context) {
	f := domain.Filter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			httpresp.BadRequest(c, "active must be true or false")
			return
		}
		f.Active = &active
	}

	unfiltered := f.Category == "" && f.Active == nil && f.Query == ""
	if unfiltered {
		if cached, _ := h.cache.Get(c.Request.Context(), cache.ViewAdminServices); cached != nil {
			var services []models.Service
			if json.Unmarshal(cached, &services) == nil {
				httpresp.List(c, services)
				return
			}
		}
	}

	services, err := h.uc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	if unfiltered {
		if payload, err := json.Marshal(services); err == nil {
			h.cache.Set(c.Request.Context(), cache.ViewAdminServices, payload, cache.DefaultTTL)
		}
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "", svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseService(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	svc, err := h.uc.Create(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.Created(c, "Service created.", svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseService(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	svc, err := h.uc.Update(c.Request.Context(), actorFrom(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.OK(c, "Service updated.", svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}

	h.invalidateViews(c)
	httpresp.OK(c, "Service deleted.", nil)
}

func (h *ServiceHandler) invalidateViews(c *gin.Context) {
	h.cache.Invalidate(c.Request.Context(), cache.ViewAdminServices, cache.ViewPublicServices)
}
