package http

import (
	"net/http"

	"github.com/aussiebroadwan/roleadmin/internal/admin/service"
	"github.com/aussiebroadwan/roleadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/roleadmin/pkg/httpx"
	"github.com/jinzhu/copier"
)

type ResourcesHandler struct {
	Resources *service.ResourceService
}

// ServeHTTP handles GET /v1/resources
//
//	@Summary		List Resources
//	@Description	Returns every resource ordered by name. Resources are seeded from configuration and are read only.
//	@Tags			Resources
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string							true	"Bearer token with admin:read scope"
//	@Success		200				{object}	adminsdk.ListResourcesResponse	"List of resources"
//	@Failure		401				{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		500				{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/resources [get].
func (h *ResourcesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resources, err := h.Resources.ListResources(r.Context())
	if err != nil {
		writeServerError(w, r, "Failed to list resources", err)
		return
	}

	out := make([]adminsdk.Resource, 0, len(resources))
	if err := copier.Copy(&out, &resources); err != nil {
		writeServerError(w, r, "Failed to list resources", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.ListResourcesResponse{Resources: out})
}
