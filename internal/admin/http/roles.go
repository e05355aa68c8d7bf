package http

import (
	"net/http"

	"github.com/aussiebroadwan/roleadmin/internal/admin/service"
	"github.com/aussiebroadwan/roleadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/roleadmin/pkg/httpx"
	"github.com/jinzhu/copier"
)

// RolesHandler handles the role and role-resource endpoints.
type RolesHandler struct {
	Assignments *service.AssignmentService
}

// HandleList handles GET /v1/roles
//
//	@Summary		List Roles
//	@Description	Returns every role with the ids of the resources it grants.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:read scope"
//	@Success		200				{object}	adminsdk.ListRolesResponse	"List of roles"
//	@Failure		401				{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		500				{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Assignments.GetRoles(r.Context())
	if err != nil {
		writeServerError(w, r, "Failed to list roles", err)
		return
	}

	out := make([]adminsdk.Role, 0, len(roles))
	if err := copier.Copy(&out, &roles); err != nil {
		writeServerError(w, r, "Failed to list roles", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.ListRolesResponse{Roles: out})
}

// HandleCreate handles POST /v1/roles
//
//	@Summary		Create Role
//	@Description	Creates a role and its resource grants in one transaction. An unknown resource id fails the whole request.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header	string						true	"Bearer token with admin:write scope"
//	@Param			request			body	adminsdk.CreateRoleRequest	true	"Role to create"
//	@Success		201				"Role created"
//	@Failure		400				{object}	adminsdk.ValidationErrorResponse	"Invalid request body"
//	@Failure		401				{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	adminsdk.ErrorResponse				"operation_failed with the localized reason"
//	@Router			/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.CreateRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeOutcome(w, http.StatusCreated, h.Assignments.CreateRole(r.Context(), req.Name, req.ResourceIDs))
}

// HandleSetResources handles PUT /v1/roles/{id}/resources
//
//	@Summary		Replace Role Resources
//	@Description	Replaces the set of resources a role grants.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header	string								true	"Bearer token with admin:write scope"
//	@Param			id				path	string								true	"Role ID (ULID)"
//	@Param			request			body	adminsdk.SetRoleResourcesRequest	true	"Resource ids"
//	@Success		204				"Resources replaced"
//	@Failure		400				{object}	adminsdk.ValidationErrorResponse	"Invalid request body"
//	@Failure		401				{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	adminsdk.ErrorResponse				"operation_failed with the localized reason"
//	@Router			/v1/roles/{id}/resources [put].
func (h *RolesHandler) HandleSetResources(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.SetRoleResourcesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeOutcome(w, http.StatusNoContent, h.Assignments.SetRoleResources(r.Context(), r.PathValue("id"), req.ResourceIDs))
}

// HandleDelete handles DELETE /v1/roles?id=..
//
//	@Summary		Delete Roles
//	@Description	Deletes roles in the order given and stops at the first failure. Protected roles cannot be deleted.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header	string		true	"Bearer token with admin:write scope"
//	@Param			id				query	[]string	true	"Role IDs"	collectionFormat(multi)
//	@Success		204				"Roles deleted"
//	@Failure		400				{object}	adminsdk.ErrorResponse	"No ids given"
//	@Failure		401				{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		422				{object}	adminsdk.ErrorResponse	"operation_failed with the localized reason"
//	@Router			/v1/roles [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ids := queryIDs(r, "id")
	if len(ids) == 0 {
		writeBadRequest(w, "At least one id query parameter is required")
		return
	}
	writeOutcome(w, http.StatusNoContent, h.Assignments.DeleteRoles(r.Context(), ids...))
}

// HandleLookup handles GET /v1/roles/lookup
//
//	@Summary		Roles Granting Resources
//	@Description	Returns the comma separated names of the roles granted any of the given resources. Resources are given either by id or by name.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string		true	"Bearer token with admin:read scope"
//	@Param			resource_id		query		[]string	false	"Resource IDs"		collectionFormat(multi)
//	@Param			resource		query		[]string	false	"Resource names"	collectionFormat(multi)
//	@Success		200				{object}	adminsdk.LookupRolesResponse	"roles"
//	@Failure		400				{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		401				{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		500				{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/roles/lookup [get].
func (h *RolesHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ids := queryIDs(r, "resource_id")
	names := queryIDs(r, "resource")

	var (
		roles string
		err   error
	)
	switch {
	case len(ids) > 0 && len(names) > 0:
		writeBadRequest(w, "Use either resource_id or resource, not both")
		return
	case len(names) > 0:
		roles, err = h.Assignments.GetRolesForResourceNames(r.Context(), names...)
	default:
		roles, err = h.Assignments.GetRolesWithResources(r.Context(), ids...)
	}
	if err != nil {
		writeServerError(w, r, "Failed to look up roles", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.LookupRolesResponse{Roles: roles})
}
