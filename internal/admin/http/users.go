package http

import (
	"net/http"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/service"
	"github.com/aussiebroadwan/roleadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/roleadmin/pkg/httpx"
	"github.com/jinzhu/copier"
)

// UsersHandler handles the user management endpoints.
type UsersHandler struct {
	Assignments *service.AssignmentService
}

// HandleList handles GET /v1/users
//
//	@Summary		List Users
//	@Description	Returns every user with the ids of the roles they hold.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with admin:read scope"
//	@Success		200				{object}	adminsdk.ListUsersResponse	"List of users"
//	@Failure		401				{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		500				{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Assignments.GetUsers(r.Context())
	if err != nil {
		writeServerError(w, r, "Failed to list users", err)
		return
	}

	out := make([]adminsdk.User, 0, len(users))
	if err := copier.Copy(&out, &users); err != nil {
		writeServerError(w, r, "Failed to list users", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.ListUsersResponse{Users: out})
}

// HandleCreate handles POST /v1/users
//
//	@Summary		Create User
//	@Description	Creates a user. Username, email and password rules are applied by the service and reported as operation_failed.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header	string						true	"Bearer token with admin:write scope"
//	@Param			request			body	adminsdk.CreateUserRequest	true	"User to create"
//	@Success		201				"User created"
//	@Failure		400				{object}	adminsdk.ValidationErrorResponse	"Invalid request body"
//	@Failure		401				{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	adminsdk.ErrorResponse				"operation_failed with the localized reason"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeOutcome(w, http.StatusCreated, h.Assignments.CreateUser(r.Context(), req.Username, req.Email, req.Password))
}

// HandleUpdate handles PUT /v1/users/{id}
//
//	@Summary		Update User
//	@Description	Replaces the user's username, email and complete role set in one transaction. Unknown role ids are ignored.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header	string						true	"Bearer token with admin:write scope"
//	@Param			id				path	string						true	"User ID (ULID)"
//	@Param			request			body	adminsdk.UpdateUserRequest	true	"New user state"
//	@Success		204				"User updated"
//	@Failure		400				{object}	adminsdk.ValidationErrorResponse	"Invalid request body"
//	@Failure		401				{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	adminsdk.ErrorResponse				"operation_failed with the localized reason"
//	@Router			/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	outcome := h.Assignments.UpdateUser(r.Context(), domain.UserModel{
		ID:       r.PathValue("id"),
		Username: req.Username,
		Email:    req.Email,
		RoleIDs:  req.RoleIDs,
	})
	writeOutcome(w, http.StatusNoContent, outcome)
}

// HandleDelete handles DELETE /v1/users?id=..
//
//	@Summary		Delete Users
//	@Description	Deletes users in the order given and stops at the first failure. Users deleted before the failure stay deleted.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header	string		true	"Bearer token with admin:write scope"
//	@Param			id				query	[]string	true	"User IDs"	collectionFormat(multi)
//	@Success		204				"Users deleted"
//	@Failure		400				{object}	adminsdk.ErrorResponse	"No ids given"
//	@Failure		401				{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		422				{object}	adminsdk.ErrorResponse	"operation_failed with the localized reason"
//	@Router			/v1/users [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ids := queryIDs(r, "id")
	if len(ids) == 0 {
		writeBadRequest(w, "At least one id query parameter is required")
		return
	}
	writeOutcome(w, http.StatusNoContent, h.Assignments.DeleteUsers(r.Context(), ids...))
}
