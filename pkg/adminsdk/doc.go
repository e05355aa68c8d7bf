/*
Package adminsdk provides a client for the role administration service.

# Overview

A Client talks to the JSON API exposed under /v1. Every call except the
health checks needs a bearer token issued by the identity provider the
service trusts. Read calls need the admin:read scope and write calls need
admin:write.

	client := adminsdk.NewClient("https://admin.example.com", token)

	// Create a role granted two resources
	err := client.CreateRole(ctx, adminsdk.CreateRoleRequest{
		Name:        "editor",
		ResourceIDs: []string{postsID, commentsID},
	})

	// Which roles can touch these resources?
	names, err := client.LookupRoles(ctx, []string{postsID}, nil)

# Errors

Failed calls return an *APIError. A rejected operation (duplicate name,
protected role, unknown user) has code "operation_failed" and carries the
service's localized message in Description:

	var apiErr *adminsdk.APIError
	if errors.As(err, &apiErr) && apiErr.IsOperationFailed() {
		fmt.Println(apiErr.Description)
	}
*/
package adminsdk
