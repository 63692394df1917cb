package catalog

import "net/http"

var phoneTools = []Tool{
	{
		Name:        "list_phone_users",
		Description: "List Zoom Phone users",
		Method:      http.MethodGet,
		Path:        "/phone/users",
		Params: []Param{
			pageSize("The number of records returned per page"),
			nextPageToken(),
			str("site_id", "Only list users of this site").query(),
		},
	},
	{
		Name:        "get_phone_user",
		Description: "Retrieve a Zoom Phone user's profile",
		Method:      http.MethodGet,
		Path:        "/phone/users/{user_id}",
		Params: []Param{
			path("user_id", "The user ID or email address of the user"),
		},
	},
	{
		Name:        "update_phone_user",
		Description: "Update a Zoom Phone user's profile",
		Method:      http.MethodPatch,
		Path:        "/phone/users/{user_id}",
		Params: []Param{
			path("user_id", "The user ID or email address of the user"),
			str("extension_number", "Extension number"),
			str("site_id", "Site ID"),
			str("policy_id", "Policy ID"),
		},
	},
	{
		Name:        "list_phone_numbers",
		Description: "List Zoom Phone numbers on the account",
		Method:      http.MethodGet,
		Path:        "/phone/numbers",
		Params: []Param{
			str("type", "Which numbers to list").enum("assigned", "unassigned", "all").query(),
			pageSize("The number of records returned per page"),
			nextPageToken(),
		},
	},
}
