package catalog

import "net/http"

var userTools = []Tool{
	{
		Name:        "list_users",
		Description: "List users on the account",
		Method:      http.MethodGet,
		Path:        "/users",
		Params: []Param{
			str("status", "The user's status").enum("active", "inactive", "pending").query(),
			pageSize("The number of records returned per page"),
			pageNumber(),
			str("role_id", "Only list users with this role").query(),
		},
	},
	{
		Name:        "create_user",
		Description: "Create a new user on the account",
		Method:      http.MethodPost,
		Path:        "/users",
		Params: []Param{
			str("action", "How the user is created").enum("create", "autoCreate", "custCreate", "ssoCreate").required(),
			object("user_info", "The user's information",
				str("email", "User's email address").format("email").required(),
				num("type", "User type: 1 basic, 2 licensed, 99 none").between(1, 99).required(),
				str("first_name", "User's first name"),
				str("last_name", "User's last name"),
				str("password", "User's password, only used with autoCreate"),
			).required(),
		},
	},
	{
		Name:        "get_user",
		Description: "Retrieve a user's details",
		Method:      http.MethodGet,
		Path:        "/users/{user_id}",
		Params: []Param{
			path("user_id", "The user ID or email address of the user. For user-level apps, pass 'me'"),
		},
	},
	{
		Name:        "update_user",
		Description: "Update a user's details",
		Method:      http.MethodPatch,
		Path:        "/users/{user_id}",
		Params: []Param{
			path("user_id", "The user ID or email address of the user. For user-level apps, pass 'me'"),
			str("first_name", "User's first name"),
			str("last_name", "User's last name"),
			num("type", "User type: 1 basic, 2 licensed, 99 none").between(1, 99),
			num("pmi", "Personal meeting ID"),
			boolean("use_pmi", "Use the personal meeting ID for instant meetings"),
			str("timezone", "User's time zone"),
			str("dept", "User's department"),
		},
	},
	{
		Name:        "delete_user",
		Description: "Delete or disassociate a user",
		Method:      http.MethodDelete,
		Path:        "/users/{user_id}",
		Params: []Param{
			path("user_id", "The user ID or email address of the user"),
			str("action", "Delete the user permanently or disassociate them from the account").enum("delete", "disassociate").query().required(),
		},
		Confirmation: "User deleted successfully",
	},
}
