package catalog

import "net/http"

var accountTools = []Tool{
	{
		Name:        "get_account_settings",
		Description: "Retrieve the account's settings",
		Method:      http.MethodGet,
		Path:        "/accounts/me/settings",
		Params: []Param{
			str("option", "Optional settings group to query").enum("meeting_authentication", "recording_authentication", "security").query(),
		},
	},
	{
		Name:        "update_account_settings",
		Description: "Update the account's settings",
		Method:      http.MethodPatch,
		Path:        "/accounts/me/settings",
		Params: []Param{
			object("settings", "Account settings to update").bodyRoot().required(),
		},
	},
	{
		Name:        "get_account_profile",
		Description: "Retrieve the account's profile",
		Method:      http.MethodGet,
		Path:        "/accounts/me",
	},
	{
		Name:        "list_sub_accounts",
		Description: "List sub accounts of a master account",
		Method:      http.MethodGet,
		Path:        "/accounts",
		Params: []Param{
			pageSize("The number of records returned per page"),
			pageNumber(),
		},
	},
	{
		Name:        "create_sub_account",
		Description: "Create a sub account under the master account",
		Method:      http.MethodPost,
		Path:        "/accounts",
		Params: []Param{
			str("first_name", "Owner's first name").required(),
			str("last_name", "Owner's last name").required(),
			str("email", "Owner's email address").format("email").required(),
			str("password", "Owner's password").required(),
			str("phone_country", "Country code of the phone number"),
			str("phone_number", "Owner's phone number"),
			str("company_name", "Company name").required(),
			str("address", "Company address"),
			str("city", "Company city"),
			str("state", "Company state or province"),
			str("zip", "Company ZIP or postal code"),
			str("country", "Company two-letter country code").required(),
		},
	},
}
