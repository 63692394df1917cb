package catalog

import "net/http"

var contactTools = []Tool{
	{
		Name:        "list_contacts",
		Description: "List the current user's contacts",
		Method:      http.MethodGet,
		Path:        "/contacts",
		Params: []Param{
			pageSize("The number of records returned per page"),
			nextPageToken(),
			str("status", "Contact presence status").enum("active", "inactive", "pending").query(),
		},
	},
	{
		Name:        "get_contact",
		Description: "Retrieve a contact's details",
		Method:      http.MethodGet,
		Path:        "/contacts/{contact_id}",
		Params: []Param{
			path("contact_id", "The contact ID or email address"),
		},
	},
	{
		Name:        "search_company_contacts",
		Description: "Search contacts in the company directory",
		Method:      http.MethodGet,
		Path:        "/contacts/search",
		Params: []Param{
			str("query_string", "Search term: name, email or phone number").query().required(),
			pageSize("The number of records returned per page"),
			nextPageToken(),
		},
	},
}
