package catalog

import "net/http"

func webinarFields() []Param {
	return []Param{
		str("start_time", "Webinar start time in ISO 8601 format (yyyy-MM-ddTHH:mm:ssZ)"),
		num("duration", "Webinar duration in minutes"),
		str("timezone", "Time zone for start_time"),
		str("password", "Webinar password"),
		str("agenda", "Webinar description"),
		object("settings", "Webinar settings"),
	}
}

var webinarTools = []Tool{
	{
		Name:        "list_webinars",
		Description: "List all webinars for a user",
		Method:      http.MethodGet,
		Path:        "/users/{user_id}/webinars",
		Params: []Param{
			path("user_id", "The user ID or email address of the user. For user-level apps, pass 'me'"),
			pageSize("The number of records returned per page"),
			pageNumber(),
		},
	},
	{
		Name:        "create_webinar",
		Description: "Create a new webinar for a user",
		Method:      http.MethodPost,
		Path:        "/users/{user_id}/webinars",
		Params: append([]Param{
			path("user_id", "The user ID or email address of the user. For user-level apps, pass 'me'"),
			str("topic", "Webinar topic").required(),
			num("type", "Webinar type: 5 webinar, 6 recurring without fixed time, 9 recurring with fixed time").between(5, 9).required(),
		}, webinarFields()...),
	},
	{
		Name:        "get_webinar",
		Description: "Retrieve a webinar's details",
		Method:      http.MethodGet,
		Path:        "/webinars/{webinar_id}",
		Params: []Param{
			path("webinar_id", "The webinar ID"),
		},
	},
	{
		Name:        "update_webinar",
		Description: "Update a webinar's details",
		Method:      http.MethodPatch,
		Path:        "/webinars/{webinar_id}",
		Params: append([]Param{
			path("webinar_id", "The webinar ID"),
			str("topic", "Webinar topic"),
			num("type", "Webinar type").between(5, 9),
		}, webinarFields()...),
	},
	{
		Name:        "delete_webinar",
		Description: "Delete a webinar",
		Method:      http.MethodDelete,
		Path:        "/webinars/{webinar_id}",
		Params: []Param{
			path("webinar_id", "The webinar ID"),
			str("occurrence_id", "The webinar occurrence ID").query(),
			boolean("cancel_webinar_reminder", "Notify panelists and registrants about the cancellation").query(),
		},
		Confirmation: "Webinar deleted successfully",
	},
	{
		Name:        "list_webinar_participants",
		Description: "List participants from a past webinar",
		Method:      http.MethodGet,
		Path:        "/report/webinars/{webinar_id}/participants",
		Params: []Param{
			path("webinar_id", "The webinar ID"),
			pageSize("The number of records returned per page"),
			nextPageToken(),
		},
	},
}
