package catalog

import "net/http"

func meetingFields() []Param {
	return []Param{
		str("start_time", "Meeting start time in ISO 8601 format (yyyy-MM-ddTHH:mm:ssZ)"),
		num("duration", "Meeting duration in minutes"),
		str("timezone", "Time zone for start_time"),
		str("password", "Meeting password"),
		str("agenda", "Meeting description"),
		object("settings", "Meeting settings"),
	}
}

var meetingTools = []Tool{
	{
		Name:        "list_meetings",
		Description: "List all meetings for a user",
		Method:      http.MethodGet,
		Path:        "/users/{user_id}/meetings",
		Params: []Param{
			path("user_id", "The user ID or email address of the user. For user-level apps, pass 'me'"),
			str("type", "The type of meetings to list").enum("scheduled", "live", "upcoming", "pending").query(),
			pageSize("The number of records returned per page"),
			pageNumber(),
		},
	},
	{
		Name:        "create_meeting",
		Description: "Create a new meeting for a user",
		Method:      http.MethodPost,
		Path:        "/users/{user_id}/meetings",
		Params: append([]Param{
			path("user_id", "The user ID or email address of the user. For user-level apps, pass 'me'"),
			str("topic", "Meeting topic").required(),
			num("type", "Meeting type: 1 instant, 2 scheduled, 3 recurring without fixed time, 8 recurring with fixed time").between(1, 8).required(),
		}, meetingFields()...),
	},
	{
		Name:        "get_meeting",
		Description: "Retrieve a meeting's details",
		Method:      http.MethodGet,
		Path:        "/meetings/{meeting_id}",
		Params: []Param{
			path("meeting_id", "The meeting ID"),
		},
	},
	{
		Name:        "update_meeting",
		Description: "Update a meeting's details",
		Method:      http.MethodPatch,
		Path:        "/meetings/{meeting_id}",
		Params: append([]Param{
			path("meeting_id", "The meeting ID"),
			str("topic", "Meeting topic"),
			num("type", "Meeting type").between(1, 8),
		}, meetingFields()...),
	},
	{
		Name:        "delete_meeting",
		Description: "Delete a meeting",
		Method:      http.MethodDelete,
		Path:        "/meetings/{meeting_id}",
		Params: []Param{
			path("meeting_id", "The meeting ID"),
			str("occurrence_id", "The meeting occurrence ID").query(),
			boolean("schedule_for_reminder", "Notify host and alternative host about the meeting cancellation").query(),
		},
		Confirmation: "Meeting deleted successfully",
	},
	{
		Name:        "list_meeting_participants",
		Description: "List participants from a past meeting",
		Method:      http.MethodGet,
		Path:        "/report/meetings/{meeting_id}/participants",
		Params: []Param{
			path("meeting_id", "The meeting ID"),
			pageSize("The number of records returned per page"),
			nextPageToken(),
		},
	},
	{
		Name:        "invite_people",
		Description: "Register a person for a meeting so they receive an invitation",
		Method:      http.MethodPost,
		Path:        "/meetings/{meeting_id}/registrants",
		Params: []Param{
			path("meeting_id", "The meeting ID"),
			str("first_name", "Registrant's first name").required(),
			str("last_name", "Registrant's last name").required(),
			str("email", "Registrant's email address").format("email").required(),
			str("address", "Registrant's address"),
			str("city", "Registrant's city"),
			str("state", "Registrant's state or province"),
			str("zip", "Registrant's ZIP or postal code"),
			str("country", "Registrant's two-letter country code"),
			str("phone", "Registrant's phone number"),
			str("comments", "Registrant's questions and comments"),
			str("job_title", "Registrant's job title"),
			str("org", "Registrant's organization"),
			boolean("auto_approve", "Approve the registration automatically"),
			array("custom_questions", "Answers to the meeting's custom registration questions",
				object("question", "Custom question answer",
					str("title", "Question title").required(),
					str("value", "Answer").required(),
				),
			),
		},
	},
}
