package catalog

import "net/http"

var recordingTools = []Tool{
	{
		Name:        "list_recordings",
		Description: "List cloud recordings for a user",
		Method:      http.MethodGet,
		Path:        "/users/{user_id}/recordings",
		Params: []Param{
			path("user_id", "The user ID or email address of the user. For user-level apps, pass 'me'"),
			pageSize("The number of records returned per page"),
			nextPageToken(),
			str("from", "Start date in yyyy-mm-dd format").query(),
			str("to", "End date in yyyy-mm-dd format").query(),
		},
	},
	{
		Name:        "get_meeting_recordings",
		Description: "Retrieve all recordings of a meeting",
		Method:      http.MethodGet,
		Path:        "/meetings/{meeting_id}/recordings",
		Params: []Param{
			path("meeting_id", "The meeting ID or UUID"),
		},
	},
	{
		Name:        "delete_meeting_recordings",
		Description: "Delete all recordings of a meeting",
		Method:      http.MethodDelete,
		Path:        "/meetings/{meeting_id}/recordings",
		Params: []Param{
			path("meeting_id", "The meeting ID or UUID"),
			str("action", "Move the recordings to trash or delete them permanently").enum("trash", "delete").query(),
		},
		Confirmation: "Meeting recordings deleted successfully",
	},
	{
		Name:        "delete_recording_file",
		Description: "Delete one recording file of a meeting",
		Method:      http.MethodDelete,
		Path:        "/meetings/{meeting_id}/recordings/{recording_id}",
		Params: []Param{
			path("meeting_id", "The meeting ID or UUID"),
			path("recording_id", "The recording file ID"),
		},
		Confirmation: "Recording file deleted successfully",
	},
}
