package catalog

import "net/http"

var reportTools = []Tool{
	{
		Name:        "get_daily_report",
		Description: "Retrieve daily usage statistics for a month",
		Method:      http.MethodGet,
		Path:        "/report/daily",
		Params: []Param{
			num("year", "Year of the report").query().required(),
			num("month", "Month of the report, 1-12").between(1, 12).query().required(),
		},
	},
	{
		Name:        "get_meeting_participants_report",
		Description: "Retrieve the participants report of a past meeting",
		Method:      http.MethodGet,
		Path:        "/report/meetings/{meeting_id}/participants",
		Params: []Param{
			path("meeting_id", "The meeting ID or UUID"),
			pageSize("The number of records returned per page"),
			nextPageToken(),
		},
	},
	{
		Name:        "get_meeting_details_report",
		Description: "Retrieve the details report of a past meeting",
		Method:      http.MethodGet,
		Path:        "/report/meetings/{meeting_id}",
		Params: []Param{
			path("meeting_id", "The meeting ID or UUID"),
		},
	},
	{
		Name:        "get_webinar_participants_report",
		Description: "Retrieve the participants report of a past webinar",
		Method:      http.MethodGet,
		Path:        "/report/webinars/{webinar_id}/participants",
		Params: []Param{
			path("webinar_id", "The webinar ID or UUID"),
			pageSize("The number of records returned per page"),
			nextPageToken(),
		},
	},
	{
		Name:        "get_webinar_details_report",
		Description: "Retrieve the details report of a past webinar",
		Method:      http.MethodGet,
		Path:        "/report/webinars/{webinar_id}",
		Params: []Param{
			path("webinar_id", "The webinar ID or UUID"),
		},
	},
}
