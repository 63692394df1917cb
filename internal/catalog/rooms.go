package catalog

import "net/http"

var roomTools = []Tool{
	{
		Name:        "list_zoom_rooms",
		Description: "List Zoom Rooms on the account",
		Method:      http.MethodGet,
		Path:        "/rooms",
		Params: []Param{
			pageSize("The number of records returned per page"),
			pageNumber(),
			str("location_id", "Only list rooms at this location").query(),
		},
	},
	{
		Name:        "get_zoom_room",
		Description: "Retrieve a Zoom Room's details",
		Method:      http.MethodGet,
		Path:        "/rooms/{room_id}",
		Params: []Param{
			path("room_id", "The Zoom Room ID"),
		},
	},
	{
		Name:        "update_zoom_room",
		Description: "Update a Zoom Room's profile",
		Method:      http.MethodPatch,
		Path:        "/rooms/{room_id}",
		Params: []Param{
			path("room_id", "The Zoom Room ID"),
			str("name", "Room name"),
			str("location_id", "Location ID"),
			str("calendar_resource_id", "Calendar resource ID"),
			str("room_passcode", "Room passcode"),
		},
	},
	{
		Name:        "list_zoom_room_locations",
		Description: "List Zoom Room locations",
		Method:      http.MethodGet,
		Path:        "/rooms/locations",
		Params: []Param{
			pageSize("The number of records returned per page"),
			pageNumber(),
			str("parent_location_id", "Only list children of this location").query(),
		},
	},
	{
		Name:        "create_zoom_room_location",
		Description: "Create a Zoom Room location",
		Method:      http.MethodPost,
		Path:        "/rooms/locations",
		Params: []Param{
			str("name", "Location name").required(),
			str("parent_location_id", "Parent location ID"),
			str("type", "Location type").enum("country", "state", "city", "campus", "building", "floor").required(),
		},
	},
}
