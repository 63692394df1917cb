package catalog

import "net/http"

var chatTools = []Tool{
	{
		Name:        "list_channels",
		Description: "List the current user's chat channels",
		Method:      http.MethodGet,
		Path:        "/chat/users/me/channels",
		Params: []Param{
			pageSize("The number of records returned per page"),
			nextPageToken(),
		},
	},
	{
		Name:        "create_channel",
		Description: "Create a chat channel",
		Method:      http.MethodPost,
		Path:        "/chat/users/me/channels",
		Params: []Param{
			str("name", "Channel name").required(),
			num("type", "Channel type: 1 private, 2 private with members from the same account").between(1, 2).required(),
			array("members", "Channel members",
				object("member", "Channel member",
					str("email", "Member's email address").format("email").required(),
				),
			),
		},
	},
	{
		Name:        "get_channel",
		Description: "Retrieve a chat channel's details",
		Method:      http.MethodGet,
		Path:        "/chat/channels/{channel_id}",
		Params: []Param{
			path("channel_id", "The channel ID"),
		},
	},
	{
		Name:        "update_channel",
		Description: "Update a chat channel",
		Method:      http.MethodPatch,
		Path:        "/chat/channels/{channel_id}",
		Params: []Param{
			path("channel_id", "The channel ID"),
			str("name", "Channel name"),
		},
	},
	{
		Name:        "delete_channel",
		Description: "Delete a chat channel",
		Method:      http.MethodDelete,
		Path:        "/chat/channels/{channel_id}",
		Params: []Param{
			path("channel_id", "The channel ID"),
		},
		Confirmation: "Channel deleted successfully",
	},
	{
		Name:        "send_channel_message",
		Description: "Send a message to a chat channel",
		Method:      http.MethodPost,
		Path:        "/chat/users/me/channels/{channel_id}/messages",
		Params: []Param{
			path("channel_id", "The channel ID"),
			str("message", "Message text").required(),
		},
	},
}
