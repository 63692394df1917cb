package catalog

import "net/http"

var webhookTools = []Tool{
	{
		Name:        "list_webhooks",
		Description: "List webhooks on the account",
		Method:      http.MethodGet,
		Path:        "/webhooks",
	},
	{
		Name:        "create_webhook",
		Description: "Create a webhook",
		Method:      http.MethodPost,
		Path:        "/webhooks",
		Params: []Param{
			str("url", "Endpoint URL that receives events").format("url").required(),
			array("event_types", "Events to subscribe to", str("event_type", "Event name")).required(),
			str("authorization_header", "Value sent in the Authorization header of each event"),
			str("description", "Webhook description"),
		},
	},
	{
		Name:        "get_webhook",
		Description: "Retrieve a webhook's details",
		Method:      http.MethodGet,
		Path:        "/webhooks/{webhook_id}",
		Params: []Param{
			path("webhook_id", "The webhook ID"),
		},
	},
	{
		Name:        "update_webhook",
		Description: "Update a webhook",
		Method:      http.MethodPatch,
		Path:        "/webhooks/{webhook_id}",
		Params: []Param{
			path("webhook_id", "The webhook ID"),
			str("url", "Endpoint URL that receives events").format("url"),
			array("event_types", "Events to subscribe to", str("event_type", "Event name")),
			str("authorization_header", "Value sent in the Authorization header of each event"),
			str("description", "Webhook description"),
			str("status", "Webhook status").enum("active", "inactive"),
		},
	},
	{
		Name:        "delete_webhook",
		Description: "Delete a webhook",
		Method:      http.MethodDelete,
		Path:        "/webhooks/{webhook_id}",
		Params: []Param{
			path("webhook_id", "The webhook ID"),
		},
		Confirmation: "Webhook deleted successfully",
	},
}
