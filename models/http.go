package models

// Wire shapes for the pairing HTTP API.

// StatusNotFound is reported by the change-status endpoint when the queried
// id does not match any change known to the current pairing session.
const StatusNotFound = "not_found"

// AddonsResponse is the body of GET /api/addons.
type AddonsResponse struct {
	Addons []AddonRef `json:"addons"`
}

// ProposeRequest is the body of POST /api/addons: the desired final addon
// ordering. An empty list is a valid proposal that removes every addon.
type ProposeRequest struct {
	URLs []string `json:"urls"`
}

// ProposeResponse is returned with 201 Created after a proposal is staged.
type ProposeResponse struct {
	ChangeID string   `json:"changeId"`
	Added    []string `json:"added"`
	Removed  []string `json:"removed"`
}

// ChangeStatusResponse is the body of GET /api/changes/{id}.
type ChangeStatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON error body, e.g. {"error":"busy"} on 409.
type ErrorResponse struct {
	Error string `json:"error"`
}
