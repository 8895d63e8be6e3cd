package activitylog

type EntryResponse struct {
	ID            string  `json:"id"`
	ExitRequestID string  `json:"exit_request_id"`
	Action        string  `json:"action"`
	ActorID       string  `json:"actor_id"`
	DetailsKind   string  `json:"details_kind"`
	Details       Details `json:"details"`
	CreatedAt     string  `json:"created_at"`
}
