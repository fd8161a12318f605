package types

// AssistantThread is one conversation with the property assistant bot. A
// user keeps several named threads, like browser tabs.
type AssistantThread struct {
	ID   ThreadID `json:"id"`
	Name string   `json:"name"`
}

// AssistantMessage is one turn of an assistant conversation: either the
// user's prompt or the bot's reply.
type AssistantMessage struct {
	Text   string `json:"text"`
	IsUser bool   `json:"is_user"`
	Image  string `json:"image,omitempty"`
}
