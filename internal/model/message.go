package model

type MessageRole string

const (
	MessageRoleSystem = MessageRole("system")
	MessageRoleUser   = MessageRole("user")
)

type Message struct {
	Role    MessageRole
	Content string
}
