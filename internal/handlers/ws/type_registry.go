package ws

// registry maps inbound message type tags to constructors.
var registry = map[string]func() Message{}

func register(newMsg func() Message) {
	registry[newMsg().GetType()] = newMsg
}

func init() {
	register(func() Message { return &MessageJoin{} })
	register(func() Message { return &MessageLeave{} })
	register(func() Message { return &MessageComment{} })
	register(func() Message { return &MessagePing{} })
	register(func() Message { return &MessagePong{} })
}
