package ws

// MessagePing is an application-level keepalive from the client.
type MessagePing struct{}

func (msg *MessagePing) GetType() string {
	return "ping"
}

func (msg *MessagePing) Process(ctx *MessageContext) error {
	data, err := Encode(&MessagePong{})
	if err != nil {
		return err
	}
	ctx.Hub.SendTo(ctx.ConnID, data)
	return nil
}

// MessagePong lets clients measure round-trip latency; nothing to do
// server-side.
type MessagePong struct{}

func (msg *MessagePong) GetType() string {
	return "pong"
}

func (msg *MessagePong) Process(ctx *MessageContext) error {
	return nil
}
