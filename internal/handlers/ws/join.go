package ws

// MessageJoin subscribes the connection to an article's room.
type MessageJoin struct {
	ArticleID uint `json:"article_id"`
}

func (msg *MessageJoin) GetType() string {
	return "join_article"
}

func (msg *MessageJoin) Process(ctx *MessageContext) error {
	if msg.ArticleID == 0 {
		return SendError(ctx, "invalid_input", "article_id is required", "")
	}
	ctx.Hub.Join(ctx.ConnID, ArticleRoom(msg.ArticleID))
	return nil
}

// MessageLeave unsubscribes the connection from an article's room.
type MessageLeave struct {
	ArticleID uint `json:"article_id"`
}

func (msg *MessageLeave) GetType() string {
	return "leave_article"
}

func (msg *MessageLeave) Process(ctx *MessageContext) error {
	if msg.ArticleID == 0 {
		return SendError(ctx, "invalid_input", "article_id is required", "")
	}
	ctx.Hub.Leave(ctx.ConnID, ArticleRoom(msg.ArticleID))
	return nil
}
