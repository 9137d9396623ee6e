package cli

import (
	"context"
	"errors"
	"fmt"
)

// Messages loads and prints the conversation with the current match.
func (a *App) Messages(ctx context.Context) error {
	id, err := a.currentMatchID()
	if err != nil {
		return err
	}
	if err := a.store.GetMessages(ctx, id); err != nil {
		return a.chatError()
	}
	a.printConversation()
	return nil
}

// Send posts text to the current match, prompting for it when empty.
func (a *App) Send(ctx context.Context, text string) error {
	id, err := a.currentMatchID()
	if err != nil {
		return err
	}
	if text == "" {
		if text, err = getSimpleText(a.reader, "Message", a.out); err != nil {
			return err
		}
		if text == "" {
			return nil
		}
	}
	if err := a.store.SendMessage(ctx, id, text); err != nil {
		return a.chatError()
	}
	msgs := a.store.State().Chat.Messages
	if len(msgs) > 0 {
		printMessage(a.out, msgs[len(msgs)-1], a.selfID())
	}
	return nil
}

func (a *App) printConversation() {
	st := a.store.State()
	if len(st.Chat.Messages) == 0 {
		fmt.Fprintln(a.out, "No messages yet.")
		return
	}
	self := a.selfID()
	for _, m := range st.Chat.Messages {
		printMessage(a.out, m, self)
	}
}

func (a *App) selfID() string {
	if u := a.store.State().Auth.User; u != nil {
		return u.ID
	}
	return ""
}

func (a *App) chatError() error {
	msg := a.store.State().Chat.Error
	a.store.ClearChatError(context.Background())
	return errors.New(msg)
}
