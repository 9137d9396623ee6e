// Package push receives chat messages the server pushes over a websocket and
// hands them to the store without going through the fetch/send cycle.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/blindmatch/internal/client/client"
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
	"github.com/dmitrijs2005/blindmatch/internal/common"
	"github.com/dmitrijs2005/blindmatch/internal/logging"
	"github.com/gorilla/websocket"
)

const frameTypeMessage = "message"

// Frame is one pushed event. Only "message" frames are delivered; other
// types are ignored.
type Frame struct {
	Type    string          `json:"type"`
	Message *models.Message `json:"message,omitempty"`
}

// DeliverFunc receives each pushed message in arrival order.
type DeliverFunc func(ctx context.Context, m models.Message)

type Feed struct {
	url    string
	tokens client.TokenSource
	dialer *websocket.Dialer
	log    logging.Logger
}

func NewFeed(url string, tokens client.TokenSource, log logging.Logger) *Feed {
	if log == nil {
		log = logging.Nop()
	}
	return &Feed{
		url:    url,
		tokens: tokens,
		dialer: websocket.DefaultDialer,
		log:    log.With("component", "push"),
	}
}

// Run connects and delivers messages until ctx is done or the server closes
// the connection. It does not reconnect. Cancellation and a normal close
// both return nil.
func (f *Feed) Run(ctx context.Context, deliver DeliverFunc) error {
	header := http.Header{}
	token, err := f.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	conn, _, err := f.dialer.DialContext(ctx, f.url, header)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dial push feed: %w", err)
	}
	defer conn.Close()
	f.log.Info(ctx, "push feed connected", "url", f.url)

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read push frame: %w", err)
		}

		var fr Frame
		if err := json.Unmarshal(data, &fr); err != nil {
			f.log.Warn(ctx, "malformed push frame", "error", err)
			continue
		}
		if fr.Type != frameTypeMessage || fr.Message == nil {
			f.log.Debug(ctx, "push frame ignored", "type", fr.Type)
			continue
		}
		deliver(ctx, *fr.Message)
	}
}
