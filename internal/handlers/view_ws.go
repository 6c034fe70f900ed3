// internal/handlers/view_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/hearsay-games/hearsay/internal/middleware"
	"github.com/hearsay-games/hearsay/internal/models"
	"github.com/hearsay-games/hearsay/internal/session"
)

// ViewSubprotocol is the websocket subprotocol a game view must speak.
const ViewSubprotocol = "hearsay-view"

const outboundBuffer = 16

// ViewWSHandler upgrades a game view connection, creates its session host,
// and runs the read/write pumps until the view goes away.
func ViewWSHandler(logger *logrus.Logger, vs *ViewServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remoteAddr := r.RemoteAddr

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{ViewSubprotocol},
			OriginPatterns: []string{"*"}, // Adjust in production
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		if c.Subprotocol() != ViewSubprotocol {
			c.Close(BadSubprotocolError, "client must speak the hearsay-view subprotocol")
			return
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		host := vs.NewHost(r)
		defer vs.Sessions.Delete(host.ID)

		outbound := make(chan models.HostMessage, outboundBuffer)
		host.SendFn = func(msg models.HostMessage) {
			select {
			case outbound <- msg:
			default:
				logger.Warnf("session %s: outbound buffer full, dropping %s", host.ID, msg.Type)
			}
		}

		middleware.LogWebSocketConnect(logger, remoteAddr, r.URL.Path)

		go viewWritePump(ctx, c, outbound, logger)

		err = viewReadPump(ctx, c, host, logger)
		middleware.LogWebSocketDisconnect(logger, remoteAddr, r.URL.Path, err)
	}
}

// viewReadPump reads view messages and dispatches them into the session host.
// It blocks until the connection closes or the context ends.
func viewReadPump(ctx context.Context, c *websocket.Conn, host *session.Host, logger *logrus.Logger) error {
	for {
		typ, msg, err := c.Read(ctx)
		if err != nil {
			closeStatus := websocket.CloseStatus(err)
			if closeStatus == websocket.StatusNormalClosure || closeStatus == websocket.StatusGoingAway {
				return nil
			}
			if strings.Contains(err.Error(), "context canceled") {
				return nil
			}
			return err
		}

		if typ != websocket.MessageText {
			logger.Warnf("session %s: ignoring non-text message type %d", host.ID, typ)
			continue
		}

		if err := host.Dispatch(ctx, msg); err != nil {
			// A malformed message is the view's bug, not grounds to kill
			// the session.
			logger.Warnf("session %s: %v", host.ID, err)
		}
	}
}

// viewWritePump drains the host's outbound queue onto the wire.
func viewWritePump(ctx context.Context, c *websocket.Conn, outbound <-chan models.HostMessage, logger *logrus.Logger) {
	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-outbound:
			payload, err := json.Marshal(msg)
			if err != nil {
				logger.Errorf("failed to encode %s message: %v", msg.Type, err)
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err = c.Write(writeCtx, websocket.MessageText, payload)
			cancel()
			if err != nil {
				logger.Warnf("websocket write failed: %v", err)
				return
			}
		case <-pingTicker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := c.Ping(pingCtx)
			cancel()
			if err != nil {
				logger.Warnf("websocket ping failed: %v", err)
				return
			}
		}
	}
}
