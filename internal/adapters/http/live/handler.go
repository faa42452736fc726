package live

import (
	"net/http"
	"time"

	ws "github.com/coder/websocket"

	"github.com/okian/weekender/pkg/logger"
)

// HandleWebSocket returns an HTTP handler that upgrades connections and runs
// them as hub clients. originPatterns lists extra allowed origins; same-host
// origins are always accepted.
func HandleWebSocket(hub *Hub, originPatterns ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Live connections outlast the server read/write timeouts.
		rc := http.NewResponseController(w)
		_ = rc.SetReadDeadline(time.Time{})
		_ = rc.SetWriteDeadline(time.Time{})

		conn, err := ws.Accept(w, r, &ws.AcceptOptions{OriginPatterns: originPatterns})
		if err != nil {
			hub.logger.Warn(r.Context(), "websocket accept failed", logger.Error(err))
			return
		}
		hub.logger.Debug(r.Context(), "live client connected", logger.String("remote", r.RemoteAddr))

		NewClient(hub, conn).Run(r.Context())
	}
}
