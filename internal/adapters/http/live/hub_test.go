package live

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	ws "github.com/coder/websocket"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/weekender/pkg/metrics"
)

func newHub() *Hub {
	return NewHub(WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))))
}

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub) *Client {
	return &Client{hub: hub, send: make(chan []byte, sendBufferSize)}
}

func TestHub_Registration(t *testing.T) {
	Convey("Given a hub with two clients", t, func() {
		hub := newHub()
		c1, c2 := mockClient(hub), mockClient(hub)
		hub.Register(c1)
		hub.Register(c2)
		So(hub.ClientCount(), ShouldEqual, 2)

		Convey("When one unregisters twice", func() {
			hub.Unregister(c1)
			So(func() { hub.Unregister(c1) }, ShouldNotPanic)

			Convey("Then only the other remains", func() {
				So(hub.ClientCount(), ShouldEqual, 1)
			})
		})

		Convey("When the hub closes", func() {
			hub.Close()

			Convey("Then every send channel is closed", func() {
				So(hub.ClientCount(), ShouldEqual, 0)
				_, ok := <-c1.send
				So(ok, ShouldBeFalse)
				So(func() { hub.Unregister(c2) }, ShouldNotPanic)
			})
		})
	})
}

func TestHub_Publish(t *testing.T) {
	Convey("Given a hub with a registered client", t, func() {
		hub := newHub()
		hub.now = func() time.Time { return time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC) }
		c := mockClient(hub)
		hub.Register(c)
		defer hub.Unregister(c)

		Convey("When a notification is published", func() {
			hub.Publish(context.Background(), "theme_updated", map[string]string{"theme": "playful"})

			Convey("Then the client receives it as JSON", func() {
				var got struct {
					Type string            `json:"type"`
					Data map[string]string `json:"data"`
					At   time.Time         `json:"at"`
				}
				So(json.Unmarshal(<-c.send, &got), ShouldBeNil)
				So(got.Type, ShouldEqual, "theme_updated")
				So(got.Data["theme"], ShouldEqual, "playful")
				So(got.At.Year(), ShouldEqual, 2025)
			})
		})

		Convey("When the client buffer is full", func() {
			for i := 0; i < sendBufferSize; i++ {
				hub.Publish(context.Background(), "fill", nil)
			}
			So(func() { hub.Publish(context.Background(), "dropped", nil) }, ShouldNotPanic)

			Convey("Then the extra message is dropped", func() {
				So(len(c.send), ShouldEqual, sendBufferSize)
			})
		})
	})
}

func TestHub_ConcurrentAccess(t *testing.T) {
	Convey("Given clients joining and leaving concurrently", t, func() {
		hub := newHub()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c := mockClient(hub)
				hub.Register(c)
				hub.Publish(context.Background(), "recommendations_updated", nil)
				hub.Unregister(c)
			}()
		}
		wg.Wait()

		Convey("Then no client is left behind", func() {
			So(hub.ClientCount(), ShouldEqual, 0)
		})
	})
}

func TestHandleWebSocket(t *testing.T) {
	Convey("Given a websocket endpoint", t, func() {
		hub := newHub()
		srv := httptest.NewServer(HandleWebSocket(hub))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		conn, _, err := ws.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
		So(err, ShouldBeNil)
		defer conn.CloseNow()

		for hub.ClientCount() == 0 && ctx.Err() == nil {
			time.Sleep(5 * time.Millisecond)
		}

		Convey("When a notification is published", func() {
			hub.Publish(ctx, "weather_updated", nil)
			_, data, err := conn.Read(ctx)

			Convey("Then the connected client reads it", func() {
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, `"type":"weather_updated"`)
			})
		})

		Convey("When the client disconnects", func() {
			So(conn.Close(ws.StatusNormalClosure, ""), ShouldBeNil)
			for hub.ClientCount() > 0 && ctx.Err() == nil {
				time.Sleep(5 * time.Millisecond)
			}

			Convey("Then the hub forgets it", func() {
				So(hub.ClientCount(), ShouldEqual, 0)
			})
		})
	})
}
