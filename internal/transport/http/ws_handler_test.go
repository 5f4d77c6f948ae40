package http

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"security-funnel-service/internal/app"
)

func dialFeed(t *testing.T, srv *httptest.Server, authorized bool) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/leads"
	header := http.Header{}
	if authorized {
		cred := base64.StdEncoding.EncodeToString([]byte("admin:secret"))
		header.Set("Authorization", "Basic "+cred)
	}
	return websocket.DefaultDialer.Dial(url, header)
}

func TestFeedDeliversCreatedLeads(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.router)
	defer srv.Close()

	conn, resp, err := dialFeed(t, srv, true)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// The server subscribes right after the handshake; give it a moment
	// before publishing.
	time.Sleep(100 * time.Millisecond)

	in := app.LeadInput{
		Company: "Acme GmbH",
		Contact: "Max Mustermann",
		Email:   "max@acme.de",
		Phone:   "+49 170 1234567",
		Consent: true,
	}
	created, err := api.service.Create(context.Background(), in)
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg outboundMessage
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "lead", msg.Type)
	require.Equal(t, created.ID, msg.Payload.ID)
	require.Equal(t, "Acme GmbH", msg.Payload.Company)
}

func TestFeedRejectsUnauthenticatedClients(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.router)
	defer srv.Close()

	conn, resp, err := dialFeed(t, srv, false)
	require.Error(t, err)
	require.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFeedStopsOnClientDisconnect(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.router)
	defer srv.Close()

	conn, resp, err := dialFeed(t, srv, true)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	require.NoError(t, conn.Close())

	// Publishing after the disconnect must not block or panic even though
	// the server side is tearing its subscription down.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = api.service.Create(context.Background(), app.LeadInput{
			Company: "Acme GmbH",
			Contact: "Max Mustermann",
			Email:   "max@acme.de",
			Phone:   "+49 170 1234567",
			Consent: true,
		})
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("create blocked after subscriber disconnect")
	}
}
