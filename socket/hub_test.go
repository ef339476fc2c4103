package socket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"

	"github.com/gin-gonic/gin"
	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(id string, rooms ...string) *Client {
	return &Client{
		ID:    id,
		Rooms: rooms,
		Send:  make(chan []byte, 256),
	}
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := NewHub()
	client := newTestClient("client-1", Room("HOS00001", "reception"))

	hub.Register(client)
	assert.Equal(t, 1, hub.ClientCount())
	assert.Equal(t, 1, hub.RoomCount("HOS00001:reception"))

	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())
	assert.Equal(t, 0, hub.RoomCount("HOS00001:reception"))
}

func TestHub_BroadcastToRoomOnly(t *testing.T) {
	hub := NewHub()

	doctor := newTestClient("doctor-dash", Room("HOS00001", "doctor"))
	pharmacy := newTestClient("pharmacy-dash", Room("HOS00001", "pharmacy"))
	otherHospital := newTestClient("other", Room("HOS00002", "doctor"))

	hub.Register(doctor)
	hub.Register(pharmacy)
	hub.Register(otherHospital)

	hub.Broadcast(Room("HOS00001", "doctor"), Event{
		Event: EventQueueMoved,
		Data:  map[string]interface{}{"patientId": "PAT00001"},
	})

	select {
	case msg := <-doctor.Send:
		var received Event
		require.NoError(t, json.Unmarshal(msg, &received))
		assert.Equal(t, EventQueueMoved, received.Event)
		assert.Equal(t, "HOS00001:doctor", received.Room)
		assert.False(t, received.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("doctor dashboard did not receive event")
	}

	select {
	case <-pharmacy.Send:
		t.Fatal("pharmacy dashboard should not have received a doctor room event")
	default:
	}
	select {
	case <-otherHospital.Send:
		t.Fatal("other hospital should not have received the event")
	default:
	}
}

func TestHub_JoinAndLeave(t *testing.T) {
	hub := NewHub()
	client := newTestClient("dash")
	hub.Register(client)

	hub.ProcessMessage(client, ClientMessage{Action: "join", Rooms: []string{"HOS00001:lab"}})
	assert.Equal(t, 1, hub.RoomCount("HOS00001:lab"))

	hub.ProcessMessage(client, ClientMessage{Action: "leave", Rooms: []string{"HOS00001:lab"}})
	assert.Equal(t, 0, hub.RoomCount("HOS00001:lab"))
	assert.Empty(t, client.Rooms)
}

func TestHub_SlowClientIsSkipped(t *testing.T) {
	hub := NewHub()
	slow := &Client{
		ID:    "slow",
		Rooms: []string{"HOS00001:lab"},
		Send:  make(chan []byte), // unbuffered, nobody reading
	}
	hub.Register(slow)

	done := make(chan struct{})
	go func() {
		hub.Broadcast("HOS00001:lab", Event{Event: EventLabTestCreated})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
}

func newSocketServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", Handler(hub))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func dashboardToken(t *testing.T, hospitalId string) string {
	t.Helper()
	token, err := authorization.GenerateToken("USR00001", "frontdesk", "reception", hospitalId)
	require.NoError(t, err)
	return token
}

func TestHandler_EndToEnd(t *testing.T) {
	hub := NewHub()
	srv := newSocketServer(t, hub)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?department=reception&token=" + dashboardToken(t, "HOS00001")
	conn, resp, err := gorillawebsocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	// give the read pump a moment to register
	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomCount("HOS00001:reception") == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.RoomCount("HOS00001:reception"))

	hub.Broadcast("HOS00001:reception", Event{
		Event: EventPatientRegistered,
		Data:  map[string]interface{}{"patientId": "PAT00042", "token": 7},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var received Event
	require.NoError(t, json.Unmarshal(msg, &received))
	assert.Equal(t, EventPatientRegistered, received.Event)

	// malformed frames get an error event back, not a disconnect
	require.NoError(t, conn.WriteMessage(gorillawebsocket.TextMessage, []byte("not json")))
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(msg, &received))
	assert.Equal(t, EventError, received.Event)
}

func TestHandler_RejectsUnauthenticatedDial(t *testing.T) {
	hub := NewHub()
	srv := newSocketServer(t, hub)
	base := "ws" + strings.TrimPrefix(srv.URL, "http")

	// no token at all
	conn, resp, err := gorillawebsocket.DefaultDialer.Dial(base+"/ws?hospitalId=HOS00001&department=reception", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, conn)
	assert.Equal(t, 0, hub.RoomCount("HOS00001:reception"))

	// garbage token
	conn, resp, err = gorillawebsocket.DefaultDialer.Dial(base+"/ws?department=reception&token=not.a.jwt", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, conn)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHandler_HospitalComesFromClaims(t *testing.T) {
	hub := NewHub()
	srv := newSocketServer(t, hub)

	// the dial asks for another hospital's room via the query string; the
	// claims decide where the client actually lands
	url := "ws" + strings.TrimPrefix(srv.URL, "http") +
		"/ws?hospitalId=HOS00001&department=reception&token=" + dashboardToken(t, "HOS00002")
	conn, _, err := gorillawebsocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomCount("HOS00002:reception") == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.RoomCount("HOS00002:reception"))
	assert.Equal(t, 0, hub.RoomCount("HOS00001:reception"))

	// an event in the other hospital's room never reaches this client
	hub.Broadcast("HOS00001:reception", Event{
		Event: EventPatientRegistered,
		Data:  map[string]interface{}{"patientId": "PAT00042", "name": "Asha Rao", "token": 7},
	})
	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
}

func TestHandler_ForeignRoomJoinIsDropped(t *testing.T) {
	hub := NewHub()
	srv := newSocketServer(t, hub)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + dashboardToken(t, "HOS00002")
	conn, _, err := gorillawebsocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	join := `{"action":"join","rooms":["HOS00001:reception","HOS00002:lab"]}`
	require.NoError(t, conn.WriteMessage(gorillawebsocket.TextMessage, []byte(join)))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var received Event
	require.NoError(t, json.Unmarshal(msg, &received))
	assert.Equal(t, EventError, received.Event)

	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomCount("HOS00002:lab") == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, hub.RoomCount("HOS00002:lab"))
	assert.Equal(t, 0, hub.RoomCount("HOS00001:reception"))
}

func TestFilterForeignRooms(t *testing.T) {
	msg := ClientMessage{Action: "join", Rooms: []string{"HOS00001:doctor", "HOS00002:doctor", "HOS00001:lab"}}
	dropped := filterForeignRooms(&msg, "HOS00001")
	assert.True(t, dropped)
	assert.Equal(t, []string{"HOS00001:doctor", "HOS00001:lab"}, msg.Rooms)

	msg = ClientMessage{Action: "join", Rooms: []string{"HOS00001:doctor"}}
	assert.False(t, filterForeignRooms(&msg, "HOS00001"))
	assert.Equal(t, []string{"HOS00001:doctor"}, msg.Rooms)
}

func TestHub_QueueMovedReachesBothDepartments(t *testing.T) {
	hub := NewHub()

	reception := newTestClient("reception-dash", Room("HOS00001", "reception"))
	doctor := newTestClient("doctor-dash", Room("HOS00001", "doctor"))
	pharmacy := newTestClient("pharmacy-dash", Room("HOS00001", "pharmacy"))
	hub.Register(reception)
	hub.Register(doctor)
	hub.Register(pharmacy)

	// a move from reception to doctor notifies both queues
	payload := map[string]interface{}{"patientId": "PAT00001", "from": "reception", "to": "doctor", "token": 3}
	hub.Broadcast(Room("HOS00001", "doctor"), Event{Event: EventQueueMoved, Data: payload})
	hub.Broadcast(Room("HOS00001", "reception"), Event{Event: EventQueueMoved, Data: payload})

	for _, dash := range []*Client{reception, doctor} {
		select {
		case msg := <-dash.Send:
			var received Event
			require.NoError(t, json.Unmarshal(msg, &received))
			assert.Equal(t, EventQueueMoved, received.Event)
		case <-time.After(time.Second):
			t.Fatalf("%s did not receive queue-moved", dash.ID)
		}
	}
	select {
	case <-pharmacy.Send:
		t.Fatal("pharmacy dashboard should not hear a reception to doctor move")
	default:
	}
}

func TestRoom(t *testing.T) {
	assert.Equal(t, "HOS00001:pharmacy", Room("HOS00001", "pharmacy"))
}
