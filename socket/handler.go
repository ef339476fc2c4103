package socket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientToken reads the JWT from the Authorization header or the token
// query param; browser websocket dials cannot set headers.
func clientToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

// filterForeignRooms drops any requested room that does not belong to the
// client's hospital. Returns true when something was dropped.
func filterForeignRooms(msg *ClientMessage, hospitalId string) bool {
	prefix := hospitalId + ":"
	kept := make([]string, 0, len(msg.Rooms))
	dropped := false
	for _, room := range msg.Rooms {
		if strings.HasPrefix(room, prefix) {
			kept = append(kept, room)
		} else {
			dropped = true
		}
	}
	msg.Rooms = kept
	return dropped
}

/*
* Validate the JWT before upgrading; an unauthenticated dial gets a 401
* The room's hospitalId always comes from the token claims, never the query
* Seed the client into its department room, further joins and leaves arrive
* as {"action":"join","rooms":[...]} frames scoped to the same hospital
 */
func Handler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := clientToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.UNAUTHORIZED)))
			return
		}
		claims, err := authorization.ParseToken(token)
		if err != nil {
			log.Println("Error while validating websocket token:", err)
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New(util.UNAUTHORIZED)))
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("Error while upgrading to websocket:", err)
			return
		}

		rooms := []string{}
		if department := c.Query("department"); department != "" {
			rooms = append(rooms, Room(claims.HospitalId, department))
		}

		client := &Client{
			ID:    uuid.New().String(),
			Rooms: rooms,
			Send:  make(chan []byte, 256),
		}
		hub.Register(client)

		go writePump(client, conn)
		go readPump(hub, client, conn, claims.HospitalId)
	}
}

func readPump(hub *Hub, client *Client, conn *websocket.Conn, hospitalId string) {
	defer func() {
		hub.Unregister(client)
		conn.Close()
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			hub.SendTo(client, Event{Event: EventError, Message: "malformed message"})
			continue
		}
		if filterForeignRooms(&msg, hospitalId) {
			hub.SendTo(client, Event{Event: EventError, Message: "room outside your hospital"})
		}
		hub.ProcessMessage(client, msg)
	}
}

func writePump(client *Client, conn *websocket.Conn) {
	defer conn.Close()

	for message := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
