package handlers

import (
	"net/http"

	"contacts-api/internal/wsnotify"
)

// WebSocketHandler mantém a conexão aberta para receber eventos de
// criação, atualização e remoção de contatos.
func WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := wsnotify.Upgrader().Upgrade(w, r, nil)
	if err != nil {
		return
	}
	wsnotify.Manager.AddClient(conn)
	defer func() {
		wsnotify.Manager.RemoveClient(conn)
		conn.Close()
	}()
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
