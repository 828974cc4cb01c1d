package handlers

import "github.com/gorilla/mux"

// RegisterContactRoutes registra as rotas de contatos. As rotas literais
// vêm antes de /contacts/{id} e o id aceita apenas dígitos, evitando
// conflito entre os padrões.
func RegisterContactRoutes(router *mux.Router, h *ContactHandler) {
	router.HandleFunc("/contacts/search/", h.SearchContacts).Methods("GET", "OPTIONS")
	router.HandleFunc("/contacts/birthdays/", h.UpcomingBirthdays).Methods("GET", "OPTIONS")
	router.HandleFunc("/contacts/", h.CreateContact).Methods("POST", "OPTIONS")
	router.HandleFunc("/contacts/", h.GetAllContacts).Methods("GET", "OPTIONS")
	router.HandleFunc("/contacts/{id:[0-9]+}", h.GetContact).Methods("GET", "OPTIONS")
	router.HandleFunc("/contacts/{id:[0-9]+}", h.UpdateContact).Methods("PUT", "OPTIONS")
	router.HandleFunc("/contacts/{id:[0-9]+}", h.DeleteContact).Methods("DELETE", "OPTIONS")

	// Rota WebSocket com eventos de alteração de contatos
	router.HandleFunc("/contacts/events", WebSocketHandler)
}
