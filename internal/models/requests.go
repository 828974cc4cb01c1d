package models

type ContactCreateRequest struct {
	FirstName   string  `json:"first_name" example:"Ann" swagger:"required" description:"Primeiro nome do contato"`
	LastName    string  `json:"last_name" example:"Lee" swagger:"required" description:"Sobrenome do contato"`
	Email       string  `json:"email" example:"ann@x.com" swagger:"required" description:"E-mail único do contato"`
	PhoneNumber string  `json:"phone_number" example:"555" swagger:"required" description:"Telefone do contato"`
	Birthday    Date    `json:"birthday" example:"1990-03-10" swagger:"required" description:"Data de nascimento no formato YYYY-MM-DD"`
	ExtraData   *string `json:"extra_data" description:"Informações adicionais (opcional)"`
}

// ContactUpdateRequest é uma atualização parcial: campos nil (ausentes ou
// null no JSON) mantêm o valor atual do contato.
type ContactUpdateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Birthday    *Date   `json:"birthday"`
	ExtraData   *string `json:"extra_data"`
}
