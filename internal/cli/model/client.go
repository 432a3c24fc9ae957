package model

import "strings"

// Client — клиент ломбарда, как его отдаёт API.
type Client struct {
	ID         string `json:"_id"`
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Patronymic string `json:"patronymic"`
	Passport   string `json:"passport"`
}

// ClientPayload — тело запроса на создание/обновление клиента.
type ClientPayload struct {
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Patronymic string `json:"patronymic"`
	Passport   string `json:"passport"`
}

// FullName returns "surname name patronymic" without dangling spaces.
func (c Client) FullName() string {
	return strings.Join(strings.Fields(c.Surname+" "+c.Name+" "+c.Patronymic), " ")
}

// ShortName returns "surname name" as shown in item and deal tables.
func (c Client) ShortName() string {
	return strings.TrimSpace(c.Surname + " " + c.Name)
}

// ClientName renders an embedded client reference; "-" when it is missing.
func ClientName(c *Client) string {
	if c == nil {
		return Missing
	}
	return c.ShortName()
}

// Missing is rendered in place of an unresolved reference.
const Missing = "-"
