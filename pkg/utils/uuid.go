package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	sessionIDLength = 32
)

// GenerateSessionID gera o identificador opaco entregue ao cliente no login
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, sessionIDLength)
}
