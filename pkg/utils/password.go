package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const passwordCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!@#$%&*"

// GeneratePassword gera uma senha aleatória para novos usuários
func GeneratePassword(length int) (string, error) {
	if length < 12 {
		length = 12
	}
	return gonanoid.Generate(passwordCharacters, length)
}
