package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera identificadores curtos para workspaces e execuções
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// NewRunID gera o identificador de uma execução de sincronização para correlacionar logs.
// Em caso de falha do gerador, a execução segue sem identificador.
func NewRunID() string {
	id, err := gonanoid.Generate(characters, 10)
	if err != nil {
		return ""
	}
	return id
}
