package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

// upsertChunkSize mantém cada INSERT abaixo do limite de 65535 parâmetros do Postgres
const upsertChunkSize = 500

func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

func chunks[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}

	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
