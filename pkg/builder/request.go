// Package builder monta o envelope de requisição a partir de um template
// e payload validados, e normaliza o envelope de resposta da API.
// Os dois lados são puros e seguros para uso concorrente.
package builder

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/raywall/integra-contador-sdk/pkg/templates"
	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// Parties agrupa os três papéis obrigatórios de toda requisição.
type Parties struct {
	Contratante      types.Party
	Contribuinte     types.Party
	AutorPedidoDados types.Party
}

// Build valida o payload contra o schema do template e monta o envelope
// completo. O campo dados é sempre uma string JSON compacta; payload
// vazio serializa como "{}".
func Build(t templates.Template, dados map[string]any, p Parties) (types.RequestEnvelope, error) {
	validated, err := t.Validate(dados)
	if err != nil {
		return types.RequestEnvelope{}, err
	}

	serialized, err := serializeDados(validated)
	if err != nil {
		return types.RequestEnvelope{}, fmt.Errorf("erro ao serializar dados: %w", err)
	}

	return types.RequestEnvelope{
		Contratante:      p.Contratante,
		AutorPedidoDados: p.AutorPedidoDados,
		Contribuinte:     p.Contribuinte,
		PedidoDados: types.PedidoDados{
			IDSistema:     t.IDSistema,
			IDServico:     t.IDServico,
			VersaoSistema: t.VersaoSistema,
			Dados:         serialized,
		},
	}, nil
}

// serializeDados produz o JSON compacto exigido pelo wire format, sem
// escapar caracteres HTML (o payload pode conter XML em Base64 e afins).
func serializeDados(dados map[string]any) (string, error) {
	if len(dados) == 0 {
		return "{}", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dados); err != nil {
		return "", err
	}
	// Encode adiciona newline ao final; o wire format é uma linha única.
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
