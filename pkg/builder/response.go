package builder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// Normalize interpreta o corpo bruto retornado pela API e devolve o
// envelope de resposta. Nenhum campo é renomeado, reordenado ou
// descartado: o único retoque é o parse do campo dados quando ele vem
// como string JSON. Se o parse falhar, a string original é preservada
// (nunca retorna erro por causa de dados).
func Normalize(body []byte) (*types.ResponseEnvelope, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("resposta não é um JSON válido: %w", err)
	}

	if s, ok := raw["dados"].(string); ok && strings.TrimSpace(s) != "" {
		var parsed any
		d := json.NewDecoder(strings.NewReader(s))
		d.UseNumber()
		if err := d.Decode(&parsed); err == nil {
			raw["dados"] = parsed
		}
	}

	env := &types.ResponseEnvelope{Raw: raw, Dados: raw["dados"]}

	if status, ok := raw["status"].(json.Number); ok {
		if v, err := status.Int64(); err == nil {
			env.Status = int(v)
		}
	}

	if msgs, ok := raw["mensagens"].([]any); ok {
		for _, m := range msgs {
			item, ok := m.(map[string]any)
			if !ok {
				continue
			}
			var msg types.Mensagem
			if codigo, ok := item["codigo"].(string); ok {
				msg.Codigo = codigo
			}
			if texto, ok := item["texto"].(string); ok {
				msg.Texto = texto
			}
			env.Mensagens = append(env.Mensagens, msg)
		}
	}

	return env, nil
}
