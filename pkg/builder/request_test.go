package builder

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
	"github.com/raywall/integra-contador-sdk/pkg/templates"
	"github.com/raywall/integra-contador-sdk/pkg/types"
)

var testParties = Parties{
	Contratante:      types.Party{Numero: "11111111000191", Tipo: types.TipoPessoaJuridica},
	Contribuinte:     types.Party{Numero: "22222222000144", Tipo: types.TipoPessoaJuridica},
	AutorPedidoDados: types.Party{Numero: "11111111000191", Tipo: types.TipoPessoaJuridica},
}

func TestBuild(t *testing.T) {
	t.Run("Envelope completo com payload válido", func(t *testing.T) {
		tmpl, err := templates.Resolve("PGDASD", "GERARDAS12")
		require.NoError(t, err)

		env, err := Build(tmpl, map[string]any{"periodoApuracao": "202401"}, testParties)
		require.NoError(t, err)

		assert.Equal(t, "11111111000191", env.Contratante.Numero)
		assert.Equal(t, "22222222000144", env.Contribuinte.Numero)
		assert.Equal(t, "PGDASD", env.PedidoDados.IDSistema)
		assert.Equal(t, "GERARDAS12", env.PedidoDados.IDServico)
		assert.Equal(t, tmpl.VersaoSistema, env.PedidoDados.VersaoSistema)
		assert.JSONEq(t, `{"periodoApuracao":"202401"}`, env.PedidoDados.Dados)
	})

	t.Run("Payload vazio serializa como objeto vazio", func(t *testing.T) {
		tmpl, err := templates.Resolve("CCMEI", "DADOSCCMEI122")
		require.NoError(t, err)

		env, err := Build(tmpl, nil, testParties)
		require.NoError(t, err)
		assert.Equal(t, "{}", env.PedidoDados.Dados)
	})

	t.Run("Payload inválido interrompe antes da montagem", func(t *testing.T) {
		tmpl, err := templates.Resolve("PGDASD", "GERARDAS12")
		require.NoError(t, err)

		_, err = Build(tmpl, map[string]any{}, testParties)
		var verr *sdkerrors.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("Dados é sempre uma string JSON de uma linha", func(t *testing.T) {
		tmpl, err := templates.Resolve("DEFIS", "TRANSDECLARACAO141")
		require.NoError(t, err)

		env, err := Build(tmpl, map[string]any{
			"ano":         2024,
			"inatividade": 0,
			"empresa":     map[string]any{"ganhoCapital": 0},
		}, testParties)
		require.NoError(t, err)

		assert.NotContains(t, env.PedidoDados.Dados, "\n")

		var roundTrip map[string]any
		require.NoError(t, json.Unmarshal([]byte(env.PedidoDados.Dados), &roundTrip))
		assert.Equal(t, float64(2024), roundTrip["ano"])
	})

	t.Run("Wire format do envelope usa os nomes fixos", func(t *testing.T) {
		tmpl, err := templates.Resolve("PGDASD", "GERARDAS12")
		require.NoError(t, err)

		env, err := Build(tmpl, map[string]any{"periodoApuracao": "202401"}, testParties)
		require.NoError(t, err)

		raw, err := json.Marshal(env)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		for _, key := range []string{"contratante", "autorPedidoDados", "contribuinte", "pedidoDados"} {
			assert.Contains(t, decoded, key)
		}
		pedido := decoded["pedidoDados"].(map[string]any)
		for _, key := range []string{"idSistema", "idServico", "versaoSistema", "dados"} {
			assert.Contains(t, pedido, key)
		}
		_, isString := pedido["dados"].(string)
		assert.True(t, isString, "dados deve ir como string JSON")
	})
}
