package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
)

func validationErrorOf(t *testing.T, err error) *sdkerrors.ValidationError {
	t.Helper()
	var verr *sdkerrors.ValidationError
	require.True(t, errors.As(err, &verr), "esperava ValidationError, veio %v", err)
	return verr
}

func TestTemplate_Validate_CamposObrigatorios(t *testing.T) {
	tmpl := Template{
		IDSistema: "TESTE", IDServico: "SERVICO1", VersaoSistema: "1.0",
		Schema: fields(map[string]FieldSpec{
			"alfa":  reqString(""),
			"beta":  reqInt(""),
			"gama":  reqBool(),
			"delta": optString(nil),
		}),
	}

	t.Run("Payload válido passa", func(t *testing.T) {
		out, err := tmpl.Validate(map[string]any{
			"alfa": "x", "beta": 7, "gama": true,
		})
		require.NoError(t, err)
		assert.Equal(t, "x", out["alfa"])
		assert.Equal(t, 7, out["beta"])
		assert.Equal(t, true, out["gama"])
	})

	t.Run("Todas as ausências são reportadas juntas", func(t *testing.T) {
		_, err := tmpl.Validate(map[string]any{})
		verr := validationErrorOf(t, err)

		require.Len(t, verr.Fields, 3)
		// Ordem alfabética de campo.
		assert.Equal(t, "alfa", verr.Fields[0].Field)
		assert.Equal(t, "beta", verr.Fields[1].Field)
		assert.Equal(t, "gama", verr.Fields[2].Field)
	})

	t.Run("Campo desconhecido é rejeitado", func(t *testing.T) {
		_, err := tmpl.Validate(map[string]any{
			"alfa": "x", "beta": 1, "gama": false, "zeta": "?",
		})
		verr := validationErrorOf(t, err)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "zeta", verr.Fields[0].Field)
	})
}

func TestTemplate_Validate_Coercao(t *testing.T) {
	tmpl := Template{
		IDSistema: "TESTE", IDServico: "SERVICO2", VersaoSistema: "1.0",
		Schema: fields(map[string]FieldSpec{
			"numero": reqInt(""),
			"texto":  reqString(""),
		}),
	}

	tests := []struct {
		name    string
		dados   map[string]any
		wantErr bool
		check   func(t *testing.T, out map[string]any)
	}{
		{
			name:  "Int aceita string de dígitos",
			dados: map[string]any{"numero": "42", "texto": "ok"},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, 42, out["numero"])
			},
		},
		{
			name:  "Int aceita float sem parte fracionária",
			dados: map[string]any{"numero": float64(8), "texto": "ok"},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, 8, out["numero"])
			},
		},
		{
			name:    "Int rejeita float fracionário",
			dados:   map[string]any{"numero": 1.5, "texto": "ok"},
			wantErr: true,
		},
		{
			name:    "Int rejeita string não numérica",
			dados:   map[string]any{"numero": "abc", "texto": "ok"},
			wantErr: true,
		},
		{
			name:  "String aceita inteiro",
			dados: map[string]any{"numero": 1, "texto": 2024},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "2024", out["texto"])
			},
		},
		{
			name:    "String rejeita vazio",
			dados:   map[string]any{"numero": 1, "texto": "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tmpl.Validate(tt.dados)
			if tt.wantErr {
				validationErrorOf(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, out)
			}
		})
	}
}

func TestTemplate_Validate_Regras(t *testing.T) {
	t.Run("Período fora do formato falha na regra", func(t *testing.T) {
		tmpl, err := Resolve("PGDASD", "GERARDAS12")
		require.NoError(t, err)

		_, err = tmpl.Validate(map[string]any{"periodoApuracao": "24-01"})
		verr := validationErrorOf(t, err)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "periodoApuracao", verr.Fields[0].Field)
	})

	t.Run("Base64 inválido falha na regra", func(t *testing.T) {
		tmpl, err := Resolve("AUTENTICAPROCURADOR", "ENVIOXMLASSINADO81")
		require.NoError(t, err)

		_, err = tmpl.Validate(map[string]any{"xml": "não-é-base64!"})
		validationErrorOf(t, err)
	})

	t.Run("Mês é normalizado com dois dígitos", func(t *testing.T) {
		tmpl, err := Resolve("DCTFWEB", "GERARGUIA31")
		require.NoError(t, err)

		out, err := tmpl.Validate(map[string]any{
			"categoria":           "GERAL_MENSAL",
			"anoPA":               "2024",
			"mesPA":               3,
			"numeroReciboEntrega": 123,
		})
		require.NoError(t, err)
		assert.Equal(t, "03", out["mesPA"])
	})
}

func TestTemplate_Validate_Defaults(t *testing.T) {
	tmpl, err := Resolve("CAIXAPOSTAL", "MSGCONTRIBUINTE61")
	require.NoError(t, err)

	t.Run("Campos ausentes recebem default", func(t *testing.T) {
		out, err := tmpl.Validate(nil)
		require.NoError(t, err)
		assert.Equal(t, "0", out["statusLeitura"])
		assert.Equal(t, "0", out["indicadorPagina"])
		assert.Equal(t, "00000000000000", out["ponteiroPagina"])
	})

	t.Run("String vazia equivale a ausente", func(t *testing.T) {
		out, err := tmpl.Validate(map[string]any{"statusLeitura": ""})
		require.NoError(t, err)
		assert.Equal(t, "0", out["statusLeitura"])
	})

	t.Run("Valor informado prevalece sobre o default", func(t *testing.T) {
		out, err := tmpl.Validate(map[string]any{"statusLeitura": "2"})
		require.NoError(t, err)
		assert.Equal(t, "2", out["statusLeitura"])
	})
}

func TestTemplate_Validate_SchemasEspeciais(t *testing.T) {
	t.Run("Schema vazio rejeita qualquer campo", func(t *testing.T) {
		tmpl, err := Resolve("CCMEI", "EMITIRCCMEI121")
		require.NoError(t, err)

		out, err := tmpl.Validate(nil)
		require.NoError(t, err)
		assert.Empty(t, out)

		_, err = tmpl.Validate(map[string]any{"qualquer": 1})
		validationErrorOf(t, err)
	})

	t.Run("Schema livre exige payload não vazio", func(t *testing.T) {
		tmpl, err := Resolve("PGDASD", "TRANSDECLARACAO11")
		require.NoError(t, err)

		_, err = tmpl.Validate(map[string]any{})
		validationErrorOf(t, err)

		out, err := tmpl.Validate(map[string]any{"cnpjCompleto": "00000000000100"})
		require.NoError(t, err)
		assert.Equal(t, "00000000000100", out["cnpjCompleto"])
	})
}
