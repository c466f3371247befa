// Package types contém as estruturas de dados compartilhadas do SDK:
// as partes envolvidas na requisição, os envelopes de requisição e
// resposta e os registros de autenticação.
package types

import "encoding/json"

// Tipos de pessoa aceitos no campo "tipo" das partes.
const (
	TipoPessoaFisica   = 1
	TipoPessoaJuridica = 2
)

// Party representa um dos três papéis exigidos em toda requisição:
// contratante, contribuinte ou autorPedidoDados.
type Party struct {
	Numero string `json:"numero" yaml:"numero" validate:"required,numeric"`
	Tipo   int    `json:"tipo" yaml:"tipo" validate:"required,oneof=1 2"`
}

// PedidoDados é o bloco interno do envelope com a identificação do
// serviço e o payload serializado. Dados é SEMPRE uma string JSON,
// mesmo quando o payload é vazio ("{}").
type PedidoDados struct {
	IDSistema     string `json:"idSistema"`
	IDServico     string `json:"idServico"`
	VersaoSistema string `json:"versaoSistema"`
	Dados         string `json:"dados"`
}

// RequestEnvelope é o corpo completo enviado via POST para a API.
// Os nomes dos campos são fixos e case-sensitive no wire format.
type RequestEnvelope struct {
	Contratante      Party       `json:"contratante"`
	AutorPedidoDados Party       `json:"autorPedidoDados"`
	Contribuinte     Party       `json:"contribuinte"`
	PedidoDados      PedidoDados `json:"pedidoDados"`
}

// Mensagem é um item da lista de mensagens retornadas pela API.
type Mensagem struct {
	Codigo string `json:"codigo"`
	Texto  string `json:"texto"`
}

// ResponseEnvelope é a resposta da API devolvida ao chamador exatamente
// como recebida. Raw preserva todos os campos de topo com seus nomes
// originais (nenhum campo é renomeado, reordenado ou descartado); os
// campos tipados são apenas visões de conveniência sobre Raw.
//
// Dados contém o valor estruturado quando o campo veio como string JSON
// parseável; caso contrário, mantém o valor original intacto.
type ResponseEnvelope struct {
	Status    int
	Mensagens []Mensagem
	Dados     any

	Raw map[string]any
}

// MarshalJSON serializa o envelope a partir de Raw, honrando o contrato
// de devolver a resposta exatamente como a API a produziu.
func (r ResponseEnvelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Raw)
}
