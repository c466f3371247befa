// Package integra fornece um cliente Go para a API Integra Contador do
// SERPRO, cobrindo a montagem, validação, autenticação e envio das
// requisições dos serviços fiscais (Simples Nacional, MEI, DCTFWeb,
// parcelamentos, caixa postal, SITFIS, SICALC e demais sistemas).
//
// Visão Geral:
// O módulo resolve os quatro problemas recorrentes ao integrar com a API:
// 1. Catálogo (templates): registro estático de cada serviço com seu
//    schema de payload, versão e endpoint.
// 2. Validação e montagem (builder): valida o payload contra o schema,
//    acumulando todos os erros, e monta o envelope de wire.
// 3. Autenticação (auth + credstore): token estático, token fixo do
//    Trial ou OAuth2 com certificado digital, com cache, single-flight
//    e persistência do token entre processos.
// 4. Transporte (transport): POST autenticado com retry de falhas de
//    rede, logging estruturado e métricas opcionais.
//
// O design é focado em testabilidade: cada dependência externa (store,
// clients HTTP, relógio, catálogo, métricas) é injetável via Option.
//
// Exemplo de Início Rápido:
//
// Consulta de uma declaração do PGDAS-D no ambiente Trial.
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		integra "github.com/raywall/integra-contador-sdk"
//		"github.com/raywall/integra-contador-sdk/pkg/config"
//		"github.com/raywall/integra-contador-sdk/pkg/types"
//	)
//
//	func main() {
//		cfg := config.Config{
//			Environment:      config.Trial,
//			Contratante:      types.Party{Numero: "00000000000100", Tipo: types.TipoPessoaJuridica},
//			Contribuinte:     types.Party{Numero: "00000000000100", Tipo: types.TipoPessoaJuridica},
//			AutorPedidoDados: types.Party{Numero: "00000000000100", Tipo: types.TipoPessoaJuridica},
//		}
//
//		client, err := integra.New(cfg)
//		if err != nil {
//			log.Fatalf("erro ao criar cliente: %v", err)
//		}
//		defer client.Close()
//
//		resp, err := client.Consultar(context.Background(), "PGDASD", "CONSDECLARACAO13", map[string]any{
//			"periodoApuracao": "202401",
//		})
//		if err != nil {
//			log.Fatalf("erro na consulta: %v", err)
//		}
//		log.Printf("status=%d dados=%v", resp.Status, resp.Dados)
//	}
package integra
