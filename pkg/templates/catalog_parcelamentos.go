package templates

// Catálogo dos sistemas de parcelamento. As oito famílias (PARCSN,
// PARCSN-ESP, PARCMEI, PARCMEI-ESP, PERTSN, PERTMEI, RELPSN e RELPMEI)
// compartilham o mesmo conjunto de operações, mudando apenas os
// identificadores de serviço.

type parcelamentoIDs struct {
	sistema  string
	pedidos  string // consulta de pedidos de parcelamento (payload vazio)
	parcelas string // parcelas disponíveis para gerar (payload vazio)
	obter    string // detalhe de um parcelamento
	detPagto string // detalhe de pagamento de uma parcela
	gerarDAS string // emissão do DAS de uma parcela ("" quando ausente)
}

func registerParcelamento(ids parcelamentoIDs) {
	mustRegister(Template{
		IDSistema: ids.sistema, IDServico: ids.pedidos, VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema:   emptySchema(),
	})
	mustRegister(Template{
		IDSistema: ids.sistema, IDServico: ids.parcelas, VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema:   emptySchema(),
	})
	mustRegister(Template{
		IDSistema: ids.sistema, IDServico: ids.obter, VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"numeroParcelamento": reqInt(ruleNonNeg),
		}),
	})
	mustRegister(Template{
		IDSistema: ids.sistema, IDServico: ids.detPagto, VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"numeroParcelamento": reqInt(ruleNonNeg),
			"anoMesParcela":      reqInt(rulePeriodoInt),
		}),
	})
	if ids.gerarDAS != "" {
		mustRegister(Template{
			IDSistema: ids.sistema, IDServico: ids.gerarDAS, VersaoSistema: "1.0",
			Endpoint: EndpointEmitir,
			Schema: fields(map[string]FieldSpec{
				"parcelaParaEmitir": reqInt(rulePeriodoInt),
			}),
		})
	}
}

func init() {
	registerParcelamento(parcelamentoIDs{
		sistema:  "PARCSN",
		pedidos:  "PEDIDOSPARC163",
		parcelas: "PARCELASPARAGERAR162",
		obter:    "OBTERPARC164",
		detPagto: "DETPAGTOPARC165",
	})
	registerParcelamento(parcelamentoIDs{
		sistema:  "PARCSN-ESP",
		pedidos:  "PEDIDOSPARC173",
		parcelas: "PARCELASPARAGERAR172",
		obter:    "OBTERPARC174",
		detPagto: "DETPAGTOPARC175",
		gerarDAS: "GERARDAS171",
	})
	registerParcelamento(parcelamentoIDs{
		sistema:  "PARCMEI",
		pedidos:  "PEDIDOSPARC203",
		parcelas: "PARCELASPARAGERAR202",
		obter:    "OBTERPARC204",
		detPagto: "DETPAGTOPARC205",
	})
	registerParcelamento(parcelamentoIDs{
		sistema:  "PARCMEI-ESP",
		pedidos:  "PEDIDOSPARC213",
		parcelas: "PARCELASPARAGERAR212",
		obter:    "OBTERPARC214",
		detPagto: "DETPAGTOPARC215",
	})
	registerParcelamento(parcelamentoIDs{
		sistema:  "PERTSN",
		pedidos:  "PEDIDOSPARC183",
		parcelas: "PARCELASPARAGERAR182",
		obter:    "OBTERPARC184",
		detPagto: "DETPAGTOPARC185",
		gerarDAS: "GERARDAS181",
	})
	registerParcelamento(parcelamentoIDs{
		sistema:  "PERTMEI",
		pedidos:  "PEDIDOSPARC223",
		parcelas: "PARCELASPARAGERAR222",
		obter:    "OBTERPARC224",
		detPagto: "DETPAGTOPARC225",
		gerarDAS: "GERARDAS221",
	})
	registerParcelamento(parcelamentoIDs{
		sistema:  "RELPSN",
		pedidos:  "PEDIDOSPARC193",
		parcelas: "PARCELASPARAGERAR192",
		obter:    "OBTERPARC174", // identificador compartilhado com PARCSN-ESP
		detPagto: "DETPAGTOPARC195",
		gerarDAS: "GERARDAS191",
	})
	registerParcelamento(parcelamentoIDs{
		sistema:  "RELPMEI",
		pedidos:  "PEDIDOSPARC233",
		parcelas: "PARCELASPARAGERAR232",
		obter:    "OBTERPARC234",
		detPagto: "DETPAGTOPARC235",
		gerarDAS: "GERARDAS231",
	})
}
