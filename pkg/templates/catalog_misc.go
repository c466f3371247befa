package templates

// Catálogo dos demais sistemas: caixa postal, situação fiscal, eventos
// de atualização, pagamentos, procurações, SICALC, DTE, processos
// digitais e procurador.

func init() {
	// CAIXAPOSTAL — mensagens da caixa postal do contribuinte.
	mustRegister(Template{
		IDSistema: "CAIXAPOSTAL", IDServico: "MSGCONTRIBUINTE61", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"statusLeitura":   optString("0"),
			"indicadorPagina": optString("0"),
			"ponteiroPagina":  optString("00000000000000"),
		}),
	})
	mustRegister(Template{
		IDSistema: "CAIXAPOSTAL", IDServico: "MSGDETALHAMENTO62", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"isn": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "CAIXAPOSTAL", IDServico: "INNOVAMSG63", VersaoSistema: "1.0",
		Endpoint: EndpointMonitorar,
		Schema:   emptySchema(),
	})

	// SITFIS — relatório de situação fiscal. O protocolo é obtido no
	// Apoiar e consumido pelo Emitir.
	mustRegister(Template{
		IDSistema: "SITFIS", IDServico: "SOLICITARPROTOCOLO91", VersaoSistema: "1.0",
		Endpoint: EndpointApoiar,
		Schema:   emptySchema(),
	})
	mustRegister(Template{
		IDSistema: "SITFIS", IDServico: "RELATORIOSITFIS92", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"protocoloRelatorio": reqString(""),
		}),
	})

	// EVENTOSATUALIZACAO — monitoramento de eventos cadastrais.
	mustRegister(Template{
		IDSistema: "EVENTOSATUALIZACAO", IDServico: "SOLICEVENTOSPF131", VersaoSistema: "1.0",
		Endpoint: EndpointMonitorar,
		Schema: fields(map[string]FieldSpec{
			"evento": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "EVENTOSATUALIZACAO", IDServico: "SOLICEVENTOSPJ132", VersaoSistema: "1.0",
		Endpoint: EndpointMonitorar,
		Schema: fields(map[string]FieldSpec{
			"evento": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "EVENTOSATUALIZACAO", IDServico: "OBTEREVENTOSPF133", VersaoSistema: "1.0",
		Endpoint: EndpointMonitorar,
		Schema: fields(map[string]FieldSpec{
			"protocolo": reqString(""),
			"evento":    reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "EVENTOSATUALIZACAO", IDServico: "OBTEREVENTOSPJ134", VersaoSistema: "1.0",
		Endpoint: EndpointMonitorar,
		Schema: fields(map[string]FieldSpec{
			"protocolo": reqString(""),
			"evento":    reqString(""),
		}),
	})

	// PAGTOWEB — consulta de pagamentos e comprovantes de arrecadação.
	// Os filtros de PAGAMENTOS71/CONTACONSDOCARRPG73 são alternativos
	// entre si; a exigência de ao menos um fica a cargo da API.
	mustRegister(Template{
		IDSistema: "PAGTOWEB", IDServico: "PAGAMENTOS71", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"intervaloDataArrecadacao":     optObject(),
			"codigoReceitaLista":           optArray(),
			"intervaloValorTotalDocumento": optObject(),
			"numeroDocumentoLista":         optArray(),
			"codigoTipoDocumentoLista":     optArray(),
			"primeiroDaPagina":             optInt(ruleNonNeg),
			"tamanhoDaPagina":              optInt(rulePositive),
		}),
	})
	mustRegister(Template{
		IDSistema: "PAGTOWEB", IDServico: "COMPARRECADACAO72", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"numeroDocumento": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "PAGTOWEB", IDServico: "CONTACONSDOCARRPG73", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"intervaloDataArrecadacao":     optObject(),
			"codigoReceitaLista":           optArray(),
			"intervaloValorTotalDocumento": optObject(),
			"numeroDocumentoLista":         optArray(),
			"codigoTipoDocumentoLista":     optArray(),
		}),
	})

	// PROCURACOES — consulta de procurações eletrônicas.
	mustRegister(Template{
		IDSistema: "PROCURACOES", IDServico: "OBTERPROCURACAO41", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"outorgante":     reqString("numeric"),
			"tipoOutorgante": reqString(ruleTipoNI),
			"outorgado":      reqString("numeric"),
			"tipoOutorgado":  reqString(ruleTipoNI),
		}),
	})

	// SICALC — cálculo e emissão de DARF.
	mustRegister(Template{
		IDSistema: "SICALC", IDServico: "CONSOLIDARGERARDARF51", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"codigoReceita":         reqString(""),
			"codigoReceitaExtensao": reqString(""),
			"tipoPA":                reqString(""),
			"dataPA":                reqString(""),
			"valorImposto":          reqString(""),
			"dataConsolidacao":      reqString(""),
			"observacao":            FieldSpec{Type: TypeString},
			"uf":                    FieldSpec{Type: TypeString},
			"municipio":             FieldSpec{Type: TypeString},
			"vencimento":            FieldSpec{Type: TypeString},
			"cota":                  FieldSpec{Type: TypeString},
		}),
	})
	mustRegister(Template{
		IDSistema: "SICALC", IDServico: "CONSULTAAPOIORECEITAS52", VersaoSistema: "1.0",
		Endpoint: EndpointApoiar,
		Schema: fields(map[string]FieldSpec{
			"codigoReceita": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "SICALC", IDServico: "GERARDARFCODBARRA53", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"codigoReceita":         reqString(""),
			"codigoReceitaExtensao": reqString(""),
			"tipoPA":                reqString(""),
			"dataPA":                reqString(""),
			"valorImposto":          reqString(""),
			"dataConsolidacao":      reqString(""),
			"observacao":            FieldSpec{Type: TypeString},
			"uf":                    FieldSpec{Type: TypeString},
			"municipio":             FieldSpec{Type: TypeString},
			"vencimento":            FieldSpec{Type: TypeString},
			"cota":                  FieldSpec{Type: TypeString},
		}),
	})

	// DTE — domicílio tributário eletrônico.
	mustRegister(Template{
		IDSistema: "DTE", IDServico: "CONSULTASITUACAODTE111", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema:   emptySchema(),
	})

	// EPROCESSO — consulta de processos digitais por interessado.
	mustRegister(Template{
		IDSistema: "EPROCESSO", IDServico: "CONSPROCPORINTER271", VersaoSistema: "2.0",
		Endpoint: EndpointConsultar,
		Schema:   emptySchema(),
	})

	// AUTENTICAPROCURADOR — envio do termo de autorização assinado.
	mustRegister(Template{
		IDSistema: "AUTENTICAPROCURADOR", IDServico: "ENVIOXMLASSINADO81", VersaoSistema: "1.0",
		Endpoint: EndpointApoiar,
		Schema: fields(map[string]FieldSpec{
			"xml": reqString(ruleBase64),
		}),
	})
}
