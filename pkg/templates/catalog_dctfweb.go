package templates

// Catálogo do DCTFWEB e do MIT (Módulo de Inclusão de Tributos).

func init() {
	// DCTFWEB — declaração de débitos e créditos tributários federais.
	mustRegister(Template{
		IDSistema: "DCTFWEB", IDServico: "GERARGUIA31", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"categoria":           reqString(""),
			"anoPA":               reqString(ruleAnoStr),
			"mesPA":               monthString(),
			"numeroReciboEntrega": reqInt(rulePositive),
		}),
	})
	mustRegister(Template{
		IDSistema: "DCTFWEB", IDServico: "CONSRECIBO32", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"categoria":           reqInt(rulePositive),
			"anoPA":               reqString(ruleAnoStr),
			"mesPA":               monthString(),
			"numeroReciboEntrega": reqInt(rulePositive),
		}),
	})
	mustRegister(Template{
		IDSistema: "DCTFWEB", IDServico: "CONSDECCOMPLETA33", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"categoria":           reqString(""),
			"anoPA":               reqString(ruleAnoStr),
			"mesPA":               monthString(),
			"numeroReciboEntrega": reqInt(rulePositive),
		}),
	})
	mustRegister(Template{
		IDSistema: "DCTFWEB", IDServico: "CONSXMLDECLARACAO38", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"categoria": reqString(""),
			"anoPA":     reqString(ruleAnoStr),
			"mesPA":     monthString(),
		}),
	})
	mustRegister(Template{
		IDSistema: "DCTFWEB", IDServico: "TRANSDECLARACAO310", VersaoSistema: "1.0",
		Endpoint: EndpointTransmitir,
		Schema: fields(map[string]FieldSpec{
			"categoria":         reqString(""),
			"anoPA":             reqString(ruleAnoStr),
			"mesPA":             monthString(),
			"xmlAssinadoBase64": reqString(ruleBase64),
		}),
	})
	mustRegister(Template{
		IDSistema: "DCTFWEB", IDServico: "GERARGUIAANDAMENTO313", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"categoria": reqString(""),
			"anoPA":     reqString(ruleAnoStr),
			"mesPA":     monthString(),
		}),
	})

	// MIT — apurações do módulo de inclusão de tributos.
	mustRegister(Template{
		IDSistema: "MIT", IDServico: "ENCAPURACAO314", VersaoSistema: "1.0",
		Endpoint: EndpointDeclarar,
		Schema: Schema{
			Fields: map[string]FieldSpec{
				"PeriodoApuracao": reqObject(),
				"DadosIniciais":   reqObject(),
				"Debitos":         optObject(),
			},
			AllowExtras: true,
		},
	})
	mustRegister(Template{
		IDSistema: "MIT", IDServico: "SITUACAOENC315", VersaoSistema: "1.0",
		Endpoint: EndpointApoiar,
		Schema: fields(map[string]FieldSpec{
			"protocoloEncerramento": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "MIT", IDServico: "CONSAPURACAO316", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"IdApuracao": reqInt(ruleNonNeg),
		}),
	})
	mustRegister(Template{
		IDSistema: "MIT", IDServico: "LISTAAPURACOES317", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"mesApuracao":      reqInt(ruleMes),
			"anoApuracao":      reqInt(ruleAno),
			"situacaoApuracao": reqInt(ruleNonNeg),
		}),
	})
}
