package templates

// Catálogo dos sistemas do Simples Nacional e MEI:
// PGMEI, PGDASD, DEFIS, CCMEI e REGIMEAPURACAO.

func init() {
	// PGMEI — Programa Gerador do DAS para o MEI.
	mustRegister(Template{
		IDSistema: "PGMEI", IDServico: "GERARDASPDF21", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"periodoApuracao": reqString(rulePeriodoStr),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGMEI", IDServico: "GERARDASCODBARRA22", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"periodoApuracao": reqString(rulePeriodoStr),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGMEI", IDServico: "ATUBENEFICIO23", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"anoCalendario": reqInt(ruleAno),
			"infoBeneficio": reqArray(),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGMEI", IDServico: "DIVIDAATIVA24", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"anoCalendario": reqString(ruleAnoStr),
		}),
	})

	// PGDASD — declaração mensal do Simples Nacional.
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "TRANSDECLARACAO11", VersaoSistema: "1.0",
		Endpoint: EndpointDeclarar,
		Schema:   freeformSchema(),
	})
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "GERARDAS12", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"periodoApuracao": reqString(rulePeriodoStr),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "CONSDECLARACAO13", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"anoCalendario": reqString(ruleAnoStr),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "CONSULTIMADECREC14", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"periodoApuracao": reqString(rulePeriodoStr),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "CONSDECREC15", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"numeroDeclaracao": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "CONSEXTRATO16", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"numeroDas": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "GERARDASCOBRANCA17", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"periodoApuracao": reqString(rulePeriodoStr),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "GERARDASPROCESSO18", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"numeroProcesso": reqString(""),
		}),
	})
	mustRegister(Template{
		IDSistema: "PGDASD", IDServico: "GERARDASAVULSO19", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema: fields(map[string]FieldSpec{
			"PeriodoApuracao": reqInt(rulePeriodoInt),
			"ListaTributos":   reqArray(),
		}),
	})

	// DEFIS — declaração de informações socioeconômicas e fiscais.
	mustRegister(Template{
		IDSistema: "DEFIS", IDServico: "TRANSDECLARACAO141", VersaoSistema: "1.0",
		Endpoint: EndpointDeclarar,
		Schema: Schema{
			Fields: map[string]FieldSpec{
				"ano":         reqInt(ruleAno),
				"inatividade": reqInt(ruleNonNeg),
			},
			AllowExtras: true,
		},
	})
	mustRegister(Template{
		IDSistema: "DEFIS", IDServico: "CONSDECLARACAO142", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema:   emptySchema(),
	})
	mustRegister(Template{
		IDSistema: "DEFIS", IDServico: "CONSULTIMADECREC143", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"ano": reqInt(ruleAno),
		}),
	})
	mustRegister(Template{
		IDSistema: "DEFIS", IDServico: "CONSDECREC144", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"idDefis": reqString(""),
		}),
	})

	// CCMEI — Certificado da Condição de MEI. Payloads vazios: o
	// contribuinte do envelope identifica o alvo.
	mustRegister(Template{
		IDSistema: "CCMEI", IDServico: "EMITIRCCMEI121", VersaoSistema: "1.0",
		Endpoint: EndpointEmitir,
		Schema:   emptySchema(),
	})
	mustRegister(Template{
		IDSistema: "CCMEI", IDServico: "DADOSCCMEI122", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema:   emptySchema(),
	})
	mustRegister(Template{
		IDSistema: "CCMEI", IDServico: "CCMEISITCADASTRAL123", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema:   emptySchema(),
	})

	// REGIMEAPURACAO — opção pelo regime de apuração de receitas.
	mustRegister(Template{
		IDSistema: "REGIMEAPURACAO", IDServico: "EFETUAROPCAOREGIME101", VersaoSistema: "1.0",
		Endpoint: EndpointDeclarar,
		Schema: fields(map[string]FieldSpec{
			"anoOpcao":          reqInt(ruleAno),
			"tipoRegime":        reqInt(rulePositive),
			"descritivoRegime":  reqString(""),
			"deAcordoResolucao": reqBool(),
		}),
	})
	mustRegister(Template{
		IDSistema: "REGIMEAPURACAO", IDServico: "CONSULTARANOSCALENDARIOS102", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema:   emptySchema(),
	})
	mustRegister(Template{
		IDSistema: "REGIMEAPURACAO", IDServico: "CONSULTAROPCAOREGIME103", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"anoCalendario": reqInt(ruleAno),
		}),
	})
	mustRegister(Template{
		IDSistema: "REGIMEAPURACAO", IDServico: "CONSULTARRESOLUCAO104", VersaoSistema: "1.0",
		Endpoint: EndpointConsultar,
		Schema: fields(map[string]FieldSpec{
			"anoCalendario": reqInt(ruleAno),
		}),
	})
}
