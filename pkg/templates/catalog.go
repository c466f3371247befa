package templates

// Helpers de schema usados pelos arquivos de catálogo. As regras são
// expressões do go-playground/validator aplicadas após a coerção de tipo.

const (
	ruleAnoStr     = "len=4,numeric"         // "2024"
	rulePeriodoStr = "len=6,numeric"         // "202401"
	rulePeriodoInt = "min=190001,max=210012" // 202401
	ruleMes        = "min=1,max=12"
	ruleAno        = "min=1900,max=2100"
	ruleNonNeg     = "min=0"
	rulePositive   = "min=1"
	ruleBase64     = "base64"
	ruleTipoNI     = "oneof=1 2" // 1=CPF, 2=CNPJ
)

func reqString(rule string) FieldSpec {
	return FieldSpec{Type: TypeString, Required: true, Rule: rule}
}

func optString(defaultValue any) FieldSpec {
	return FieldSpec{Type: TypeString, Default: defaultValue}
}

func reqInt(rule string) FieldSpec {
	return FieldSpec{Type: TypeInt, Required: true, Rule: rule}
}

func optInt(rule string) FieldSpec {
	return FieldSpec{Type: TypeInt, Rule: rule}
}

// monthString aceita mês como inteiro ou string ("3", 3) e normaliza
// para string com dois dígitos ("03"), como o formato de wire exige.
func monthString() FieldSpec {
	return FieldSpec{Type: TypeInt, Required: true, Rule: ruleMes, Pad: 2}
}

func reqBool() FieldSpec {
	return FieldSpec{Type: TypeBool, Required: true}
}

func reqObject() FieldSpec {
	return FieldSpec{Type: TypeObject, Required: true}
}

func optObject() FieldSpec {
	return FieldSpec{Type: TypeObject}
}

func reqArray() FieldSpec {
	return FieldSpec{Type: TypeArray, Required: true}
}

func optArray() FieldSpec {
	return FieldSpec{Type: TypeArray}
}

// emptySchema rejeita qualquer campo: serviços cujo payload deve ser vazio.
func emptySchema() Schema {
	return Schema{Fields: map[string]FieldSpec{}}
}

// freeformSchema aceita qualquer payload não-vazio: serviços de declaração
// cujo conteúdo é definido pelo layout do próprio sistema.
func freeformSchema() Schema {
	return Schema{Fields: map[string]FieldSpec{}, AllowExtras: true, RequireNonEmpty: true}
}

func fields(m map[string]FieldSpec) Schema {
	return Schema{Fields: m}
}
