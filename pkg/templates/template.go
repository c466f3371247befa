// Package templates define os templates de serviço do Integra Contador:
// o schema declarativo de cada par (idSistema, idServico), o registro
// global consultado pelo dispatch e o validador genérico que interpreta
// os schemas.
//
// Cada template é registrado uma única vez na inicialização do processo
// (arquivos de catálogo deste pacote); depois disso o registro é
// somente-leitura e seguro para consultas concorrentes sem lock.
package templates

// Endpoint é o nome da operação no gateway (POST /v1/<Endpoint>).
type Endpoint string

const (
	EndpointConsultar  Endpoint = "Consultar"
	EndpointEmitir     Endpoint = "Emitir"
	EndpointTransmitir Endpoint = "Transmitir"
	EndpointDeclarar   Endpoint = "Declarar"
	EndpointApoiar     Endpoint = "Apoiar"
	EndpointMonitorar  Endpoint = "Monitorar"
)

// FieldType é o tipo declarado de um campo do payload.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "int"
	TypeBool   FieldType = "bool"
	TypeObject FieldType = "object"
	TypeArray  FieldType = "array"
	TypeAny    FieldType = "any"
)

// FieldSpec declara as restrições de um campo do payload.
//
// Rule é uma expressão do go-playground/validator aplicada ao valor já
// coagido (ex: "len=6,numeric" para períodos YYYYMM, "min=1,max=12"
// para meses). Default, quando não-nulo, preenche o campo ausente em
// vez de exigi-lo.
type FieldSpec struct {
	Type     FieldType
	Required bool
	Rule     string
	Default  any

	// Pad, quando maior que zero, converte o valor inteiro validado em
	// string com zeros à esquerda nessa largura (ex: mesPA "01".."12").
	Pad int
}

// Schema é o conjunto de campos aceitos por um template.
//
// Campos fora do schema são rejeitados, a menos que AllowExtras seja
// verdadeiro (templates de declaração com payload livre). RequireNonEmpty
// exige ao menos um campo no payload (usado junto com AllowExtras).
type Schema struct {
	Fields          map[string]FieldSpec
	AllowExtras     bool
	RequireNonEmpty bool
}

// Template é a definição imutável de um serviço chamável: identificação,
// versão, schema de validação e endpoint de destino.
type Template struct {
	IDSistema     string
	IDServico     string
	VersaoSistema string
	Endpoint      Endpoint
	Schema        Schema
}
