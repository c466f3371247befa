package templates

import (
	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
)

type registryKey struct {
	idSistema string
	idServico string
}

// Registry mapeia pares (idSistema, idServico) para templates. A busca é
// exata e case-sensitive nos dois identificadores.
type Registry struct {
	entries map[registryKey]Template
}

// NewRegistry cria um registro vazio.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]Template)}
}

// Register adiciona um template. Falha se a tripla
// (idSistema, idServico, versaoSistema) já estiver registrada.
func (r *Registry) Register(t Template) error {
	key := registryKey{t.IDSistema, t.IDServico}
	if existing, ok := r.entries[key]; ok && existing.VersaoSistema == t.VersaoSistema {
		return &sdkerrors.DuplicateTemplateError{
			IDSistema:     t.IDSistema,
			IDServico:     t.IDServico,
			VersaoSistema: t.VersaoSistema,
		}
	}
	r.entries[key] = t
	return nil
}

// Resolve retorna o template do par informado ou RequestNotFoundError.
func (r *Registry) Resolve(idSistema, idServico string) (Template, error) {
	t, ok := r.entries[registryKey{idSistema, idServico}]
	if !ok {
		return Template{}, &sdkerrors.RequestNotFoundError{IDSistema: idSistema, IDServico: idServico}
	}
	return t, nil
}

// Len retorna a quantidade de pares registrados.
func (r *Registry) Len() int { return len(r.entries) }

// defaultRegistry recebe o catálogo estático na inicialização do pacote.
// Após os init() dos arquivos de catálogo ele nunca mais é alterado,
// por isso Resolve dispensa lock.
var defaultRegistry = NewRegistry()

// Default retorna o registro global com o catálogo estático.
func Default() *Registry { return defaultRegistry }

// Resolve consulta o registro global.
func Resolve(idSistema, idServico string) (Template, error) {
	return defaultRegistry.Resolve(idSistema, idServico)
}

// mustRegister registra no catálogo global; um catálogo inconsistente é
// um bug de programação, então a falha é um panic na carga do pacote.
func mustRegister(t Template) {
	if err := defaultRegistry.Register(t); err != nil {
		panic(err)
	}
}
